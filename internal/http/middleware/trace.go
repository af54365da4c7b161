package middleware

import (
	"net/http"

	"github.com/davidbz/promptrelay/internal/observability"
)

// Trace creates a middleware that seeds trace, span and request IDs into every request.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := observability.StartTrace(r.Context())

			w.Header().Set("X-Trace-Id", observability.GetTraceID(ctx))
			w.Header().Set("X-Request-Id", observability.GetRequestID(ctx))

			observability.FromContext(ctx).Debug("request started",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
				observability.String("remote_addr", r.RemoteAddr),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
