package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/promptrelay/internal/http/middleware"
	"github.com/davidbz/promptrelay/internal/observability"
)

func tag(name string, order *[]string) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChain(t *testing.T) {
	var order []string
	final := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	})

	middleware.Chain(tag("first", &order), tag("second", &order))(final).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestTrace(t *testing.T) {
	var traceID, requestID string
	final := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID = observability.GetTraceID(r.Context())
		requestID = observability.GetRequestID(r.Context())
	})

	w := httptest.NewRecorder()
	middleware.Trace()(final).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, traceID, 32)
	require.Equal(t, traceID, w.Header().Get("X-Trace-Id"))
	require.Equal(t, requestID, w.Header().Get("X-Request-Id"))
}
