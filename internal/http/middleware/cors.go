package middleware

import (
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap/zapcore"

	"github.com/davidbz/promptrelay/internal/config"
	"github.com/davidbz/promptrelay/internal/observability"
)

// CORS lets browser dashboards poll the health endpoint cross-origin.
// A nil config disables it.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	methods := cfg.AllowedMethods
	if len(methods) == 0 {
		methods = []string{http.MethodGet, http.MethodHead}
	}

	opts := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   methods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	// rs/cors logs every preflight decision; only worth it at debug level.
	if logger := observability.Logger(); logger.Core().Enabled(zapcore.DebugLevel) {
		opts.Logger = corsLogger{}
	}

	c := cors.New(opts)

	return c.Handler
}

// corsLogger adapts rs/cors's Printf logger to zap.
type corsLogger struct{}

func (corsLogger) Printf(format string, v ...interface{}) {
	observability.Logger().Sugar().Debugf(format, v...)
}
