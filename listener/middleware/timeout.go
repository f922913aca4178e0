package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds a request when Timeout is given a non-positive duration.
const DefaultTimeout = 5 * time.Second

// Timeout returns a middleware that answers 503 Service Unavailable when the
// handler does not complete within duration.
func Timeout(logger *slog.Logger, duration time.Duration) func(http.Handler) http.Handler {
	if duration <= 0 {
		logger.Warn("middleware: timeout must be positive, using default",
			slog.Duration("provided", duration), slog.Duration("default", DefaultTimeout))

		duration = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, duration, "Service Unavailable")
	}
}
