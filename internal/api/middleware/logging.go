package middleware

import (
	"net/http"
	"time"
)

// Logging пишет строку access-лога на каждый запрос
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			reqID := RequestIDFromContext(r.Context())
			switch {
			case sw.status >= http.StatusInternalServerError:
				logger.Error("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, sw.status, duration, reqID)
			case sw.status >= http.StatusBadRequest:
				logger.Warn("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, sw.status, duration, reqID)
			default:
				logger.Info("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, sw.status, duration, reqID)
			}
		})
	}
}
