package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const (
	msgTooManyRequests    = "Too many requests. Please try again later."
	msgLimiterUnavailable = "Service temporarily unavailable. Please try again later."
)

// RateLimitCounter учитывает отклоненные запросы
type RateLimitCounter interface {
	IncRateLimited()
}

// RateLimitOptions настройки ограничения частоты запросов
type RateLimitOptions struct {
	Limiter RateLimiter
	// FailOpen пропускает запросы, если лимитер недоступен; иначе 503
	FailOpen bool
	Counter  RateLimitCounter
	Logger   Logger
}

// RateLimit ограничивает частоту запросов по IP клиента
func RateLimit(opts RateLimitOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			allowed, err := opts.Limiter.Allow(r.Context(), key)
			if err != nil {
				opts.Logger.Error("%s %s - Rate limiter failed: client=%s, error=%v", r.Method, r.URL.Path, key, err)
				if !opts.FailOpen {
					handlers.RespondServiceUnavailable(w, msgLimiterUnavailable)
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				if opts.Counter != nil {
					opts.Counter.IncRateLimited()
				}
				opts.Logger.Warn("%s %s - Rate limit exceeded: client=%s", r.Method, r.URL.Path, key)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		parts := strings.Split(ip, ",")
		return strings.TrimSpace(parts[0])
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
