package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const (
	AdminTokenHeader = "X-Admin-Token"

	msgUnauthorized  = "Unauthorized"
	msgAdminDisabled = "Admin API is disabled"
)

// AdminAuth пропускает запросы с правильным токеном администратора.
// Токен принимается в Authorization: Bearer или в X-Admin-Token.
// Пустой токен в конфиге закрывает админские маршруты.
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	expected := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(expected) == 0 {
				logger.Warn("%s %s - Admin API disabled: token is not configured", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminDisabled)
				return
			}

			got := adminToken(r)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
				logger.Warn("%s %s - Invalid admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func adminToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
	}
	return strings.TrimSpace(r.Header.Get(AdminTokenHeader))
}
