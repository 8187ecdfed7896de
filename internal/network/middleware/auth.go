package middleware

import (
	"net/http"

	"github.com/skillotech/ambassador-api/internal/helpers"
	"github.com/skillotech/ambassador-api/internal/logger"
)

// RequireRole — middleware-проверка роли из JWT токена.
// Запрос проходит, если роль совпала с одной из разрешённых.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := helpers.GetRole(r.Context())
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					h.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Access denied for role", role)
			http.Error(w, "Forbidden", http.StatusForbidden)
		})
	}
}
