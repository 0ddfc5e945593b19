package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/bugtrack/internal/server/handlers"
)

// AdminOnly создает middleware, пропускающий только пользователей с ролью admin.
// Вешается поверх AuthMiddleware: claims уже должны быть в контексте.
//
// Отказ намеренно benign: HTTP 200 с телом "Not Admin" вместо 403.
// Так отвечала предыдущая реализация, и клиенты разбирают именно
// эту форму - менять на честный 403 нельзя без их миграции.
func AdminOnly(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := handlers.GetClaims(r.Context())
			if !ok {
				// AdminOnly без AuthMiddleware - ошибка композиции маршрутов
				logger.Error("admin check without auth context",
					"method", r.Method,
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte("No Token Found!"))
				return
			}

			if !claims.User.IsAdmin() {
				logger.Warn("non-admin attempted admin route",
					"email", claims.User.Email,
					"role", claims.User.Role,
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`"Not Admin"`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
