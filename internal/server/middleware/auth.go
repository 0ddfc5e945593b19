package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/bugtrack/internal/server/handlers"
	"github.com/iudanet/bugtrack/internal/server/token"
	"github.com/iudanet/bugtrack/pkg/api"
)

// TokenHeader имя заголовка с токеном, ожидаемое существующими клиентами.
// Клиенты шлют рядом заголовок email - он игнорируется: идентичность
// читается только из верифицированных claims.
const TokenHeader = "x-access-token"

// AuthMiddleware создает middleware для проверки токена доступа
func AuthMiddleware(logger *slog.Logger, tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get(TokenHeader)
			if tokenString == "" {
				logger.Warn("missing access token",
					"method", r.Method,
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte("No Token Found!"))
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				// ErrMalformed/ErrSignatureInvalid/ErrExpired различаются
				// только в логах; клиенту всегда одинаковый 401
				logger.Warn("invalid access token",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
				)
				writeAuthFailed(w)
				return
			}

			ctx := handlers.WithClaims(r.Context(), claims)

			logger.Debug("user authenticated",
				"email", claims.User.Email,
				"role", claims.User.Role,
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthFailed пишет 401 в форме, ожидаемой старыми клиентами
func writeAuthFailed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	body, _ := json.Marshal(api.AuthFailedResponse{
		Auth:    false,
		Message: "Failed to authenticate",
	})
	_, _ = w.Write(body)
}
