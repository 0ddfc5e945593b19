package handlers

import (
	"context"

	"github.com/iudanet/bugtrack/internal/server/token"
)

// contextKey приватный тип ключей контекста, чтобы исключить коллизии
type contextKey string

// ClaimsKey is the context key under which verified token claims are stored
const ClaimsKey contextKey = "claims"

// WithClaims returns a context carrying verified token claims
func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetClaims extracts verified token claims from the context.
// Идентичность читается только отсюда: параллельный заголовок email,
// который шлют клиенты, сервером не используется.
func GetClaims(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*token.Claims)
	return claims, ok
}

// GetEmail returns the authenticated user's email from verified claims
func GetEmail(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	return claims.User.Email, true
}
