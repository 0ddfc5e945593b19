package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/bugtrack/internal/models"
)

// DefaultTTL фиксированный срок жизни токена
const DefaultTTL = 24 * time.Hour

// Ошибки верификации. Наружу все схлопывается в 401; различие
// нужно только для диагностики в логах.
var (
	// ErrInvalid is the umbrella error all verification failures match
	ErrInvalid = errors.New("invalid token")

	// ErrMalformed indicates the token is not a parseable JWT
	ErrMalformed = fmt.Errorf("%w: malformed", ErrInvalid)

	// ErrSignatureInvalid indicates the signature does not match the secret
	ErrSignatureInvalid = fmt.Errorf("%w: signature mismatch", ErrInvalid)

	// ErrExpired indicates the token's expiry has elapsed
	ErrExpired = fmt.Errorf("%w: expired", ErrInvalid)
)

// Claims содержит снапшот пользователя на момент выдачи токена.
// Снапшот включает role и хеш пароля: смена роли после выдачи
// не отражается в токене до следующего логина (осознанный tradeoff
// stateless токенов).
type Claims struct {
	User models.User `json:"user"`
	jwt.RegisteredClaims
}

// Config содержит конфигурацию для подписи токенов.
// Secret обязателен: процесс не должен стартовать без него.
type Config struct {
	Secret []byte
	TTL    time.Duration
}

// Service issues and verifies signed identity tokens (HS256)
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a token service from config.
// Fails fast on an empty secret so a misconfigured process never
// starts issuing unsigned-equivalent tokens.
func NewService(cfg Config) (*Service, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token secret is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &Service{
		secret: cfg.Secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token carrying a snapshot of the user record
func (s *Service) Issue(user *models.User) (string, error) {
	now := s.now()

	claims := Claims{
		User: *user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "bugtrack",
			Subject:   user.Email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Verification is stateless: no revocation list, a stolen un-expired
// token stays valid until expiry.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
		}
	}

	if !token.Valid {
		return nil, ErrInvalid
	}

	return claims, nil
}
