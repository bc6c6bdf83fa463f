package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// ErrNoSecret is returned when the service is asked to sign without a
// configured secret. There is deliberately no fallback secret.
var ErrNoSecret = errors.New("jwt secret is not configured")

// ErrInvalidToken collapses every verification failure (malformed, expired,
// wrong signature) into a single error so callers cannot leak which one it was.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the identity fields carried by a token.
type Claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens with a process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a token service. A non-positive ttl falls back to 24h;
// an empty secret is allowed here but every Sign call will fail.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Sign issues a token for the given user. Each token gets a unique JTI so it
// can be revoked individually on sign-out.
func (s *Service) Sign(user *domain.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify decodes and checks the token. It fails closed: any parse, signature,
// or expiry problem yields ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
