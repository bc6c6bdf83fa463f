package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/acquisitions/acquisitions-api/internal/api/metrics"
	"github.com/acquisitions/acquisitions-api/internal/auth"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
	"github.com/acquisitions/acquisitions-api/internal/pkg/cookies"
)

// IdentityKey is the echo context key under which the verified claims are
// attached for downstream handlers.
const IdentityKey = "identity"

type authError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Auth reads the token cookie, verifies it and attaches the resolved identity
// to the request context. Any failure halts the chain with 401; only failures
// are logged. A nil denylist disables the revocation check.
func Auth(tokens *auth.Service, denylist ports.TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := cookies.Get(c, cookies.TokenCookie)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return c.JSON(http.StatusUnauthorized, authError{
					Error:   "Unauthorized",
					Message: "Authentication token missing",
				})
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				log.Warn().Err(err).Str("path", c.Path()).Msg("token verification failed")
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return c.JSON(http.StatusUnauthorized, authError{
					Error:   "Unauthorized",
					Message: "Invalid or expired token",
				})
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					log.Error().Err(err).Msg("denylist lookup failed")
				}
				if revoked {
					log.Warn().Uint("user_id", claims.UserID).Msg("revoked token presented")
					metrics.AuthFailuresTotal.WithLabelValues("revoked_token").Inc()
					return c.JSON(http.StatusUnauthorized, authError{
						Error:   "Unauthorized",
						Message: "Invalid or expired token",
					})
				}
			}

			c.Set(IdentityKey, claims)
			return next(c)
		}
	}
}
