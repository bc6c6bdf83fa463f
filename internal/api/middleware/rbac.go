package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/acquisitions/acquisitions-api/internal/api/metrics"
	"github.com/acquisitions/acquisitions-api/internal/auth"
)

// RequireRole gates a route to the given roles. It expects Auth to have run
// first; a missing identity is answered with 401 as a defensive check.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	joined := strings.Join(roles, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(IdentityKey).(*auth.Claims)
			if !ok || claims == nil {
				return c.JSON(http.StatusUnauthorized, authError{
					Error:   "Unauthorized",
					Message: "Authentication required",
				})
			}

			if _, ok := allowed[claims.Role]; !ok {
				metrics.ForbiddenTotal.WithLabelValues("role_gate").Inc()
				return c.JSON(http.StatusForbidden, authError{
					Error:   "Forbidden",
					Message: "Requires one of the following roles: " + joined,
				})
			}

			return next(c)
		}
	}
}
