package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acquisitions/acquisitions-api/internal/api/middleware"
	"github.com/acquisitions/acquisitions-api/internal/auth"
)

// ctxIdentity extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call. Absence means the middleware did
// not run on this route; reject with 401 rather than proceeding anonymously.
func ctxIdentity(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(middleware.IdentityKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return claims, nil
}
