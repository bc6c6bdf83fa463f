// Package cookies centralises how the auth token travels as an HTTP cookie.
// Attributes are fixed: HttpOnly, SameSite=Strict, Path=/, one-day lifetime,
// with Secure toggled by the deployment environment.
package cookies

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// TokenCookie is the name under which the auth token is stored.
const TokenCookie = "token"

const maxAge = 24 * time.Hour

// Set writes a cookie on the response with the fixed security attributes.
func Set(c echo.Context, name, value string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear expires the named cookie immediately.
func Clear(c echo.Context, name string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Get reads a named cookie from the request. Absence is a normal outcome,
// reported through ok, not an error.
func Get(c echo.Context, name string) (string, bool) {
	cookie, err := c.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
