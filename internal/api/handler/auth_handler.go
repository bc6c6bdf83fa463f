package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acquisitions/acquisitions-api/internal/api/metrics"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
	"github.com/acquisitions/acquisitions-api/internal/pkg/cookies"
)

// AuthHandler exposes sign-up, sign-in and sign-out. The issued token never
// appears in a response body; it travels exclusively as an HTTP-only cookie.
type AuthHandler struct {
	authService  ports.AuthService
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

type signUpRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp creates an account and signs the caller in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.SignUp(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	cookies.Set(c, cookies.TokenCookie, token, h.secureCookie)
	metrics.UsersMutatedTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusCreated, userResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

// SignIn verifies credentials and sets the token cookie.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues("failure").Inc()
		return err
	}

	cookies.Set(c, cookies.TokenCookie, token, h.secureCookie)
	metrics.SignInsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, userResponse{
		Message: "User signed in successfully",
		User:    user,
	})
}

// SignOut revokes the current token and clears the cookie. Requires the Auth
// middleware so an anonymous caller gets 401 instead of a silent no-op.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/sign-out [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	claims, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.SignOut(c.Request().Context(), claims.ID); err != nil {
		return err
	}

	cookies.Clear(c, cookies.TokenCookie, h.secureCookie)
	return c.JSON(http.StatusOK, messageResponse{Message: "User signed out successfully"})
}
