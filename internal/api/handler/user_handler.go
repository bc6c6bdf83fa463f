package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/acquisitions/acquisitions-api/internal/api/metrics"
	"github.com/acquisitions/acquisitions-api/internal/core/domain"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

type UserHandler struct {
	users    ports.UserService
	validate *validator.Validate
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users, validate: validator.New()}
}

type usersResponse struct {
	Message string        `json:"message"`
	Users   []domain.User `json:"users"`
	Count   int           `json:"count"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type forbiddenResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// List returns all users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usersResponse{
		Message: "Successfully retrieved all users",
		Users:   users,
		Count:   len(users),
	})
}

// GetByID returns a single user.
//
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  validationFailure
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id, details := validateUserID(c.Param("id"))
	if details != nil {
		return c.JSON(http.StatusBadRequest, newValidationFailure(details...))
	}

	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "Successfully retrieved user",
		User:    user,
	})
}

// Update applies a partial update. Policy, checked in this order after
// validation: a non-admin may only touch their own record, and only an admin
// may change the role field.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  validationFailure
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  forbiddenResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, details := validateUserID(c.Param("id"))
	if details != nil {
		return c.JSON(http.StatusBadRequest, newValidationFailure(details...))
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, newValidationFailure(fieldDetail{
			Field: "body", Message: "invalid payload",
		}))
	}
	if details := req.validate(h.validate); details != nil {
		return c.JSON(http.StatusBadRequest, newValidationFailure(details...))
	}

	requester, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if requester.Role != domain.RoleAdmin && requester.UserID != id {
		metrics.ForbiddenTotal.WithLabelValues("ownership").Inc()
		return c.JSON(http.StatusForbidden, forbiddenResponse{
			Error:   "Forbidden",
			Message: "You can only update your own profile",
		})
	}
	if req.Role != nil && requester.Role != domain.RoleAdmin {
		metrics.ForbiddenTotal.WithLabelValues("role_change").Inc()
		return c.JSON(http.StatusForbidden, forbiddenResponse{
			Error:   "Forbidden",
			Message: "Only admin can change role",
		})
	}

	user, err := h.users.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	metrics.UsersMutatedTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, userResponse{
		Message: "User updated successfully",
		User:    user,
	})
}

// Delete removes a user. Same ownership policy as Update: self or admin.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  validationFailure
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  forbiddenResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, details := validateUserID(c.Param("id"))
	if details != nil {
		return c.JSON(http.StatusBadRequest, newValidationFailure(details...))
	}

	requester, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if requester.Role != domain.RoleAdmin && requester.UserID != id {
		metrics.ForbiddenTotal.WithLabelValues("ownership").Inc()
		return c.JSON(http.StatusForbidden, forbiddenResponse{
			Error:   "Forbidden",
			Message: "You can only update your own profile",
		})
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.UsersMutatedTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
