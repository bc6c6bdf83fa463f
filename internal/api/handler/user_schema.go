package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

// fieldDetail is one entry in a validation failure response.
type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationFailure is the 400 envelope for schema violations.
type validationFailure struct {
	Error   string        `json:"error"`
	Details []fieldDetail `json:"details"`
}

func newValidationFailure(details ...fieldDetail) validationFailure {
	return validationFailure{Error: "Validation failed", Details: details}
}

// validateUserID checks that raw is a digits-only string and parses it.
// It is result-style on purpose: callers format a 400 from the returned
// details instead of recovering from an error.
func validateUserID(raw string) (uint, []fieldDetail) {
	if raw == "" || !isDigits(raw) {
		return 0, []fieldDetail{{Field: "id", Message: "id must be a positive integer string"}}
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, []fieldDetail{{Field: "id", Message: "id must be a positive integer string"}}
	}
	return uint(id), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// updateUserRequest is the partial update payload. Pointer fields distinguish
// "absent" from "present but empty"; unknown JSON fields are ignored. Nil
// pointers are skipped by the validator, so each tag only fires for fields
// actually present in the payload.
type updateUserRequest struct {
	Name  *string `json:"name" validate:"omitnil,min=1"`
	Email *string `json:"email" validate:"omitnil,email"`
	Role  *string `json:"role" validate:"omitnil,oneof=user admin"`
}

// validate runs field checks plus the at-least-one-field refinement,
// returning structured details rather than an error.
func (r *updateUserRequest) validate(v *validator.Validate) []fieldDetail {
	if r.Name == nil && r.Email == nil && r.Role == nil {
		return []fieldDetail{{
			Field:   "body",
			Message: "At least one field (name, email, role) must be provided",
		}}
	}

	if err := v.Struct(r); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			details := make([]fieldDetail, 0, len(ve))
			for _, fe := range ve {
				details = append(details, fieldDetail{
					Field:   jsonField(fe.Field()),
					Message: fieldMessage(fe),
				})
			}
			return details
		}
		return []fieldDetail{{Field: "body", Message: "invalid payload"}}
	}
	return nil
}

// jsonField maps a struct field name to its JSON key.
func jsonField(name string) string {
	switch name {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Role":
		return "role"
	default:
		return name
	}
}

func (r *updateUserRequest) toInput() ports.UpdateUserInput {
	return ports.UpdateUserInput{Name: r.Name, Email: r.Email, Role: r.Role}
}
