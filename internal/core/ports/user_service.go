package ports

import (
	"context"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
)

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *string
}

// HasChanges reports whether at least one field is present.
func (in UpdateUserInput) HasChanges() bool {
	return in.Name != nil || in.Email != nil || in.Role != nil
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	Update(ctx context.Context, id uint, patch UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id uint) error
}
