package ports

import (
	"context"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
)

// UserRepository defines the persistence operations for users.
// Implementations translate store-level failures into domain sentinels
// (ErrUserNotFound, ErrEmailTaken) where a caller can act on them.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	// Delete reports whether a row was actually removed. A false return with
	// a nil error means the row vanished between check and delete.
	Delete(ctx context.Context, id uint) (bool, error)
}
