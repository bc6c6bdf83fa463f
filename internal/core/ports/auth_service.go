package ports

import (
	"context"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
)

type AuthService interface {
	// SignUp creates an account and returns it alongside a freshly signed token.
	SignUp(ctx context.Context, name, email, password, role string) (*domain.User, string, error)
	// SignIn verifies credentials and returns the account and a signed token.
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
	// SignOut revokes the token identified by jti for its remaining lifetime.
	SignOut(ctx context.Context, jti string) error
}
