package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/acquisitions/acquisitions-api/internal/auth"
	"github.com/acquisitions/acquisitions-api/internal/core/domain"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

const bcryptCost = 10

// AuthService implements sign-up, sign-in and sign-out.
type AuthService struct {
	repo     ports.UserRepository
	tokens   *auth.Service
	denylist ports.TokenDenylist
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *auth.Service, denylist ports.TokenDenylist, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, denylist: denylist, logger: logger}
}

// SignUp creates an account with a hashed password and issues a token.
// An empty role defaults to "user"; a duplicate email yields ErrEmailTaken.
func (s *AuthService) SignUp(ctx context.Context, name, email, password, role string) (*domain.User, string, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("user registered")
	return user, token, nil
}

// SignIn verifies credentials. An unknown email and a wrong password both
// collapse to ErrInvalidCredentials so the response does not reveal which.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("user signed in")
	return user, token, nil
}

// SignOut revokes the token's JTI so it stops authenticating immediately,
// even before its natural expiry.
func (s *AuthService) SignOut(ctx context.Context, jti string) error {
	if jti == "" {
		return nil
	}
	if err := s.denylist.Revoke(ctx, jti); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
