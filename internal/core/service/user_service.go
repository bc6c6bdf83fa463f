package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

// UserService implements the user CRUD operations and their business rules:
// existence before mutation, email uniqueness across accounts, and a
// refreshed UpdatedAt on every write.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// Update applies a partial patch. The existence check, the uniqueness check
// and the write are separate round trips; a race between them is accepted and
// resolved by the store's unique index, which surfaces as ErrEmailTaken.
func (s *UserService) Update(ctx context.Context, id uint, patch ports.UpdateUserInput) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	if patch.Email != nil && *patch.Email != existing.Email {
		other, err := s.repo.FindByEmail(ctx, *patch.Email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("update user %d: %w", id, err)
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrEmailTaken
		}
		existing.Email = *patch.Email
	}
	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Role != nil {
		existing.Role = *patch.Role
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	s.logger.Info().Uint("user_id", id).Msg("user updated")
	return existing, nil
}

// Delete is a hard delete. A zero-row delete after a successful existence
// check means the row disappeared concurrently; it is reported as not found.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if !removed {
		s.logger.Warn().Uint("user_id", id).Msg("user vanished between existence check and delete")
		return domain.ErrUserNotFound
	}

	s.logger.Info().Uint("user_id", id).Msg("user deleted")
	return nil
}
