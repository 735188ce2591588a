package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alumnihub/internal/errors"
	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

// UserService exposes the admin-facing user operations.
type UserService interface {
	ListUsers(ctx context.Context, offset, limit int) ([]model.User, error)
	ToggleActive(ctx context.Context, caller *model.User, targetID uint) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context, offset, limit int) ([]model.User, error) {
	return s.repo.List(ctx, offset, limit)
}

// ToggleActive flips the target's active flag. Admins cannot toggle their
// own account.
func (s *userService) ToggleActive(ctx context.Context, caller *model.User, targetID uint) (*model.User, error) {
	if targetID == caller.ID {
		return nil, errors.ErrSelfToggle
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.IsActive = !user.IsActive
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("toggle active: %w", err)
	}
	return user, nil
}
