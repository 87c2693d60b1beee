package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "ecohub/internal/errors"
	"ecohub/internal/model"
	"ecohub/internal/repository"
)

// UserService exposes public user listings and profiles.
type UserService interface {
	ListUsers(ctx context.Context, search string) ([]model.PublicUser, error)
	GetUser(ctx context.Context, id uint) (*model.Profile, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers lists users as public projections, optionally filtered by a
// username substring.
func (s *userService) ListUsers(ctx context.Context, search string) ([]model.PublicUser, error) {
	users, err := s.userRepo.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	public := make([]model.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

// GetUser returns the extended public profile of a user.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	profile := user.PublicProfile()
	return &profile, nil
}
