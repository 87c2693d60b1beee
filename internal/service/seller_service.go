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

// SellerService resolves public seller profiles by username slug.
type SellerService interface {
	GetBySlug(ctx context.Context, slug string) (*model.PublicUser, error)
}

type sellerService struct {
	userRepo repository.UserRepository
}

// NewSellerService creates a new seller service.
func NewSellerService(userRepo repository.UserRepository) SellerService {
	return &sellerService{userRepo: userRepo}
}

// GetBySlug looks up a profile by username. Any user resolves, not only
// approved sellers; the storefront links profiles before approval lands.
func (s *sellerService) GetBySlug(ctx context.Context, slug string) (*model.PublicUser, error) {
	user, err := s.userRepo.FindByUsername(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find seller: %w", err)
	}

	public := user.Public()
	return &public, nil
}
