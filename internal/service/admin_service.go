package service

import (
	"context"
	"fmt"

	"ecohub/internal/cache"
	apperrors "ecohub/internal/errors"
	"ecohub/internal/model"
	"ecohub/internal/repository"
)

// AdminService handles seller and product moderation plus user management.
// Role gating happens in the router; these operations assume an admin caller.
type AdminService interface {
	ListPendingSellers(ctx context.Context) ([]model.PublicUser, error)
	ApproveSeller(ctx context.Context, id uint) error
	ListPendingProducts(ctx context.Context) ([]model.Product, error)
	ApproveProduct(ctx context.Context, id uint) error
	RejectProduct(ctx context.Context, id uint) error
	UpdateUserRole(ctx context.Context, id uint, role model.Role) error
	DeleteUser(ctx context.Context, id uint) error
}

type adminService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	cache       *cache.Client
}

// NewAdminService creates a new admin service.
func NewAdminService(userRepo repository.UserRepository, productRepo repository.ProductRepository, cache *cache.Client) AdminService {
	return &adminService{
		userRepo:    userRepo,
		productRepo: productRepo,
		cache:       cache,
	}
}

// ListPendingSellers lists users still in the plain user role; those are the
// seller candidates awaiting approval.
func (s *adminService) ListPendingSellers(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.userRepo.ListByRole(ctx, model.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("list pending sellers: %w", err)
	}

	public := make([]model.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

// ApproveSeller promotes a user to seller. The transition is one-way: a
// second approval finds no user in the expected role and fails.
func (s *adminService) ApproveSeller(ctx context.Context, id uint) error {
	affected, err := s.userRepo.UpdateRoleFrom(ctx, id, model.RoleUser, model.RoleSeller)
	if err != nil {
		return fmt.Errorf("approve seller: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSellerNotFound
	}
	return nil
}

// ListPendingProducts lists products awaiting moderation.
func (s *adminService) ListPendingProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListByStatus(ctx, model.ProductStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending products: %w", err)
	}
	return products, nil
}

// ApproveProduct moves a pending product to approved.
func (s *adminService) ApproveProduct(ctx context.Context, id uint) error {
	return s.moderateProduct(ctx, id, model.ProductStatusApproved)
}

// RejectProduct moves a pending product to rejected.
func (s *adminService) RejectProduct(ctx context.Context, id uint) error {
	return s.moderateProduct(ctx, id, model.ProductStatusRejected)
}

func (s *adminService) moderateProduct(ctx context.Context, id uint, to model.ProductStatus) error {
	affected, err := s.productRepo.UpdateStatusFrom(ctx, id, model.ProductStatusPending, to)
	if err != nil {
		return fmt.Errorf("moderate product: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrProductProcessed
	}

	// The public product list changes when a product becomes approved.
	_ = s.cache.Delete(ctx, productListCacheKey)
	return nil
}

// UpdateUserRole sets a user's role to any of the assignable roles.
func (s *adminService) UpdateUserRole(ctx context.Context, id uint, role model.Role) error {
	if !model.ValidRole(role) {
		return apperrors.ErrInvalidRole
	}

	affected, err := s.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes the user row only. Orders, products and enrollments
// keep their user_id and are left in place.
func (s *adminService) DeleteUser(ctx context.Context, id uint) error {
	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
