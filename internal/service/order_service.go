package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"ecohub/internal/model"
	"ecohub/internal/repository"
)

// OrderService handles order creation and per-user listings. Order payment
// state is driven by the payment flow, not here.
type OrderService interface {
	Create(ctx context.Context, userID uint, total decimal.Decimal) (*model.Order, error)
	ListMine(ctx context.Context, userID uint) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// Create stores a new pending order for the caller.
func (s *orderService) Create(ctx context.Context, userID uint, total decimal.Decimal) (*model.Order, error) {
	order := &model.Order{
		UserID: userID,
		Status: model.OrderStatusPending,
		Total:  total,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// ListMine returns the caller's orders, newest first.
func (s *orderService) ListMine(ctx context.Context, userID uint) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
