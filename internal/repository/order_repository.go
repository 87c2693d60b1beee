package repository

import (
	"context"

	"gorm.io/gorm"

	"ecohub/internal/model"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	MarkPaid(ctx context.Context, id, userID uint, paymentIntentID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkPaid flips the order to paid and records the payment intent. The
// user_id predicate scopes the write to the caller's own order.
func (r *orderRepository) MarkPaid(ctx context.Context, id, userID uint, paymentIntentID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"status":            model.OrderStatusPaid,
			"payment_intent_id": paymentIntentID,
		})
	return res.RowsAffected, res.Error
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}
