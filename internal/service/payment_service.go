package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ecohub/internal/repository"
)

// PaymentIntent is the descriptor returned by the mock initiation step.
// Nothing is persisted; the ID exists only so the client can echo it back.
type PaymentIntent struct {
	ID      string          `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	OrderID uint            `json:"order_id"`
	Status  string          `json:"status"`
}

// PaymentService is an explicit mock of a payment provider. Initiate
// fabricates an intent; Confirm flips the caller's order to paid without
// verifying the intent was ever issued. Do not extend this with real
// reconciliation logic without replacing the whole flow.
type PaymentService interface {
	Initiate(amount decimal.Decimal, orderID uint) *PaymentIntent
	Confirm(ctx context.Context, userID uint, paymentIntentID string, orderID uint) error
}

type paymentService struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

// NewPaymentService creates a new payment service.
func NewPaymentService(orderRepo repository.OrderRepository) PaymentService {
	return &paymentService{
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

// Initiate fabricates a pseudo-unique payment intent from the current time.
func (s *paymentService) Initiate(amount decimal.Decimal, orderID uint) *PaymentIntent {
	return &PaymentIntent{
		ID:      fmt.Sprintf("pi_mock_%d", s.now().UnixMilli()),
		Amount:  amount,
		OrderID: orderID,
		Status:  "pending",
	}
}

// Confirm records the intent on the caller's order and marks it paid. The
// write is scoped to (order id, caller id); a non-matching order is a silent
// no-op, mirroring the mock contract.
func (s *paymentService) Confirm(ctx context.Context, userID uint, paymentIntentID string, orderID uint) error {
	if _, err := s.orderRepo.MarkPaid(ctx, orderID, userID, paymentIntentID); err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	return nil
}
