package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentService_Initiate(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &paymentService{now: func() time.Time { return fixed }}

	intent := svc.Initiate(decimal.NewFromFloat(49.90), 12)

	assert.Equal(t, "pi_mock_1717243200000", intent.ID)
	assert.Equal(t, "pending", intent.Status)
	assert.Equal(t, uint(12), intent.OrderID)
	assert.True(t, decimal.NewFromFloat(49.90).Equal(intent.Amount))
}

func TestPaymentService_Confirm_ScopedToCaller(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockOrders.On("MarkPaid", mock.Anything, uint(12), uint(3), "pi_mock_1717243200000").
		Return(int64(1), nil)

	svc := NewPaymentService(mockOrders)
	err := svc.Confirm(context.Background(), 3, "pi_mock_1717243200000", 12)

	assert.NoError(t, err)
	mockOrders.AssertExpectations(t)
}

func TestPaymentService_Confirm_UnknownOrderIsNoOp(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockOrders.On("MarkPaid", mock.Anything, uint(99), uint(3), "pi_mock_0").
		Return(int64(0), nil)

	svc := NewPaymentService(mockOrders)
	err := svc.Confirm(context.Background(), 3, "pi_mock_0", 99)

	// The mock flow reports success even when no order matched.
	assert.NoError(t, err)
}
