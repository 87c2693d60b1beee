package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecohub/internal/model"
)

func TestStatsService_PublicCountsApprovedProductsOnly(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	mockUsers.On("Count", mock.Anything).Return(int64(10), nil)
	mockProducts.On("CountByStatus", mock.Anything, model.ProductStatusApproved).Return(int64(4), nil)
	mockOrders.On("Count", mock.Anything).Return(int64(7), nil)
	mockUsers.On("SumCarbonSaved", mock.Anything).Return(125.5, nil)

	svc := NewStatsService(mockUsers, mockProducts, mockOrders, nil)
	stats, err := svc.PublicStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.Users)
	assert.Equal(t, int64(4), stats.Products)
	assert.Equal(t, int64(7), stats.Orders)
	assert.Equal(t, 125.5, stats.TotalCO2Saved)
	mockProducts.AssertNotCalled(t, "Count", mock.Anything)
}

func TestStatsService_AdminCountsAllProducts(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	mockUsers.On("Count", mock.Anything).Return(int64(10), nil)
	mockProducts.On("Count", mock.Anything).Return(int64(9), nil)
	mockOrders.On("Count", mock.Anything).Return(int64(7), nil)
	mockUsers.On("SumCarbonSaved", mock.Anything).Return(0.0, nil)

	svc := NewStatsService(mockUsers, mockProducts, mockOrders, nil)
	stats, err := svc.AdminStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(9), stats.Products)
	mockProducts.AssertNotCalled(t, "CountByStatus", mock.Anything, mock.Anything)
}
