package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "ecohub/internal/errors"
	"ecohub/internal/model"
)

func TestProductService_List_ApprovedOnly(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockProducts.On("ListByStatus", mock.Anything, model.ProductStatusApproved).Return([]model.Product{
		{ID: 1, Name: "Bamboo Toothbrush", Status: model.ProductStatusApproved},
	}, nil)

	svc := NewProductService(mockProducts, nil)
	products, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, model.ProductStatusApproved, products[0].Status)
	mockProducts.AssertExpectations(t)
}

func TestProductService_Create_Defaults(t *testing.T) {
	mockProducts := new(MockProductRepository)
	var captured *model.Product
	mockProducts.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.Product)
		}).
		Return(nil)

	svc := NewProductService(mockProducts, nil)
	_, err := svc.Create(context.Background(), ProductInput{
		Name:  "Solar Charger",
		Price: decimal.NewFromInt(29),
	})

	assert.NoError(t, err)
	assert.Equal(t, model.ProductStatusPending, captured.Status)
	assert.Equal(t, 5, captured.EcoRating)
	assert.Equal(t, 0, captured.Stock)
	assert.Equal(t, 0.0, captured.CO2ReductionKg)
	assert.Nil(t, captured.CategoryID)
}

func TestProductService_Create_ExplicitEcoRating(t *testing.T) {
	mockProducts := new(MockProductRepository)
	var captured *model.Product
	mockProducts.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.Product)
		}).
		Return(nil)

	rating := 3
	svc := NewProductService(mockProducts, nil)
	_, err := svc.Create(context.Background(), ProductInput{
		Name:      "Cloth Bag",
		Price:     decimal.NewFromInt(5),
		EcoRating: &rating,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, captured.EcoRating)
}

func TestProductService_Get(t *testing.T) {
	t.Run("pending product is visible by id", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockProducts.On("FindByID", mock.Anything, uint(2)).Return(&model.Product{
			ID: 2, Name: "Compost Bin", Status: model.ProductStatusPending,
		}, nil)

		svc := NewProductService(mockProducts, nil)
		product, err := svc.Get(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, model.ProductStatusPending, product.Status)
	})

	t.Run("absent product", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockProducts.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProductService(mockProducts, nil)
		_, err := svc.Get(context.Background(), 2)
		assert.Equal(t, apperrors.ErrProductNotFound, err)
	})
}

func TestProductService_Delete_NotFound(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockProducts.On("Delete", mock.Anything, uint(7)).Return(int64(0), nil)

	svc := NewProductService(mockProducts, nil)
	err := svc.Delete(context.Background(), 7)
	assert.Equal(t, apperrors.ErrProductNotFound, err)
}
