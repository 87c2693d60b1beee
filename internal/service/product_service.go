package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecohub/internal/cache"
	apperrors "ecohub/internal/errors"
	"ecohub/internal/model"
	"ecohub/internal/repository"
)

const (
	productListCacheKey = "products:approved"
	productListCacheTTL = time.Minute
)

// ProductInput carries the writable product fields. Absent optional fields
// keep their zero values; the service applies the catalog defaults.
type ProductInput struct {
	Name           string
	Description    string
	Price          decimal.Decimal
	CategoryID     *uint
	Stock          int
	ImageURL       string
	EcoRating      *int
	CO2ReductionKg float64
}

// ProductService handles catalog reads and seller/admin writes.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, id uint, input ProductInput) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
	cache       *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       cache,
	}
}

// List returns approved products only. The public listing is cached briefly;
// every write path invalidates the key.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, productListCacheKey); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.ListByStatus(ctx, model.ProductStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, productListCacheKey, payload, productListCacheTTL)
	}

	return products, nil
}

// Get returns a product in any moderation state.
func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// Create stores a new pending product with catalog defaults applied.
func (s *productService) Create(ctx context.Context, input ProductInput) (*model.Product, error) {
	product := &model.Product{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		CategoryID:     input.CategoryID,
		Stock:          input.Stock,
		ImageURL:       input.ImageURL,
		EcoRating:      5,
		CO2ReductionKg: input.CO2ReductionKg,
		Status:         model.ProductStatusPending,
	}
	if input.EcoRating != nil {
		product.EcoRating = *input.EcoRating
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	_ = s.cache.Delete(ctx, productListCacheKey)
	return product, nil
}

// Update overwrites the writable fields of an existing product.
func (s *productService) Update(ctx context.Context, id uint, input ProductInput) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.CategoryID = input.CategoryID
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	product.CO2ReductionKg = input.CO2ReductionKg
	product.EcoRating = 5
	if input.EcoRating != nil {
		product.EcoRating = *input.EcoRating
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, productListCacheKey)
	return nil
}

// Delete removes a product. There is no seller ownership binding; any
// seller or admin may delete any product.
func (s *productService) Delete(ctx context.Context, id uint) error {
	affected, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrProductNotFound
	}

	_ = s.cache.Delete(ctx, productListCacheKey)
	return nil
}
