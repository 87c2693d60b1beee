package repository

import (
	"context"

	"gorm.io/gorm"

	"ecohub/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	UpdateStatusFrom(ctx context.Context, id uint, from, to model.ProductStatus) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.ProductStatus) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Where("status = ?", status).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// UpdateStatusFrom performs a one-way moderation transition in a single
// statement. Zero affected rows means the product is absent or already left
// the expected state.
func (r *productRepository) UpdateStatusFrom(ctx context.Context, id uint, from, to model.ProductStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	return res.RowsAffected, res.Error
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepository) CountByStatus(ctx context.Context, status model.ProductStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
