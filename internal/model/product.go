package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus is the moderation state of a product.
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"
)

// Product represents an item listed in the marketplace. New products start
// pending and become visible only after admin approval.
type Product struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"size:255;not null;index"`
	Description    string          `json:"description" gorm:"type:text"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID     *uint           `json:"category_id" gorm:"index"`
	Stock          int             `json:"stock" gorm:"default:0"`
	ImageURL       string          `json:"image_url" gorm:"size:512"`
	EcoRating      int             `json:"eco_rating" gorm:"default:5"`
	CO2ReductionKg float64         `json:"co2_reduction_kg" gorm:"default:0"`
	Status         ProductStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
