package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusPending, ProductStatusActive, ProductStatusInactive:
		return true
	}
	return false
}

type Product struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	SellerID      uint64         `gorm:"column:seller_id;index;not null"`
	CategoryID    uint64         `gorm:"column:category_id;index"`
	Title         string         `gorm:"size:255;not null"`
	Description   string         `gorm:"type:text"`
	PriceCents    int64          `gorm:"column:price_cents;not null"`
	StockQuantity int            `gorm:"column:stock_quantity;not null;default:0"`
	SKU           string         `gorm:"column:sku;size:64;index"`
	Status        ProductStatus  `gorm:"size:32;not null;default:pending"`
	Images        string         `gorm:"type:json"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
