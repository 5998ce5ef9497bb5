package model

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID              uint64         `gorm:"primaryKey;autoIncrement"`
	SellerID        uint64         `gorm:"column:seller_id;index;not null"`
	CustomerID      uint64         `gorm:"column:customer_id;index"`
	OrderNumber     string         `gorm:"column:order_number;size:64;uniqueIndex"`
	TotalCents      int64          `gorm:"column:total_cents;not null"`
	Status          OrderStatus    `gorm:"column:status;size:32;not null;default:pending"`
	PaymentStatus   string         `gorm:"column:payment_status;size:32;default:pending"`
	PaymentMethod   string         `gorm:"column:payment_method;size:64"`
	PayoutStatus    PayoutStatus   `gorm:"column:payout_status;size:32;default:pending"`
	ShippingAddress string         `gorm:"column:shipping_address;type:text"`
	Notes           string         `gorm:"column:notes;type:text"`
	DeliveredAt     *time.Time     `gorm:"column:delivered_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	Items    []OrderItem `gorm:"foreignKey:OrderID"`
	Customer *Customer   `gorm:"foreignKey:CustomerID"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uint64    `gorm:"column:order_id;index;not null"`
	ProductID  uint64    `gorm:"column:product_id;index;not null"`
	Quantity   int       `gorm:"column:quantity;not null"`
	PriceCents int64     `gorm:"column:price_cents;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
