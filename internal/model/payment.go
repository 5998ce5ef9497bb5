package model

import "time"

// Payment records a gateway transaction for an order. SellerID is nullable
// and backfilled from the order when absent. SellerPaid and the
// paid_to_seller status are only ever set together.
type Payment struct {
	ID            uint64        `gorm:"primaryKey;autoIncrement"`
	OrderID       uint64        `gorm:"column:order_id;index;not null"`
	SellerID      *uint64       `gorm:"column:seller_id;index"`
	AmountCents   int64         `gorm:"column:amount_cents;not null"`
	TransactionID string        `gorm:"column:transaction_id;size:128;index"`
	Status        PaymentStatus `gorm:"column:status;size:32;not null;default:pending"`
	SellerPaid    bool          `gorm:"column:seller_paid;not null;default:false"`
	SellerPaidAt  *time.Time    `gorm:"column:seller_paid_at"`
	Notes         string        `gorm:"column:notes;type:text"`
	CreatedAt     time.Time     `gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
