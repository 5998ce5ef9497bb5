package model

import "time"

// DeliveryTracking is an append-only log of physical delivery states for an
// order. Rows cascade-delete with their order. The newest row by id is the
// current delivery status.
type DeliveryTracking struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement"`
	OrderID     uint64         `gorm:"column:order_id;index;not null;constraint:OnDelete:CASCADE"`
	Status      DeliveryStatus `gorm:"column:status;size:32;not null"`
	Location    string         `gorm:"column:location;size:255;not null"`
	Description string         `gorm:"column:description;type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (DeliveryTracking) TableName() string {
	return "delivery_tracking"
}
