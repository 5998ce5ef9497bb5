package model

import "time"

type StoreSetting struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement"`
	SellerID         uint64    `gorm:"column:seller_id;uniqueIndex;not null"`
	PickupEnabled    bool      `gorm:"column:pickup_enabled;not null;default:false"`
	MinOrderCents    int64     `gorm:"column:min_order_cents;not null;default:0"`
	ShippingPolicy   string    `gorm:"column:shipping_policy;type:text"`
	SupportEmail     string    `gorm:"column:support_email;size:255"`
	ContactPhone     string    `gorm:"column:contact_phone;size:32"`
	OpeningHours     string    `gorm:"column:opening_hours;type:json"`
	AutoAcceptOrders bool      `gorm:"column:auto_accept_orders;not null;default:false"`
	DeliveryRadiusKm float64   `gorm:"column:delivery_radius_km"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (StoreSetting) TableName() string {
	return "store_settings"
}
