package model

import "time"

type Notification struct {
	ID        uint64     `gorm:"primaryKey;autoIncrement"`
	SellerID  *uint64    `gorm:"column:seller_id;index"`
	AdminID   *uint64    `gorm:"column:admin_id;index"`
	Type      string     `gorm:"size:64;not null"`
	Title     string     `gorm:"size:255;not null"`
	Message   string     `gorm:"type:text"`
	Data      string     `gorm:"type:json"`
	IsRead    bool       `gorm:"column:is_read;not null;default:false"`
	ReadAt    *time.Time `gorm:"column:read_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
