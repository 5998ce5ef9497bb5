package model

import (
	"time"

	"gorm.io/gorm"
)

type SellerStatus string

const (
	SellerStatusPending  SellerStatus = "pending"
	SellerStatusActive   SellerStatus = "active"
	SellerStatusInactive SellerStatus = "inactive"
)

type Seller struct {
	ID              uint64         `gorm:"primaryKey;autoIncrement"`
	Name            string         `gorm:"size:120;not null"`
	Email           string         `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash    string         `gorm:"column:password_hash;size:255;not null" json:"-"`
	BusinessName    string         `gorm:"column:business_name;size:255"`
	ContactPerson   string         `gorm:"column:contact_person;size:120"`
	Phone           string         `gorm:"size:32"`
	Address         string         `gorm:"type:text"`
	BusinessAddress string         `gorm:"column:business_address;type:text"`
	City            string         `gorm:"size:120"`
	State           string         `gorm:"size:120"`
	Pincode         string         `gorm:"size:16"`
	GSTIN           string         `gorm:"column:gstin;size:32"`
	PAN             string         `gorm:"column:pan;size:16"`
	Status          SellerStatus   `gorm:"size:32;not null;default:pending"`
	IsActive        bool           `gorm:"column:is_active;not null;default:true"`
	ProfilePicture  string         `gorm:"column:profile_picture;size:512"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Seller) TableName() string {
	return "sellers"
}
