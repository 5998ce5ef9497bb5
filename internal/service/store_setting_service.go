package service

import (
	"context"
	"errors"

	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

type StoreSettingInput struct {
	PickupEnabled    bool
	MinOrderCents    int64
	ShippingPolicy   string
	SupportEmail     string
	ContactPhone     string
	OpeningHours     string
	AutoAcceptOrders bool
	DeliveryRadiusKm float64
}

type StoreSettingService interface {
	GetBySeller(ctx context.Context, sellerID uint64) (*model.StoreSetting, error)
	Update(ctx context.Context, sellerID uint64, in StoreSettingInput) (*model.StoreSetting, error)
}

type storeSettingService struct {
	repo repository.StoreSettingRepository
}

func NewStoreSettingService(repo repository.StoreSettingRepository) StoreSettingService {
	return &storeSettingService{repo: repo}
}

func (s *storeSettingService) GetBySeller(ctx context.Context, sellerID uint64) (*model.StoreSetting, error) {
	st, err := s.repo.FindBySeller(ctx, sellerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *storeSettingService) Update(ctx context.Context, sellerID uint64, in StoreSettingInput) (*model.StoreSetting, error) {
	if in.MinOrderCents < 0 {
		return nil, NewValidationError("min_order_amount", "minimum order amount must not be negative")
	}
	st := &model.StoreSetting{
		SellerID:         sellerID,
		PickupEnabled:    in.PickupEnabled,
		MinOrderCents:    in.MinOrderCents,
		ShippingPolicy:   in.ShippingPolicy,
		SupportEmail:     in.SupportEmail,
		ContactPhone:     in.ContactPhone,
		OpeningHours:     in.OpeningHours,
		AutoAcceptOrders: in.AutoAcceptOrders,
		DeliveryRadiusKm: in.DeliveryRadiusKm,
	}
	if err := s.repo.Upsert(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
