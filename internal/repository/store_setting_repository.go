package repository

import (
	"context"

	"github.com/yasirSub/backend-mexo/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoreSettingRepository interface {
	FindBySeller(ctx context.Context, sellerID uint64) (*model.StoreSetting, error)
	Upsert(ctx context.Context, s *model.StoreSetting) error
}

type storeSettingRepository struct {
	db *gorm.DB
}

func NewStoreSettingRepository(db *gorm.DB) StoreSettingRepository {
	return &storeSettingRepository{db: db}
}

func (r *storeSettingRepository) FindBySeller(ctx context.Context, sellerID uint64) (*model.StoreSetting, error) {
	var s model.StoreSetting
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storeSettingRepository) Upsert(ctx context.Context, s *model.StoreSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "seller_id"}},
			UpdateAll: true,
		}).
		Create(s).Error
}
