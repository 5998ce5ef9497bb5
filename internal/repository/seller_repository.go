package repository

import (
	"context"

	"github.com/yasirSub/backend-mexo/internal/model"
	"gorm.io/gorm"
)

type SellerRepository interface {
	FindByID(ctx context.Context, id uint64) (*model.Seller, error)
	Update(ctx context.Context, s *model.Seller) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, status model.SellerStatus, limit, offset int) ([]model.Seller, int64, error)
}

type sellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) FindByID(ctx context.Context, id uint64) (*model.Seller, error) {
	var s model.Seller
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sellerRepository) Update(ctx context.Context, s *model.Seller) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sellerRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&model.Seller{}, id).Error
}

func (r *sellerRepository) List(ctx context.Context, status model.SellerStatus, limit, offset int) ([]model.Seller, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Seller{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 15
	}
	if offset < 0 {
		offset = 0
	}

	var list []model.Seller
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
