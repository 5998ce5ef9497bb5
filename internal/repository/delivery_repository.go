package repository

import (
	"context"

	"github.com/yasirSub/backend-mexo/internal/model"
	"gorm.io/gorm"
)

type DeliveryRepository interface {
	Create(ctx context.Context, t *model.DeliveryTracking) error
	ListByOrder(ctx context.Context, orderID uint64) ([]model.DeliveryTracking, error)
	FindLatestByOrder(ctx context.Context, orderID uint64) (*model.DeliveryTracking, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) Create(ctx context.Context, t *model.DeliveryTracking) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *deliveryRepository) ListByOrder(ctx context.Context, orderID uint64) ([]model.DeliveryTracking, error) {
	var list []model.DeliveryTracking
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindLatestByOrder orders by insertion, not timestamp. An entry inserted out
// of chronological order is still reported as current.
func (r *deliveryRepository) FindLatestByOrder(ctx context.Context, orderID uint64) (*model.DeliveryTracking, error) {
	var t model.DeliveryTracking
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id DESC").
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
