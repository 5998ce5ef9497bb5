package repository

import (
	"context"
	"time"

	"github.com/yasirSub/backend-mexo/internal/model"
	"gorm.io/gorm"
)

// NotificationScope selects the owning side: exactly one of SellerID or
// AdminID is set.
type NotificationScope struct {
	SellerID *uint64
	AdminID  *uint64
}

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	FindByID(ctx context.Context, id uint64) (*model.Notification, error)
	List(ctx context.Context, scope NotificationScope, limit, offset int) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context, scope NotificationScope) error
	UnreadCount(ctx context.Context, scope NotificationScope) (int64, error)
	Delete(ctx context.Context, id uint64) error
	DeleteAllRead(ctx context.Context, scope NotificationScope) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func scoped(q *gorm.DB, scope NotificationScope) *gorm.DB {
	if scope.SellerID != nil {
		return q.Where("seller_id = ?", *scope.SellerID)
	}
	if scope.AdminID != nil {
		return q.Where("admin_id = ?", *scope.AdminID)
	}
	return q
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) FindByID(ctx context.Context, id uint64) (*model.Notification, error) {
	var n model.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) List(ctx context.Context, scope NotificationScope, limit, offset int) ([]model.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var list []model.Notification
	if err := scoped(r.db.WithContext(ctx), scope).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uint64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, scope NotificationScope) error {
	now := time.Now()
	return scoped(r.db.WithContext(ctx).Model(&model.Notification{}), scope).
		Where("is_read = ?", false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}

func (r *notificationRepository) UnreadCount(ctx context.Context, scope NotificationScope) (int64, error) {
	var count int64
	err := scoped(r.db.WithContext(ctx).Model(&model.Notification{}), scope).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&model.Notification{}, id).Error
}

func (r *notificationRepository) DeleteAllRead(ctx context.Context, scope NotificationScope) error {
	return scoped(r.db.WithContext(ctx), scope).
		Where("is_read = ?", true).
		Delete(&model.Notification{}).Error
}
