package repository

import (
	"context"
	"time"

	"github.com/yasirSub/backend-mexo/internal/model"
	"gorm.io/gorm"
)

// OrderListFilter narrows admin order listings. Zero values mean no filter.
type OrderListFilter struct {
	Status   model.OrderStatus
	SellerID uint64
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
	Offset   int
}

// OrderSearchFilter drives the delivery order search. Query matches order id,
// customer name or customer phone.
type OrderSearchFilter struct {
	Query          string
	DeliveryStatus model.DeliveryStatus
	FromDate       *time.Time
	ToDate         *time.Time
	Limit          int
	Offset         int
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uint64) (*model.Order, error)
	FindBySeller(ctx context.Context, sellerID, id uint64) (*model.Order, error)
	Update(ctx context.Context, o *model.Order) error
	ListBySeller(ctx context.Context, sellerID uint64, status model.OrderStatus) ([]model.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
	Search(ctx context.Context, f OrderSearchFilter) ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindByID(ctx context.Context, id uint64) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Customer").
		First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) FindBySeller(ctx context.Context, sellerID, id uint64) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Customer").
		Where("seller_id = ?", sellerID).
		First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *orderRepository) ListBySeller(ctx context.Context, sellerID uint64, status model.OrderStatus) ([]model.Order, error) {
	q := r.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Customer").
		Where("seller_id = ?", sellerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []model.Order
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *orderRepository) List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.SellerID != 0 {
		q = q.Where("seller_id = ?", f.SellerID)
	}
	if f.FromDate != nil {
		q = q.Where("created_at >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("created_at <= ?", *f.ToDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 15
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var list []model.Order
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *orderRepository) Search(ctx context.Context, f OrderSearchFilter) ([]model.Order, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{}).
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Where("orders.id LIKE ? OR customers.name LIKE ? OR customers.phone LIKE ?",
			"%"+f.Query+"%", "%"+f.Query+"%", "%"+f.Query+"%")

	if f.DeliveryStatus != "" {
		q = q.Where("EXISTS (SELECT 1 FROM delivery_tracking dt WHERE dt.order_id = orders.id AND dt.status = ?)", f.DeliveryStatus)
	}
	if f.FromDate != nil {
		q = q.Where("orders.created_at >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("orders.created_at <= ?", *f.ToDate)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 15
	}

	var list []model.Order
	if err := q.Order("orders.created_at DESC").Limit(limit).Offset(f.Offset).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
