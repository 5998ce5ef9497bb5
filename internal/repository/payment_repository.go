package repository

import (
	"context"
	"time"

	"github.com/yasirSub/backend-mexo/internal/model"
	"gorm.io/gorm"
)

type PaymentListFilter struct {
	Status       model.PaymentStatus
	PaidToSeller bool // selects seller_paid = true regardless of status
	SellerID     uint64
	FromDate     *time.Time
	ToDate       *time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	FindByID(ctx context.Context, id uint64) (*model.Payment, error)
	FindLatestByOrder(ctx context.Context, orderID uint64) (*model.Payment, error)
	Update(ctx context.Context, p *model.Payment) error
	List(ctx context.Context, f PaymentListFilter) ([]model.Payment, error)
	// MarkPaidToSeller persists the payment row and the linked order's payout
	// status in a single transaction.
	MarkPaidToSeller(ctx context.Context, p *model.Payment, orderID uint64) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *model.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, id uint64) (*model.Payment, error) {
	var p model.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) FindLatestByOrder(ctx context.Context, orderID uint64) (*model.Payment, error) {
	var p model.Payment
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id DESC").
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *model.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *paymentRepository) List(ctx context.Context, f PaymentListFilter) ([]model.Payment, error) {
	q := r.db.WithContext(ctx).Model(&model.Payment{})
	if f.PaidToSeller {
		q = q.Where("seller_paid = ?", true)
	} else if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.SellerID != 0 {
		q = q.Where("seller_id = ? OR order_id IN (SELECT id FROM orders WHERE seller_id = ?)", f.SellerID, f.SellerID)
	}
	if f.FromDate != nil {
		q = q.Where("created_at >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("created_at <= ?", *f.ToDate)
	}
	var list []model.Payment
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *paymentRepository) MarkPaidToSeller(ctx context.Context, p *model.Payment, orderID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if orderID == 0 {
			return nil
		}
		return tx.Model(&model.Order{}).
			Where("id = ?", orderID).
			Update("payout_status", model.PayoutStatusPaid).Error
	})
}
