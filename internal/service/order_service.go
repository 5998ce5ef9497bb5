package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

type OrderService interface {
	ListBySeller(ctx context.Context, sellerID uint64, status model.OrderStatus) ([]model.Order, error)
	GetForSeller(ctx context.Context, sellerID, orderID uint64) (*model.Order, error)
	Ship(ctx context.Context, sellerID, orderID uint64, trackingNumber, courier string) (*model.Order, error)
	Deliver(ctx context.Context, sellerID, orderID uint64) (*model.Order, error)
	Accept(ctx context.Context, sellerID, orderID uint64) (*model.Order, error)
	Reject(ctx context.Context, sellerID, orderID uint64) (*model.Order, error)
	List(ctx context.Context, f repository.OrderListFilter) ([]model.Order, int64, error)
	Get(ctx context.Context, orderID uint64) (*model.Order, error)
	UpdateStatusByAdmin(ctx context.Context, orderID uint64, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) ListBySeller(ctx context.Context, sellerID uint64, status model.OrderStatus) ([]model.Order, error) {
	return s.repo.ListBySeller(ctx, sellerID, status)
}

func (s *orderService) GetForSeller(ctx context.Context, sellerID, orderID uint64) (*model.Order, error) {
	o, err := s.repo.FindBySeller(ctx, sellerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// Ship moves a pending order to shipped. Tracking number and courier are
// appended to the order notes, not stored as structured data.
func (s *orderService) Ship(ctx context.Context, sellerID, orderID uint64, trackingNumber, courier string) (*model.Order, error) {
	o, err := s.GetForSeller(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}
	next, err := o.Status.Ship()
	if err != nil {
		return nil, err
	}
	o.Status = next
	if trackingNumber != "" {
		o.Notes = o.Notes + fmt.Sprintf("\nTracking: %s", trackingNumber)
	}
	if courier != "" {
		o.Notes = o.Notes + fmt.Sprintf("\nCourier: %s", courier)
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) Deliver(ctx context.Context, sellerID, orderID uint64) (*model.Order, error) {
	o, err := s.GetForSeller(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}
	next, err := o.Status.Deliver()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	o.Status = next
	o.DeliveredAt = &now
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) Accept(ctx context.Context, sellerID, orderID uint64) (*model.Order, error) {
	o, err := s.GetForSeller(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}
	next, err := o.Status.Accept()
	if err != nil {
		return nil, err
	}
	o.Status = next
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) Reject(ctx context.Context, sellerID, orderID uint64) (*model.Order, error) {
	o, err := s.GetForSeller(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}
	next, err := o.Status.Reject()
	if err != nil {
		return nil, err
	}
	o.Status = next
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) List(ctx context.Context, f repository.OrderListFilter) ([]model.Order, int64, error) {
	return s.repo.List(ctx, f)
}

func (s *orderService) Get(ctx context.Context, orderID uint64) (*model.Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// UpdateStatusByAdmin overwrites the order status with no transition guard.
// Admin moves are trusted; only the fulfillment set is accepted, the paid and
// payment_failed track belongs to the gateway webhook.
func (s *orderService) UpdateStatusByAdmin(ctx context.Context, orderID uint64, status model.OrderStatus) (*model.Order, error) {
	if !status.IsFulfillment() {
		return nil, NewValidationError("status", "status must be one of pending, confirmed, processing, shipped, delivered, cancelled")
	}
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Status = status
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
