package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

type TrackingView struct {
	OrderStatus    model.OrderStatus
	DeliveryStatus *model.DeliveryStatus
	History        []model.DeliveryTracking
}

type DeliveryService interface {
	AddTracking(ctx context.Context, orderID uint64, status model.DeliveryStatus, location, description string) (*model.DeliveryTracking, error)
	GetTracking(ctx context.Context, orderID uint64) (*TrackingView, error)
	SearchOrders(ctx context.Context, f repository.OrderSearchFilter) ([]model.Order, error)
}

type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	orderRepo    repository.OrderRepository
}

func NewDeliveryService(deliveryRepo repository.DeliveryRepository, orderRepo repository.OrderRepository) DeliveryService {
	return &deliveryService{deliveryRepo: deliveryRepo, orderRepo: orderRepo}
}

// AddTracking appends a tracking entry. A delivered entry also flips the
// order itself to delivered; the two writes are independent and the order can
// later diverge from the tracking history.
func (s *deliveryService) AddTracking(ctx context.Context, orderID uint64, status model.DeliveryStatus, location, description string) (*model.DeliveryTracking, error) {
	if !status.Valid() {
		return nil, NewValidationError("status", "status must be one of preparing, picked_up, in_transit, out_for_delivery, delivered")
	}
	if strings.TrimSpace(location) == "" {
		return nil, NewValidationError("location", "location is required")
	}

	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t := &model.DeliveryTracking{
		OrderID:     orderID,
		Status:      status,
		Location:    location,
		Description: description,
	}
	if err := s.deliveryRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	if status == model.DeliveryStatusDelivered {
		now := time.Now()
		o.Status = model.OrderStatusDelivered
		o.DeliveredAt = &now
		if err := s.orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (s *deliveryService) GetTracking(ctx context.Context, orderID uint64) (*TrackingView, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	history, err := s.deliveryRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	view := &TrackingView{OrderStatus: o.Status, History: history}
	latest, err := s.deliveryRepo.FindLatestByOrder(ctx, orderID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		view.DeliveryStatus = &latest.Status
	}
	return view, nil
}

func (s *deliveryService) SearchOrders(ctx context.Context, f repository.OrderSearchFilter) ([]model.Order, error) {
	if strings.TrimSpace(f.Query) == "" {
		return nil, NewValidationError("query", "query is required")
	}
	if f.DeliveryStatus != "" && !f.DeliveryStatus.Valid() {
		return nil, NewValidationError("status", "status must be one of preparing, picked_up, in_transit, out_for_delivery, delivered")
	}
	return s.orderRepo.Search(ctx, f)
}
