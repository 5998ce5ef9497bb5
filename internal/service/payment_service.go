package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/yasirSub/backend-mexo/internal/gateway"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

type PaymentStatusView struct {
	OrderStatus model.OrderStatus
	Payment     *model.Payment
}

type PaymentService interface {
	CreateIntent(ctx context.Context, orderID uint64, amountCents int64) (*gateway.Intent, error)
	GetStatus(ctx context.Context, orderID uint64) (*PaymentStatusView, error)
	HandleWebhook(ctx context.Context, ev *gateway.WebhookEvent) error
	List(ctx context.Context, f repository.PaymentListFilter) ([]model.Payment, error)
	Get(ctx context.Context, id uint64) (*model.Payment, error)
	UpdateStatus(ctx context.Context, id uint64, status model.PaymentStatus, notes string) (*model.Payment, error)
	MarkPaid(ctx context.Context, id uint64) (*model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	gw          gateway.PaymentGateway
}

func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository, gw gateway.PaymentGateway) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, orderRepo: orderRepo, gw: gw}
}

func (s *paymentService) CreateIntent(ctx context.Context, orderID uint64, amountCents int64) (*gateway.Intent, error) {
	if amountCents < 1 {
		return nil, NewValidationError("amount", "amount must be at least 1")
	}
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.gw.CreateIntent(ctx, gateway.IntentParams{
		AmountCents: amountCents,
		OrderID:     o.ID,
		SellerID:    o.SellerID,
	})
}

func (s *paymentService) GetStatus(ctx context.Context, orderID uint64) (*PaymentStatusView, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := &PaymentStatusView{OrderStatus: o.Status}
	p, err := s.paymentRepo.FindLatestByOrder(ctx, orderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	view.Payment = p
	return view, nil
}

// HandleWebhook reacts to gateway payment events. Events referencing an order
// that does not exist are dropped without error. Duplicate deliveries are not
// suppressed and create duplicate payment rows.
func (s *paymentService) HandleWebhook(ctx context.Context, ev *gateway.WebhookEvent) error {
	var status model.PaymentStatus
	var orderStatus model.OrderStatus
	switch ev.Type {
	case gateway.EventPaymentSucceeded:
		status = model.PaymentStatusCompleted
		orderStatus = model.OrderStatusPaid
	case gateway.EventPaymentFailed:
		status = model.PaymentStatusFailed
		orderStatus = model.OrderStatusPaymentFailed
	default:
		return nil
	}

	orderID, err := strconv.ParseUint(ev.Metadata["order_id"], 10, 64)
	if err != nil {
		return nil
	}
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	o.Status = orderStatus
	if err := s.orderRepo.Update(ctx, o); err != nil {
		return err
	}
	return s.paymentRepo.Create(ctx, &model.Payment{
		OrderID:       o.ID,
		AmountCents:   ev.AmountCents,
		TransactionID: ev.TransactionID,
		Status:        status,
	})
}

func (s *paymentService) List(ctx context.Context, f repository.PaymentListFilter) ([]model.Payment, error) {
	list, err := s.paymentRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	// Backfill seller_id from the order for legacy rows created by the
	// webhook before the seller column existed.
	for i := range list {
		if list[i].SellerID == nil {
			if o, err := s.orderRepo.FindByID(ctx, list[i].OrderID); err == nil {
				sellerID := o.SellerID
				list[i].SellerID = &sellerID
			}
		}
	}
	return list, nil
}

func (s *paymentService) Get(ctx context.Context, id uint64) (*model.Payment, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *paymentService) UpdateStatus(ctx context.Context, id uint64, status model.PaymentStatus, notes string) (*model.Payment, error) {
	if !status.Valid() {
		return nil, NewValidationError("status", "status must be one of pending, completed, failed, refunded, paid_to_seller")
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Status = status
	p.Notes = notes
	if err := s.paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// MarkPaid records the payout of a completed payment to its seller. The
// payment row and the linked order's payout status commit together.
func (s *paymentService) MarkPaid(ctx context.Context, id uint64) (*model.Payment, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := p.Status.MarkPaidToSeller()
	if err != nil {
		return nil, err
	}

	var orderID uint64
	if o, err := s.orderRepo.FindByID(ctx, p.OrderID); err == nil {
		orderID = o.ID
		if p.SellerID == nil {
			sellerID := o.SellerID
			p.SellerID = &sellerID
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	p.Status = next
	p.SellerPaid = true
	p.SellerPaidAt = &now
	if err := s.paymentRepo.MarkPaidToSeller(ctx, p, orderID); err != nil {
		return nil, err
	}
	return p, nil
}
