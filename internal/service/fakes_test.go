package service

import (
	"context"

	"github.com/yasirSub/backend-mexo/internal/gateway"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

// In-memory repositories backing the service tests. They return copies so a
// mutation only lands after an explicit Update, same as the real thing.

type fakeOrderRepo struct {
	orders map[uint64]model.Order
}

func newFakeOrderRepo(orders ...model.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: map[uint64]model.Order{}}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint64) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := o
	return &out, nil
}

func (r *fakeOrderRepo) FindBySeller(_ context.Context, sellerID, id uint64) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.SellerID != sellerID {
		return nil, gorm.ErrRecordNotFound
	}
	out := o
	return &out, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *model.Order) error {
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) ListBySeller(_ context.Context, sellerID uint64, status model.OrderStatus) ([]model.Order, error) {
	var list []model.Order
	for _, o := range r.orders {
		if o.SellerID != sellerID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		list = append(list, o)
	}
	return list, nil
}

func (r *fakeOrderRepo) List(_ context.Context, f repository.OrderListFilter) ([]model.Order, int64, error) {
	var list []model.Order
	for _, o := range r.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.SellerID != 0 && o.SellerID != f.SellerID {
			continue
		}
		list = append(list, o)
	}
	return list, int64(len(list)), nil
}

func (r *fakeOrderRepo) Search(_ context.Context, _ repository.OrderSearchFilter) ([]model.Order, error) {
	var list []model.Order
	for _, o := range r.orders {
		list = append(list, o)
	}
	return list, nil
}

type fakePaymentRepo struct {
	payments map[uint64]model.Payment
	orders   *fakeOrderRepo
	nextID   uint64

	markPaidOrderID uint64
	markPaidCalls   int
}

func newFakePaymentRepo(orders *fakeOrderRepo, payments ...model.Payment) *fakePaymentRepo {
	r := &fakePaymentRepo{payments: map[uint64]model.Payment{}, orders: orders, nextID: 1}
	for _, p := range payments {
		r.payments[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *fakePaymentRepo) Create(_ context.Context, p *model.Payment) error {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.payments[p.ID] = *p
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uint64) (*model.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := p
	return &out, nil
}

func (r *fakePaymentRepo) FindLatestByOrder(_ context.Context, orderID uint64) (*model.Payment, error) {
	var latest *model.Payment
	for id := range r.payments {
		p := r.payments[id]
		if p.OrderID != orderID {
			continue
		}
		if latest == nil || p.ID > latest.ID {
			cp := p
			latest = &cp
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, p *model.Payment) error {
	r.payments[p.ID] = *p
	return nil
}

func (r *fakePaymentRepo) List(_ context.Context, f repository.PaymentListFilter) ([]model.Payment, error) {
	var list []model.Payment
	for _, p := range r.payments {
		if f.PaidToSeller && !p.SellerPaid {
			continue
		}
		if !f.PaidToSeller && f.Status != "" && p.Status != f.Status {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *fakePaymentRepo) MarkPaidToSeller(ctx context.Context, p *model.Payment, orderID uint64) error {
	r.markPaidCalls++
	r.markPaidOrderID = orderID
	r.payments[p.ID] = *p
	if orderID != 0 && r.orders != nil {
		if o, err := r.orders.FindByID(ctx, orderID); err == nil {
			o.PayoutStatus = model.PayoutStatusPaid
			return r.orders.Update(ctx, o)
		}
	}
	return nil
}

type fakeDeliveryRepo struct {
	entries []model.DeliveryTracking
	nextID  uint64
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{nextID: 1}
}

func (r *fakeDeliveryRepo) Create(_ context.Context, t *model.DeliveryTracking) error {
	t.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, *t)
	return nil
}

func (r *fakeDeliveryRepo) ListByOrder(_ context.Context, orderID uint64) ([]model.DeliveryTracking, error) {
	var list []model.DeliveryTracking
	for _, e := range r.entries {
		if e.OrderID == orderID {
			list = append(list, e)
		}
	}
	return list, nil
}

func (r *fakeDeliveryRepo) FindLatestByOrder(_ context.Context, orderID uint64) (*model.DeliveryTracking, error) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].OrderID == orderID {
			out := r.entries[i]
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeNotificationRepo struct {
	notifications map[uint64]model.Notification
	nextID        uint64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[uint64]model.Notification{}, nextID: 1}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if n.ID == 0 {
		n.ID = r.nextID
		r.nextID++
	}
	r.notifications[n.ID] = *n
	return nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id uint64) (*model.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := n
	return &out, nil
}

func (r *fakeNotificationRepo) List(_ context.Context, scope repository.NotificationScope, _, _ int) ([]model.Notification, error) {
	var list []model.Notification
	for _, n := range r.notifications {
		if scope.SellerID != nil && (n.SellerID == nil || *n.SellerID != *scope.SellerID) {
			continue
		}
		if scope.AdminID != nil && (n.AdminID == nil || *n.AdminID != *scope.AdminID) {
			continue
		}
		list = append(list, n)
	}
	return list, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id uint64) error {
	n := r.notifications[id]
	n.IsRead = true
	r.notifications[id] = n
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, _ repository.NotificationScope) error {
	for id, n := range r.notifications {
		n.IsRead = true
		r.notifications[id] = n
	}
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(_ context.Context, _ repository.NotificationScope) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id uint64) error {
	delete(r.notifications, id)
	return nil
}

func (r *fakeNotificationRepo) DeleteAllRead(_ context.Context, _ repository.NotificationScope) error {
	for id, n := range r.notifications {
		if n.IsRead {
			delete(r.notifications, id)
		}
	}
	return nil
}

type fakeGateway struct {
	lastParams gateway.IntentParams
	intent     *gateway.Intent
	err        error
}

func (g *fakeGateway) CreateIntent(_ context.Context, p gateway.IntentParams) (*gateway.Intent, error) {
	g.lastParams = p
	if g.err != nil {
		return nil, g.err
	}
	if g.intent != nil {
		return g.intent, nil
	}
	return &gateway.Intent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}
