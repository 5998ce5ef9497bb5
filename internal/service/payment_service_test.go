package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yasirSub/backend-mexo/internal/gateway"
	"github.com/yasirSub/backend-mexo/internal/model"
)

func TestPaymentServiceCreateIntent(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusPending})
	payments := newFakePaymentRepo(orders)
	gw := &fakeGateway{}
	svc := NewPaymentService(payments, orders, gw)

	intent, err := svc.CreateIntent(ctx, 1, 2500)
	require.NoError(t, err)
	require.Equal(t, "pi_test_secret", intent.ClientSecret)
	require.Equal(t, uint64(1), gw.lastParams.OrderID)
	require.Equal(t, uint64(7), gw.lastParams.SellerID)
	require.Equal(t, int64(2500), gw.lastParams.AmountCents)

	_, err = svc.CreateIntent(ctx, 1, 0)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.CreateIntent(ctx, 99, 2500)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentServiceWebhookSucceeded(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusPending})
	payments := newFakePaymentRepo(orders)
	svc := NewPaymentService(payments, orders, &fakeGateway{})

	err := svc.HandleWebhook(ctx, &gateway.WebhookEvent{
		Type:          gateway.EventPaymentSucceeded,
		TransactionID: "pi_abc",
		AmountCents:   2500,
		Metadata:      map[string]string{"order_id": "1"},
	})
	require.NoError(t, err)

	o, _ := orders.FindByID(ctx, 1)
	require.Equal(t, model.OrderStatusPaid, o.Status)

	p, err := payments.FindLatestByOrder(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusCompleted, p.Status)
	require.Equal(t, "pi_abc", p.TransactionID)
	require.Equal(t, int64(2500), p.AmountCents)
}

func TestPaymentServiceWebhookFailed(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusPending})
	payments := newFakePaymentRepo(orders)
	svc := NewPaymentService(payments, orders, &fakeGateway{})

	err := svc.HandleWebhook(ctx, &gateway.WebhookEvent{
		Type:        gateway.EventPaymentFailed,
		AmountCents: 2500,
		Metadata:    map[string]string{"order_id": "1"},
	})
	require.NoError(t, err)

	o, _ := orders.FindByID(ctx, 1)
	require.Equal(t, model.OrderStatusPaymentFailed, o.Status)

	p, err := payments.FindLatestByOrder(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusFailed, p.Status)
}

func TestPaymentServiceWebhookDropped(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo()
	payments := newFakePaymentRepo(orders)
	svc := NewPaymentService(payments, orders, &fakeGateway{})

	// unknown order id is dropped without error and without a payment row
	err := svc.HandleWebhook(ctx, &gateway.WebhookEvent{
		Type:     gateway.EventPaymentSucceeded,
		Metadata: map[string]string{"order_id": "42"},
	})
	require.NoError(t, err)
	require.Empty(t, payments.payments)

	// missing metadata likewise
	err = svc.HandleWebhook(ctx, &gateway.WebhookEvent{Type: gateway.EventPaymentSucceeded})
	require.NoError(t, err)
	require.Empty(t, payments.payments)

	// irrelevant event types are ignored
	err = svc.HandleWebhook(ctx, &gateway.WebhookEvent{Type: "charge.refunded", Metadata: map[string]string{"order_id": "1"}})
	require.NoError(t, err)
	require.Empty(t, payments.payments)
}

func TestPaymentServiceWebhookNotIdempotent(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusPending})
	payments := newFakePaymentRepo(orders)
	svc := NewPaymentService(payments, orders, &fakeGateway{})

	ev := &gateway.WebhookEvent{
		Type:          gateway.EventPaymentSucceeded,
		TransactionID: "pi_abc",
		AmountCents:   2500,
		Metadata:      map[string]string{"order_id": "1"},
	}
	require.NoError(t, svc.HandleWebhook(ctx, ev))
	require.NoError(t, svc.HandleWebhook(ctx, ev))

	// duplicate deliveries create duplicate rows
	require.Len(t, payments.payments, 2)
}

func TestPaymentServiceMarkPaid(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusDelivered, PayoutStatus: model.PayoutStatusPending})
	payments := newFakePaymentRepo(orders, model.Payment{ID: 3, OrderID: 1, Status: model.PaymentStatusCompleted})
	svc := NewPaymentService(payments, orders, &fakeGateway{})

	p, err := svc.MarkPaid(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusPaidToSeller, p.Status)
	require.True(t, p.SellerPaid)
	require.NotNil(t, p.SellerPaidAt)
	require.NotNil(t, p.SellerID)
	require.Equal(t, uint64(7), *p.SellerID)

	// payment row and order payout status move together
	require.Equal(t, 1, payments.markPaidCalls)
	require.Equal(t, uint64(1), payments.markPaidOrderID)
	o, _ := orders.FindByID(ctx, 1)
	require.Equal(t, model.PayoutStatusPaid, o.PayoutStatus)
}

func TestPaymentServiceMarkPaidGuard(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7})
	payments := newFakePaymentRepo(orders, model.Payment{ID: 3, OrderID: 1, Status: model.PaymentStatusPending})
	svc := NewPaymentService(payments, orders, &fakeGateway{})

	_, err := svc.MarkPaid(ctx, 3)
	var se *model.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "Only completed payments can be marked as paid to seller", se.Message)
	require.Zero(t, payments.markPaidCalls)

	_, err = svc.MarkPaid(ctx, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo()
	payments := newFakePaymentRepo(orders, model.Payment{ID: 3, OrderID: 1, Status: model.PaymentStatusPending})
	svc := NewPaymentService(payments, orders, &fakeGateway{})

	p, err := svc.UpdateStatus(ctx, 3, model.PaymentStatusRefunded, "chargeback")
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusRefunded, p.Status)
	require.Equal(t, "chargeback", p.Notes)

	_, err = svc.UpdateStatus(ctx, 3, model.PaymentStatus("bogus"), "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}
