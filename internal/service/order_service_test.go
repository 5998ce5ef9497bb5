package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yasirSub/backend-mexo/internal/model"
)

func TestOrderServiceShip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusPending})
	svc := NewOrderService(repo)

	o, err := svc.Ship(ctx, 7, 1, "TRK-123", "DHL")
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusShipped, o.Status)
	require.True(t, strings.Contains(o.Notes, "Tracking: TRK-123"))
	require.True(t, strings.Contains(o.Notes, "Courier: DHL"))

	stored, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusShipped, stored.Status)

	// shipping twice is refused and leaves the order untouched
	_, err = svc.Ship(ctx, 7, 1, "", "")
	var se *model.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "Only pending orders can be shipped", se.Message)
	stored, _ = repo.FindByID(ctx, 1)
	require.Equal(t, model.OrderStatusShipped, stored.Status)
}

func TestOrderServiceShipWrongSeller(t *testing.T) {
	repo := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusPending})
	svc := NewOrderService(repo)

	_, err := svc.Ship(context.Background(), 9, 1, "", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderServiceDeliver(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo(
		model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusShipped},
		model.Order{ID: 2, SellerID: 7, Status: model.OrderStatusPending},
	)
	svc := NewOrderService(repo)

	o, err := svc.Deliver(ctx, 7, 1)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusDelivered, o.Status)
	require.NotNil(t, o.DeliveredAt)

	_, err = svc.Deliver(ctx, 7, 2)
	var se *model.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "Only shipped orders can be marked as delivered", se.Message)
}

func TestOrderServiceAcceptReject(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo(
		model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusPending},
		model.Order{ID: 2, SellerID: 7, Status: model.OrderStatusPending},
	)
	svc := NewOrderService(repo)

	o, err := svc.Accept(ctx, 7, 1)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusConfirmed, o.Status)

	o, err = svc.Reject(ctx, 7, 2)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusCancelled, o.Status)

	_, err = svc.Accept(ctx, 7, 1)
	var se *model.StatusError
	require.ErrorAs(t, err, &se)
}

func TestOrderServiceUpdateStatusByAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusDelivered})
	svc := NewOrderService(repo)

	// admin overwrite has no transition guard, even backwards
	o, err := svc.UpdateStatusByAdmin(ctx, 1, model.OrderStatusPending)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusPending, o.Status)

	// but only fulfillment statuses are accepted
	_, err = svc.UpdateStatusByAdmin(ctx, 1, model.OrderStatusPaid)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "status")

	_, err = svc.UpdateStatusByAdmin(ctx, 99, model.OrderStatusShipped)
	require.True(t, errors.Is(err, ErrNotFound))
}
