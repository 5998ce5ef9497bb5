package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
)

func TestDeliveryServiceAddTracking(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusShipped})
	deliveries := newFakeDeliveryRepo()
	svc := NewDeliveryService(deliveries, orders)

	entry, err := svc.AddTracking(ctx, 1, model.DeliveryStatusInTransit, "Sorting hub", "left the warehouse")
	require.NoError(t, err)
	require.Equal(t, model.DeliveryStatusInTransit, entry.Status)

	// a non-delivered entry leaves the order alone
	o, _ := orders.FindByID(ctx, 1)
	require.Equal(t, model.OrderStatusShipped, o.Status)

	var ve *ValidationError
	_, err = svc.AddTracking(ctx, 1, model.DeliveryStatus("teleported"), "x", "")
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "status")

	_, err = svc.AddTracking(ctx, 1, model.DeliveryStatusInTransit, "  ", "")
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "location")

	_, err = svc.AddTracking(ctx, 99, model.DeliveryStatusInTransit, "x", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeliveryServiceDeliveredFlipsOrder(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusShipped})
	deliveries := newFakeDeliveryRepo()
	svc := NewDeliveryService(deliveries, orders)

	_, err := svc.AddTracking(ctx, 1, model.DeliveryStatusDelivered, "Front door", "")
	require.NoError(t, err)

	o, _ := orders.FindByID(ctx, 1)
	require.Equal(t, model.OrderStatusDelivered, o.Status)
	require.NotNil(t, o.DeliveredAt)
}

func TestDeliveryServiceGetTracking(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7, Status: model.OrderStatusShipped})
	deliveries := newFakeDeliveryRepo()
	svc := NewDeliveryService(deliveries, orders)

	view, err := svc.GetTracking(ctx, 1)
	require.NoError(t, err)
	require.Nil(t, view.DeliveryStatus)
	require.Empty(t, view.History)

	_, err = svc.AddTracking(ctx, 1, model.DeliveryStatusPreparing, "Warehouse", "")
	require.NoError(t, err)
	_, err = svc.AddTracking(ctx, 1, model.DeliveryStatusOutForDelivery, "Local depot", "")
	require.NoError(t, err)

	view, err = svc.GetTracking(ctx, 1)
	require.NoError(t, err)
	require.Len(t, view.History, 2)
	// current status is the last inserted entry, not a status ranking
	require.NotNil(t, view.DeliveryStatus)
	require.Equal(t, model.DeliveryStatusOutForDelivery, *view.DeliveryStatus)
	require.Equal(t, model.OrderStatusShipped, view.OrderStatus)

	_, err = svc.GetTracking(ctx, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeliveryServiceSearchOrders(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(model.Order{ID: 1, SellerID: 7})
	svc := NewDeliveryService(newFakeDeliveryRepo(), orders)

	var ve *ValidationError
	_, err := svc.SearchOrders(ctx, repository.OrderSearchFilter{Query: "  "})
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "query")

	_, err = svc.SearchOrders(ctx, repository.OrderSearchFilter{Query: "1", DeliveryStatus: model.DeliveryStatus("bogus")})
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "status")

	list, err := svc.SearchOrders(ctx, repository.OrderSearchFilter{Query: "1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
}
