package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yasirSub/backend-mexo/internal/model"
)

func TestNotificationServiceCreate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	adminID := uint64(2)
	n := &model.Notification{AdminID: &adminID, Title: "Payout run", Message: "Weekly payouts processed"}
	require.NoError(t, svc.Create(ctx, n))
	require.NotZero(t, n.ID)
	require.Equal(t, "info", n.Type)

	stored, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)
	require.Equal(t, "Payout run", stored.Title)
	require.False(t, stored.IsRead)
}

func TestNotificationServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(newFakeNotificationRepo())

	var ve *ValidationError
	err := svc.Create(ctx, &model.Notification{Message: "no title"})
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "title")

	err = svc.Create(ctx, &model.Notification{Title: "no message"})
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "message")

	err = svc.Create(ctx, &model.Notification{Title: "t", Message: "m", Type: "carrier_pigeon"})
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "type")
}
