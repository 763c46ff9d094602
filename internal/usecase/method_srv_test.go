package usecase

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/dto/request"
	"marketplace-api/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPaymentMethodLifecycle(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewMethodService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreatePaymentMethod(ctx, &request.CreateMethodRequest{
		Title:       "card",
		Description: "pay by card",
	})
	require.NoError(t, err)

	got, err := svc.GetPaymentMethod(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "card", got.Title)

	desc := "pay by any card"
	updated, err := svc.UpdatePaymentMethod(ctx, uuid.MustParse(created.ID), &request.UpdateMethodRequest{
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "card", updated.Title)
	assert.Equal(t, desc, updated.Description)

	all, err := svc.ListPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeletePaymentMethod(ctx, uuid.MustParse(created.ID)))

	_, err = svc.GetPaymentMethod(ctx, uuid.MustParse(created.ID))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeliveryMethodLifecycle(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewMethodService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateDeliveryMethod(ctx, &request.CreateMethodRequest{
		Title:       "courier",
		Description: "to the door",
	})
	require.NoError(t, err)

	// Payment and delivery methods live in separate tables
	_, err = svc.GetPaymentMethod(ctx, uuid.MustParse(created.ID))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	all, err := svc.ListDeliveryMethods(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "courier", all[0].Title)
}

func TestDeleteMethod_ReferencedByCheckout(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewMethodService(repo, zap.NewNop())
	ctx := context.Background()

	payment, err := svc.CreatePaymentMethod(ctx, &request.CreateMethodRequest{Title: "card"})
	require.NoError(t, err)
	delivery, err := svc.CreateDeliveryMethod(ctx, &request.CreateMethodRequest{Title: "courier"})
	require.NoError(t, err)
	spare, err := svc.CreatePaymentMethod(ctx, &request.CreateMethodRequest{Title: "cash"})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, repo.Checkout.Create(ctx, &entity.Checkout{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:           uuid.New(),
		RecipientID:      uuid.New(),
		BasketItemID:     uuid.New(),
		PaymentMethodID:  uuid.MustParse(payment.ID),
		DeliveryMethodID: uuid.MustParse(delivery.ID),
	}))

	// Methods snapshotted by a checkout refuse to go
	err = svc.DeletePaymentMethod(ctx, uuid.MustParse(payment.ID))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	err = svc.DeleteDeliveryMethod(ctx, uuid.MustParse(delivery.ID))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// An unreferenced one deletes fine
	require.NoError(t, svc.DeletePaymentMethod(ctx, uuid.MustParse(spare.ID)))
}

func TestMethodUpdate_NotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewMethodService(repo, zap.NewNop())

	title := "x"
	_, err := svc.UpdateDeliveryMethod(context.Background(), uuid.New(), &request.UpdateMethodRequest{Title: &title})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
