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

func validRecipientRequest() *request.CreateRecipientRequest {
	return &request.CreateRecipientRequest{
		FirstName: "Ada",
		LastName:  "L",
		Address:   "Somewhere 1",
		ZipCode:   "12345",
		Phone:     "555-0001",
	}
}

func TestRecipient_OwnerScoping(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewRecipientService(repo, zap.NewNop())
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.Create(ctx, owner, validRecipientRequest())
	require.NoError(t, err)
	assert.Equal(t, owner.String(), created.UserID)

	// Owner sees it
	got, err := svc.Get(ctx, uuid.MustParse(created.ID), owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Anyone else gets a 404, not a 403: existence is not leaked
	_, err = svc.Get(ctx, uuid.MustParse(created.ID), stranger)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	ownerList, err := svc.ListByUser(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, ownerList, 1)

	strangerList, err := svc.ListByUser(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, strangerList)
}

func TestRecipient_Update(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewRecipientService(repo, zap.NewNop())
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, validRecipientRequest())
	require.NoError(t, err)

	phone := "555-0002"
	middle := "M"
	updated, err := svc.Update(ctx, uuid.MustParse(created.ID), owner, &request.UpdateRecipientRequest{
		Phone:      &phone,
		MiddleName: &middle,
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0002", updated.Phone)
	require.NotNil(t, updated.MiddleName)
	assert.Equal(t, "M", *updated.MiddleName)
	assert.Equal(t, "Ada", updated.FirstName)
}

func TestRecipient_Delete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewRecipientService(repo, zap.NewNop())
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, validRecipientRequest())
	require.NoError(t, err)

	// Only the owner can delete
	err = svc.Delete(ctx, uuid.MustParse(created.ID), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	require.NoError(t, svc.Delete(ctx, uuid.MustParse(created.ID), owner))
}

func TestRecipient_DeleteReferencedByCheckout(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewRecipientService(repo, zap.NewNop())
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, validRecipientRequest())
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, repo.Checkout.Create(ctx, &entity.Checkout{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:           owner,
		RecipientID:      uuid.MustParse(created.ID),
		BasketItemID:     uuid.New(),
		PaymentMethodID:  uuid.New(),
		DeliveryMethodID: uuid.New(),
	}))

	err = svc.Delete(ctx, uuid.MustParse(created.ID), owner)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// Still there
	got, err := svc.Get(ctx, uuid.MustParse(created.ID), owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestRecipient_AdminCreateForUser(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewRecipientService(repo, zap.NewNop())
	ctx := context.Background()

	user, err := repo.User.GetOrCreate(ctx, &entity.User{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Email:      "a@b.com",
		IsActive:   true,
	})
	require.NoError(t, err)

	created, err := svc.AdminCreate(ctx, &request.AdminCreateRecipientRequest{
		UserID:                 user.ID.String(),
		CreateRecipientRequest: *validRecipientRequest(),
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), created.UserID)

	all, err := svc.AdminList(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRecipient_AdminCreateUnknownUser(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	svc := NewRecipientService(repo, zap.NewNop())

	_, err := svc.AdminCreate(context.Background(), &request.AdminCreateRecipientRequest{
		UserID:                 uuid.New().String(),
		CreateRecipientRequest: *validRecipientRequest(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Contains(t, apperr.FieldsOf(err), "user")
}
