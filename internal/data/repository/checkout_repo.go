package repository

import (
	"context"
	"fmt"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CheckoutRepository interface {
	Create(ctx context.Context, checkout *entity.Checkout) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Checkout, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Checkout, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, checkout *entity.Checkout) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type checkoutRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCheckoutRepository(db database.PgxIface, log *zap.Logger) CheckoutRepository {
	return &checkoutRepository{
		db:  db,
		log: log.With(zap.String("repository", "checkout")),
	}
}

func (r *checkoutRepository) Create(ctx context.Context, checkout *entity.Checkout) error {
	query := `
		INSERT INTO checkouts (id, user_id, recipient_id, basket_item_id,
		                       payment_method_id, delivery_method_id, payment_total,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		checkout.ID,
		checkout.UserID,
		checkout.RecipientID,
		checkout.BasketItemID,
		checkout.PaymentMethodID,
		checkout.DeliveryMethodID,
		checkout.PaymentTotal,
		checkout.CreatedAt,
		checkout.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create checkout",
			zap.Error(err),
			zap.String("user_id", checkout.UserID.String()),
		)
		return fmt.Errorf("create checkout for user %s: %w", checkout.UserID.String(), err)
	}

	return nil
}

func (r *checkoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Checkout, error) {
	query := `
		SELECT id, user_id, recipient_id, basket_item_id, payment_method_id,
		       delivery_method_id, payment_total, created_at, updated_at
		FROM checkouts
		WHERE id = $1
	`

	var checkout entity.Checkout
	err := r.db.QueryRow(ctx, query, id).Scan(
		&checkout.ID,
		&checkout.UserID,
		&checkout.RecipientID,
		&checkout.BasketItemID,
		&checkout.PaymentMethodID,
		&checkout.DeliveryMethodID,
		&checkout.PaymentTotal,
		&checkout.CreatedAt,
		&checkout.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find checkout by ID",
			zap.Error(err),
			zap.String("checkout_id", id.String()),
		)
		return nil, fmt.Errorf("find checkout by ID %s: %w", id.String(), err)
	}

	return &checkout, nil
}

func (r *checkoutRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Checkout, error) {
	query := `
		SELECT id, user_id, recipient_id, basket_item_id, payment_method_id,
		       delivery_method_id, payment_total, created_at, updated_at
		FROM checkouts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all checkouts",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all checkouts limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var checkouts []*entity.Checkout
	for rows.Next() {
		var checkout entity.Checkout
		err := rows.Scan(
			&checkout.ID,
			&checkout.UserID,
			&checkout.RecipientID,
			&checkout.BasketItemID,
			&checkout.PaymentMethodID,
			&checkout.DeliveryMethodID,
			&checkout.PaymentTotal,
			&checkout.CreatedAt,
			&checkout.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan checkout row", zap.Error(err))
			return nil, fmt.Errorf("scan checkout row: %w", err)
		}
		checkouts = append(checkouts, &checkout)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate checkout rows: %w", err)
	}

	return checkouts, nil
}

func (r *checkoutRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM checkouts`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count checkouts", zap.Error(err))
		return 0, fmt.Errorf("count all checkouts: %w", err)
	}

	return count, nil
}

func (r *checkoutRepository) Update(ctx context.Context, checkout *entity.Checkout) error {
	query := `
		UPDATE checkouts
		SET recipient_id = $2, basket_item_id = $3, payment_method_id = $4,
		    delivery_method_id = $5, payment_total = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		checkout.ID,
		checkout.RecipientID,
		checkout.BasketItemID,
		checkout.PaymentMethodID,
		checkout.DeliveryMethodID,
		checkout.PaymentTotal,
		checkout.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update checkout",
			zap.Error(err),
			zap.String("checkout_id", checkout.ID.String()),
		)
		return fmt.Errorf("update checkout %s: %w", checkout.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("checkout %s not found", checkout.ID.String())
	}

	return nil
}

// Delete removes the checkout and cascades its transactions away.
func (r *checkoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM checkouts WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete checkout",
			zap.Error(err),
			zap.String("checkout_id", id.String()),
		)
		return fmt.Errorf("delete checkout %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("checkout %s not found", id.String())
	}

	r.log.Info("Checkout deleted", zap.String("checkout_id", id.String()))
	return nil
}
