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

type BasketItemRepository interface {
	Upsert(ctx context.Context, item *entity.BasketItem) (*entity.BasketItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BasketItem, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.BasketItem, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BasketItem, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateCount(ctx context.Context, id uuid.UUID, count int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type basketItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBasketItemRepository(db database.PgxIface, log *zap.Logger) BasketItemRepository {
	return &basketItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "basket_item")),
	}
}

// Upsert inserts the basket line or, when the (user, good) pair
// already exists, re-saves the existing row keeping its stored count.
// One statement, so concurrent adds cannot create duplicate rows.
func (r *basketItemRepository) Upsert(ctx context.Context, item *entity.BasketItem) (*entity.BasketItem, error) {
	query := `
		INSERT INTO basket_items (id, user_id, good_id, count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, good_id)
		DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, good_id, count, created_at, updated_at
	`

	var out entity.BasketItem
	err := r.db.QueryRow(ctx, query,
		item.ID,
		item.UserID,
		item.GoodID,
		item.Count,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(
		&out.ID,
		&out.UserID,
		&out.GoodID,
		&out.Count,
		&out.CreatedAt,
		&out.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert basket item",
			zap.Error(err),
			zap.String("user_id", item.UserID.String()),
			zap.String("good_id", item.GoodID.String()),
		)
		return nil, fmt.Errorf("upsert basket item for user %s: %w", item.UserID.String(), err)
	}

	return &out, nil
}

func (r *basketItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BasketItem, error) {
	query := `
		SELECT id, user_id, good_id, count, created_at, updated_at
		FROM basket_items
		WHERE id = $1
	`

	var item entity.BasketItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.UserID,
		&item.GoodID,
		&item.Count,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find basket item",
			zap.Error(err),
			zap.String("basket_item_id", id.String()),
		)
		return nil, fmt.Errorf("find basket item %s: %w", id.String(), err)
	}

	return &item, nil
}

func (r *basketItemRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.BasketItem, error) {
	query := `
		SELECT id, user_id, good_id, count, created_at, updated_at
		FROM basket_items
		WHERE id = $1 AND user_id = $2
	`

	var item entity.BasketItem
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&item.ID,
		&item.UserID,
		&item.GoodID,
		&item.Count,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find basket item",
			zap.Error(err),
			zap.String("basket_item_id", id.String()),
		)
		return nil, fmt.Errorf("find basket item %s: %w", id.String(), err)
	}

	return &item, nil
}

func (r *basketItemRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BasketItem, error) {
	query := `
		SELECT id, user_id, good_id, count, created_at, updated_at
		FROM basket_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find basket items",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find basket items for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var items []*entity.BasketItem
	for rows.Next() {
		var item entity.BasketItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.GoodID,
			&item.Count,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan basket item row", zap.Error(err))
			return nil, fmt.Errorf("scan basket item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate basket item rows: %w", err)
	}

	return items, nil
}

func (r *basketItemRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM basket_items WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count basket items",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count basket items for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *basketItemRepository) UpdateCount(ctx context.Context, id uuid.UUID, count int) error {
	query := `UPDATE basket_items SET count = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, count)
	if err != nil {
		r.log.Error("Failed to update basket item count",
			zap.Error(err),
			zap.String("basket_item_id", id.String()),
		)
		return fmt.Errorf("update basket item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("basket item %s not found", id.String())
	}

	return nil
}

// Delete fails with a foreign key violation while any checkout still
// references the basket line.
func (r *basketItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM basket_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Warn("Failed to delete basket item",
			zap.Error(err),
			zap.String("basket_item_id", id.String()),
		)
		return fmt.Errorf("delete basket item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("basket item %s not found", id.String())
	}

	return nil
}
