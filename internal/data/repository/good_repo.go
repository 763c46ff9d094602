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

type GoodRepository interface {
	Create(ctx context.Context, good *entity.Good) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Good, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Good, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, good *entity.Good) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type goodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGoodRepository(db database.PgxIface, log *zap.Logger) GoodRepository {
	return &goodRepository{
		db:  db,
		log: log.With(zap.String("repository", "good")),
	}
}

func (r *goodRepository) Create(ctx context.Context, good *entity.Good) error {
	query := `
		INSERT INTO goods (id, title, description, price, seller_id, category_id,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		good.ID,
		good.Title,
		good.Description,
		good.Price,
		good.SellerID,
		good.CategoryID,
		good.CreatedAt,
		good.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create good",
			zap.Error(err),
			zap.String("title", good.Title),
		)
		return fmt.Errorf("create good %s: %w", good.Title, err)
	}

	return nil
}

func (r *goodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Good, error) {
	query := `
		SELECT id, title, description, price, seller_id, category_id,
		       created_at, updated_at
		FROM goods
		WHERE id = $1
	`

	var good entity.Good
	err := r.db.QueryRow(ctx, query, id).Scan(
		&good.ID,
		&good.Title,
		&good.Description,
		&good.Price,
		&good.SellerID,
		&good.CategoryID,
		&good.CreatedAt,
		&good.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find good by ID",
			zap.Error(err),
			zap.String("good_id", id.String()),
		)
		return nil, fmt.Errorf("find good by ID %s: %w", id.String(), err)
	}

	return &good, nil
}

func (r *goodRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Good, error) {
	query := `
		SELECT id, title, description, price, seller_id, category_id,
		       created_at, updated_at
		FROM goods
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all goods",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all goods limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var goods []*entity.Good
	for rows.Next() {
		var good entity.Good
		err := rows.Scan(
			&good.ID,
			&good.Title,
			&good.Description,
			&good.Price,
			&good.SellerID,
			&good.CategoryID,
			&good.CreatedAt,
			&good.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan good row", zap.Error(err))
			return nil, fmt.Errorf("scan good row: %w", err)
		}
		goods = append(goods, &good)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate good rows: %w", err)
	}

	return goods, nil
}

func (r *goodRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM goods`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count goods", zap.Error(err))
		return 0, fmt.Errorf("count all goods: %w", err)
	}

	return count, nil
}

func (r *goodRepository) Update(ctx context.Context, good *entity.Good) error {
	query := `
		UPDATE goods
		SET title = $2, description = $3, price = $4, seller_id = $5,
		    category_id = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		good.ID,
		good.Title,
		good.Description,
		good.Price,
		good.SellerID,
		good.CategoryID,
		good.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update good",
			zap.Error(err),
			zap.String("good_id", good.ID.String()),
		)
		return fmt.Errorf("update good %s: %w", good.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("good %s not found", good.ID.String())
	}

	return nil
}

func (r *goodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM goods WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete good",
			zap.Error(err),
			zap.String("good_id", id.String()),
		)
		return fmt.Errorf("delete good %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("good %s not found", id.String())
	}

	r.log.Info("Good deleted", zap.String("good_id", id.String()))
	return nil
}
