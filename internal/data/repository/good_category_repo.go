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

type GoodCategoryRepository interface {
	Create(ctx context.Context, category *entity.GoodCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GoodCategory, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.GoodCategory, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, category *entity.GoodCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type goodCategoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGoodCategoryRepository(db database.PgxIface, log *zap.Logger) GoodCategoryRepository {
	return &goodCategoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "good_category")),
	}
}

func (r *goodCategoryRepository) Create(ctx context.Context, category *entity.GoodCategory) error {
	query := `
		INSERT INTO good_categories (id, title, description, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Title,
		category.Description,
		category.ParentID,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("title", category.Title),
		)
		return fmt.Errorf("create category %s: %w", category.Title, err)
	}

	return nil
}

func (r *goodCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GoodCategory, error) {
	query := `
		SELECT id, title, description, parent_id, created_at, updated_at
		FROM good_categories
		WHERE id = $1
	`

	var category entity.GoodCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Title,
		&category.Description,
		&category.ParentID,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return nil, fmt.Errorf("find category by ID %s: %w", id.String(), err)
	}

	return &category, nil
}

func (r *goodCategoryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.GoodCategory, error) {
	query := `
		SELECT id, title, description, parent_id, created_at, updated_at
		FROM good_categories
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all categories",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all categories limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var categories []*entity.GoodCategory
	for rows.Next() {
		var category entity.GoodCategory
		err := rows.Scan(
			&category.ID,
			&category.Title,
			&category.Description,
			&category.ParentID,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *goodCategoryRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM good_categories`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count categories", zap.Error(err))
		return 0, fmt.Errorf("count all categories: %w", err)
	}

	return count, nil
}

func (r *goodCategoryRepository) Update(ctx context.Context, category *entity.GoodCategory) error {
	query := `
		UPDATE good_categories
		SET title = $2, description = $3, parent_id = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		category.ID,
		category.Title,
		category.Description,
		category.ParentID,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("category_id", category.ID.String()),
		)
		return fmt.Errorf("update category %s: %w", category.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", category.ID.String())
	}

	return nil
}

// Delete removes the category. The schema detaches child categories
// (parent set to null) and cascades the category's goods away.
func (r *goodCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM good_categories WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return fmt.Errorf("delete category %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", id.String())
	}

	r.log.Info("Category deleted", zap.String("category_id", id.String()))
	return nil
}
