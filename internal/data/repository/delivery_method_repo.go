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

type DeliveryMethodRepository interface {
	Create(ctx context.Context, method *entity.DeliveryMethod) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryMethod, error)
	FindAll(ctx context.Context) ([]*entity.DeliveryMethod, error)
	Update(ctx context.Context, method *entity.DeliveryMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type deliveryMethodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDeliveryMethodRepository(db database.PgxIface, log *zap.Logger) DeliveryMethodRepository {
	return &deliveryMethodRepository{
		db:  db,
		log: log.With(zap.String("repository", "delivery_method")),
	}
}

func (r *deliveryMethodRepository) Create(ctx context.Context, method *entity.DeliveryMethod) error {
	query := `
		INSERT INTO delivery_methods (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		method.ID,
		method.Title,
		method.Description,
		method.CreatedAt,
		method.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create delivery method",
			zap.Error(err),
			zap.String("title", method.Title),
		)
		return fmt.Errorf("create delivery method %s: %w", method.Title, err)
	}

	return nil
}

func (r *deliveryMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryMethod, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM delivery_methods
		WHERE id = $1
	`

	var method entity.DeliveryMethod
	err := r.db.QueryRow(ctx, query, id).Scan(
		&method.ID,
		&method.Title,
		&method.Description,
		&method.CreatedAt,
		&method.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find delivery method by ID",
			zap.Error(err),
			zap.String("delivery_method_id", id.String()),
		)
		return nil, fmt.Errorf("find delivery method by ID %s: %w", id.String(), err)
	}

	return &method, nil
}

func (r *deliveryMethodRepository) FindAll(ctx context.Context) ([]*entity.DeliveryMethod, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM delivery_methods
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all delivery methods", zap.Error(err))
		return nil, fmt.Errorf("find all delivery methods: %w", err)
	}
	defer rows.Close()

	var methods []*entity.DeliveryMethod
	for rows.Next() {
		var method entity.DeliveryMethod
		err := rows.Scan(
			&method.ID,
			&method.Title,
			&method.Description,
			&method.CreatedAt,
			&method.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan delivery method row", zap.Error(err))
			return nil, fmt.Errorf("scan delivery method row: %w", err)
		}
		methods = append(methods, &method)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate delivery method rows: %w", err)
	}

	return methods, nil
}

func (r *deliveryMethodRepository) Update(ctx context.Context, method *entity.DeliveryMethod) error {
	query := `
		UPDATE delivery_methods
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		method.ID,
		method.Title,
		method.Description,
		method.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update delivery method",
			zap.Error(err),
			zap.String("delivery_method_id", method.ID.String()),
		)
		return fmt.Errorf("update delivery method %s: %w", method.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delivery method %s not found", method.ID.String())
	}

	return nil
}

// Delete fails with a foreign key violation while any checkout still
// references the method.
func (r *deliveryMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM delivery_methods WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Warn("Failed to delete delivery method",
			zap.Error(err),
			zap.String("delivery_method_id", id.String()),
		)
		return fmt.Errorf("delete delivery method %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delivery method %s not found", id.String())
	}

	r.log.Info("Delivery method deleted", zap.String("delivery_method_id", id.String()))
	return nil
}
