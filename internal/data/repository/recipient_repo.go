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

type RecipientRepository interface {
	Create(ctx context.Context, recipient *entity.Recipient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipient, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Recipient, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Recipient, error)
	FindAll(ctx context.Context) ([]*entity.Recipient, error)
	Update(ctx context.Context, recipient *entity.Recipient) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRecipientRepository(db database.PgxIface, log *zap.Logger) RecipientRepository {
	return &recipientRepository{
		db:  db,
		log: log.With(zap.String("repository", "recipient")),
	}
}

func (r *recipientRepository) Create(ctx context.Context, recipient *entity.Recipient) error {
	query := `
		INSERT INTO recipients (id, user_id, first_name, last_name, middle_name,
		                        address, zip_code, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		recipient.ID,
		recipient.UserID,
		recipient.FirstName,
		recipient.LastName,
		recipient.MiddleName,
		recipient.Address,
		recipient.ZipCode,
		recipient.Phone,
		recipient.CreatedAt,
		recipient.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create recipient",
			zap.Error(err),
			zap.String("user_id", recipient.UserID.String()),
		)
		return fmt.Errorf("create recipient for user %s: %w", recipient.UserID.String(), err)
	}

	return nil
}

func (r *recipientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipient, error) {
	query := `
		SELECT id, user_id, first_name, last_name, middle_name,
		       address, zip_code, phone, created_at, updated_at
		FROM recipients
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id)
}

func (r *recipientRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Recipient, error) {
	query := `
		SELECT id, user_id, first_name, last_name, middle_name,
		       address, zip_code, phone, created_at, updated_at
		FROM recipients
		WHERE id = $1 AND user_id = $2
	`

	return r.scanOne(ctx, query, id, userID)
}

func (r *recipientRepository) scanOne(ctx context.Context, query string, args ...any) (*entity.Recipient, error) {
	var recipient entity.Recipient
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&recipient.ID,
		&recipient.UserID,
		&recipient.FirstName,
		&recipient.LastName,
		&recipient.MiddleName,
		&recipient.Address,
		&recipient.ZipCode,
		&recipient.Phone,
		&recipient.CreatedAt,
		&recipient.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find recipient", zap.Error(err))
		return nil, fmt.Errorf("find recipient: %w", err)
	}

	return &recipient, nil
}

func (r *recipientRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Recipient, error) {
	query := `
		SELECT id, user_id, first_name, last_name, middle_name,
		       address, zip_code, phone, created_at, updated_at
		FROM recipients
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return r.scanMany(ctx, query, userID)
}

// FindAll lists every recipient, admin only.
func (r *recipientRepository) FindAll(ctx context.Context) ([]*entity.Recipient, error) {
	query := `
		SELECT id, user_id, first_name, last_name, middle_name,
		       address, zip_code, phone, created_at, updated_at
		FROM recipients
		ORDER BY created_at DESC
	`

	return r.scanMany(ctx, query)
}

func (r *recipientRepository) scanMany(ctx context.Context, query string, args ...any) ([]*entity.Recipient, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find recipients", zap.Error(err))
		return nil, fmt.Errorf("find recipients: %w", err)
	}
	defer rows.Close()

	var recipients []*entity.Recipient
	for rows.Next() {
		var recipient entity.Recipient
		err := rows.Scan(
			&recipient.ID,
			&recipient.UserID,
			&recipient.FirstName,
			&recipient.LastName,
			&recipient.MiddleName,
			&recipient.Address,
			&recipient.ZipCode,
			&recipient.Phone,
			&recipient.CreatedAt,
			&recipient.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan recipient row", zap.Error(err))
			return nil, fmt.Errorf("scan recipient row: %w", err)
		}
		recipients = append(recipients, &recipient)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate recipient rows: %w", err)
	}

	return recipients, nil
}

func (r *recipientRepository) Update(ctx context.Context, recipient *entity.Recipient) error {
	query := `
		UPDATE recipients
		SET first_name = $2, last_name = $3, middle_name = $4,
		    address = $5, zip_code = $6, phone = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		recipient.ID,
		recipient.FirstName,
		recipient.LastName,
		recipient.MiddleName,
		recipient.Address,
		recipient.ZipCode,
		recipient.Phone,
		recipient.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update recipient",
			zap.Error(err),
			zap.String("recipient_id", recipient.ID.String()),
		)
		return fmt.Errorf("update recipient %s: %w", recipient.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("recipient %s not found", recipient.ID.String())
	}

	return nil
}

// Delete fails with a foreign key violation while any checkout still
// references the recipient.
func (r *recipientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM recipients WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Warn("Failed to delete recipient",
			zap.Error(err),
			zap.String("recipient_id", id.String()),
		)
		return fmt.Errorf("delete recipient %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("recipient %s not found", id.String())
	}

	r.log.Info("Recipient deleted", zap.String("recipient_id", id.String()))
	return nil
}
