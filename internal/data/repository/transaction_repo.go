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

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Transaction, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, checkout_id, status, amount, provider_data,
		                          created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		tx.ID,
		tx.CheckoutID,
		tx.Status,
		tx.Amount,
		tx.ProviderData,
		tx.CreatedAt,
		tx.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create transaction",
			zap.Error(err),
			zap.String("checkout_id", tx.CheckoutID.String()),
		)
		return fmt.Errorf("create transaction for checkout %s: %w", tx.CheckoutID.String(), err)
	}

	return nil
}

func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	query := `
		SELECT id, checkout_id, status, amount, provider_data, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var tx entity.Transaction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tx.ID,
		&tx.CheckoutID,
		&tx.Status,
		&tx.Amount,
		&tx.ProviderData,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find transaction by ID",
			zap.Error(err),
			zap.String("transaction_id", id.String()),
		)
		return nil, fmt.Errorf("find transaction by ID %s: %w", id.String(), err)
	}

	return &tx, nil
}

func (r *transactionRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, checkout_id, status, amount, provider_data, created_at, updated_at
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all transactions",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all transactions limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var txs []*entity.Transaction
	for rows.Next() {
		var tx entity.Transaction
		err := rows.Scan(
			&tx.ID,
			&tx.CheckoutID,
			&tx.Status,
			&tx.Amount,
			&tx.ProviderData,
			&tx.CreatedAt,
			&tx.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return txs, nil
}

func (r *transactionRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count transactions", zap.Error(err))
		return 0, fmt.Errorf("count all transactions: %w", err)
	}

	return count, nil
}

func (r *transactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET checkout_id = $2, status = $3, amount = $4, provider_data = $5,
		    updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		tx.ID,
		tx.CheckoutID,
		tx.Status,
		tx.Amount,
		tx.ProviderData,
		tx.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update transaction",
			zap.Error(err),
			zap.String("transaction_id", tx.ID.String()),
		)
		return fmt.Errorf("update transaction %s: %w", tx.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found", tx.ID.String())
	}

	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete transaction",
			zap.Error(err),
			zap.String("transaction_id", id.String()),
		)
		return fmt.Errorf("delete transaction %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found", id.String())
	}

	r.log.Info("Transaction deleted", zap.String("transaction_id", id.String()))
	return nil
}
