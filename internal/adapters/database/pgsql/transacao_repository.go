package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	"github.com/cambiolabs/cotacao-api/internal/core/ports"
	"github.com/cambiolabs/cotacao-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements ports.TransactionRepository using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

var _ ports.TransactionRepository = (*PgxTransactionRepository)(nil)

// NewPgxTransactionRepository creates a new PgxTransactionRepository.
func NewPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SaveTransaction inserts a transaction and returns it with the assigned id.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transacoes (user_id, tipo, quantidade_usd, valor_brl, cotacao, data_transacao)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`

	err := r.Pool.QueryRow(ctx, query,
		txn.UserID, txn.Tipo, txn.QuantidadeUSD, txn.ValorBRL, txn.Cotacao, txn.DataTransacao,
	).Scan(&txn.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return &txn, nil
}

// SaveSaleChecked inserts a sale after re-checking the user's USD balance
// inside the same database transaction. A per-user advisory lock serializes
// concurrent sales, so two requests cannot both pass the sufficiency check.
func (r *PgxTransactionRepository) SaveSaleChecked(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, txn.UserID); err != nil {
		return nil, fmt.Errorf("failed to acquire user lock: %w", err)
	}

	var saldo float64
	balanceQuery := `
		SELECT COALESCE(SUM(CASE WHEN tipo = 'compra' THEN quantidade_usd ELSE -quantidade_usd END), 0)
		FROM transacoes
		WHERE user_id = $1;
	`
	if err := tx.QueryRow(ctx, balanceQuery, txn.UserID).Scan(&saldo); err != nil {
		return nil, fmt.Errorf("failed to compute balance for user %d: %w", txn.UserID, err)
	}
	if saldo < txn.QuantidadeUSD {
		return nil, apperrors.NewInsufficientBalanceError(saldo)
	}

	insertQuery := `
		INSERT INTO transacoes (user_id, tipo, quantidade_usd, valor_brl, cotacao, data_transacao)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		txn.UserID, txn.Tipo, txn.QuantidadeUSD, txn.ValorBRL, txn.Cotacao, txn.DataTransacao,
	).Scan(&txn.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert sale: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &txn, nil
}

// FindTransactionByID retrieves a transaction by its id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, tipo, quantidade_usd, valor_brl, cotacao, data_transacao
		FROM transacoes
		WHERE id = $1;
	`

	var txn models.Transaction
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&txn.ID, &txn.UserID, &txn.Tipo, &txn.QuantidadeUSD, &txn.ValorBRL, &txn.Cotacao, &txn.DataTransacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", id, err)
	}
	return &txn, nil
}

// ListTransactionsByUser retrieves every transaction recorded for a user.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, tipo, quantidade_usd, valor_brl, cotacao, data_transacao
		FROM transacoes
		WHERE user_id = $1;
	`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var txn models.Transaction
		if err := rows.Scan(&txn.ID, &txn.UserID, &txn.Tipo, &txn.QuantidadeUSD, &txn.ValorBRL, &txn.Cotacao, &txn.DataTransacao); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return txns, nil
}
