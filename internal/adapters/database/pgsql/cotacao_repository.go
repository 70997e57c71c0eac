package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	"github.com/cambiolabs/cotacao-api/internal/core/ports"
	"github.com/cambiolabs/cotacao-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxQuoteRepository implements ports.QuoteRepository using pgxpool.
type PgxQuoteRepository struct {
	BaseRepository
}

var _ ports.QuoteRepository = (*PgxQuoteRepository)(nil)

// NewPgxQuoteRepository creates a new PgxQuoteRepository.
func NewPgxQuoteRepository(pool *pgxpool.Pool) *PgxQuoteRepository {
	return &PgxQuoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// FindQuote retrieves the stored rate for a currency pair on a given date.
func (r *PgxQuoteRepository) FindQuote(ctx context.Context, base, moeda string, data time.Time) (*models.Quote, error) {
	query := `
		SELECT id, base, moeda, valor, data, created_at
		FROM cotacoes
		WHERE base = $1 AND moeda = $2 AND data = $3;
	`

	var quote models.Quote
	err := r.Pool.QueryRow(ctx, query, base, moeda, data).Scan(
		&quote.ID, &quote.Base, &quote.Moeda, &quote.Valor, &quote.Data, &quote.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote %s/%s: %w", base, moeda, err)
	}
	return &quote, nil
}

// SaveQuotes inserts a batch of quotes within one database transaction.
// Either every quote is persisted or none is.
func (r *PgxQuoteRepository) SaveQuotes(ctx context.Context, quotes []models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	batch := &pgx.Batch{}
	insertQuery := `
		INSERT INTO cotacoes (base, moeda, valor, data, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, q := range quotes {
		batch.Queue(insertQuery, q.Base, q.Moeda, q.Valor, q.Data, q.CreatedAt)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: quote already stored for pair and date", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert quote batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// ListQuotesByDateDesc returns all stored quotes ordered by date descending.
func (r *PgxQuoteRepository) ListQuotesByDateDesc(ctx context.Context) ([]models.Quote, error) {
	query := `
		SELECT id, base, moeda, valor, data, created_at
		FROM cotacoes
		ORDER BY data DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var quote models.Quote
		if err := rows.Scan(&quote.ID, &quote.Base, &quote.Moeda, &quote.Valor, &quote.Data, &quote.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quotes: %w", err)
	}
	return quotes, nil
}
