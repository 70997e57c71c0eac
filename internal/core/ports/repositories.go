package ports

import (
	"context"
	"time"

	"github.com/cambiolabs/cotacao-api/internal/dto"
	"github.com/cambiolabs/cotacao-api/internal/models"
)

// QuoteRepository defines persistence operations for stored exchange rates.
type QuoteRepository interface {
	// FindQuote returns the stored rate for the pair on the given date,
	// or apperrors.ErrNotFound.
	FindQuote(ctx context.Context, base, moeda string, data time.Time) (*models.Quote, error)
	// SaveQuotes persists a batch of quotes within a single database
	// transaction; on any failure nothing is written. A unique constraint
	// violation surfaces as apperrors.ErrDuplicate.
	SaveQuotes(ctx context.Context, quotes []models.Quote) error
	// ListQuotesByDateDesc returns all stored quotes ordered by date
	// descending; ties are unordered.
	ListQuotesByDateDesc(ctx context.Context) ([]models.Quote, error)
}

// TransactionRepository defines persistence operations for buy/sell records.
type TransactionRepository interface {
	// SaveTransaction inserts a transaction and returns the stored record
	// with its assigned id.
	SaveTransaction(ctx context.Context, txn models.Transaction) (*models.Transaction, error)
	// SaveSaleChecked inserts a sale after re-checking the user's balance
	// under a per-user lock, so concurrent sales cannot overdraw. Returns
	// a validation error when the balance is insufficient.
	SaveSaleChecked(ctx context.Context, txn models.Transaction) (*models.Transaction, error)
	// FindTransactionByID returns the transaction or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, id int64) (*models.Transaction, error)
	// ListTransactionsByUser returns every transaction recorded for the user.
	ListTransactionsByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
}

// QuoteFetcher retrieves the latest rate for a currency pair from the
// external rate service.
type QuoteFetcher interface {
	// FetchLatest returns the upstream payload, or an error wrapping
	// apperrors.ErrUpstreamUnavailable on network failure, non-2xx status
	// or an unparsable body.
	FetchLatest(ctx context.Context, base, symbol string) (*dto.FetchedQuote, error)
}
