package dto

import (
	"time"

	"github.com/cambiolabs/cotacao-api/internal/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// FetchedQuote mirrors the payload returned by the external rate service:
// {"amount": 1.0, "base": "USD", "date": "2024-01-01", "rates": {"BRL": 5.0}}
type FetchedQuote struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// QuoteResponse is the API representation of a quote, either fetched live
// (no created_at) or read back from the store.
type QuoteResponse struct {
	Amount    float64            `json:"amount"`
	Base      string             `json:"base"`
	Date      string             `json:"date"`
	CreatedAt string             `json:"created_at,omitempty"`
	Rates     map[string]float64 `json:"rates"`
}

// FromFetchedQuote converts an upstream payload into a QuoteResponse unchanged.
func FromFetchedQuote(q *FetchedQuote) QuoteResponse {
	return QuoteResponse{
		Amount: q.Amount,
		Base:   q.Base,
		Date:   q.Date,
		Rates:  q.Rates,
	}
}

// ToStoredQuoteResponse converts a stored quote into the API shape.
// created_at is rendered in UTC-3, matching the historical API contract,
// regardless of the location the scanned time carries.
func ToStoredQuoteResponse(q models.Quote) QuoteResponse {
	return QuoteResponse{
		Amount:    1.0,
		Base:      q.Base,
		Date:      q.Data.Format(dateLayout),
		CreatedAt: q.CreatedAt.UTC().Add(-3 * time.Hour).Format(dateTimeLayout),
		Rates:     map[string]float64{q.Moeda: q.Valor},
	}
}

// QuoteHistoryItem is one row of the quote history listing.
type QuoteHistoryItem struct {
	Base  string  `json:"base"`
	Moeda string  `json:"moeda"`
	Valor float64 `json:"valor"`
	Data  string  `json:"data"`
}

// ToQuoteHistory converts stored quotes into history items.
// Always returns a non-nil slice so the API renders [] instead of null.
func ToQuoteHistory(quotes []models.Quote) []QuoteHistoryItem {
	items := make([]QuoteHistoryItem, len(quotes))
	for i, q := range quotes {
		items[i] = QuoteHistoryItem{
			Base:  q.Base,
			Moeda: q.Moeda,
			Valor: q.Valor,
			Data:  q.Data.Format(dateLayout),
		}
	}
	return items
}
