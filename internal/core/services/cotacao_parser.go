package services

import (
	"fmt"
	"time"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	"github.com/cambiolabs/cotacao-api/internal/dto"
	"github.com/cambiolabs/cotacao-api/internal/models"
)

const quoteDateLayout = "2006-01-02"

// ParseQuotes validates a fetched payload and expands it into one Quote per
// rate entry, all sharing the payload's base and date. A payload that would
// yield zero records is a validation failure. Pure function: no I/O.
func ParseQuotes(fetched *dto.FetchedQuote) ([]models.Quote, error) {
	if fetched == nil {
		return nil, fmt.Errorf("%w: empty quote payload", apperrors.ErrValidation)
	}
	if fetched.Base == "" {
		return nil, fmt.Errorf("%w: quote payload missing base", apperrors.ErrValidation)
	}
	if fetched.Date == "" {
		return nil, fmt.Errorf("%w: quote payload missing date", apperrors.ErrValidation)
	}
	if len(fetched.Rates) == 0 {
		return nil, fmt.Errorf("%w: quote payload has no rates", apperrors.ErrValidation)
	}

	data, err := time.Parse(quoteDateLayout, fetched.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid quote date %q", apperrors.ErrValidation, fetched.Date)
	}

	quotes := make([]models.Quote, 0, len(fetched.Rates))
	for moeda, valor := range fetched.Rates {
		quotes = append(quotes, models.Quote{
			Base:  fetched.Base,
			Moeda: moeda,
			Valor: valor,
			Data:  data,
		})
	}
	return quotes, nil
}
