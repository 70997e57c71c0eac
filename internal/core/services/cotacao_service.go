package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	"github.com/cambiolabs/cotacao-api/internal/core/ports"
	"github.com/cambiolabs/cotacao-api/internal/dto"
)

const (
	baseCurrency  = "USD"
	quoteCurrency = "BRL"
)

// CotacaoService provides business logic for exchange rate quotes.
type CotacaoService struct {
	quoteRepo ports.QuoteRepository
	fetcher   ports.QuoteFetcher
}

// NewCotacaoService creates a new CotacaoService.
func NewCotacaoService(quoteRepo ports.QuoteRepository, fetcher ports.QuoteFetcher) *CotacaoService {
	return &CotacaoService{
		quoteRepo: quoteRepo,
		fetcher:   fetcher,
	}
}

// GetCurrentQuote returns today's stored USD/BRL quote when present, falling
// back to the live upstream quote without persisting it.
func (s *CotacaoService) GetCurrentQuote(ctx context.Context) (*dto.QuoteResponse, error) {
	hoje := time.Now().UTC().Truncate(24 * time.Hour)

	stored, err := s.quoteRepo.FindQuote(ctx, baseCurrency, quoteCurrency, hoje)
	if err == nil {
		resp := dto.ToStoredQuoteResponse(*stored)
		return &resp, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up today's quote: %w", err)
	}

	fetched, err := s.fetcher.FetchLatest(ctx, baseCurrency, quoteCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch live quote: %w", err)
	}

	resp := dto.FromFetchedQuote(fetched)
	return &resp, nil
}

// SaveCurrentQuote fetches the live quote, parses it into storable records and
// persists them all-or-nothing. The originally fetched structure is returned.
func (s *CotacaoService) SaveCurrentQuote(ctx context.Context) (*dto.QuoteResponse, error) {
	fetched, err := s.fetcher.FetchLatest(ctx, baseCurrency, quoteCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch live quote: %w", err)
	}

	quotes, err := ParseQuotes(fetched)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quote payload: %w", err)
	}

	now := time.Now().UTC()
	for i := range quotes {
		quotes[i].CreatedAt = now
	}

	if err := s.quoteRepo.SaveQuotes(ctx, quotes); err != nil {
		return nil, fmt.Errorf("failed to save quotes: %w", err)
	}

	resp := dto.FromFetchedQuote(fetched)
	return &resp, nil
}

// ListQuoteHistory returns every stored quote, newest date first.
func (s *CotacaoService) ListQuoteHistory(ctx context.Context) ([]dto.QuoteHistoryItem, error) {
	quotes, err := s.quoteRepo.ListQuotesByDateDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote history: %w", err)
	}
	return dto.ToQuoteHistory(quotes), nil
}
