package services

import (
	"context"

	"github.com/cambiolabs/cotacao-api/internal/dto"
	"github.com/cambiolabs/cotacao-api/internal/models"
)

// CotacaoSvcFacade exposes quote operations to the handler layer.
type CotacaoSvcFacade interface {
	// GetCurrentQuote returns today's stored USD/BRL quote if present,
	// otherwise the live upstream quote without persisting it.
	GetCurrentQuote(ctx context.Context) (*dto.QuoteResponse, error)
	// SaveCurrentQuote fetches the live quote, persists every parsed rate
	// record in one transaction and returns the fetched structure.
	SaveCurrentQuote(ctx context.Context) (*dto.QuoteResponse, error)
	// ListQuoteHistory returns all stored quotes, newest date first.
	ListQuoteHistory(ctx context.Context) ([]dto.QuoteHistoryItem, error)
}

// TransacaoSvcFacade exposes trading operations to the handler layer.
type TransacaoSvcFacade interface {
	// RegisterPurchase converts valorBRL into USD at the live rate and
	// records a purchase for the user.
	RegisterPurchase(ctx context.Context, userID int64, valorBRL float64) (*models.Transaction, error)
	// RegisterSale converts quantidadeUSD into BRL at the live rate and
	// records a sale, enforcing the user's balance.
	RegisterSale(ctx context.Context, userID int64, quantidadeUSD float64) (*models.Transaction, error)
	// GetTransaction returns one transaction or apperrors.ErrNotFound.
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	// ListUserTransactions returns every transaction for the user.
	ListUserTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	// CalculateUserBalance folds the user's history into a net USD position.
	CalculateUserBalance(ctx context.Context, userID int64) (float64, error)
}

// ServiceContainer groups the service facades handed to route registration.
type ServiceContainer struct {
	Cotacao   CotacaoSvcFacade
	Transacao TransacaoSvcFacade
}
