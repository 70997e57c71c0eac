package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	"github.com/cambiolabs/cotacao-api/internal/core/ports"
	"github.com/cambiolabs/cotacao-api/internal/models"
)

// TransacaoService provides business logic for simulated USD/BRL trades.
type TransacaoService struct {
	txnRepo ports.TransactionRepository
	fetcher ports.QuoteFetcher
}

// NewTransacaoService creates a new TransacaoService.
func NewTransacaoService(txnRepo ports.TransactionRepository, fetcher ports.QuoteFetcher) *TransacaoService {
	return &TransacaoService{
		txnRepo: txnRepo,
		fetcher: fetcher,
	}
}

// RegisterPurchase validates the BRL amount, fetches the live USD/BRL rate,
// converts and records a purchase for the user.
func (s *TransacaoService) RegisterPurchase(ctx context.Context, userID int64, valorBRL float64) (*models.Transaction, error) {
	if err := s.validatePurchase(valorBRL); err != nil {
		return nil, err
	}

	cotacao, err := s.fetchRate(ctx)
	if err != nil {
		return nil, err
	}

	txn := models.Transaction{
		UserID:        userID,
		Tipo:          models.KindPurchase,
		QuantidadeUSD: valorBRL / cotacao,
		ValorBRL:      valorBRL,
		Cotacao:       cotacao,
		DataTransacao: time.Now().UTC(),
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}
	return saved, nil
}

// RegisterSale validates the USD quantity against the user's balance, fetches
// the live rate, converts and records a sale. The repository re-checks the
// balance under a per-user lock before inserting.
func (s *TransacaoService) RegisterSale(ctx context.Context, userID int64, quantidadeUSD float64) (*models.Transaction, error) {
	if err := s.validateSale(ctx, userID, quantidadeUSD); err != nil {
		return nil, err
	}

	cotacao, err := s.fetchRate(ctx)
	if err != nil {
		return nil, err
	}

	txn := models.Transaction{
		UserID:        userID,
		Tipo:          models.KindSale,
		QuantidadeUSD: quantidadeUSD,
		ValorBRL:      quantidadeUSD * cotacao,
		Cotacao:       cotacao,
		DataTransacao: time.Now().UTC(),
	}

	saved, err := s.txnRepo.SaveSaleChecked(ctx, txn)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}
	return saved, nil
}

// GetTransaction returns one transaction by id.
func (s *TransacaoService) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", id, err)
	}
	return txn, nil
}

// ListUserTransactions returns every transaction recorded for the user.
func (s *TransacaoService) ListUserTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %d: %w", userID, err)
	}
	if txns == nil {
		return []models.Transaction{}, nil
	}
	return txns, nil
}

// CalculateUserBalance folds the user's history into a net USD position:
// purchases add their USD quantity, sales subtract it. A user with no
// transactions holds exactly 0.0.
func (s *TransacaoService) CalculateUserBalance(ctx context.Context, userID int64) (float64, error) {
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load transactions for balance of user %d: %w", userID, err)
	}

	saldo := 0.0
	for _, txn := range txns {
		if txn.Tipo == models.KindPurchase {
			saldo += txn.QuantidadeUSD
		} else {
			saldo -= txn.QuantidadeUSD
		}
	}
	return saldo, nil
}

func (s *TransacaoService) validatePurchase(valorBRL float64) error {
	if valorBRL <= 0 {
		return apperrors.NewValidationError("O valor da compra deve ser maior que zero")
	}
	return nil
}

func (s *TransacaoService) validateSale(ctx context.Context, userID int64, quantidadeUSD float64) error {
	if quantidadeUSD <= 0 {
		return apperrors.NewValidationError("A quantidade de USD deve ser maior que zero")
	}

	saldo, err := s.CalculateUserBalance(ctx, userID)
	if err != nil {
		return apperrors.NewValidationError("Erro ao verificar saldo do usuário")
	}
	if saldo < quantidadeUSD {
		return apperrors.NewInsufficientBalanceError(saldo)
	}
	return nil
}

func (s *TransacaoService) fetchRate(ctx context.Context) (float64, error) {
	fetched, err := s.fetcher.FetchLatest(ctx, baseCurrency, quoteCurrency)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch live quote: %w", err)
	}

	cotacao, ok := fetched.Rates[quoteCurrency]
	if !ok || cotacao <= 0 {
		return 0, fmt.Errorf("%w: response missing usable %s rate", apperrors.ErrUpstreamUnavailable, quoteCurrency)
	}
	return cotacao, nil
}
