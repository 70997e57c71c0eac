package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	portssvc "github.com/cambiolabs/cotacao-api/internal/core/ports/services"
	"github.com/cambiolabs/cotacao-api/internal/core/services"
	"github.com/cambiolabs/cotacao-api/internal/dto"
	"github.com/cambiolabs/cotacao-api/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveSaleChecked(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

// --- Test Suite ---
type TransacaoServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockTransactionRepository
	mockFetcher *MockQuoteFetcher
	service     portssvc.TransacaoSvcFacade
}

func (suite *TransacaoServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockFetcher = new(MockQuoteFetcher)
	suite.service = services.NewTransacaoService(suite.mockRepo, suite.mockFetcher)
}

func (suite *TransacaoServiceTestSuite) fetchedQuote(rate float64) *dto.FetchedQuote {
	return &dto.FetchedQuote{
		Amount: 1.0,
		Base:   "USD",
		Date:   "2024-01-01",
		Rates:  map[string]float64{"BRL": rate},
	}
}

func (suite *TransacaoServiceTestSuite) TestRegisterPurchase_Success() {
	ctx := context.Background()
	suite.mockFetcher.On("FetchLatest", ctx, "USD", "BRL").Return(suite.fetchedQuote(5.0), nil).Once()

	stored := &models.Transaction{
		ID:            7,
		UserID:        1,
		Tipo:          models.KindPurchase,
		QuantidadeUSD: 20.0,
		ValorBRL:      100.0,
		Cotacao:       5.0,
		DataTransacao: time.Now().UTC(),
	}
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn models.Transaction) bool {
		return txn.UserID == 1 &&
			txn.Tipo == models.KindPurchase &&
			txn.QuantidadeUSD == 20.0 &&
			txn.ValorBRL == 100.0 &&
			txn.Cotacao == 5.0 &&
			!txn.DataTransacao.IsZero()
	})).Return(stored, nil).Once()

	txn, err := suite.service.RegisterPurchase(ctx, 1, 100.0)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(int64(7), txn.ID)
	suite.Equal(20.0, txn.QuantidadeUSD)
	suite.Equal(5.0, txn.Cotacao)
	suite.Equal(models.KindPurchase, txn.Tipo)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *TransacaoServiceTestSuite) TestRegisterPurchase_NonPositiveAmount() {
	ctx := context.Background()

	txn, err := suite.service.RegisterPurchase(ctx, 1, 0)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "maior que zero")
	suite.mockFetcher.AssertNotCalled(suite.T(), "FetchLatest", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransacaoServiceTestSuite) TestRegisterPurchase_UpstreamFailure() {
	ctx := context.Background()
	suite.mockFetcher.On("FetchLatest", ctx, "USD", "BRL").
		Return(nil, fmt.Errorf("%w: timeout", apperrors.ErrUpstreamUnavailable)).Once()

	txn, err := suite.service.RegisterPurchase(ctx, 1, 100.0)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransacaoServiceTestSuite) TestRegisterPurchase_MissingBRLRate() {
	ctx := context.Background()
	fetched := &dto.FetchedQuote{
		Amount: 1.0,
		Base:   "USD",
		Date:   "2024-01-01",
		Rates:  map[string]float64{"EUR": 0.9},
	}
	suite.mockFetcher.On("FetchLatest", ctx, "USD", "BRL").Return(fetched, nil).Once()

	txn, err := suite.service.RegisterPurchase(ctx, 1, 100.0)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
}

func (suite *TransacaoServiceTestSuite) TestRegisterSale_Success() {
	ctx := context.Background()
	history := []models.Transaction{
		{UserID: 1, Tipo: models.KindPurchase, QuantidadeUSD: 20.0},
	}
	suite.mockRepo.On("ListTransactionsByUser", ctx, int64(1)).Return(history, nil).Once()
	suite.mockFetcher.On("FetchLatest", ctx, "USD", "BRL").Return(suite.fetchedQuote(5.0), nil).Once()

	stored := &models.Transaction{
		ID:            8,
		UserID:        1,
		Tipo:          models.KindSale,
		QuantidadeUSD: 10.0,
		ValorBRL:      50.0,
		Cotacao:       5.0,
		DataTransacao: time.Now().UTC(),
	}
	suite.mockRepo.On("SaveSaleChecked", ctx, mock.MatchedBy(func(txn models.Transaction) bool {
		return txn.UserID == 1 &&
			txn.Tipo == models.KindSale &&
			txn.QuantidadeUSD == 10.0 &&
			txn.ValorBRL == 50.0 &&
			txn.Cotacao == 5.0
	})).Return(stored, nil).Once()

	txn, err := suite.service.RegisterSale(ctx, 1, 10.0)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(int64(8), txn.ID)
	suite.Equal(50.0, txn.ValorBRL)
	suite.Equal(models.KindSale, txn.Tipo)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *TransacaoServiceTestSuite) TestRegisterSale_InsufficientBalance() {
	ctx := context.Background()
	history := []models.Transaction{
		{UserID: 1, Tipo: models.KindPurchase, QuantidadeUSD: 20.0},
	}
	suite.mockRepo.On("ListTransactionsByUser", ctx, int64(1)).Return(history, nil).Once()

	txn, err := suite.service.RegisterSale(ctx, 1, 25.0)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Saldo insuficiente. Saldo atual: 20.0 USD", err.Error())
	suite.mockFetcher.AssertNotCalled(suite.T(), "FetchLatest", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSaleChecked", mock.Anything, mock.Anything)
}

func (suite *TransacaoServiceTestSuite) TestRegisterSale_NonPositiveQuantity() {
	ctx := context.Background()

	txn, err := suite.service.RegisterSale(ctx, 1, -3.0)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "maior que zero")
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactionsByUser", mock.Anything, mock.Anything)
}

func (suite *TransacaoServiceTestSuite) TestRegisterSale_BalanceLookupFailure() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactionsByUser", ctx, int64(1)).Return(nil, errors.New("db down")).Once()

	txn, err := suite.service.RegisterSale(ctx, 1, 5.0)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Erro ao verificar saldo")
}

func (suite *TransacaoServiceTestSuite) TestCalculateUserBalance_Empty() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactionsByUser", ctx, int64(42)).Return([]models.Transaction{}, nil).Once()

	saldo, err := suite.service.CalculateUserBalance(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(0.0, saldo)
}

func (suite *TransacaoServiceTestSuite) TestCalculateUserBalance_Fold() {
	ctx := context.Background()
	history := []models.Transaction{
		{UserID: 1, Tipo: models.KindPurchase, QuantidadeUSD: 10.0},
		{UserID: 1, Tipo: models.KindSale, QuantidadeUSD: 4.0},
		{UserID: 1, Tipo: models.KindPurchase, QuantidadeUSD: 2.5},
	}
	suite.mockRepo.On("ListTransactionsByUser", ctx, int64(1)).Return(history, nil).Once()

	saldo, err := suite.service.CalculateUserBalance(ctx, 1)

	suite.Require().NoError(err)
	suite.InDelta(8.5, saldo, 1e-9)
}

func (suite *TransacaoServiceTestSuite) TestGetTransaction_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransaction(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransacaoServiceTestSuite) TestListUserTransactions_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactionsByUser", ctx, int64(1)).Return(nil, nil).Once()

	txns, err := suite.service.ListUserTransactions(ctx, 1)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func TestTransacaoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransacaoServiceTestSuite))
}
