package dto

import "github.com/cambiolabs/cotacao-api/internal/models"

// PurchaseParams are the query parameters for registering a USD purchase.
// Pointers let the handler distinguish a missing field from a malformed one.
type PurchaseParams struct {
	UserID   *int64   `form:"user_id"`
	ValorBRL *float64 `form:"valor_brl"`
}

// SaleParams are the query parameters for registering a USD sale.
type SaleParams struct {
	UserID        *int64   `form:"user_id"`
	QuantidadeUSD *float64 `form:"quantidade_usd"`
}

// TransactionResponse is the API representation of a recorded transaction.
type TransactionResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Tipo          string  `json:"tipo"`
	QuantidadeUSD float64 `json:"quantidade_usd"`
	ValorBRL      float64 `json:"valor_brl"`
	Cotacao       float64 `json:"cotacao"`
	DataTransacao string  `json:"data_transacao"`
}

// ToTransactionResponse converts a domain transaction to its API shape.
func ToTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		Tipo:          string(t.Tipo),
		QuantidadeUSD: t.QuantidadeUSD,
		ValorBRL:      t.ValorBRL,
		Cotacao:       t.Cotacao,
		DataTransacao: t.DataTransacao.Format(dateTimeLayout),
	}
}

// ToTransactionListResponse converts a slice of transactions, returning a
// non-nil slice so an empty history renders as [].
func ToTransactionListResponse(txns []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// SaldoResponse carries a user's derived USD balance.
type SaldoResponse struct {
	SaldoUSD float64 `json:"saldo_usd"`
}
