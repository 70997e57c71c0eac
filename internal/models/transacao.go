package models

import "time"

// TransactionKind indicates whether a transaction bought or sold USD.
type TransactionKind string

const (
	KindPurchase TransactionKind = "compra"
	KindSale     TransactionKind = "venda"
)

// Transaction represents one simulated buy or sell of USD against BRL.
// ValorBRL = QuantidadeUSD * Cotacao holds by construction for both kinds.
type Transaction struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Tipo          TransactionKind `json:"tipo"`
	QuantidadeUSD float64         `json:"quantidade_usd"`
	ValorBRL      float64         `json:"valor_brl"`
	Cotacao       float64         `json:"cotacao"` // BRL per USD at execution time
	DataTransacao time.Time       `json:"data_transacao"`
}
