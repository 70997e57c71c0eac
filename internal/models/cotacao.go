package models

import "time"

// Quote stores one observed exchange rate for a currency pair on a given date.
// The (base, moeda, data) triple is unique: at most one rate per pair per day.
type Quote struct {
	ID        int64     `json:"id"`
	Base      string    `json:"base"`  // 3-letter base currency code, e.g. USD
	Moeda     string    `json:"moeda"` // 3-letter quote currency code, e.g. BRL
	Valor     float64   `json:"valor"` // units of Moeda per one unit of Base
	Data      time.Time `json:"data"`  // calendar date the rate was observed for
	CreatedAt time.Time `json:"created_at"`
}
