package models

import "time"

// PriceTick is the latest price for a symbol.
type PriceTick struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Change    float64   `json:"change,omitempty"`
	ChangePct float64   `json:"change_pct,omitempty"`
	AsOf      time.Time `json:"as_of"`
}

// Candle is a single OHLCV bar.
type Candle struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// SymbolMatch is a single instrument search result.
type SymbolMatch struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange,omitempty"`
	Type     string `json:"type,omitempty"` // equity, etf, index, fx
	Currency string `json:"currency,omitempty"`
}
