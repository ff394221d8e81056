package models

import "time"

// Order represents an order submitted for execution.
type Order struct {
	ID           string    `json:"id"`
	PortfolioID  string    `json:"portfolio_id"`
	Symbol       string    `json:"symbol"`
	Side         string    `json:"side"` // buy, sell
	Type         string    `json:"type"` // market, limit
	Units        float64   `json:"units"`
	LimitPrice   float64   `json:"limit_price,omitempty"`
	Status       string    `json:"status"` // pending, filled, partial, cancelled, rejected
	FilledUnits  float64   `json:"filled_units,omitempty"`
	AvgFillPrice float64   `json:"avg_fill_price,omitempty"`
	PlacedAt     time.Time `json:"placed_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// OrderInput is the request payload for placing an order.
type OrderInput struct {
	PortfolioID string  `json:"portfolio_id"`
	Symbol      string  `json:"symbol"`
	Side        string  `json:"side"`
	Type        string  `json:"type"`
	Units       float64 `json:"units"`
	LimitPrice  float64 `json:"limit_price,omitempty"`
}

// Trade represents an executed fill.
type Trade struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Symbol     string    `json:"symbol"`
	Side       string    `json:"side"`
	Units      float64   `json:"units"`
	Price      float64   `json:"price"`
	Fee        float64   `json:"fee,omitempty"`
	ExecutedAt time.Time `json:"executed_at"`
}

// Position represents an open position as reported by the backend.
type Position struct {
	Symbol        string  `json:"symbol"`
	PortfolioID   string  `json:"portfolio_id,omitempty"`
	Units         float64 `json:"units"`
	AvgPrice      float64 `json:"avg_price"`
	MarketPrice   float64 `json:"market_price"`
	MarketValue   float64 `json:"market_value"`
	UnrealizedPnL float64 `json:"unrealized_pnl"`
}

// Quote is an executable quote for a symbol.
type Quote struct {
	Symbol   string    `json:"symbol"`
	Bid      float64   `json:"bid"`
	Ask      float64   `json:"ask"`
	Last     float64   `json:"last"`
	QuotedAt time.Time `json:"quoted_at"`
}
