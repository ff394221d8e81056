package models

import "time"

// Portfolio represents a portfolio as returned by the backend.
type Portfolio struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Currency       string    `json:"currency"`
	CashBalance    float64   `json:"cash_balance"`
	MarketValue    float64   `json:"market_value"`
	TotalCost      float64   `json:"total_cost"`
	TotalReturn    float64   `json:"total_return"`
	TotalReturnPct float64   `json:"total_return_pct"`
	Holdings       []Holding `json:"holdings,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Holding represents a position within a portfolio.
type Holding struct {
	Symbol       string  `json:"symbol"`
	Exchange     string  `json:"exchange,omitempty"`
	Name         string  `json:"name,omitempty"`
	Units        float64 `json:"units"`
	AvgCost      float64 `json:"avg_cost"`
	CurrentPrice float64 `json:"current_price"`
	MarketValue  float64 `json:"market_value"`
	GainLoss     float64 `json:"gain_loss"`
	GainLossPct  float64 `json:"gain_loss_pct"`
	WeightPct    float64 `json:"weight_pct,omitempty"`
}

// PortfolioInput is the create/update request payload for a portfolio.
type PortfolioInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	CashBalance float64 `json:"cash_balance,omitempty"`
}

// Transaction represents a cash or security transaction in a portfolio.
type Transaction struct {
	ID          string    `json:"id"`
	PortfolioID string    `json:"portfolio_id"`
	Type        string    `json:"type"` // buy, sell, deposit, withdrawal, dividend
	Symbol      string    `json:"symbol,omitempty"`
	Units       float64   `json:"units,omitempty"`
	Price       float64   `json:"price,omitempty"`
	Amount      float64   `json:"amount"`
	Note        string    `json:"note,omitempty"`
	ExecutedAt  time.Time `json:"executed_at"`
}

// TransactionInput is the request payload for recording a transaction.
type TransactionInput struct {
	Type   string  `json:"type"`
	Symbol string  `json:"symbol,omitempty"`
	Units  float64 `json:"units,omitempty"`
	Price  float64 `json:"price,omitempty"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note,omitempty"`
}
