package models

import "time"

// Strategy represents an authored trading strategy.
type Strategy struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"` // dsl, python
	Source      string    `json:"source,omitempty"`
	Version     int       `json:"version"`
	Status      string    `json:"status"` // draft, active, archived
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StrategyInput is the create/update request payload for a strategy.
type StrategyInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Language    string   `json:"language,omitempty"`
	Source      string   `json:"source,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// StrategyVersion is a historical version of a strategy's source.
type StrategyVersion struct {
	Version   int       `json:"version"`
	Source    string    `json:"source"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SignalEvaluation is the backend's evaluation of a strategy's signals
// against current market data.
type SignalEvaluation struct {
	StrategyID  string    `json:"strategy_id"`
	EvaluatedAt time.Time `json:"evaluated_at"`
	Signals     []Signal  `json:"signals"`
}

// Signal is a single instrument-level signal produced by an evaluation.
type Signal struct {
	Symbol      string  `json:"symbol"`
	Action      string  `json:"action"` // BUY, SELL, HOLD
	Strength    float64 `json:"strength,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	PriceAtEval float64 `json:"price_at_eval,omitempty"`
}
