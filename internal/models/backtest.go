package models

import "time"

// BacktestStatus is the lifecycle state of a backtest run.
type BacktestStatus string

const (
	BacktestStatusQueued    BacktestStatus = "queued"
	BacktestStatusRunning   BacktestStatus = "running"
	BacktestStatusCompleted BacktestStatus = "completed"
	BacktestStatusFailed    BacktestStatus = "failed"
	BacktestStatusCancelled BacktestStatus = "cancelled"
)

// Terminal reports whether the status is a final state (no further polling).
func (s BacktestStatus) Terminal() bool {
	switch s {
	case BacktestStatusCompleted, BacktestStatusFailed, BacktestStatusCancelled:
		return true
	}
	return false
}

// Backtest represents a backtest run executed by the backend.
type Backtest struct {
	ID          string         `json:"id"`
	StrategyID  string         `json:"strategy_id"`
	Name        string         `json:"name,omitempty"`
	Status      BacktestStatus `json:"status"`
	Progress    float64        `json:"progress,omitempty"` // 0..100 while running
	Error       string         `json:"error,omitempty"`
	StartedAt   time.Time      `json:"started_at,omitempty"`
	CompletedAt time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// BacktestInput is the request payload for launching a backtest.
type BacktestInput struct {
	StrategyID     string  `json:"strategy_id"`
	Name           string  `json:"name,omitempty"`
	StartDate      string  `json:"start_date"` // YYYY-MM-DD
	EndDate        string  `json:"end_date"`
	InitialCapital float64 `json:"initial_capital"`
	Benchmark      string  `json:"benchmark,omitempty"`
}

// BacktestResults holds the summary metrics of a completed backtest.
// All computation happens in the backend; these are display values only.
type BacktestResults struct {
	BacktestID         string  `json:"backtest_id"`
	TotalReturnPct     float64 `json:"total_return_pct"`
	AnnualReturnPct    float64 `json:"annual_return_pct"`
	SharpeRatio        float64 `json:"sharpe_ratio"`
	MaxDrawdownPct     float64 `json:"max_drawdown_pct"`
	WinRatePct         float64 `json:"win_rate_pct"`
	TradeCount         int     `json:"trade_count"`
	BenchmarkReturnPct float64 `json:"benchmark_return_pct,omitempty"`
}

// EquityPoint is a single point of the backtest equity curve.
type EquityPoint struct {
	Date   string  `json:"date"`
	Equity float64 `json:"equity"`
}
