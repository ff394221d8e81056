package models

import "time"

// AnalyticsSummary is the backend's aggregate analytics for the current user.
type AnalyticsSummary struct {
	TotalValue     float64            `json:"total_value"`
	TotalReturn    float64            `json:"total_return"`
	TotalReturnPct float64            `json:"total_return_pct"`
	PortfolioCount int                `json:"portfolio_count"`
	PositionCount  int                `json:"position_count"`
	PeriodReturns  map[string]float64 `json:"period_returns,omitempty"`
	RiskMetrics    map[string]float64 `json:"risk_metrics,omitempty"`
	AsOf           time.Time          `json:"as_of"`
}

// Report represents a generated report available for download.
type Report struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`   // performance, risk, tax
	Format      string    `json:"format"` // pdf, csv, xlsx
	Status      string    `json:"status"` // pending, ready, failed
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportInput is the request payload for generating a report.
type ReportInput struct {
	Name        string `json:"name,omitempty"`
	Type        string `json:"type"`
	Format      string `json:"format,omitempty"`
	PortfolioID string `json:"portfolio_id,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}
