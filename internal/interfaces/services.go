package interfaces

import (
	"context"

	"github.com/alphadesk/alphadesk/internal/models"
)

// AuthService wraps the authentication endpoints.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)
	Register(ctx context.Context, reg models.Registration) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
}

// PortfolioService wraps the portfolio endpoints.
type PortfolioService interface {
	List(ctx context.Context) ([]*models.Portfolio, error)
	Get(ctx context.Context, id string) (*models.Portfolio, error)
	Create(ctx context.Context, input models.PortfolioInput) (*models.Portfolio, error)
	Update(ctx context.Context, id string, input models.PortfolioInput) (*models.Portfolio, error)
	Delete(ctx context.Context, id string) error
	Holdings(ctx context.Context, id string) ([]*models.Holding, error)
	Transactions(ctx context.Context, id string) ([]*models.Transaction, error)
	AddTransaction(ctx context.Context, id string, input models.TransactionInput) (*models.Transaction, error)
}

// StrategyService wraps the strategy endpoints.
type StrategyService interface {
	List(ctx context.Context) ([]*models.Strategy, error)
	Get(ctx context.Context, id string) (*models.Strategy, error)
	Create(ctx context.Context, input models.StrategyInput) (*models.Strategy, error)
	Update(ctx context.Context, id string, input models.StrategyInput) (*models.Strategy, error)
	Delete(ctx context.Context, id string) error
	Versions(ctx context.Context, id string) ([]*models.StrategyVersion, error)
	GetVersion(ctx context.Context, id string, version int) (*models.StrategyVersion, error)
	EvaluateSignals(ctx context.Context, id string) (*models.SignalEvaluation, error)
}

// BacktestService wraps the backtest endpoints.
type BacktestService interface {
	List(ctx context.Context) ([]*models.Backtest, error)
	Get(ctx context.Context, id string) (*models.Backtest, error)
	Run(ctx context.Context, input models.BacktestInput) (*models.Backtest, error)
	Cancel(ctx context.Context, id string) error
	Results(ctx context.Context, id string) (*models.BacktestResults, error)
	EquityCurve(ctx context.Context, id string) ([]*models.EquityPoint, error)
}

// ProductService wraps the structured-product endpoints.
type ProductService interface {
	List(ctx context.Context) ([]*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Build(ctx context.Context, input models.ProductInput) (*models.Product, error)
	Reprice(ctx context.Context, id string) (*models.ProductPricing, error)
	Issue(ctx context.Context, id string) (*models.Product, error)
	Versions(ctx context.Context, id string) ([]*models.ProductVersion, error)
}

// TradeService wraps the order/position/quote endpoints.
type TradeService interface {
	PlaceOrder(ctx context.Context, input models.OrderInput) (*models.Order, error)
	Orders(ctx context.Context) ([]*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CancelOrder(ctx context.Context, id string) error
	Positions(ctx context.Context) ([]*models.Position, error)
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
}

// MarketService wraps the market-data endpoints.
type MarketService interface {
	Price(ctx context.Context, symbol string) (*models.PriceTick, error)
	Prices(ctx context.Context, symbols []string) ([]*models.PriceTick, error)
	Candles(ctx context.Context, symbol string, from, to string) ([]*models.Candle, error)
	Search(ctx context.Context, query string) ([]*models.SymbolMatch, error)
}

// AnalyticsService wraps the analytics/reporting endpoints.
type AnalyticsService interface {
	Summary(ctx context.Context) (*models.AnalyticsSummary, error)
	Reports(ctx context.Context) ([]*models.Report, error)
	GenerateReport(ctx context.Context, input models.ReportInput) (*models.Report, error)
	DownloadReport(ctx context.Context, id string) ([]byte, string, error)
}
