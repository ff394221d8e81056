// Package app wires configuration, the shared API client, the session
// manager and all service wrappers into one initialized unit used by the CLI.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/auth"
	"github.com/alphadesk/alphadesk/internal/common"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/services/analytics"
	"github.com/alphadesk/alphadesk/internal/services/authsvc"
	"github.com/alphadesk/alphadesk/internal/services/backtest"
	"github.com/alphadesk/alphadesk/internal/services/market"
	"github.com/alphadesk/alphadesk/internal/services/portfolio"
	"github.com/alphadesk/alphadesk/internal/services/product"
	"github.com/alphadesk/alphadesk/internal/services/strategy"
	"github.com/alphadesk/alphadesk/internal/services/trade"
)

// App holds all initialized services around one shared API client and one
// session manager. Nothing here is package-global; construct, use, discard.
type App struct {
	Config  *common.Config
	Logger  *common.Logger
	Client  *api.Client
	Session *auth.Manager

	PortfolioService interfaces.PortfolioService
	StrategyService  interfaces.StrategyService
	BacktestService  *backtest.Service
	ProductService   interfaces.ProductService
	TradeService     interfaces.TradeService
	MarketService    *market.Service
	AnalyticsService interfaces.AnalyticsService

	StartupTime time.Time
}

// New initializes configuration, logging, token storage, the shared client
// and every service wrapper. configPath may be empty, in which case
// ALPHADESK_CONFIG and then a config file next to the binary are tried.
func New(configPath string) (*App, error) {
	if configPath == "" {
		configPath = os.Getenv("ALPHADESK_CONFIG")
	}
	if configPath == "" {
		if exe, err := os.Executable(); err == nil {
			candidate := filepath.Join(filepath.Dir(exe), "alphadesk.toml")
			if _, err := os.Stat(candidate); err == nil {
				configPath = candidate
			}
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	tokens, err := auth.NewFileStore(config.Tokens.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	client := api.New(config.API.BaseURL, tokens,
		api.WithLogger(logger),
		api.WithRateLimit(config.API.RateLimit),
		api.WithTimeout(config.API.GetTimeout()),
	)

	authService := authsvc.New(client)
	session := auth.NewManager(authService, tokens, logger)
	client.OnSessionExpired(session.SessionExpired)

	return &App{
		Config:  config,
		Logger:  logger,
		Client:  client,
		Session: session,

		PortfolioService: portfolio.New(client),
		StrategyService:  strategy.New(client),
		BacktestService:  backtest.New(client),
		ProductService:   product.New(client),
		TradeService:     trade.New(client),
		MarketService:    market.New(client),
		AnalyticsService: analytics.New(client),

		StartupTime: time.Now(),
	}, nil
}
