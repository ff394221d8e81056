// Package common provides shared utilities for AlphaDesk
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the AlphaDesk client
type Config struct {
	Environment string        `toml:"environment"`
	API         APIConfig     `toml:"api"`
	Tokens      TokensConfig  `toml:"tokens"`
	Logging     LoggingConfig `toml:"logging"`
	Polling     PollingConfig `toml:"polling"`
}

// APIConfig holds backend API connection configuration
type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"` // requests per second
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *APIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// TokensConfig holds persisted token storage configuration
type TokensConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// PollingConfig holds fixed-interval polling configuration
type PollingConfig struct {
	PriceInterval    string `toml:"price_interval"`
	BacktestInterval string `toml:"backtest_interval"`
}

// GetPriceInterval parses and returns the live-price polling interval
func (c *PollingConfig) GetPriceInterval() time.Duration {
	d, err := time.ParseDuration(c.PriceInterval)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GetBacktestInterval parses and returns the backtest status polling interval
func (c *PollingConfig) GetBacktestInterval() time.Duration {
	d, err := time.ParseDuration(c.BacktestInterval)
	if err != nil {
		return 2 * time.Second
	}
	return d
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Environment: "development",
		API: APIConfig{
			BaseURL:   "http://localhost:5000/api",
			RateLimit: 10,
			Timeout:   "30s",
		},
		Tokens: TokensConfig{
			Path: filepath.Join(home, ".alphadesk", "tokens.toml"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Polling: PollingConfig{
			PriceInterval:    "10s",
			BacktestInterval: "2s",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	config.API.BaseURL = strings.TrimRight(config.API.BaseURL, "/")

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("ALPHADESK_ENV"); env != "" {
		config.Environment = env
	}

	if url := os.Getenv("ALPHADESK_API_URL"); url != "" {
		config.API.BaseURL = url
	}

	if rl := os.Getenv("ALPHADESK_API_RATE_LIMIT"); rl != "" {
		if n, err := strconv.Atoi(rl); err == nil && n > 0 {
			config.API.RateLimit = n
		}
	}

	if timeout := os.Getenv("ALPHADESK_API_TIMEOUT"); timeout != "" {
		config.API.Timeout = timeout
	}

	if path := os.Getenv("ALPHADESK_TOKENS_PATH"); path != "" {
		config.Tokens.Path = path
	}

	if level := os.Getenv("ALPHADESK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if iv := os.Getenv("ALPHADESK_PRICE_INTERVAL"); iv != "" {
		config.Polling.PriceInterval = iv
	}

	if iv := os.Getenv("ALPHADESK_BACKTEST_INTERVAL"); iv != "" {
		config.Polling.BacktestInterval = iv
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
