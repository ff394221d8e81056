package main

import (
	"github.com/spf13/cobra"

	"github.com/alphadesk/alphadesk/internal/app"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "alphadesk",
		Short:         "AlphaDesk: quant-finance platform client",
		Long:          "alphadesk is the terminal client for the AlphaDesk quantitative-finance platform: portfolios, strategies, backtests, structured products, trading, market data and reporting.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ALPHADESK_CONFIG or alphadesk.toml next to the binary)")

	// App construction is deferred until a command actually runs so that
	// --help and version never fail on a bad config.
	var a *app.App
	getApp := func() (*app.App, error) {
		if a != nil {
			return a, nil
		}
		var err error
		a, err = app.New(configPath)
		return a, err
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(getApp),
		newLogoutCmd(getApp),
		newRegisterCmd(getApp),
		newWhoamiCmd(getApp),
		newPortfolioCmd(getApp),
		newStrategyCmd(getApp),
		newBacktestCmd(getApp),
		newProductCmd(getApp),
		newTradeCmd(getApp),
		newMarketCmd(getApp),
		newReportCmd(getApp),
	)

	return rootCmd
}

// appFunc lazily constructs the wired application.
type appFunc func() (*app.App, error)
