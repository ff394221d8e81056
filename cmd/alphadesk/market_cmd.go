package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alphadesk/alphadesk/internal/common"
	"github.com/alphadesk/alphadesk/internal/models"
	"github.com/alphadesk/alphadesk/internal/poller"
)

func newMarketCmd(getApp appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Market data",
	}

	price := &cobra.Command{
		Use:   "price <symbol>",
		Short: "Show the latest price for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			tick, err := a.MarketService.Price(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %.4f (%+.2f%%) as of %s\n",
				tick.Symbol, tick.Price, tick.ChangePct, tick.AsOf.Format("15:04:05"))
			return nil
		},
	}

	var from, to string
	candles := &cobra.Command{
		Use:   "candles <symbol>",
		Short: "Show OHLCV bars for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			bars, err := a.MarketService.Candles(cmd.Context(), args[0], from, to)
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "DATE", "OPEN", "HIGH", "LOW", "CLOSE", "VOLUME")
			for _, c := range bars {
				row(w, c.Date,
					fmt.Sprintf("%.4f", c.Open),
					fmt.Sprintf("%.4f", c.High),
					fmt.Sprintf("%.4f", c.Low),
					fmt.Sprintf("%.4f", c.Close),
					c.Volume)
			}
			return w.Flush()
		},
	}
	candles.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	candles.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search instruments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			matches, err := a.MarketService.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "SYMBOL", "NAME", "EXCHANGE", "TYPE")
			for _, m := range matches {
				row(w, m.Symbol, m.Name, m.Exchange, m.Type)
			}
			return w.Flush()
		},
	}

	watch := &cobra.Command{
		Use:   "watch <symbol> [symbol...]",
		Short: "Poll live prices at a fixed interval until interrupted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}

			common.PrintBanner(a.Config, a.Logger)

			p := poller.New("price-watch", a.Config.Polling.GetPriceInterval(), a.Logger)
			return a.MarketService.Watch(cmd.Context(), args, p, func(ticks []*models.PriceTick) {
				for _, t := range ticks {
					fmt.Printf("%s  %-8s %12.4f  %+7.2f%%\n",
						t.AsOf.Format("15:04:05"), t.Symbol, t.Price, t.ChangePct)
				}
			})
		},
	}

	cmd.AddCommand(price, candles, search, watch)
	return cmd
}
