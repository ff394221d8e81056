package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alphadesk/alphadesk/internal/models"
)

func newTradeCmd(getApp appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Orders, positions and quotes",
	}

	var input models.OrderInput

	place := &cobra.Command{
		Use:   "place",
		Short: "Place an order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			order, err := a.TradeService.PlaceOrder(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Order %s %s %s %.4f %s (%s)\n",
				order.ID, order.Side, order.Symbol, order.Units, order.Type, order.Status)
			return nil
		},
	}
	place.Flags().StringVar(&input.PortfolioID, "portfolio", "", "Portfolio ID")
	place.Flags().StringVar(&input.Symbol, "symbol", "", "Instrument symbol")
	place.Flags().StringVar(&input.Side, "side", "", "buy or sell")
	place.Flags().StringVar(&input.Type, "type", "market", "market or limit")
	place.Flags().Float64Var(&input.Units, "units", 0, "Units to trade")
	place.Flags().Float64Var(&input.LimitPrice, "limit", 0, "Limit price (limit orders)")
	place.MarkFlagRequired("portfolio")
	place.MarkFlagRequired("symbol")
	place.MarkFlagRequired("side")
	place.MarkFlagRequired("units")

	orders := &cobra.Command{
		Use:   "orders",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			list, err := a.TradeService.Orders(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "ID", "SYMBOL", "SIDE", "UNITS", "STATUS", "PLACED")
			for _, o := range list {
				row(w, o.ID, o.Symbol, o.Side,
					fmt.Sprintf("%.4f", o.Units), o.Status,
					o.PlacedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			if err := a.TradeService.CancelOrder(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Order cancelled")
			return nil
		},
	}

	positions := &cobra.Command{
		Use:   "positions",
		Short: "List open positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			list, err := a.TradeService.Positions(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "SYMBOL", "UNITS", "AVG", "MARKET", "UNREALIZED")
			for _, p := range list {
				row(w, p.Symbol,
					fmt.Sprintf("%.4f", p.Units),
					fmt.Sprintf("%.4f", p.AvgPrice),
					fmt.Sprintf("%.4f", p.MarketPrice),
					fmt.Sprintf("%.2f", p.UnrealizedPnL))
			}
			return w.Flush()
		},
	}

	quote := &cobra.Command{
		Use:   "quote <symbol>",
		Short: "Fetch an executable quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			q, err := a.TradeService.Quote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s bid %.4f / ask %.4f (last %.4f)\n", q.Symbol, q.Bid, q.Ask, q.Last)
			return nil
		},
	}

	cmd.AddCommand(place, orders, cancel, positions, quote)
	return cmd
}
