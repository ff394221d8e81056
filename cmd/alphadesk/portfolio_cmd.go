package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPortfolioCmd(getApp appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio tracking",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List portfolios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			portfolios, err := a.PortfolioService.List(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "ID", "NAME", "CURRENCY", "VALUE", "RETURN %")
			for _, p := range portfolios {
				row(w, p.ID, p.Name, p.Currency,
					fmt.Sprintf("%.2f", p.MarketValue),
					fmt.Sprintf("%.2f", p.TotalReturnPct))
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a portfolio with holdings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			p, err := a.PortfolioService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(p)
		},
	}

	transactions := &cobra.Command{
		Use:   "transactions <id>",
		Short: "List a portfolio's transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			txs, err := a.PortfolioService.Transactions(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "ID", "TYPE", "SYMBOL", "UNITS", "AMOUNT", "EXECUTED")
			for _, tx := range txs {
				row(w, tx.ID, tx.Type, tx.Symbol,
					fmt.Sprintf("%.4f", tx.Units),
					fmt.Sprintf("%.2f", tx.Amount),
					tx.ExecutedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(list, show, transactions)
	return cmd
}
