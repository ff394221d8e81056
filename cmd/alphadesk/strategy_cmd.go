package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStrategyCmd(getApp appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Strategy authoring and signals",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List strategies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			strategies, err := a.StrategyService.List(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "ID", "NAME", "STATUS", "VERSION", "UPDATED")
			for _, s := range strategies {
				row(w, s.ID, s.Name, s.Status, s.Version, s.UpdatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			s, err := a.StrategyService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(s)
		},
	}

	versions := &cobra.Command{
		Use:   "versions <id>",
		Short: "List a strategy's versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			vs, err := a.StrategyService.Versions(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "VERSION", "COMMENT", "CREATED")
			for _, v := range vs {
				row(w, v.Version, v.Comment, v.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	eval := &cobra.Command{
		Use:   "eval <id>",
		Short: "Evaluate a strategy's signals against current market data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			result, err := a.StrategyService.EvaluateSignals(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "SYMBOL", "ACTION", "STRENGTH", "REASON")
			for _, sig := range result.Signals {
				row(w, sig.Symbol, sig.Action, fmt.Sprintf("%.2f", sig.Strength), sig.Reason)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(list, show, versions, eval)
	return cmd
}
