package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alphadesk/alphadesk/internal/models"
	"github.com/alphadesk/alphadesk/internal/poller"
)

func newBacktestCmd(getApp appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Backtest runs and results",
	}

	var input models.BacktestInput
	var wait bool

	run := &cobra.Command{
		Use:   "run",
		Short: "Launch a backtest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			bt, err := a.BacktestService.Run(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Backtest %s %s\n", bt.ID, bt.Status)

			if !wait {
				return nil
			}

			p := poller.New("backtest-status", a.Config.Polling.GetBacktestInterval(), a.Logger)
			bt, err = a.BacktestService.Await(cmd.Context(), bt.ID, p)
			if err != nil {
				return err
			}
			fmt.Printf("Backtest %s %s\n", bt.ID, bt.Status)
			if bt.Status == models.BacktestStatusCompleted {
				results, err := a.BacktestService.Results(cmd.Context(), bt.ID)
				if err != nil {
					return err
				}
				return printJSON(results)
			}
			return nil
		},
	}
	run.Flags().StringVar(&input.StrategyID, "strategy", "", "Strategy ID")
	run.Flags().StringVar(&input.Name, "name", "", "Run name")
	run.Flags().StringVar(&input.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	run.Flags().StringVar(&input.EndDate, "to", "", "End date (YYYY-MM-DD)")
	run.Flags().Float64Var(&input.InitialCapital, "capital", 100000, "Initial capital")
	run.Flags().StringVar(&input.Benchmark, "benchmark", "", "Benchmark symbol")
	run.Flags().BoolVar(&wait, "wait", false, "Poll until the run completes")
	run.MarkFlagRequired("strategy")
	run.MarkFlagRequired("from")
	run.MarkFlagRequired("to")

	status := &cobra.Command{
		Use:   "status <id>",
		Short: "Show a backtest's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			bt, err := a.BacktestService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(bt)
		},
	}

	results := &cobra.Command{
		Use:   "results <id>",
		Short: "Show a completed backtest's metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			res, err := a.BacktestService.Results(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a running backtest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			if err := a.BacktestService.Cancel(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Cancellation requested")
			return nil
		},
	}

	cmd.AddCommand(run, status, results, cancel)
	return cmd
}
