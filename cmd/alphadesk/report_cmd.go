package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alphadesk/alphadesk/internal/models"
)

func newReportCmd(getApp appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analytics and reporting",
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate analytics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			s, err := a.AnalyticsService.Summary(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(s)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List generated reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			reports, err := a.AnalyticsService.Reports(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "ID", "NAME", "TYPE", "FORMAT", "STATUS")
			for _, r := range reports {
				row(w, r.ID, r.Name, r.Type, r.Format, r.Status)
			}
			return w.Flush()
		},
	}

	var input models.ReportInput
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			r, err := a.AnalyticsService.GenerateReport(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Report %s %s\n", r.ID, r.Status)
			return nil
		},
	}
	generate.Flags().StringVar(&input.Type, "type", "performance", "Report type (performance, risk, tax)")
	generate.Flags().StringVar(&input.Format, "format", "pdf", "Report format (pdf, csv, xlsx)")
	generate.Flags().StringVar(&input.PortfolioID, "portfolio", "", "Portfolio ID (optional)")
	generate.Flags().StringVar(&input.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	generate.Flags().StringVar(&input.EndDate, "to", "", "End date (YYYY-MM-DD)")

	var outPath string
	download := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a report file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			data, filename, err := a.AnalyticsService.DownloadReport(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = filename
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write report file: %w", err)
			}
			fmt.Printf("Saved %s (%d bytes)\n", outPath, len(data))
			return nil
		},
	}
	download.Flags().StringVarP(&outPath, "output", "o", "", "Output path (default: server-provided filename)")

	cmd.AddCommand(summary, list, generate, download)
	return cmd
}
