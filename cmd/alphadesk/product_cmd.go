package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProductCmd(getApp appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Structured products",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			products, err := a.ProductService.List(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			row(w, "ID", "NAME", "TYPE", "UNDERLYING", "STATUS", "PRICE")
			for _, p := range products {
				row(w, p.ID, p.Name, p.Type, p.Underlying, p.Status, fmt.Sprintf("%.4f", p.Price))
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			p, err := a.ProductService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(p)
		},
	}

	reprice := &cobra.Command{
		Use:   "reprice <id>",
		Short: "Re-run backend pricing for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			pricing, err := a.ProductService.Reprice(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(pricing)
		},
	}

	issue := &cobra.Command{
		Use:   "issue <id>",
		Short: "Issue a priced product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			p, err := a.ProductService.Issue(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Product %s %s\n", p.ID, p.Status)
			return nil
		},
	}

	cmd.AddCommand(list, show, reprice, issue)
	return cmd
}
