package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alphadesk/alphadesk/internal/common"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(common.GetFullVersion())
		},
	}
}
