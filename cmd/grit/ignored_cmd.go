package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/inventory"
	"github.com/raphi011/grit/internal/report"
)

func newIgnoredCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ignored",
		Short: "List ignored repos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := report.New()
			for _, path := range inventory.New(cfg).Ignored() {
				rep.AddMessage(path)
			}
			return printReport(cmd, rep)
		},
	}
}
