package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/inventory"
	"github.com/raphi011/grit/internal/report"
)

func newIgnoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ignore <path>",
		Short: "Exclude a repo from all future results",
		Long: `Add a repository path to the ignore list. Ignored repositories are
filtered out of every command's output without rescanning; the path is
stored in its symlink-resolved absolute form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical, err := inventory.New(cfg).Ignore(args[0])
			if err != nil {
				return err
			}

			rep := report.New()
			rep.AddMessage(fmt.Sprintf("Ignored %s", canonical))
			return printReport(cmd, rep)
		},
	}
}
