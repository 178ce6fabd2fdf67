package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/report"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Rescan the filesystem for repos",
		Long: `Walk the base directory for git repositories and rewrite the cache,
regardless of whether the existing cache is still valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := rescanRepos(cmd.Context())
			if err != nil {
				return err
			}

			rep := report.New()
			rep.AddMessage(fmt.Sprintf("Found %d git repos.", len(repos)))
			return printReport(cmd, rep)
		},
	}
}
