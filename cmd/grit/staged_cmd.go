package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/repo"
)

func newStagedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "staged",
		Short: "Show repos with staged changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := statusReport(cmd, statusOptions(repo.ScopeIndex))
			if err != nil {
				return err
			}
			return printReport(cmd, rep)
		},
	}
}
