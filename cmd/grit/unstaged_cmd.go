package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/repo"
)

func newUnstagedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unstaged",
		Short: "Show repos with unstaged changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := statusReport(cmd, statusOptions(repo.ScopeWorkdir))
			if err != nil {
				return err
			}
			return printReport(cmd, rep)
		},
	}
}
