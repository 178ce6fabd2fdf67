package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/repo"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of all repos with changes",
		Long: `Run 'git status' across every known repository and show the short-format
output for each one that has staged or unstaged changes.`,
		Args: cobra.NoArgs,
		Example: `  grit status                  # All repos with uncommitted changes
  grit status --nountracked    # Hide untracked files
  grit status --json           # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := statusReport(cmd, statusOptions(repo.ScopeBoth))
			if err != nil {
				return err
			}
			return printReport(cmd, rep)
		},
	}
}
