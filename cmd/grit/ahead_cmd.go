package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/repo"
	"github.com/raphi011/grit/internal/report"
	"github.com/raphi011/grit/internal/run"
)

func newAheadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ahead",
		Short:   "Show repos with commits that were never pushed",
		Aliases: []string{"unpushed"},
		Args:    cobra.NoArgs,
		Long: `List repositories where some local branch has commits not reachable
from any remote branch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repos, err := loadRepos(ctx)
			if err != nil {
				return err
			}

			results := run.Parallel(ctx, repos, run.DefaultWorkers(), func(ctx context.Context, r repo.Repo) bool {
				h, ok := repo.Open(ctx, r.Path())
				if !ok {
					return false
				}
				return h.IsAhead(ctx)
			})

			ahead := make(map[string]bool, len(results))
			for _, res := range results {
				ahead[res.Path] = res.Value
			}

			rep := report.New()
			for _, r := range repos {
				if ahead[r.Path()] {
					rep.AddRepoMessage(r.Path(), "")
				}
			}
			return printReport(cmd, rep)
		},
	}
}
