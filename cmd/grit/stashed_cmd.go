package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/repo"
	"github.com/raphi011/grit/internal/report"
	"github.com/raphi011/grit/internal/run"
)

func newStashedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stashed",
		Short: "Show repos with stashed changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repos, err := loadRepos(ctx)
			if err != nil {
				return err
			}

			results := run.Parallel(ctx, repos, run.DefaultWorkers(), func(ctx context.Context, r repo.Repo) []string {
				h, ok := repo.Open(ctx, r.Path())
				if !ok {
					return nil
				}
				entries, err := h.StashEntries(ctx)
				if err != nil {
					return nil
				}
				return entries
			})

			rep := report.New()
			byPath := make(map[string][]string, len(results))
			for _, res := range results {
				byPath[res.Path] = res.Value
			}
			for _, r := range repos {
				for _, entry := range byPath[r.Path()] {
					rep.AddRepoMessage(r.Path(), entry)
				}
			}
			rep.PadRepoOutput()
			return printReport(cmd, rep)
		},
	}
}
