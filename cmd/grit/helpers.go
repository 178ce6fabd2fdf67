package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/inventory"
	"github.com/raphi011/grit/internal/output"
	"github.com/raphi011/grit/internal/repo"
	"github.com/raphi011/grit/internal/report"
	"github.com/raphi011/grit/internal/run"
	"github.com/raphi011/grit/internal/scan"
	"github.com/raphi011/grit/internal/ui/progress"
)

// loadRepos returns all managed repositories, scanning the filesystem with a
// spinner if the cache is cold. The spinner starts lazily, so commands that
// hit a warm cache never see it.
func loadRepos(ctx context.Context) ([]repo.Repo, error) {
	inv := inventory.New(cfg)
	progressFn, stop := spinnerProgress()
	defer stop()
	return inv.Repositories(ctx, progressFn)
}

// rescanRepos drops the cache and rebuilds it from the filesystem.
func rescanRepos(ctx context.Context) ([]repo.Repo, error) {
	inv := inventory.New(cfg)
	progressFn, stop := spinnerProgress()
	defer stop()
	return inv.Rescan(ctx, progressFn)
}

// spinnerProgress returns a scan progress callback backed by a terminal
// spinner, plus its cleanup. JSON mode gets no spinner at all.
func spinnerProgress() (scan.ProgressFunc, func()) {
	if jsonOutput {
		return nil, func() {}
	}
	sp := progress.NewSpinner()
	return sp.Update, sp.Stop
}

// printReport renders rep as text or JSON per the --json flag.
func printReport(cmd *cobra.Command, rep *report.Report) error {
	out := output.FromContext(cmd.Context())
	if jsonOutput {
		return rep.PrintJSON(out.Writer())
	}
	rep.Print(out.Writer())
	return nil
}

// statusOptions builds the status filter from config and flags.
func statusOptions(scope repo.Scope) repo.StatusOptions {
	return repo.StatusOptions{
		Scope:            scope,
		IncludeUntracked: cfg.ShowUntracked,
	}
}

// statusReport runs a status query across every repository in parallel and
// collects the matching lines, sorted by repository path.
func statusReport(cmd *cobra.Command, opts repo.StatusOptions) (*report.Report, error) {
	ctx := cmd.Context()
	repos, err := loadRepos(ctx)
	if err != nil {
		return nil, err
	}

	results := run.Parallel(ctx, repos, run.DefaultWorkers(), func(ctx context.Context, r repo.Repo) []string {
		h, ok := repo.Open(ctx, r.Path())
		if !ok {
			return nil
		}
		lines, err := h.StatusLines(ctx, opts)
		if err != nil {
			return nil
		}
		return lines
	})

	rep := report.New()
	byPath := make(map[string][]string, len(results))
	for _, res := range results {
		byPath[res.Path] = res.Value
	}
	// Results arrive in completion order; render in repository order.
	for _, r := range repos {
		for _, line := range byPath[r.Path()] {
			rep.AddRepoMessage(r.Path(), line)
		}
	}
	rep.PadRepoOutput()
	return rep, nil
}
