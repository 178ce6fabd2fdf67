package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/cache"
	"github.com/raphi011/grit/internal/report"
	"github.com/raphi011/grit/internal/run"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show grit's configuration and cache state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := loadRepos(cmd.Context())
			if err != nil {
				return err
			}

			rep := report.New()
			rep.AddMessage(versionString())
			rep.AddMessage(fmt.Sprintf("Number of repos: %d", len(repos)))
			rep.AddMessage(fmt.Sprintf("Base directory: %s", cfg.BaseDir))
			rep.AddMessage(fmt.Sprintf("Cache file: %s", cfg.CacheFile))
			if age, ok := cache.NewStore(cfg.CacheFile).Age(); ok {
				rep.AddMessage(fmt.Sprintf("Cache file age: %s", formatAge(age)))
			}
			rep.AddMessage(fmt.Sprintf("Ignored patterns: [%s]", strings.Join(cfg.IgnoredPatterns, ", ")))
			rep.AddMessage(fmt.Sprintf("Worker threads: %d", run.DefaultWorkers()))
			return printReport(cmd, rep)
		},
	}
}

// formatAge renders a duration as "1d, 2h, 3m, 4s".
func formatAge(d time.Duration) string {
	d = d.Round(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := d - minutes*time.Minute

	return fmt.Sprintf("%dd, %dh, %dm, %ds", days, hours, minutes, seconds/time.Second)
}
