package main

import (
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/report"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [filter]",
		Short:   "List all known repos",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		Long: `List every repository grit knows about, one per line. An optional
filter argument narrows the list by fuzzy-matching against repo paths.`,
		Example: `  grit list                    # Every known repo
  grit list dotfi              # Fuzzy-match paths against "dotfi"
  grit list --json             # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := loadRepos(cmd.Context())
			if err != nil {
				return err
			}

			paths := make([]string, 0, len(repos))
			for _, r := range repos {
				paths = append(paths, r.Path())
			}
			if len(args) == 1 {
				matches := fuzzy.Find(args[0], paths)
				paths = paths[:0]
				for _, m := range matches {
					paths = append(paths, m.Str)
				}
			}

			rep := report.New()
			for _, path := range paths {
				rep.AddRepoMessage(path, "")
			}
			return printReport(cmd, rep)
		},
	}
}
