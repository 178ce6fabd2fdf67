package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/config"
	"github.com/raphi011/grit/internal/log"
	"github.com/raphi011/grit/internal/output"
	"github.com/raphi011/grit/internal/repo"
)

var (
	// Global flags
	jsonOutput  bool
	verbose     bool
	untracked   bool
	noUntracked bool

	// Shared state injected into commands
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "grit",
	Short: "Keep track of all the git repositories on your machine",
	Long: `grit finds every git repository below your base directory and answers
questions about all of them at once: which have uncommitted changes,
which have stashes, which have commits that were never pushed.

The repository list is cached between runs; use 'grit scan' to refresh it.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Fold flags into the loaded config
		if verbose {
			cfg.Verbose = true
		}
		if untracked {
			cfg.ShowUntracked = true
		}
		if noUntracked {
			cfg.ShowUntracked = false
		}

		// Flags are parsed by now; rebuild the logger so -v takes effect.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, cfg.Verbose, false))
		cmd.SetContext(ctx)

		return repo.CheckGit()
	},
	// Running grit with no subcommand dispatches the configured default.
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _, err := cmd.Find([]string{cfg.DefaultCmd})
		if err != nil || target == cmd {
			return fmt.Errorf("unknown default command %q in config", cfg.DefaultCmd)
		}
		target.SetContext(cmd.Context())
		return target.RunE(target, nil)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger (stderr for diagnostics)
	logger := log.New(os.Stderr, cfg.Verbose, false)
	ctx = log.WithLogger(ctx, logger)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			json.NewEncoder(os.Stdout).Encode(struct {
				Error   bool   `json:"error"`
				Message string `json:"message"`
			}{Error: true, Message: err.Error()})
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&untracked, "untracked", "u", false, "Include untracked files in status output")
	rootCmd.PersistentFlags().BoolVarP(&noUntracked, "nountracked", "t", false, "Exclude untracked files from status output")
	rootCmd.MarkFlagsMutuallyExclusive("untracked", "nountracked")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newStagedCmd())
	rootCmd.AddCommand(newUnstagedCmd())
	rootCmd.AddCommand(newStashedCmd())
	rootCmd.AddCommand(newAheadCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newIgnoreCmd())
	rootCmd.AddCommand(newIgnoredCmd())
}
