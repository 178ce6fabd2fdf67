package repo

import (
	"context"
	"strings"
)

// Handle is an open repository that git operations can be run against.
type Handle struct {
	path string
}

// Open verifies that the repository at path can be opened by git.
// ok is false when the path is not (or is no longer) a valid repository;
// callers treat that as "no data for this repository" rather than an error.
func Open(ctx context.Context, path string) (h *Handle, ok bool) {
	if err := runGit(ctx, path, "rev-parse", "--git-dir"); err != nil {
		return nil, false
	}
	return &Handle{path: path}, true
}

// Path returns the repository path this handle was opened for.
func (h *Handle) Path() string {
	return h.path
}

// StatusLines returns short-format status lines ("XY <relative-path>") for
// the repository, filtered per opts.
func (h *Handle) StatusLines(ctx context.Context, opts StatusOptions) ([]string, error) {
	out, err := outputGit(ctx, h.path, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range splitLines(string(out)) {
		if filterStatusLine(line, opts) {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// StashEntries returns the repository's stash list, one
// "stash@{n}: <description>" line per entry.
func (h *Handle) StashEntries(ctx context.Context) ([]string, error) {
	out, err := outputGit(ctx, h.path, "stash", "list")
	if err != nil {
		return nil, err
	}
	return splitLines(string(out)), nil
}

// IsAhead reports whether any local branch tip is not reachable from any
// remote branch tip, i.e. the repository has commits that were never pushed.
func (h *Handle) IsAhead(ctx context.Context) bool {
	out, err := outputGit(ctx, h.path, "rev-list", "--branches", "--not", "--remotes", "--max-count=1")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

// splitLines splits command output into lines, dropping empty ones.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
