package repo

// Scope selects which side of a repository's state status lines are
// reported for.
type Scope int

const (
	// ScopeBoth reports staged and unstaged changes.
	ScopeBoth Scope = iota
	// ScopeIndex reports staged changes only.
	ScopeIndex
	// ScopeWorkdir reports unstaged changes only.
	ScopeWorkdir
)

// StatusOptions controls which status lines are reported.
type StatusOptions struct {
	Scope            Scope
	IncludeUntracked bool
}

// filterStatusLine decides whether a `git status --porcelain` line belongs
// in the output for the given options. Lines follow the short-status
// convention: two status characters (index side, worktree side) followed by
// a space and the relative path.
func filterStatusLine(line string, opts StatusOptions) bool {
	if len(line) < 4 {
		return false
	}
	index, worktree := line[0], line[1]
	if index == '!' {
		// Ignored entries are never shown.
		return false
	}
	if index == '?' {
		// Untracked files have no index state.
		if opts.Scope == ScopeIndex {
			return false
		}
		return opts.IncludeUntracked
	}
	switch opts.Scope {
	case ScopeIndex:
		return index != ' '
	case ScopeWorkdir:
		return worktree != ' '
	default:
		return index != ' ' || worktree != ' '
	}
}
