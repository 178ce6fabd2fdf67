// Package pathmatch decides whether filesystem paths are excluded from
// repository discovery, either by ignore patterns or by ignored-repository
// entries. It is pure predicate logic; the only I/O is symlink resolution.
package pathmatch

import (
	"path/filepath"
	"strings"
)

// Excluded reports whether path matches any of the ignore patterns or is
// covered by an ignored-repository entry.
func Excluded(path string, patterns, ignored []string) bool {
	return MatchesPattern(path, patterns) || CoveredBy(path, ignored)
}

// MatchesPattern reports whether path contains any non-empty pattern as a
// substring. Matching is case-sensitive with no glob semantics.
func MatchesPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern != "" && strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// CoveredBy reports whether path equals an ignored entry or sits inside one
// (prefix match with directory semantics). The check runs against the path
// as given and, when it resolves, against its canonical symlink-free form —
// a symlinked subtree of an ignored directory is also covered.
func CoveredBy(path string, ignored []string) bool {
	if len(ignored) == 0 {
		return false
	}
	if coveredLiteral(path, ignored) {
		return true
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil || resolved == path {
		// A path that no longer exists is matched on its literal form only.
		return false
	}
	return coveredLiteral(resolved, ignored)
}

func coveredLiteral(path string, ignored []string) bool {
	for _, entry := range ignored {
		if entry == "" {
			continue
		}
		if path == entry || strings.HasPrefix(path, entry+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Canonical resolves path to its absolute, symlink-free form. When the path
// cannot be resolved (for example because it does not exist), the absolute
// literal form is returned instead.
func Canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}
