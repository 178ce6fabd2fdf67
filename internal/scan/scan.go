package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/raphi011/grit/internal/config"
	"github.com/raphi011/grit/internal/log"
	"github.com/raphi011/grit/internal/pathmatch"
	"github.com/raphi011/grit/internal/repo"
)

// gitDirName is the metadata directory that marks a repository root.
const gitDirName = ".git"

// ProgressFunc receives walk updates: the number of repositories found so
// far and the directory currently being visited. Implementations must be
// fast and non-blocking; progress is cosmetic and never affects results.
type ProgressFunc func(found int, dir string)

// Find walks cfg.BaseDir and returns every repository root underneath it,
// sorted lexicographically by path. Unreadable directories and broken
// symlinks are skipped silently; a single inaccessible subtree never aborts
// the scan.
func Find(ctx context.Context, cfg *config.Config, ignored []string, progress ProgressFunc) []repo.Repo {
	log.FromContext(ctx).Printf("Scanning for git repos under %s; this may take a while...\n", cfg.BaseDir)

	w := &walker{
		patterns: cfg.IgnoredPatterns,
		ignored:  ignored,
		follow:   cfg.FollowSymlinks,
		progress: progress,
	}
	if cfg.SameFilesystem {
		if info, err := os.Stat(cfg.BaseDir); err == nil {
			w.rootDev, w.haveDev = deviceID(info)
		}
	}
	if w.follow {
		w.visited = map[string]struct{}{pathmatch.Canonical(cfg.BaseDir): {}}
	}

	w.walk(ctx, cfg.BaseDir)

	sort.Slice(w.found, func(i, j int) bool {
		return w.found[i].Path() < w.found[j].Path()
	})
	return w.found
}

type walker struct {
	patterns []string
	ignored  []string
	follow   bool
	progress ProgressFunc

	rootDev uint64
	haveDev bool

	// visited guards against symlink cycles; keyed by canonical path,
	// only populated when following symlinks.
	visited map[string]struct{}

	found []repo.Repo
}

func (w *walker) walk(ctx context.Context, dir string) {
	if ctx.Err() != nil {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Permission denied and friends: skip, don't abort the scan.
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if entry.Name() == gitDirName {
				if repo.ValidGitDir(path) {
					w.found = append(w.found, repo.New(dir))
					w.report(dir)
				}
				// Never descend into version-control metadata.
				continue
			}
			w.descend(ctx, path)
		case entry.Type()&fs.ModeSymlink != 0 && w.follow:
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				// Broken link, or a link to a file.
				continue
			}
			w.descend(ctx, path)
		}
	}
}

// descend recurses into path unless it is excluded, crosses a filesystem
// boundary, or was already visited through another link.
func (w *walker) descend(ctx context.Context, path string) {
	if pathmatch.Excluded(path, w.patterns, w.ignored) {
		return
	}
	if w.haveDev {
		info, err := os.Stat(path)
		if err != nil {
			return
		}
		if dev, ok := deviceID(info); ok && dev != w.rootDev {
			return
		}
	}
	if w.visited != nil {
		canonical := pathmatch.Canonical(path)
		if _, seen := w.visited[canonical]; seen {
			return
		}
		w.visited[canonical] = struct{}{}
	}
	w.report(path)
	w.walk(ctx, path)
}

func (w *walker) report(dir string) {
	if w.progress != nil {
		w.progress(len(w.found), dir)
	}
}
