//go:build integration

package repo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// gitIn runs a git command inside dir, failing the test on error.
func gitIn(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with an initial commit and returns its path.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	gitIn(t, dir, "init")
	gitIn(t, dir, "config", "user.email", "test@test.com")
	gitIn(t, dir, "config", "user.name", "Test User")
	gitIn(t, dir, "config", "commit.gpgsign", "false")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0o644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	gitIn(t, dir, "add", "README.md")
	gitIn(t, dir, "commit", "-m", "Initial commit")

	return dir
}

func TestOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid repository", func(t *testing.T) {
		t.Parallel()
		path := setupTestRepo(t)
		h, ok := Open(ctx, path)
		if !ok {
			t.Fatal("Open() ok = false for a valid repo")
		}
		if h.Path() != path {
			t.Errorf("Path() = %q, want %q", h.Path(), path)
		}
	})

	t.Run("plain directory is not a repository", func(t *testing.T) {
		t.Parallel()
		if _, ok := Open(ctx, t.TempDir()); ok {
			t.Error("Open() ok = true for a plain directory")
		}
	})
}

func TestStatusLines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := setupTestRepo(t)

	// One staged change, one unstaged change, one untracked file.
	if err := os.WriteFile(filepath.Join(path, "staged.go"), []byte("package x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	gitIn(t, path, "add", "staged.go")
	if err := os.WriteFile(filepath.Join(path, "README.md"), []byte("# changed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "scratch.txt"), []byte("wip\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	h, ok := Open(ctx, path)
	if !ok {
		t.Fatal("Open() failed")
	}

	t.Run("index scope", func(t *testing.T) {
		lines, err := h.StatusLines(ctx, StatusOptions{Scope: ScopeIndex})
		if err != nil {
			t.Fatalf("StatusLines() error = %v", err)
		}
		if len(lines) != 1 || lines[0] != "A  staged.go" {
			t.Errorf("index lines = %v, want [A  staged.go]", lines)
		}
	})

	t.Run("workdir scope", func(t *testing.T) {
		lines, err := h.StatusLines(ctx, StatusOptions{Scope: ScopeWorkdir})
		if err != nil {
			t.Fatalf("StatusLines() error = %v", err)
		}
		if len(lines) != 1 || lines[0] != " M README.md" {
			t.Errorf("workdir lines = %v, want [ M README.md]", lines)
		}
	})

	t.Run("workdir scope with untracked", func(t *testing.T) {
		lines, err := h.StatusLines(ctx, StatusOptions{Scope: ScopeWorkdir, IncludeUntracked: true})
		if err != nil {
			t.Fatalf("StatusLines() error = %v", err)
		}
		if len(lines) != 2 {
			t.Fatalf("workdir+untracked lines = %v, want 2 entries", lines)
		}
		if !strings.Contains(strings.Join(lines, "\n"), "?? scratch.txt") {
			t.Errorf("lines = %v, missing ?? scratch.txt", lines)
		}
	})

	t.Run("both scope", func(t *testing.T) {
		lines, err := h.StatusLines(ctx, StatusOptions{Scope: ScopeBoth})
		if err != nil {
			t.Fatalf("StatusLines() error = %v", err)
		}
		if len(lines) != 2 {
			t.Errorf("both lines = %v, want 2 entries", lines)
		}
	})
}

func TestStashEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := setupTestRepo(t)
	h, ok := Open(ctx, path)
	if !ok {
		t.Fatal("Open() failed")
	}

	entries, err := h.StashEntries(ctx)
	if err != nil {
		t.Fatalf("StashEntries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("StashEntries() = %v, want empty", entries)
	}

	if err := os.WriteFile(filepath.Join(path, "README.md"), []byte("# dirty\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	gitIn(t, path, "stash", "push", "-m", "wip")

	entries, err = h.StashEntries(ctx)
	if err != nil {
		t.Fatalf("StashEntries() error = %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0], "stash@{0}:") {
		t.Errorf("StashEntries() = %v, want one stash@{0} entry", entries)
	}
}

func TestIsAhead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("local-only commits are ahead", func(t *testing.T) {
		t.Parallel()
		path := setupTestRepo(t)
		h, _ := Open(ctx, path)
		if !h.IsAhead(ctx) {
			t.Error("IsAhead() = false for a repo with no remote and local commits")
		}
	})

	t.Run("pushed commits are not ahead", func(t *testing.T) {
		t.Parallel()
		path := setupTestRepo(t)

		remote, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		gitIn(t, remote, "init", "--bare")
		gitIn(t, path, "remote", "add", "origin", remote)
		gitIn(t, path, "push", "-u", "origin", "HEAD")

		h, _ := Open(ctx, path)
		if h.IsAhead(ctx) {
			t.Error("IsAhead() = true after pushing all commits")
		}
	})
}
