package cache

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/raphi011/grit/internal/pathmatch"
	"github.com/raphi011/grit/internal/repo"
)

// Store persists the discovered repository list as a flat text file:
// the configuration fingerprint on line 1, one repository path per
// following line, in sorted order.
type Store struct {
	path string
}

// NewStore creates a store backed by the given cache file path.
func NewStore(path string) Store {
	return Store{path: path}
}

// Path returns the cache file location.
func (s Store) Path() string {
	return s.path
}

// IsValid reports whether the cache file exists and was written under the
// given configuration fingerprint.
func (s Store) IsValid(fingerprint uint64) bool {
	f, err := os.Open(s.path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		// Empty file.
		return false
	}
	cached, err := strconv.ParseUint(scanner.Text(), 10, 64)
	if err != nil {
		// Non-numeric first line.
		return false
	}
	return cached == fingerprint
}

// Write replaces the cache file with the fingerprint followed by each
// repository path, in the order given. The file is written to a temporary
// sibling and renamed into place so readers never observe a partial cache.
func (s Store) Write(fingerprint uint64, repos []repo.Repo) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tempPath := s.path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", fingerprint)
	for _, r := range repos {
		fmt.Fprintln(w, r.Path())
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return os.Rename(tempPath, s.path)
}

// Read returns the repositories listed in the cache file. Entries whose
// path no longer exists on disk, or which are covered by an ignored entry,
// are silently dropped; a stale line never invalidates the rest of the
// cache.
func (s Store) Read(ignored []string) []repo.Repo {
	f, err := os.Open(s.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var repos []repo.Repo
	scanner := bufio.NewScanner(f)
	scanner.Scan() // skip the fingerprint line

	for scanner.Scan() {
		path := scanner.Text()
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if pathmatch.CoveredBy(path, ignored) {
			continue
		}
		repos = append(repos, repo.New(path))
	}
	return repos
}

// Clear deletes the cache file, forcing a rescan on the next read.
func (s Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Age returns how long ago the cache file was last written.
func (s Store) Age() (time.Duration, bool) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, false
	}
	return time.Since(info.ModTime()), true
}
