package cache

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/grit/internal/pathmatch"
)

// ErrAlreadyIgnored indicates the path is already on the ignore list.
var ErrAlreadyIgnored = errors.New("repository is already ignored")

// IgnoreList persists ignored repository paths, one canonical absolute path
// per line. Entries are stored symlink-resolved so matching stays correct
// regardless of which form a path is supplied or discovered in.
type IgnoreList struct {
	path string
}

// NewIgnoreList creates an ignore list backed by the given file path.
func NewIgnoreList(path string) IgnoreList {
	return IgnoreList{path: path}
}

// Path returns the ignore-list file location.
func (l IgnoreList) Path() string {
	return l.path
}

// Load returns all ignored paths. A missing file means nothing is ignored.
func (l IgnoreList) Load() []string {
	f, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

// Add canonicalizes path and appends it to the ignore list, creating the
// file and its parent directory if needed. Adding a path that is already
// listed returns ErrAlreadyIgnored.
func (l IgnoreList) Add(path string) (string, error) {
	canonical := pathmatch.Canonical(path)

	for _, existing := range l.Load() {
		if existing == canonical {
			return canonical, fmt.Errorf("%s: %w", canonical, ErrAlreadyIgnored)
		}
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return canonical, fmt.Errorf("create ignore-list directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return canonical, fmt.Errorf("open ignore list: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, canonical); err != nil {
		return canonical, fmt.Errorf("append to ignore list: %w", err)
	}
	return canonical, nil
}
