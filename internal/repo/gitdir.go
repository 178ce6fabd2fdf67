package repo

import (
	"os"
	"path/filepath"
)

// ValidGitDir reports whether gitDir looks like real repository metadata.
// A stale or malformed .git directory (for example one left behind by an
// interrupted clone) has no usable HEAD and must not mark its parent as a
// repository.
func ValidGitDir(gitDir string) bool {
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return false
	}
	head, err := os.Stat(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return false
	}
	return head.Mode().IsRegular() && head.Size() > 0
}
