package repo

import "path/filepath"

// Repo is a git repository, identified by the full path to its working-tree
// root (not its .git directory). It is an immutable value; equality is by
// path.
type Repo struct {
	path string
}

// New creates a Repo for the given working-tree root path.
func New(path string) Repo {
	return Repo{path: path}
}

// Path returns the full path to the repository's working tree.
func (r Repo) Path() string {
	return r.path
}

// Name returns the repository's directory name.
func (r Repo) Name() string {
	return filepath.Base(r.path)
}

func (r Repo) String() string {
	return r.path
}
