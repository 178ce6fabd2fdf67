// Package scan discovers git repositories on disk.
//
// The walk starts at the configured base directory and classifies a
// directory as a repository root when it directly contains a valid .git
// metadata directory. Excluded directories (ignore patterns or ignored
// repositories) are pruned before they are visited; symlink following and
// same-filesystem confinement are opt-in policies from the configuration.
// Output is deterministic: one entry per discovered root, sorted by path.
package scan
