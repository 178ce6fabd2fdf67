// Package cache persists the repository inventory between invocations.
//
// Two files live in grit's user-cache directory:
//
//   - repos.txt: the configuration fingerprint on line 1, then one
//     repository path per line in sorted order. A fingerprint mismatch
//     (settings changed, different build) invalidates the whole file and
//     forces a rescan; a single stale path does not — stale and ignored
//     entries are dropped on read instead.
//
//   - ignored.txt: one canonical absolute path per line, appended to by
//     `grit ignore`. Repositories under these paths are filtered from
//     every read.
//
// Writes go through a temporary file and rename, so a concurrent reader
// never sees a half-written cache. There is no cross-process locking;
// concurrent grit invocations racing on the cache is accepted for a
// single-user local tool.
package cache
