// Package repo models git repositories and the operations grit runs against
// them.
//
// A [Repo] is an immutable value identified by the full path to its
// working-tree root. The discovery walk and the cache both produce Repos;
// nothing ever mutates one.
//
// Operations (status, stash list, ahead-of-remote) go through a [Handle]
// obtained from [Open], which shells out to the git binary. A repository
// that fails to open — a corrupted or deleted .git — is a soft error: Open
// returns ok=false and the caller records "no data" for that repository
// instead of aborting the batch.
package repo
