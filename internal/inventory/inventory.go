// Package inventory ties discovery and caching together: it answers "which
// repositories do I manage" from the cache when possible and rescans the
// filesystem when not.
package inventory

import (
	"context"
	"fmt"

	"github.com/raphi011/grit/internal/cache"
	"github.com/raphi011/grit/internal/config"
	"github.com/raphi011/grit/internal/repo"
	"github.com/raphi011/grit/internal/scan"
)

// Inventory owns the cached repository list and the ignore list for one
// configuration.
type Inventory struct {
	cfg    *config.Config
	store  cache.Store
	ignore cache.IgnoreList
}

// New builds an inventory over the cache and ignore files named by cfg.
func New(cfg *config.Config) *Inventory {
	return &Inventory{
		cfg:    cfg,
		store:  cache.NewStore(cfg.CacheFile),
		ignore: cache.NewIgnoreList(cfg.IgnoreFile),
	}
}

// Repositories returns every managed repository, sorted by path. A valid
// cache is served as-is; otherwise the base directory is scanned and the
// cache rewritten first. Either way the result is read back from the cache
// file, so callers always see what the next invocation will see.
func (inv *Inventory) Repositories(ctx context.Context, progress scan.ProgressFunc) ([]repo.Repo, error) {
	fingerprint := inv.cfg.Fingerprint()
	if !inv.store.IsValid(fingerprint) {
		found := scan.Find(ctx, inv.cfg, inv.ignore.Load(), progress)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := inv.store.Write(fingerprint, found); err != nil {
			return nil, fmt.Errorf("update repository cache: %w", err)
		}
	}
	return inv.store.Read(inv.ignore.Load()), nil
}

// Rescan drops the cache and rebuilds it from the filesystem.
func (inv *Inventory) Rescan(ctx context.Context, progress scan.ProgressFunc) ([]repo.Repo, error) {
	if err := inv.ClearCache(); err != nil {
		return nil, err
	}
	return inv.Repositories(ctx, progress)
}

// ClearCache removes the cache file. The next Repositories call rescans.
func (inv *Inventory) ClearCache() error {
	if err := inv.store.Clear(); err != nil {
		return fmt.Errorf("clear repository cache: %w", err)
	}
	return nil
}

// Ignore adds path to the ignore list and returns the canonical form that
// was stored. The cache is left alone; ignored entries are filtered out on
// every read.
func (inv *Inventory) Ignore(path string) (string, error) {
	return inv.ignore.Add(path)
}

// Ignored returns the ignore list as stored, in file order.
func (inv *Inventory) Ignored() []string {
	return inv.ignore.Load()
}
