package config

import "github.com/mitchellh/hashstructure/v2"

// Fingerprint returns a hash covering every configuration field. The cache
// file stores it on its first line; a mismatch means the cache was written
// under different settings and must be rebuilt.
//
// The value is only guaranteed stable within a single build of grit — it is
// an invalidation signal, not an on-disk format.
func (c *Config) Fingerprint() uint64 {
	h, err := hashstructure.Hash(c, hashstructure.FormatV2, nil)
	if err != nil {
		// Hash cannot fail on a struct of strings, bools and slices.
		return 0
	}
	return h
}
