package config

import "testing"

func TestFingerprint(t *testing.T) {
	t.Parallel()

	base := func() Config {
		return Config{
			BaseDir:         "/home/u",
			IgnoredPatterns: []string{".cargo"},
			DefaultCmd:      "status",
			ShowUntracked:   true,
			CacheFile:       "/home/u/.cache/grit/repos.txt",
			IgnoreFile:      "/home/u/.cache/grit/ignored.txt",
		}
	}

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		a, b := base(), base()
		if a.Fingerprint() != b.Fingerprint() {
			t.Error("equal configs should fingerprint equally")
		}
	})

	t.Run("sensitive to every field", func(t *testing.T) {
		t.Parallel()

		mutations := map[string]func(*Config){
			"BaseDir":         func(c *Config) { c.BaseDir = "/srv" },
			"FollowSymlinks":  func(c *Config) { c.FollowSymlinks = true },
			"SameFilesystem":  func(c *Config) { c.SameFilesystem = true },
			"IgnoredPatterns": func(c *Config) { c.IgnoredPatterns = append(c.IgnoredPatterns, "target") },
			"DefaultCmd":      func(c *Config) { c.DefaultCmd = "list" },
			"ShowUntracked":   func(c *Config) { c.ShowUntracked = false },
			"Verbose":         func(c *Config) { c.Verbose = true },
			"CacheFile":       func(c *Config) { c.CacheFile = "/elsewhere/repos.txt" },
			"IgnoreFile":      func(c *Config) { c.IgnoreFile = "/elsewhere/ignored.txt" },
		}

		baseline := base()
		want := baseline.Fingerprint()
		for field, mutate := range mutations {
			t.Run(field, func(t *testing.T) {
				t.Parallel()
				c := base()
				mutate(&c)
				if c.Fingerprint() == want {
					t.Errorf("changing %s did not change the fingerprint", field)
				}
			})
		}
	})
}
