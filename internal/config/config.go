package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the grit configuration for one invocation. It is constructed
// once at process start and passed explicitly into every component that
// needs it; there is no ambient global configuration.
type Config struct {
	// BaseDir is the root directory scans start from.
	BaseDir string
	// FollowSymlinks makes the scan descend into symlinked directories.
	FollowSymlinks bool
	// SameFilesystem keeps the scan on the filesystem BaseDir lives on.
	SameFilesystem bool
	// IgnoredPatterns are substrings that exclude a path from scans.
	IgnoredPatterns []string
	// DefaultCmd is the subcommand run when none is given.
	DefaultCmd string
	// ShowUntracked includes untracked files in status output.
	ShowUntracked bool
	// Verbose enables command echo and scan progress.
	Verbose bool
	// CacheFile is the full path of the repository cache file.
	CacheFile string
	// IgnoreFile is the full path of the ignored-repository list file.
	IgnoreFile string
}

// fileConfig mirrors the config file on disk. Booleans are pointers so that
// an absent key keeps the built-in default.
type fileConfig struct {
	BaseDir        string `toml:"basedir"`
	FollowSymlinks *bool  `toml:"follow-symlinks"`
	SameFilesystem *bool  `toml:"same-filesystem"`
	Ignore         string `toml:"ignore"` // comma-separated patterns
	DefaultCmd     string `toml:"default-cmd"`
	ShowUntracked  *bool  `toml:"show-untracked"`
	Verbose        *bool  `toml:"verbose"`
	CacheFile      string `toml:"cache-file"`
	IgnoreFile     string `toml:"ignore-file"`
}

// Default returns the default configuration: scan the home directory, no
// ignore patterns, `status` as the default subcommand, cache files under the
// user cache directory.
func Default() Config {
	return Config{
		BaseDir:       homeDir(),
		DefaultCmd:    "status",
		ShowUntracked: true,
		CacheFile:     filepath.Join(cacheDir(), "repos.txt"),
		IgnoreFile:    filepath.Join(cacheDir(), "ignored.txt"),
	}
}

// Load reads the user's config file, if present, and merges it over the
// defaults. A missing file is not an error.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom merges the config file at path over the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.BaseDir != "" {
		base, err := expandPath(fc.BaseDir)
		if err != nil {
			return cfg, err
		}
		cfg.BaseDir = base
	}
	if fc.FollowSymlinks != nil {
		cfg.FollowSymlinks = *fc.FollowSymlinks
	}
	if fc.SameFilesystem != nil {
		cfg.SameFilesystem = *fc.SameFilesystem
	}
	if fc.Ignore != "" {
		cfg.IgnoredPatterns = splitPatterns(fc.Ignore)
	}
	if fc.DefaultCmd != "" {
		cfg.DefaultCmd = fc.DefaultCmd
	}
	if fc.ShowUntracked != nil {
		cfg.ShowUntracked = *fc.ShowUntracked
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.CacheFile != "" {
		cacheFile, err := expandPath(fc.CacheFile)
		if err != nil {
			return cfg, err
		}
		cfg.CacheFile = cacheFile
	}
	if fc.IgnoreFile != "" {
		ignoreFile, err := expandPath(fc.IgnoreFile)
		if err != nil {
			return cfg, err
		}
		cfg.IgnoreFile = ignoreFile
	}

	return cfg, nil
}

// splitPatterns parses a comma-separated pattern list, trimming whitespace
// and dropping empty entries.
func splitPatterns(s string) []string {
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "grit", "config.toml"), nil
}

// homeDir returns the user's home directory, falling back to the
// filesystem root.
func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return string(filepath.Separator)
}

// cacheDir returns the directory grit keeps its cache files in.
func cacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "grit")
	}
	return filepath.Join(homeDir(), ".cache", "grit")
}
