// Package config loads grit's configuration.
//
// Settings are read from ~/.config/grit/config.toml and merged over the
// built-in defaults; the --verbose and --untracked/--nountracked flags
// override the merged result per invocation. The recognized keys:
//
//	basedir = "~/src"          # root directory for scans (default: home)
//	follow-symlinks = false    # descend into symlinked directories
//	same-filesystem = false    # don't cross filesystem boundaries
//	ignore = ".cargo, target"  # comma-separated path substrings to skip
//	default-cmd = "status"     # subcommand used when none is given
//	show-untracked = true      # include untracked files in status output
//	verbose = false
//	cache-file = ""            # override the cache file location
//	ignore-file = ""           # override the ignore-list file location
//
// The [Config.Fingerprint] of the merged configuration tags the cache file,
// so changing any setting invalidates previously cached scans.
package config
