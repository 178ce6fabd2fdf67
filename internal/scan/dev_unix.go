//go:build unix

package scan

import (
	"os"
	"syscall"
)

// deviceID returns the filesystem device the file lives on.
func deviceID(info os.FileInfo) (uint64, bool) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(st.Dev), true
	}
	return 0, false
}
