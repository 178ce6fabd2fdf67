//go:build !unix

package scan

import "os"

// deviceID is unavailable on this platform; the same-filesystem policy
// becomes a no-op.
func deviceID(info os.FileInfo) (uint64, bool) {
	return 0, false
}
