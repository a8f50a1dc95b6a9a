//go:build windows

package eval

import (
	"os"
	"time"
)

// On Windows, uid/gid/xattrs have no equivalent through os.FileInfo; all
// report absent, matching spec.md §3's "fields requiring inode metadata...
// evaluate to false" rule, applied here to the whole platform rather than
// just archive members.
func unixStat(info os.FileInfo) (uid, gid int, accessed, created time.Time, ok bool) {
	return 0, 0, info.ModTime(), info.ModTime(), false
}

func hasXattrsPlatform(path string) bool { return false }
