//go:build linux

package eval

import (
	"os"
	"syscall"
	"time"
)

// unixStat extracts the fields only available via the platform-specific
// syscall.Stat_t, per spec.md §9's "User/group resolution... capability
// object" pattern extended to the rest of the inode fields this tool needs.
// Linux has no true file-creation timestamp in struct stat; "created"
// reports ctime (last inode-metadata change), the closest available proxy.
func unixStat(info os.FileInfo) (uid, gid int, accessed, created time.Time, ok bool) {
	st, isStat := info.Sys().(*syscall.Stat_t)
	if !isStat {
		return 0, 0, time.Time{}, time.Time{}, false
	}
	atime := time.Unix(st.Atim.Sec, st.Atim.Nsec)
	ctime := time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	return int(st.Uid), int(st.Gid), atime, ctime, true
}

func hasXattrsPlatform(path string) bool {
	// listxattr without a fixed-size buffer requires two syscalls (size
	// probe, then read); we only need presence, so a zero-length probe
	// suffices and avoids allocating for the common "no xattrs" case.
	n, err := syscall.Listxattr(path, nil)
	return err == nil && n > 0
}
