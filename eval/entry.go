// Package eval walks filesystem roots, evaluates the parsed query's
// expression against each candidate entry, and emits projected rows, per
// spec.md §4.3.
package eval

import (
	"os"
	"time"

	"github.com/freeeve/fselect/internal/media"
)

// Entry is what predicate evaluation and projection operate on: either a
// real directory entry backed by os.FileInfo, or a virtual entry
// synthesized from an archive member with no inode metadata (spec.md §3).
type Entry struct {
	Path string // full filesystem path for real entries; display path for virtual ones
	Name string

	Virtual     bool
	ArchivePath string // containing archive's path, set only when Virtual

	info    os.FileInfo
	statErr error
	statted bool

	// virtual-entry attributes, valid only when Virtual is true
	vSize    int64
	vMode    os.FileMode
	vModTime time.Time
	vIsDir   bool

	// lazy metadata slots (spec.md §4.4): each is populated on first access
	// and reused afterward within this entry's lifetime.
	dim       media.Dimensions
	dimOK     bool
	dimLoaded bool

	audio       media.AudioInfo
	audioOK     bool
	audioLoaded bool

	userName    string
	userOK      bool
	userLoaded  bool
	groupName   string
	groupOK     bool
	groupLoaded bool

	shebang       bool
	shebangLoaded bool

	xattrs       bool
	xattrsLoaded bool
}

// Info returns the entry's os.FileInfo, stat-ing lazily the first time
// (real entries only; always absent for virtual entries).
func (e *Entry) Info() (os.FileInfo, bool) {
	if e.Virtual {
		return nil, false
	}
	if !e.statted {
		e.info, e.statErr = os.Lstat(e.Path)
		e.statted = true
	}
	return e.info, e.statErr == nil
}

// Size returns the entry's byte size, from inode metadata or the virtual
// member's recorded size.
func (e *Entry) Size() (int64, bool) {
	if e.Virtual {
		return e.vSize, true
	}
	info, ok := e.Info()
	if !ok {
		return 0, false
	}
	return info.Size(), true
}

// Mode returns the entry's file mode.
func (e *Entry) Mode() (os.FileMode, bool) {
	if e.Virtual {
		return e.vMode, true
	}
	info, ok := e.Info()
	if !ok {
		return 0, false
	}
	return info.Mode(), true
}

// ModTime returns the entry's modification time.
func (e *Entry) ModTime() (time.Time, bool) {
	if e.Virtual {
		return e.vModTime, true
	}
	info, ok := e.Info()
	if !ok {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool {
	if e.Virtual {
		return e.vIsDir
	}
	info, ok := e.Info()
	return ok && info.IsDir()
}

// DisplayPath is the value the Name/Path fields and the "Lines"/"List"
// projections render: for a virtual entry, the archive path bracketed in
// front of the member name (spec.md §8 scenario 6: "[z.zip] inner/x.txt").
func (e *Entry) DisplayPath() string {
	if e.Virtual {
		return "[" + e.ArchivePath + "] " + e.Path
	}
	return e.Path
}
