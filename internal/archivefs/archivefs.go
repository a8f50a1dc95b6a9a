// Package archivefs implements the ArchiveReader collaborator of spec.md
// §6 over the standard library's archive/zip: there is no third-party ZIP
// reader anywhere in the example pack, so stdlib is the grounded choice.
// ZIP, JAR, WAR and EAR files all use the ZIP container
// format, matching spec.md §4.3's recognized archive extensions.
package archivefs

import (
	"archive/zip"
	"strings"
	"time"
)

// Member is one virtual entry synthesized from an archive member (spec.md
// §3: "no inode metadata").
type Member struct {
	Name    string
	Size    int64
	Mode    uint32
	ModTime time.Time
	IsDir   bool
}

// Reader opens archive files and enumerates their members.
type Reader interface {
	Open(path string) ([]Member, error)
}

// ZipReader is the default Reader, backed by archive/zip.
type ZipReader struct{}

func (ZipReader) Open(path string) ([]Member, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	members := make([]Member, 0, len(r.File))
	for _, f := range r.File {
		fi := f.FileInfo()
		members = append(members, Member{
			Name:    strings.TrimSuffix(f.Name, "/"),
			Size:    int64(f.UncompressedSize64),
			Mode:    uint32(fi.Mode().Perm()),
			ModTime: f.Modified,
			IsDir:   fi.IsDir(),
		})
	}
	return members, nil
}

// Recognized reports whether path names a file extension this package
// knows how to open as a ZIP-family container (spec.md §4.3).
func Recognized(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range []string{".zip", ".jar", ".war", ".ear"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
