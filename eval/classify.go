package eval

import (
	"path/filepath"
	"strings"

	"github.com/freeeve/fselect/internal/archivefs"
)

var audioExt = extSet(".mp3", ".flac", ".ogg", ".wav", ".m4a", ".aac", ".wma")
var bookExt = extSet(".epub", ".mobi", ".azw", ".azw3", ".fb2")
var docExt = extSet(".doc", ".docx", ".odt", ".pdf", ".rtf", ".txt", ".md")
var imageExt = extSet(".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp")
var videoExt = extSet(".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm")
var sourceExt = extSet(
	".go", ".rs", ".py", ".c", ".h", ".cpp", ".cc", ".hpp", ".java",
	".js", ".ts", ".rb", ".php", ".sh", ".swift", ".kt", ".scala", ".cs",
)

func extSet(exts ...string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		m[e] = true
	}
	return m
}

func hasExt(path string, set map[string]bool) bool {
	return set[strings.ToLower(filepath.Ext(path))]
}

func isArchive(path string) bool { return archivefs.Recognized(path) }
func isAudio(path string) bool   { return hasExt(path, audioExt) }
func isBook(path string) bool    { return hasExt(path, bookExt) }
func isDoc(path string) bool     { return hasExt(path, docExt) }
func isImage(path string) bool   { return hasExt(path, imageExt) }
func isVideo(path string) bool   { return hasExt(path, videoExt) }
func isSource(path string) bool  { return hasExt(path, sourceExt) }
