// Package logging wraps github.com/sirupsen/logrus behind a small facade
// for the per-path I/O errors, skipped archives and degraded-metadata
// notices of spec.md §7. Grounded on dolthub-go-mysql-server's stack, the
// one pack repo that ships a structured logger as a direct dependency.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the facade eval consumes; it never writes to stdout, which is
// reserved for query output (spec.md §A.2 of SPEC_FULL.md).
type Logger struct {
	entry *logrus.Logger
}

// New builds a Logger writing to stderr at warn level, or debug level when
// QFIND_DEBUG is set in the environment.
func New() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: false})
	level := logrus.WarnLevel
	if os.Getenv("QFIND_DEBUG") != "" {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)
	return &Logger{entry: l}
}

// PathError logs a per-path I/O error (readdir/stat failure); traversal
// continues regardless (spec.md §7).
func (l *Logger) PathError(path string, err error) {
	l.entry.WithField("path", path).Warnf("traversal: %v", err)
}

// Degraded logs a best-effort metadata probe (image/audio/xattr/archive)
// that failed and was treated as absent.
func (l *Logger) Degraded(path, source string, err error) {
	l.entry.WithFields(logrus.Fields{"path": path, "source": source}).Debugf("probe failed: %v", err)
}

// SkippedArchive logs an archive that could not be opened for member
// enumeration.
func (l *Logger) SkippedArchive(path string, err error) {
	l.entry.WithField("path", path).Warnf("archive unreadable: %v", err)
}
