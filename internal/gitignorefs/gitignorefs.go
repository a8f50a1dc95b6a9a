// Package gitignorefs implements the GitignoreCompiler collaborator of
// spec.md §6 over github.com/sabhiram/go-gitignore, the gitignore matcher
// present in the example pack's manifests.
package gitignorefs

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Filter is one directory's compiled .gitignore, remembered keyed by
// directory per spec.md §4.3 step 2 ("remember them keyed by directory").
type Filter struct {
	baseDir string
	matcher *ignore.GitIgnore
}

// Compile reads and compiles the .gitignore file in dir, if any. A missing
// file is not an error: it simply yields no filter for that directory.
func Compile(dir string) (*Filter, bool) {
	path := filepath.Join(dir, ".gitignore")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	lines := strings.Split(string(data), "\n")
	m := ignore.CompileIgnoreLines(lines...)
	return &Filter{baseDir: dir, matcher: m}, true
}

// Matches reports whether path (absolute or relative to the process's
// working directory, matching dir's own form) is ignored by filters,
// combining ancestor directories outer-to-inner per spec.md §4.3 step 2.
// The path is ignored when any one filter matches it; a negation pattern in
// an inner .gitignore does not re-include a path an outer filter ignores.
func Matches(filters []*Filter, path string, isDir bool) bool {
	ignored := false
	for _, f := range filters {
		rel, err := filepath.Rel(f.baseDir, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}
		if f.matcher.MatchesPath(rel) {
			ignored = true
		}
	}
	return ignored
}
