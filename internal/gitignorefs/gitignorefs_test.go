package gitignorefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCompileMissingGitignoreIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	if _, ok := Compile(dir); ok {
		t.Error("expected no filter when .gitignore is absent")
	}
}

func TestMatchesFiltersByPattern(t *testing.T) {
	dir := t.TempDir()
	writeGitignore(t, dir, "*.log\nbuild/\n")

	f, ok := Compile(dir)
	if !ok {
		t.Fatal("expected a compiled filter")
	}

	if !Matches([]*Filter{f}, filepath.Join(dir, "debug.log"), false) {
		t.Error("debug.log should match *.log")
	}
	if Matches([]*Filter{f}, filepath.Join(dir, "main.go"), false) {
		t.Error("main.go should not be ignored")
	}
	if !Matches([]*Filter{f}, filepath.Join(dir, "build"), true) {
		t.Error("build/ directory should match build/")
	}
}

func TestMatchesCombinesAncestorFilters(t *testing.T) {
	outer := t.TempDir()
	writeGitignore(t, outer, "*.tmp\n")
	inner := filepath.Join(outer, "sub")
	if err := os.Mkdir(inner, 0o755); err != nil {
		t.Fatal(err)
	}
	writeGitignore(t, inner, "*.log\n")

	outerFilter, _ := Compile(outer)
	innerFilter, _ := Compile(inner)
	filters := []*Filter{outerFilter, innerFilter}

	if !Matches(filters, filepath.Join(inner, "a.tmp"), false) {
		t.Error("outer filter should still apply to files under sub/")
	}
	if !Matches(filters, filepath.Join(inner, "b.log"), false) {
		t.Error("inner filter should apply to its own directory")
	}
}

func writeGitignore(t *testing.T, dir, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}
