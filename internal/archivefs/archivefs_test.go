package archivefs

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestRecognizedExtensions(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.zip", true},
		{"a.ZIP", true},
		{"lib.jar", true},
		{"app.war", true},
		{"app.ear", true},
		{"a.tar.gz", false},
		{"a.txt", false},
	}
	for _, tt := range tests {
		if got := Recognized(tt.path); got != tt.want {
			t.Errorf("Recognized(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestZipReaderOpenListsMembers(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "test.zip")
	writeFixtureZip(t, zipPath, map[string]string{"inner/x.txt": "hello"})

	members, err := (ZipReader{}).Open(zipPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("got %d members, want 1", len(members))
	}
	if members[0].Name != "inner/x.txt" {
		t.Errorf("got name %q, want inner/x.txt", members[0].Name)
	}
	if members[0].Size != int64(len("hello")) {
		t.Errorf("got size %d, want %d", members[0].Size, len("hello"))
	}
}

func writeFixtureZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, contents := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(contents)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
}
