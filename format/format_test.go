package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/freeeve/fselect/ast"
)

func TestLinesWriterOneValuePerLine(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, ast.FormatLines, []string{"name", "size"})
	if err := w.WriteRow([]string{"a.go", "120"}); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := buf.String(); got != "a.go\n120\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestListWriterNulSeparated(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, ast.FormatList, nil)
	w.WriteRow([]string{"a.go"})
	w.WriteRow([]string{"b.go"})
	w.Close()
	parts := strings.Split(buf.String(), "\x00")
	if len(parts) != 3 || parts[0] != "a.go" || parts[1] != "b.go" || parts[2] != "" {
		t.Fatalf("unexpected parts %#v", parts)
	}
}

func TestTabsWriter(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, ast.FormatTabs, nil)
	w.WriteRow([]string{"a", "1"})
	w.Close()
	if got := buf.String(); got != "a\t1\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCSVWriterQuoting(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, ast.FormatCSV, nil)
	w.WriteRow([]string{"has, comma", "plain"})
	w.Close()
	if got := buf.String(); got != "\"has, comma\",plain\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestJSONWriterEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, ast.FormatJSON, []string{"name"})
	w.Close()
	if got := buf.String(); got != "[]\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestJSONWriterRows(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, ast.FormatJSON, []string{"name", "size"})
	w.WriteRow([]string{"a.go", "10"})
	w.WriteRow([]string{"b.go", "20"})
	w.Close()
	got := buf.String()
	if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "]\n") {
		t.Fatalf("expected a json array, got %q", got)
	}
	if !strings.Contains(got, `"name":"a.go"`) || !strings.Contains(got, `"size":"20"`) {
		t.Fatalf("unexpected json body %q", got)
	}
}
