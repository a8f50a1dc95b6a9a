// Package format renders query result rows in one of the five output
// encodings of spec.md §4.8: Lines, List, Tabs, CSV and JSON. It is
// deliberately decoupled from eval: a Writer only ever sees the already
// string-rendered values of one row, never the Entry or Query that produced
// them.
package format

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/freeeve/fselect/ast"
)

// Writer streams formatted rows to an underlying io.Writer. Rows must all
// have the same number of values as columns passed to New. Close must be
// called exactly once, after the last WriteRow, to flush buffering and (for
// JSON) close the enclosing array.
type Writer interface {
	WriteRow(values []string) error
	Close() error
}

// New returns the Writer for format f, labeling columns with their display
// names (used only by the JSON encoding, as object keys).
func New(w io.Writer, f ast.OutputFormat, columns []string) Writer {
	switch f {
	case ast.FormatList:
		return &listWriter{w: bufio.NewWriter(w)}
	case ast.FormatTabs:
		return &tabsWriter{w: bufio.NewWriter(w)}
	case ast.FormatCSV:
		return &csvWriter{cw: csv.NewWriter(w)}
	case ast.FormatJSON:
		return &jsonWriter{w: bufio.NewWriter(w), columns: columns}
	default:
		return &linesWriter{w: bufio.NewWriter(w)}
	}
}

// linesWriter implements "lines": each column value followed by `\n`,
// columns concatenated without any other separator (spec.md §4.8).
type linesWriter struct{ w *bufio.Writer }

func (l *linesWriter) WriteRow(values []string) error {
	for _, v := range values {
		if _, err := l.w.WriteString(v); err != nil {
			return err
		}
		if err := l.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func (l *linesWriter) Close() error { return l.w.Flush() }

// listWriter implements "list": each column value followed by `\0`,
// mirroring `find -print0`'s NUL-delimited stream for safe piping into
// `xargs -0`.
type listWriter struct{ w *bufio.Writer }

func (l *listWriter) WriteRow(values []string) error {
	for _, v := range values {
		if _, err := l.w.WriteString(v); err != nil {
			return err
		}
		if err := l.w.WriteByte(0); err != nil {
			return err
		}
	}
	return nil
}

func (l *listWriter) Close() error { return l.w.Flush() }

// tabsWriter implements "tabs": tab-separated columns, one row per line.
type tabsWriter struct{ w *bufio.Writer }

func (t *tabsWriter) WriteRow(values []string) error {
	for i, v := range values {
		if i > 0 {
			if err := t.w.WriteByte('\t'); err != nil {
				return err
			}
		}
		if _, err := t.w.WriteString(v); err != nil {
			return err
		}
	}
	return t.w.WriteByte('\n')
}

func (t *tabsWriter) Close() error { return t.w.Flush() }

// csvWriter implements "csv" via the standard library's RFC 4180 writer
// (there is no third-party CSV encoder anywhere in the example pack, so
// stdlib is the grounded choice — see DESIGN.md).
type csvWriter struct{ cw *csv.Writer }

func (c *csvWriter) WriteRow(values []string) error { return c.cw.Write(values) }

func (c *csvWriter) Close() error {
	c.cw.Flush()
	return c.cw.Error()
}

// jsonWriter implements "json" as a streamed JSON array of objects keyed by
// the lower-cased column label (spec.md §4.8), written incrementally so
// large result sets never need to be buffered in full (spec.md §5's
// streaming-mode guarantee still applies to format, even in
// buffered-evaluation queries). Keys are emitted in column order rather than
// via map[string]json, which encoding/json would otherwise alphabetize.
type jsonWriter struct {
	w       *bufio.Writer
	columns []string
	started bool
}

func (j *jsonWriter) WriteRow(values []string) error {
	if !j.started {
		if _, err := j.w.WriteString("["); err != nil {
			return err
		}
		j.started = true
	} else {
		if _, err := j.w.WriteString(","); err != nil {
			return err
		}
	}
	if err := j.w.WriteByte('{'); err != nil {
		return err
	}
	for i, v := range values {
		if i > 0 {
			if err := j.w.WriteByte(','); err != nil {
				return err
			}
		}
		key := fmt.Sprintf("col%d", i)
		if i < len(j.columns) && j.columns[i] != "" {
			key = strings.ToLower(j.columns[i])
		}
		keyEnc, err := json.Marshal(key)
		if err != nil {
			return err
		}
		valEnc, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := j.w.Write(keyEnc); err != nil {
			return err
		}
		if err := j.w.WriteByte(':'); err != nil {
			return err
		}
		if _, err := j.w.Write(valEnc); err != nil {
			return err
		}
	}
	return j.w.WriteByte('}')
}

func (j *jsonWriter) Close() error {
	if !j.started {
		if _, err := j.w.WriteString("["); err != nil {
			return err
		}
	}
	if _, err := j.w.WriteString("]\n"); err != nil {
		return err
	}
	return j.w.Flush()
}
