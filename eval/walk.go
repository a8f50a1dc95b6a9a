package eval

import (
	"io"
	"os"
	"path/filepath"

	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/format"
	"github.com/freeeve/fselect/internal/archivefs"
	"github.com/freeeve/fselect/internal/gitignorefs"
)

// Run executes q against the local filesystem and writes its result to out,
// per spec.md §4.3/§5. It chooses streaming or buffered emission per
// ast.Query.Buffered.
func (ev *Evaluator) Run(q *ast.Query, out io.Writer) error {
	columns := make([]string, len(q.Fields))
	for i, c := range q.Fields {
		columns[i] = ast.ColumnLabel(c)
	}

	ev.found = 0
	ev.writeErr = nil

	roots := q.Roots
	if len(roots) == 0 {
		roots = []ast.Root{{Path: "."}}
	}

	switch {
	case q.HasAggregates():
		aggs := newAggregators(q.Fields)
		stop := false
		for _, root := range roots {
			if stop {
				break
			}
			ev.walkRoot(q, root, nil, nil, aggs, &stop)
		}
		row := make([]string, len(columns))
		for i, agg := range aggs {
			if agg != nil {
				row[i] = agg.Result()
			}
		}
		w := format.New(out, q.Format, columns)
		if err := w.WriteRow(row); err != nil {
			return err
		}
		return w.Close()

	case q.HasOrdering():
		buf := newBuffer(q.Limit)
		stop := false
		for _, root := range roots {
			if stop {
				break
			}
			ev.walkRoot(q, root, nil, buf, nil, &stop)
		}
		w := format.New(out, q.Format, columns)
		for _, row := range buf.Drain() {
			if err := w.WriteRow(row); err != nil {
				return err
			}
		}
		return w.Close()

	default:
		w := format.New(out, q.Format, columns)
		stop := false
		for _, root := range roots {
			if stop {
				break
			}
			ev.walkRoot(q, root, w, nil, nil, &stop)
		}
		if ev.writeErr != nil {
			return ev.writeErr
		}
		return w.Close()
	}
}

func (ev *Evaluator) walkRoot(q *ast.Query, root ast.Root, w format.Writer, buf *buffer, aggs []*aggregator, stop *bool) {
	ev.walkDir(q, root, root.Path, 0, nil, w, buf, aggs, stop)
}

// walkDir implements the depth-first pre-order walk of spec.md §4.3.
func (ev *Evaluator) walkDir(q *ast.Query, root ast.Root, dir string, depth int, filters []*gitignorefs.Filter, w format.Writer, buf *buffer, aggs []*aggregator, stop *bool) {
	if *stop {
		return
	}
	if root.Gitignore {
		if f, ok := ev.gitignoreFilterFor(dir); ok {
			next := make([]*gitignorefs.Filter, len(filters), len(filters)+1)
			copy(next, filters)
			filters = append(next, f)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if ev.log != nil {
			ev.log.PathError(dir, err)
		}
		return
	}

	childDepth := depth + 1
	inRange := (root.MinDepth == 0 || childDepth >= root.MinDepth) &&
		(root.MaxDepth == 0 || childDepth <= root.MaxDepth)

	for _, de := range entries {
		if *stop {
			return
		}
		childPath := filepath.Join(dir, de.Name())
		isDir := de.IsDir()

		if root.Gitignore && gitignorefs.Matches(filters, childPath, isDir) {
			continue
		}

		if inRange {
			entry := &Entry{Path: childPath, Name: de.Name()}
			ev.checkFile(q, entry, w, buf, aggs, stop)
			if *stop {
				return
			}
		}

		if !isDir && root.Archives && archivefs.Recognized(childPath) {
			ev.walkArchive(q, childPath, w, buf, aggs, stop)
			if *stop {
				return
			}
		}

		if isDir {
			ev.walkDir(q, root, childPath, childDepth, filters, w, buf, aggs, stop)
		} else if root.Symlinks && de.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(childPath); err == nil && info.IsDir() {
				ev.walkDir(q, root, childPath, childDepth, filters, w, buf, aggs, stop)
			}
		}
	}
}

func (ev *Evaluator) walkArchive(q *ast.Query, archivePath string, w format.Writer, buf *buffer, aggs []*aggregator, stop *bool) {
	members, err := ev.archives.Open(archivePath)
	if err != nil {
		if ev.log != nil {
			ev.log.SkippedArchive(archivePath, err)
		}
		return
	}
	for _, m := range members {
		if *stop {
			return
		}
		entry := &Entry{
			Path:        m.Name,
			Name:        filepath.Base(m.Name),
			Virtual:     true,
			ArchivePath: archivePath,
			vSize:       m.Size,
			vMode:       os.FileMode(m.Mode),
			vModTime:    m.ModTime,
			vIsDir:      m.IsDir,
		}
		ev.checkFile(q, entry, w, buf, aggs, stop)
	}
}

// checkFile implements spec.md §4.3's check_file: evaluate expr, then
// either fold the row into the aggregate accumulators, insert it into the
// ordered buffer, or stream it immediately.
func (ev *Evaluator) checkFile(q *ast.Query, entry *Entry, w format.Writer, buf *buffer, aggs []*aggregator, stop *bool) {
	if q.Expr != nil && !evalExpr(ev, entry, q.Expr) {
		return
	}
	ev.found++

	if aggs != nil {
		for _, agg := range aggs {
			if agg != nil {
				agg.Accept(ev, entry)
			}
		}
		return
	}

	row := ev.renderColumns(entry, q.Fields)

	if buf != nil {
		crit := criterion{
			values: ev.renderColumns(entry, q.OrderFields),
			asc:    q.OrderAsc,
		}
		buf.Insert(row, crit)
		return
	}

	if err := w.WriteRow(row); err != nil {
		ev.writeErr = err
		*stop = true
		return
	}
	if q.Limit > 0 && ev.found >= q.Limit {
		*stop = true
	}
}

func (ev *Evaluator) gitignoreFilterFor(dir string) (*gitignorefs.Filter, bool) {
	if cached, ok := ev.gitignoreCache[dir]; ok {
		if len(cached) == 0 {
			return nil, false
		}
		return cached[0], true
	}
	f, ok := gitignorefs.Compile(dir)
	if !ok {
		ev.gitignoreCache[dir] = nil
		return nil, false
	}
	ev.gitignoreCache[dir] = []*gitignorefs.Filter{f}
	return f, true
}
