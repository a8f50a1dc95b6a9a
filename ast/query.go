package ast

// OutputFormat selects the row encoding the formatter produces (spec.md
// §4.8).
type OutputFormat int

const (
	FormatLines OutputFormat = iota
	FormatList
	FormatTabs
	FormatCSV
	FormatJSON
)

var formatNames = map[string]OutputFormat{
	"lines": FormatLines,
	"list":  FormatList,
	"tabs":  FormatTabs,
	"csv":   FormatCSV,
	"json":  FormatJSON,
}

// LookupFormat resolves a lower-cased `into` target name.
func LookupFormat(lowerName string) (OutputFormat, bool) {
	f, ok := formatNames[lowerName]
	return f, ok
}

// Root is one `from` target with its per-root traversal options (spec.md
// §3). MinDepth/MaxDepth of 0 mean "unbounded" on that side.
type Root struct {
	Path      string
	MinDepth  int
	MaxDepth  int
	Archives  bool
	Symlinks  bool
	Gitignore bool
}

// Query is the fully parsed, immutable request (spec.md §3). It is built
// once by the parser and never mutated afterward; the evaluator only reads
// it.
type Query struct {
	Fields []ColumnExpr

	Roots []Root

	Expr Expr // nil when there is no `where` clause

	OrderFields []ColumnExpr
	OrderAsc    []bool

	Limit int // 0 means unlimited

	Format OutputFormat
}

// HasOrdering reports whether the query requests a sort, which forces
// buffered evaluation per spec.md §4.6/§5 (glossary: "Buffered mode").
func (q *Query) HasOrdering() bool {
	return len(q.OrderFields) > 0
}

// HasAggregates reports whether any projected column is an aggregate
// function, which forces buffered, single-row evaluation per spec.md §4.7.
func (q *Query) HasAggregates() bool {
	for _, c := range q.Fields {
		if fc, ok := c.(*FuncCall); ok && fc.Func.IsAggregate() {
			return true
		}
	}
	return false
}

// Buffered reports whether the query requires buffered evaluation (either
// ordering or aggregation), versus streaming rows as they are produced
// (spec.md §5 glossary).
func (q *Query) Buffered() bool {
	return q.HasOrdering() || q.HasAggregates()
}
