package ast

// Function is the closed set of scalar and aggregate projection functions
// from spec.md §3/§4.5/§4.7.
type Function int

const (
	FuncNone Function = iota

	// scalar
	FuncLower
	FuncUpper
	FuncLength
	FuncYear
	FuncMonth
	FuncDay

	// aggregate
	FuncMin
	FuncMax
	FuncAvg
	FuncSum
	FuncCount
)

// IsAggregate reports whether f reduces many rows to one, per spec.md §3
// ("Aggregates cannot be mixed with non-aggregate projections...").
func (f Function) IsAggregate() bool {
	switch f {
	case FuncMin, FuncMax, FuncAvg, FuncSum, FuncCount:
		return true
	default:
		return false
	}
}

var functionNames = map[string]Function{
	"lower":  FuncLower,
	"upper":  FuncUpper,
	"length": FuncLength,
	"year":   FuncYear,
	"month":  FuncMonth,
	"day":    FuncDay,
	"min":    FuncMin,
	"max":    FuncMax,
	"avg":    FuncAvg,
	"sum":    FuncSum,
	"count":  FuncCount,
}

var functionDisplayNames = map[Function]string{
	FuncLower:  "lower",
	FuncUpper:  "upper",
	FuncLength: "length",
	FuncYear:   "year",
	FuncMonth:  "month",
	FuncDay:    "day",
	FuncMin:    "min",
	FuncMax:    "max",
	FuncAvg:    "avg",
	FuncSum:    "sum",
	FuncCount:  "count",
}

// FunctionName returns the canonical display spelling of f.
func FunctionName(f Function) string {
	if n, ok := functionDisplayNames[f]; ok {
		return n
	}
	return "unknown"
}

// LookupFunction resolves a lower-cased function name. Matching is
// case-insensitive at the call site (parser lower-cases before lookup),
// per SPEC_FULL.md §C's extension of spec.md §4.1's case-insensitivity to
// function names.
func LookupFunction(lowerName string) (Function, bool) {
	f, ok := functionNames[lowerName]
	return f, ok
}
