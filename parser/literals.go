package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// sizeSuffixes maps the trailing-letter size suffixes of spec.md §4.4 to
// their byte multiplier (k=1024, m=1024^2, g=1024^3, t=1024^4).
var sizeSuffixes = map[byte]int64{
	'k': 1024,
	'm': 1024 * 1024,
	'g': 1024 * 1024 * 1024,
	't': 1024 * 1024 * 1024 * 1024,
}

// parseSize parses a NUMBER token's literal text, which the lexer may have
// scanned with a trailing size-suffix letter attached (e.g. "10m"), into a
// plain byte count.
func parseSize(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	last := s[len(s)-1]
	if mult, ok := sizeSuffixes[lower(last)]; ok {
		n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
		if err != nil {
			return 0, false
		}
		return n * mult, true
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, false
		}
		return int64(f), true
	}
	return n, true
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

// datetime literal layouts recognized in decreasing order of precision, per
// spec.md §4.4: full timestamp, date-only, year-month, year-only.
const (
	layoutFull    = "2006-01-02T15:04:05"
	layoutFullAlt = "2006-01-02 15:04:05"
	layoutDate    = "2006-01-02"
	layoutMonth   = "2006-01"
	layoutYear    = "2006"
)

// parseDatetimeRange expands a datetime literal into the inclusive
// [from, to] range implied by its precision, in local time: a bare year
// covers the whole year, a year-month the whole month, a date the whole day,
// and a full timestamp a single second. to is the last instant of that
// period (e.g. 2020-03 gives to = 2020-03-31 23:59:59.999999999).
func parseDatetimeRange(s string) (time.Time, time.Time, bool) {
	if t, err := time.ParseInLocation(layoutFull, s, time.Local); err == nil {
		return t, t.Add(time.Second - time.Nanosecond), true
	}
	if t, err := time.ParseInLocation(layoutFullAlt, s, time.Local); err == nil {
		return t, t.Add(time.Second - time.Nanosecond), true
	}
	if t, err := time.ParseInLocation(layoutDate, s, time.Local); err == nil {
		return t, t.AddDate(0, 0, 1).Add(-time.Nanosecond), true
	}
	if t, err := time.ParseInLocation(layoutMonth, s, time.Local); err == nil {
		return t, t.AddDate(0, 1, 0).Add(-time.Nanosecond), true
	}
	if t, err := time.ParseInLocation(layoutYear, s, time.Local); err == nil {
		return t, t.AddDate(1, 0, 0).Add(-time.Nanosecond), true
	}
	return time.Time{}, time.Time{}, false
}

// isGlobPattern reports whether a string-field literal carries glob
// metacharacters, which an Eq comparison rewrites into a regex match
// (spec.md §4.2).
func isGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// globToRegex translates a shell-style glob (only `*` and `?` are special;
// everything else is literal) into an anchored regexp.Regexp. We hand-roll
// this instead of reaching for a pack glob library (e.g. gobwas/glob):
// those compile to their own matcher type, not a regexp.Regexp, and Leaf.Op
// == OpRx needs to share the Regex field with genuine `~=`/`like` matches.
func globToRegex(glob string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteByte('^')
	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		default:
			if strings.ContainsRune(`.+()|[]{}^$\`, rune(c)) {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('$')
	return regexp.Compile(b.String())
}

func compileRegex(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(pattern)
}
