package eval

import "time"

// parseAnyDatetime tries the same literal layouts the parser accepts for
// datetime comparisons (the layout constants in parser/literals.go), used
// when Year/Month/Day is applied to a rendered string rather than a native
// datetime field.
func parseAnyDatetime(s string) (time.Time, bool) {
	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"2006-01",
		"2006",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
