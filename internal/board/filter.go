package board

import "strings"

// IsVisible reports whether a cell passes the search filter: leading and
// trailing whitespace is trimmed from the query, both sides are case-folded,
// and the cell is visible iff its question contains the query as a
// substring. An empty trimmed query matches everything. Filtering is
// presentation only; it never touches checked state or grid positions.
func IsVisible(c Cell, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Question), strings.ToLower(q))
}
