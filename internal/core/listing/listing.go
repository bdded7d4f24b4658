// Package listing holds the stateless filter-reduce primitives shared by
// every console page: search and selector predicates, a stable filter,
// zero-guarded ratios, pagination and badge lookup tables.
package listing

import "strings"

// All is the selector value that disables a categorical filter.
const All = "all"

// MatchesSearch reports whether the lower-cased search string is a
// substring of at least one of fields. An empty search matches every
// record. Empty fields never match a non-empty search.
func MatchesSearch(search string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// MatchesSelector reports whether value passes a categorical selector.
// An empty selector behaves like All.
func MatchesSelector(selected, value string) bool {
	if selected == "" || selected == All {
		return true
	}
	return selected == value
}

// Filter returns the items for which keep returns true, in input order.
// The result is never nil.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Ratio divides num by den and returns 0 when den is zero.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Percent returns num/den*100, or 0 when den is zero.
func Percent(num, den float64) float64 {
	return Ratio(num, den) * 100
}

// Paginate slices items by limit and offset. A non-positive limit returns
// everything from offset on.
func Paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
