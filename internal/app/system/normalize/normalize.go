// Package normalize provides helper functions for consistent string normalization
// of request input. Path keys (slugs, ids, state codes) are matched exactly and
// are deliberately not normalized here.
package normalize

import "strings"

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Category normalizes a culture category filter by trimming whitespace and
// converting to lowercase.
func Category(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Scope normalizes a CMS scope by trimming whitespace and converting to lowercase.
func Scope(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Editor normalizes an editor name by trimming whitespace and collapsing
// inner runs of whitespace to a single space.
func Editor(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
