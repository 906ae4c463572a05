package catalog

import (
	"strings"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Matches reports whether the item matches a free-text query. The match is a
// case-insensitive substring check against the item's TypeName and against
// every value in its data. An empty query matches everything.
//
// This single predicate backs both the flat item search and project-scoped
// search; scoping is done by pre-filtering the candidate items.
func Matches(item types.Item, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.TypeName), q) {
		return true
	}
	for _, value := range item.Data {
		if strings.Contains(strings.ToLower(value), q) {
			return true
		}
	}
	return false
}

// Search filters items by the query, preserving input order.
func Search(items []types.Item, query string) []types.Item {
	out := make([]types.Item, 0, len(items))
	for _, item := range items {
		if Matches(item, query) {
			out = append(out, item)
		}
	}
	return out
}
