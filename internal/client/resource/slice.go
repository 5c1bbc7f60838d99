package resource

import "strings"

// SearchLimit caps the number of search results shown. There is no paging
// over search results.
const SearchLimit = 5

// DefaultPageSize is the page size of a new controller.
const DefaultPageSize = 5

// Page returns items[index*size : index*size+size] clamped to the bounds of
// items. A negative index, a non-positive size or a window past the end
// yields an empty slice.
func Page[E any](items []E, index, size int) []E {
	if index < 0 || size <= 0 {
		return []E{}
	}
	start := index * size
	if start >= len(items) || start/size != index {
		return []E{}
	}
	end := start + size
	if end > len(items) || end < start {
		end = len(items)
	}
	return items[start:end]
}

// PageCount is the number of pages needed to show n items, size per page.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Filter returns, in collection order, the items whose key starts with query
// under case-insensitive comparison, truncated to limit. A non-positive
// limit means no truncation.
func Filter[E any](items []E, query string, key func(E) string, limit int) []E {
	q := strings.ToLower(query)
	out := make([]E, 0)
	for _, item := range items {
		if limit > 0 && len(out) == limit {
			break
		}
		if strings.HasPrefix(strings.ToLower(key(item)), q) {
			out = append(out, item)
		}
	}
	return out
}
