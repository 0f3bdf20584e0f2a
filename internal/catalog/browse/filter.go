// Package browse owns the query state behind list screens: pagination
// offsets, the free-text/category filter, and the page view-model derived
// from a fetched slice.
package browse

// filterKind discriminates the Filter union.
type filterKind int

const (
	filterNone filterKind = iota
	filterSearch
	filterCategory
)

// Filter is a tagged union: no filter, a free-text search, or a category
// selection. Search and category are mutually exclusive by construction;
// there is no state in which both carry a value.
type Filter struct {
	kind  filterKind
	value string
}

// NoFilter returns the empty filter.
func NoFilter() Filter {
	return Filter{}
}

// BySearch returns a free-text filter. An empty term degrades to NoFilter so
// clearing the search box drops the filter entirely.
func BySearch(term string) Filter {
	if term == "" {
		return Filter{}
	}
	return Filter{kind: filterSearch, value: term}
}

// ByCategory returns a category filter.
func ByCategory(id string) Filter {
	if id == "" {
		return Filter{}
	}
	return Filter{kind: filterCategory, value: id}
}

// Search returns the search term when this is a search filter.
func (f Filter) Search() (string, bool) {
	if f.kind != filterSearch {
		return "", false
	}
	return f.value, true
}

// Category returns the category id when this is a category filter.
func (f Filter) Category() (string, bool) {
	if f.kind != filterCategory {
		return "", false
	}
	return f.value, true
}

// IsSet reports whether any filter is active.
func (f Filter) IsSet() bool {
	return f.kind != filterNone
}
