package browse

import (
	"net/url"
	"strconv"
)

// Query is the list-view state for one screen: a page window plus at most
// one filter. Limit is fixed at construction and never changes afterwards.
type Query struct {
	Offset int
	Limit  int
	Filter Filter
}

// NewQuery returns the initial state for a screen with the given page size.
func NewQuery(limit int) Query {
	if limit <= 0 {
		limit = 10
	}
	return Query{Limit: limit}
}

// ParseQuery derives list state from request parameters. The offset is
// clamped to a non-negative multiple of the page size; when both search and
// category arrive (hand-edited URLs), search wins and the category is
// dropped, mirroring the screen transition rule.
func ParseQuery(values url.Values, limit int) Query {
	q := NewQuery(limit)

	if raw := values.Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Offset = (n / q.Limit) * q.Limit
		}
	}

	if term := values.Get("search"); term != "" {
		q.Filter = BySearch(term)
		return q
	}
	if id := values.Get("category"); id != "" {
		q.Filter = ByCategory(id)
	}
	return q
}

// WithSearch commits a search term: the offset resets to the first page and
// any category filter is cleared.
func (q Query) WithSearch(term string) Query {
	q.Offset = 0
	q.Filter = BySearch(term)
	return q
}

// WithCategory selects a category: the offset resets and any search term is
// cleared.
func (q Query) WithCategory(id string) Query {
	q.Offset = 0
	q.Filter = ByCategory(id)
	return q
}

// Next advances one page.
func (q Query) Next() Query {
	q.Offset += q.Limit
	return q
}

// Prev steps back one page, floored at the first.
func (q Query) Prev() Query {
	q.Offset -= q.Limit
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

// Values renders the state back into URL parameters for links and form
// round-trips.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if term, ok := q.Filter.Search(); ok {
		values.Set("search", term)
	}
	if id, ok := q.Filter.Category(); ok {
		values.Set("category", id)
	}
	return values
}

// Encode renders the state as a raw query string.
func (q Query) Encode() string {
	return q.Values().Encode()
}
