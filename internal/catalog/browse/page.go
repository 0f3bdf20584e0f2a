package browse

// Page wraps one fetched page of entities together with the query that
// produced it.
type Page[T any] struct {
	Items []T
	Query Query

	// HasMore is the heuristic "returned length equals the requested
	// limit". It is not authoritative: when the collection size is an
	// exact multiple of the page size, the last full page still reports
	// more. Known limitation, kept deliberately.
	HasMore bool
}

// NewPage derives the page view-model from a fetched slice.
func NewPage[T any](items []T, q Query) Page[T] {
	return Page[T]{
		Items:   items,
		Query:   q,
		HasMore: len(items) == q.Limit,
	}
}

// From is the 1-based index of the first row shown.
func (p Page[T]) From() int {
	return p.Query.Offset + 1
}

// To is the 1-based index of the last row shown.
func (p Page[T]) To() int {
	return p.Query.Offset + len(p.Items)
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool {
	return p.Query.Offset > 0
}

// Empty reports whether the page came back without rows.
func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}
