// Package views builds the render payloads for every screen as pure
// functions of (fetched entities, query state). All branching a template
// needs (empty list, failure banner, pagination visibility) is decided
// here so each renderable state can be tested without HTTP.
package views

// State is the tagged screen state for list views. Rendering happens after
// the fetch resolves, so the transient loading state never reaches a
// template.
type State int

const (
	StateLoaded State = iota
	StateEmpty
	StateFailed
)

// Predicates for templates, which cannot reference the constants directly.

func (s State) IsLoaded() bool { return s == StateLoaded }
func (s State) IsEmpty() bool  { return s == StateEmpty }
func (s State) IsFailed() bool { return s == StateFailed }

// Pagination is the offset/limit navigation block of a list screen.
type Pagination struct {
	Show    bool
	From    int
	To      int
	HasPrev bool
	HasMore bool
	PrevURL string
	NextURL string
}

// Option is a select entry for the category dropdowns.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

func listState(rows int, failed bool) State {
	switch {
	case failed:
		return StateFailed
	case rows == 0:
		return StateEmpty
	default:
		return StateLoaded
	}
}
