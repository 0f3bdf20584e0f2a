package api

import "fmt"

// Error is the generic failure for any non-success HTTP status. The status
// code is carried for logging; response bodies are deliberately not parsed
// for server-provided detail.
type Error struct {
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("catalog api: status %d", e.StatusCode)
}
