// Package testutil carries shared helpers for HTTP-level tests: an in-memory
// stand-in for the remote catalog service and DOM parsing shortcuts.
package testutil

import (
	"io"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// ParseHTML parses a rendered page into a goquery document.
func ParseHTML(t *testing.T, body io.Reader) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(body)
	require.NoError(t, err)
	return doc
}
