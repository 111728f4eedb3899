// Package render turns a ConjugationTable into the reorganized view: mood
// sections split by voice and tense columns, followed by the imperative
// and the non-finite groups.
package render

import (
	"context"

	"github.com/cours-de-latin/conjugatio/pref"
)

// Renderer converts a View into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View) ([]byte, error)
}

// DocumentRenderer additionally assembles the standalone page with the
// view toggle.
type DocumentRenderer interface {
	Renderer
	RenderDocument(ctx context.Context, doc Document) ([]byte, error)
}

// DefaultHeading is the title shown in the toggle header.
const DefaultHeading = "Latin Conjugation"

// Document is the standalone page: toggle header, improved view and the
// original table, one of them hidden per State.
type Document struct {
	// Title is the page title; the heading is used when empty.
	Title string
	View  View
	// Original is the markup of the original table container.
	Original string
	State    pref.State
	// ToggleURL, when set, is exposed on the button for the host to call.
	ToggleURL string
}
