// Package page drives one reformatting of a page: locate the conjugation
// table, classify it, build the improved view and assemble the document
// with the view toggle.
package page

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cours-de-latin/conjugatio"
	"github.com/cours-de-latin/conjugatio/internal/ctxlog"
	"github.com/cours-de-latin/conjugatio/pref"
	"github.com/cours-de-latin/conjugatio/render"
)

// ErrAlreadyReformatted is returned when the page was reformatted before,
// either by this Reformatter or as recorded in the page itself.
var ErrAlreadyReformatted = errors.New("page already reformatted")

// Result is the outcome of a successful run.
type Result struct {
	Table       *conjugatio.ConjugationTable
	View        render.View
	Diagnostics []conjugatio.Diagnostic
	State       pref.State
	// HTML is the assembled document.
	HTML []byte
}

// Option configures a Reformatter.
type Option func(*Reformatter)

// WithToggleURL exposes url on the toggle button.
func WithToggleURL(url string) Option {
	return func(r *Reformatter) {
		r.toggleURL = url
	}
}

// WithDefaultView sets the view shown when no preference is stored.
func WithDefaultView(newView bool) Option {
	return func(r *Reformatter) {
		r.defaultNewView = newView
	}
}

// WithRequireLatin rejects pages without a Latin section.
func WithRequireLatin() Option {
	return func(r *Reformatter) {
		r.requireLatin = true
	}
}

// Reformatter reformats the page of one Source at most once.
type Reformatter struct {
	source   Source
	renderer render.DocumentRenderer
	store    pref.Store

	toggleURL      string
	defaultNewView bool
	requireLatin   bool

	marked atomic.Bool
}

// New creates a Reformatter. A nil store keeps the preference in memory.
func New(source Source, renderer render.DocumentRenderer, store pref.Store, opts ...Option) *Reformatter {
	if store == nil {
		store = pref.NewMemoryStore()
	}
	r := &Reformatter{
		source:         source,
		renderer:       renderer,
		store:          store,
		defaultNewView: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Marked reports whether a run has claimed the page.
func (r *Reformatter) Marked() bool {
	return r.marked.Load()
}

// Run reformats the page. The marker is set before parsing, so a second
// call returns ErrAlreadyReformatted without reparsing. A failed run
// releases the marker for a later retry.
func (r *Reformatter) Run(ctx context.Context) (*Result, error) {
	if !r.marked.CompareAndSwap(false, true) {
		return nil, ErrAlreadyReformatted
	}
	res, err := r.run(ctx)
	if err != nil && !errors.Is(err, ErrAlreadyReformatted) {
		r.marked.Store(false)
	}
	return res, err
}

func (r *Reformatter) run(ctx context.Context) (*Result, error) {
	log := ctxlog.FromContext(ctx)

	rd, err := r.source.Document(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := conjugatio.LoadDocument(rd)
	if err != nil {
		return nil, err
	}
	if r.requireLatin && !conjugatio.HasLatinSection(doc) {
		return nil, &conjugatio.LocateError{Kind: conjugatio.ErrNoLatinSection}
	}
	anchor, err := conjugatio.Locate(doc)
	if err != nil {
		log.Debug("Conjugation table not found.", "error", err)
		return nil, err
	}
	if anchor.Marked() {
		return nil, ErrAlreadyReformatted
	}
	log.Info("Conjugation table found.")

	rows := anchor.Rows()
	table, diags := conjugatio.ClassifyReport(rows)
	for _, d := range diags {
		log.Debug("Row skipped.", "row", d.Row, "kind", d.Kind, "detail", d.Detail)
	}
	log.Info("Rows processed.", "rows", len(rows), "skipped", len(diags), "forms", len(table.Slots()))

	view := render.BuildView(table)
	anchor.Mark()
	original, err := conjugatio.RenderNode(anchor.Container)
	if err != nil {
		return nil, fmt.Errorf("render original table: %w", err)
	}

	state := pref.NewToggleDefault(r.store, r.defaultNewView).State()
	out, err := r.renderer.RenderDocument(ctx, render.Document{
		View:      view,
		Original:  original,
		State:     state,
		ToggleURL: r.toggleURL,
	})
	if err != nil {
		return nil, err
	}
	log.Info("View inserted.", "visible", state.Label())

	return &Result{
		Table:       table,
		View:        view,
		Diagnostics: diags,
		State:       state,
		HTML:        out,
	}, nil
}

// Watch runs the reformatter once per candidate signal until a run
// succeeds. Signals arriving after the page is marked are ignored. A
// signal on loaded triggers a last attempt whose outcome is returned.
func (r *Reformatter) Watch(ctx context.Context, candidates, loaded <-chan struct{}) (*Result, error) {
	log := ctxlog.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case _, ok := <-candidates:
			if !ok {
				candidates = nil
				continue
			}
			if r.Marked() {
				continue
			}
			res, err := r.Run(ctx)
			if err == nil {
				return res, nil
			}
			log.Debug("Reformat attempt failed.", "error", err)
		case <-loaded:
			return r.Run(ctx)
		}
	}
}
