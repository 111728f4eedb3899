package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
)

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	templateFS fs.FS
	policy     *bluemonday.Policy
	sanitize   bool
	stylesheet string
	heading    string
}

// WithTemplatesFS supplies an alternate template bundle. It must provide
// templates/view.tmpl and templates/page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithSanitizer replaces the policy applied to form markup.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
			cfg.sanitize = true
		}
	}
}

// WithoutSanitizer emits form markup exactly as parsed.
func WithoutSanitizer() Option {
	return func(cfg *config) {
		cfg.sanitize = false
	}
}

// WithStylesheet overrides the stylesheet inlined into documents. An
// empty string omits the style element.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
	}
}

// WithHeading overrides the toggle header title.
func WithHeading(heading string) Option {
	return func(cfg *config) {
		if heading != "" {
			cfg.heading = heading
		}
	}
}

// DefaultPolicy keeps the links and inline formatting Wiktionary puts in
// form cells, including class and lang attributes.
func DefaultPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class", "lang").Globally()
	return policy
}

// HTML renders views with pongo2 templates.
type HTML struct {
	view       *pongo2.Template
	page       *pongo2.Template
	policy     *bluemonday.Policy
	stylesheet string
	heading    string
}

var _ DocumentRenderer = (*HTML)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*HTML, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		sanitize:   true,
		stylesheet: Stylesheet(),
		heading:    DefaultHeading,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.sanitize && cfg.policy == nil {
		cfg.policy = DefaultPolicy()
	}
	if !cfg.sanitize {
		cfg.policy = nil
	}

	set := pongo2.NewSet("conjugatio", pongo2.NewFSLoader(cfg.templateFS))
	view, err := set.FromFile(viewTemplate)
	if err != nil {
		return nil, fmt.Errorf("html renderer: load %s: %w", viewTemplate, err)
	}
	page, err := set.FromFile(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("html renderer: load %s: %w", pageTemplate, err)
	}

	return &HTML{
		view:       view,
		page:       page,
		policy:     cfg.policy,
		stylesheet: cfg.stylesheet,
		heading:    cfg.heading,
	}, nil
}

func (r *HTML) Name() string {
	return "html"
}

func (r *HTML) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the improved view fragment.
func (r *HTML) Render(ctx context.Context, view View) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := r.renderView(view)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// RenderDocument emits the standalone page.
func (r *HTML) RenderDocument(ctx context.Context, doc Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	viewHTML, err := r.renderView(doc.View)
	if err != nil {
		return nil, err
	}
	title := doc.Title
	if title == "" {
		title = r.heading
	}
	out, err := r.page.Execute(pongo2.Context{
		"title":            title,
		"heading":          r.heading,
		"stylesheet":       r.stylesheet,
		"button":           doc.State.ButtonLabel(),
		"toggle_url":       doc.ToggleURL,
		"view":             viewHTML,
		"original":         doc.Original,
		"new_display":      doc.State.NewDisplay(),
		"original_display": doc.State.OriginalDisplay(),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: execute %s: %w", pageTemplate, err)
	}
	return []byte(out), nil
}

func (r *HTML) renderView(view View) (string, error) {
	if r == nil || r.view == nil {
		return "", errors.New("html renderer: not initialised")
	}
	out, err := r.view.Execute(pongo2.Context{"view": r.sanitized(view)})
	if err != nil {
		return "", fmt.Errorf("html renderer: execute %s: %w", viewTemplate, err)
	}
	return out, nil
}

// sanitized returns a copy of view with every form passed through the
// policy. The view itself is left untouched.
func (r *HTML) sanitized(view View) View {
	if r.policy == nil {
		return view
	}
	clean := func(blocks []Block) []Block {
		out := make([]Block, len(blocks))
		for i, b := range blocks {
			entries := make([]Entry, len(b.Entries))
			for j, e := range b.Entries {
				entries[j] = Entry{Label: e.Label, Form: r.policy.Sanitize(e.Form)}
			}
			out[i] = Block{Title: b.Title, Entries: entries}
		}
		return out
	}

	out := View{
		Moods:  make([]MoodSection, len(view.Moods)),
		Groups: make([]Group, len(view.Groups)),
	}
	for i, m := range view.Moods {
		voices := make([]VoiceSection, len(m.Voices))
		for j, v := range m.Voices {
			cols := make([]Column, len(v.Columns))
			for k, c := range v.Columns {
				cols[k] = Column{Blocks: clean(c.Blocks)}
			}
			voices[j] = VoiceSection{Title: v.Title, Columns: cols}
		}
		out.Moods[i] = MoodSection{Title: m.Title, Voices: voices}
	}
	for i, g := range view.Groups {
		out.Groups[i] = Group{Blocks: clean(g.Blocks)}
	}
	return out
}
