package render

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/microcosm-cc/bluemonday"

	"github.com/cours-de-latin/conjugatio/pref"
)

func renderAmo(t *testing.T, opts ...Option) string {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Render(context.Background(), BuildView(loadAmo(t)))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return string(out)
}

func TestHTMLRenderSections(t *testing.T) {
	html := renderAmo(t)
	for _, want := range []string{
		`<div class="wikt-reformat-mood-title">INDICATIVE</div>`,
		`<div class="wikt-reformat-voice-header">PASSIVE</div>`,
		`<div class="wikt-reformat-tense-title">FUTURE PERFECT</div>`,
		`<div class="wikt-reformat-tense-title">GERUND</div>`,
		`<td class="wikt-reformat-person-col">III plur.</td>`,
		`<td class="wikt-reformat-person-col">Future Passive (Gerundive)</td>`,
		`amāvērunt</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(html, "—") {
		t.Error("placeholder glyph leaked into the output")
	}
}

func TestHTMLRenderOrder(t *testing.T) {
	html := renderAmo(t)
	order := []string{"INDICATIVE", "SUBJUNCTIVE", "IMPERATIVE PRESENT", "INFINITIVE", "PARTICIPLE", "GERUND", "SUPINE"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(html, ">"+marker+"<")
		if idx < 0 {
			t.Fatalf("marker %q missing", marker)
		}
		if idx < last {
			t.Errorf("marker %q out of order", marker)
		}
		last = idx
	}
}

func TestHTMLSanitizesForms(t *testing.T) {
	view := View{Groups: []Group{{Blocks: []Block{{
		Title:   "SUPINE",
		Entries: []Entry{{Label: "Accusative", Form: `<a href="/wiki/amatum" onclick="steal()">amātum</a><script>alert(1)</script>`}},
	}}}}}

	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Render(context.Background(), view)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "onclick") || strings.Contains(html, "<script>") {
		t.Errorf("unsafe markup survived:\n%s", html)
	}
	if !strings.Contains(html, `href="/wiki/amatum"`) {
		t.Errorf("link dropped:\n%s", html)
	}
	if view.Groups[0].Blocks[0].Entries[0].Form == "" || !strings.Contains(view.Groups[0].Blocks[0].Entries[0].Form, "onclick") {
		t.Error("Render modified the caller's view")
	}

	raw, err := New(WithoutSanitizer())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err = raw.Render(context.Background(), view)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "onclick") {
		t.Error("WithoutSanitizer still sanitized")
	}

	strict, err := New(WithSanitizer(bluemonday.StrictPolicy()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err = strict.Render(context.Background(), view)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "<a ") {
		t.Error("strict policy kept the link")
	}
}

func TestHTMLEscapesLabels(t *testing.T) {
	view := View{Groups: []Group{{Blocks: []Block{{
		Title:   "<b>X</b>",
		Entries: []Entry{{Label: "a<b", Form: "ok"}},
	}}}}}
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.Render(context.Background(), view)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "<b>X</b>") || !strings.Contains(string(out), "a&lt;b") {
		t.Errorf("labels not escaped:\n%s", out)
	}
}

func TestHTMLRenderDocument(t *testing.T) {
	r, err := New(WithStylesheet(".x{}"))
	if err != nil {
		t.Fatal(err)
	}
	doc := Document{
		View:      BuildView(loadAmo(t)),
		Original:  `<div class="NavFrame"><table class="roa-inflection-table"></table></div>`,
		State:     pref.State{NewViewVisible: false},
		ToggleURL: "/api/preference/toggle",
	}
	out, err := r.RenderDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`<title>Latin Conjugation</title>`,
		`<style>`,
		`.x{}`,
		`<span class="wikt-reformat-title">Latin Conjugation</span>`,
		`data-toggle-url="/api/preference/toggle"`,
		`>Show Improved Table</button>`,
		`<div class="wikt-reformat-view" style="display: none">`,
		`<div class="wikt-reformat-original" style="display: block">`,
		`<table class="roa-inflection-table"></table>`,
		`INDICATIVE`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected document to contain %q", want)
		}
	}
}

func TestHTMLRenderCanceled(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, View{}); err == nil {
		t.Error("expected an error for a canceled context")
	}
}

func TestHTMLCustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/view.tmpl": {Data: []byte(`{% for mood in view.Moods %}[{{ mood.Title }}]{% endfor %}`)},
		"templates/page.tmpl": {Data: []byte(`{{ view|safe }}`)},
	}
	r, err := New(WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Render(context.Background(), BuildView(loadAmo(t)))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out); got != "[INDICATIVE][SUBJUNCTIVE]" {
		t.Errorf("custom template output = %q", got)
	}
}

func TestHTMLMissingTemplates(t *testing.T) {
	if _, err := New(WithTemplatesFS(fstest.MapFS{})); err == nil {
		t.Error("expected an error for a bundle without templates")
	}
}

func TestHTMLRenderDocumentFollowsState(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.RenderDocument(context.Background(), Document{
		View:  BuildView(loadAmo(t)),
		State: pref.State{NewViewVisible: true},
	})
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`>Show Original Table</button>`,
		`<div class="wikt-reformat-view" style="display: block">`,
		`<div class="wikt-reformat-original" style="display: none">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected document to contain %q", want)
		}
	}
	if strings.Contains(html, "data-toggle-url") {
		t.Error("toggle url emitted without being set")
	}
}
