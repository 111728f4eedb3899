package conjugatio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func parseFixture(t *testing.T, name string) (*ConjugationTable, []Diagnostic) {
	t.Helper()
	table, diags, err := Parse(openFixture(t, name))
	if err != nil {
		t.Fatalf("Parse(%s): %v", name, err)
	}
	return table, diags
}

func formTexts(forms TenseForms) map[PersonNumber]string {
	out := make(map[PersonNumber]string, len(forms))
	for k, v := range forms {
		out[k] = strings.TrimSpace(TextContent(v))
	}
	return out
}

func TestParseAmo(t *testing.T) {
	table, _ := parseFixture(t, "amo.html")

	tests := []struct {
		mood  Mood
		voice Voice
		tense TenseKey
		want  map[PersonNumber]string
	}{
		{Indicative, Active, Present, map[PersonNumber]string{
			"1s": "amō", "2s": "amās", "3s": "amat", "1p": "amāmus", "2p": "amātis", "3p": "amant",
		}},
		{Indicative, Active, FuturePerfect, map[PersonNumber]string{
			"1s": "amāverō", "2s": "amāveris", "3s": "amāverit", "1p": "amāverimus", "2p": "amāveritis", "3p": "amāverint",
		}},
		{Indicative, Passive, Future, map[PersonNumber]string{
			"1s": "amābor", "2s": "amāberis", "3s": "amābitur", "1p": "amābimur", "2p": "amābiminī", "3p": "amābuntur",
		}},
		{Indicative, Passive, Perfect, map[PersonNumber]string{
			"1s": "amātus + present active indicative of sum",
		}},
		{Subjunctive, Passive, Imperfect, map[PersonNumber]string{
			"1s": "amārer", "2s": "amārēris", "3s": "amārētur", "1p": "amārēmur", "2p": "amārēminī", "3p": "amārentur",
		}},
		{Imperative, Active, Future, map[PersonNumber]string{
			"2s": "amātō", "3s": "amātō", "2p": "amātōte", "3p": "amantō",
		}},
		{Imperative, Passive, Present, map[PersonNumber]string{
			"2s": "amāre", "2p": "amāminī",
		}},
	}
	for _, tt := range tests {
		forms, ok := table.Forms(tt.mood, tt.voice, tt.tense)
		if !ok {
			t.Errorf("%s.%s.%s missing", tt.mood, tt.voice, tt.tense)
			continue
		}
		if diff := cmp.Diff(tt.want, formTexts(forms)); diff != "" {
			t.Errorf("%s.%s.%s mismatch (-want +got):\n%s", tt.mood, tt.voice, tt.tense, diff)
		}
	}

	if n := len(table.Finite[Indicative][Active]); n != 6 {
		t.Errorf("indicative active has %d tenses, want 6", n)
	}
	if _, ok := table.Forms(Subjunctive, Active, Future); ok {
		t.Error("subjunctive has no future but one was stored")
	}

	nf := table.NonFinite
	wantInfinitive := map[string]string{
		"presentActive": "amāre", "presentPassive": "amārī",
		"perfectActive": "amāvisse", "perfectPassive": "amātum esse",
		"futureActive": "amātūrum esse", "futurePassive": "amātum īrī",
	}
	gotInfinitive := make(map[string]string)
	for k, v := range nf.Infinitive {
		gotInfinitive[k] = TextContent(v)
	}
	if diff := cmp.Diff(wantInfinitive, gotInfinitive); diff != "" {
		t.Errorf("infinitive mismatch (-want +got):\n%s", diff)
	}
	if got := TextContent(nf.Participle["futurePassive"]); got != "amandus" {
		t.Errorf("gerundive = %q", got)
	}
	if got := nf.Participle["presentPassive"]; got != "—" {
		t.Errorf("non-finite placeholder should be kept raw, got %q", got)
	}
	if got := TextContent(nf.Gerund[Accusative]); got != "amandum" {
		t.Errorf("gerund accusative = %q", got)
	}
	if got := TextContent(nf.Supine[Ablative]); got != "amātū" {
		t.Errorf("supine ablative = %q", got)
	}
}

func TestParseAmoKeepsMarkup(t *testing.T) {
	table, _ := parseFixture(t, "amo.html")
	forms, _ := table.Forms(Indicative, Active, Present)
	got := forms[FirstSingular]
	if !strings.Contains(got, `<a href="/wiki/amō#Latin" title="amō">amō</a>`) {
		t.Errorf("form markup not preserved: %q", got)
	}
}

func TestParseAmoDiagnostics(t *testing.T) {
	_, diags := parseFixture(t, "amo.html")
	type kindRow struct {
		Row  int
		Kind DiagnosticKind
	}
	var got []kindRow
	for _, d := range diags {
		got = append(got, kindRow{d.Row, d.Kind})
	}
	// The column headings are inert; only the non-finite heading rows,
	// which carry no data, are reported.
	want := []kindRow{
		{25, NonFiniteShapeMismatch},
		{26, NonFiniteShapeMismatch},
		{30, NonFiniteShapeMismatch},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBareTableFallback(t *testing.T) {
	withHeading, _ := parseFixture(t, "amo.html")
	bare, _ := parseFixture(t, "bare_table.html")
	if diff := cmp.Diff(withHeading, bare); diff != "" {
		t.Errorf("fallback table differs (-heading +bare):\n%s", diff)
	}
}

func TestLocateFallbackContainer(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		navFrame bool
	}{
		{"bare table", `<table class="roa-inflection-table"><tr><td>x</td></tr></table>`, false},
		{"inside navframe", `<div class="NavFrame"><div class="NavContent"><table class="roa-inflection-table"><tr><td>x</td></tr></table></div></div>`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := LoadDocument(strings.NewReader(tt.page))
			if err != nil {
				t.Fatal(err)
			}
			anchor, err := Locate(doc)
			if err != nil {
				t.Fatalf("Locate: %v", err)
			}
			if got := hasClass(anchor.Container, navFrameClass); got != tt.navFrame {
				t.Errorf("container is NavFrame = %v, want %v", got, tt.navFrame)
			}
			if !isInflectionTable(anchor.Table) {
				t.Error("anchor table is not the inflection table")
			}
		})
	}
}

func TestLocateErrors(t *testing.T) {
	for _, name := range []string{"no_table.html", "not_latin.html"} {
		_, err := LoadRows(openFixture(t, name))
		if !errors.Is(err, ErrTableNotFound) {
			t.Errorf("%s: err = %v, want ErrTableNotFound", name, err)
		}
		var locErr *LocateError
		if !errors.As(err, &locErr) {
			t.Errorf("%s: err is not a *LocateError: %T", name, err)
		}
	}
}

func TestHasLatinSection(t *testing.T) {
	tests := map[string]bool{
		"amo.html":        true,
		"bare_table.html": true,
		"not_latin.html":  false,
	}
	for name, want := range tests {
		doc, err := LoadDocument(openFixture(t, name))
		if err != nil {
			t.Fatalf("LoadDocument(%s): %v", name, err)
		}
		if got := HasLatinSection(doc); got != want {
			t.Errorf("HasLatinSection(%s) = %v, want %v", name, got, want)
		}
	}
}

func TestAnchorMark(t *testing.T) {
	doc, err := LoadDocument(openFixture(t, "amo.html"))
	if err != nil {
		t.Fatal(err)
	}
	anchor, err := Locate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !hasClass(anchor.Container, navFrameClass) {
		t.Errorf("container is not the NavFrame")
	}
	if anchor.Marked() {
		t.Fatal("fresh container is marked")
	}
	anchor.Mark()
	anchor.Mark()
	if !anchor.Marked() {
		t.Fatal("Mark did not set the marker")
	}
	var n int
	for _, a := range anchor.Container.Attr {
		if a.Key == reformattedAttr {
			n++
		}
	}
	if n != 1 {
		t.Errorf("marker attribute set %d times", n)
	}
}

func TestRowsFromTableCells(t *testing.T) {
	const page = `<table class="roa-inflection-table"><tr><th class="roa-indicative-left-rail x">indicative</th></tr>` +
		`<tr><th>active</th><th>present</th><td> <b>amō</b> </td><td>—</td></tr></table>`
	rows, err := LoadRows(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !rows[0].Cells[0].HasClass(IndicativeRail) {
		t.Errorf("class tokens not matched: %q", rows[0].Cells[0].Class)
	}
	h, d := rows[1].Shape()
	if h != 2 || d != 2 {
		t.Errorf("shape = (%d, %d), want (2, 2)", h, d)
	}
	data := rows[1].Data()
	if data[0].HTML != " <b>amō</b> " || data[0].Text != " amō " {
		t.Errorf("cell = %+v", data[0])
	}
}

func TestTextContent(t *testing.T) {
	tests := map[string]string{
		`<a href="x">amō</a>`:        "amō",
		`amāvērunt, <i>amāvēre</i>`:  "amāvērunt, amāvēre",
		`plain`:                      "plain",
		``:                           "",
		`<span>a<sup>1</sup></span>`: "a1",
	}
	for in, want := range tests {
		if got := TextContent(in); got != want {
			t.Errorf("TextContent(%q) = %q, want %q", in, got, want)
		}
	}
}
