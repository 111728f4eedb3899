package conjugatio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractFormsPlaceholder(t *testing.T) {
	variants := []string{"—", " — ", "\n\t—\n", "\u00a0—"}
	for _, v := range variants {
		cells := []Cell{{HTML: "<span>" + v + "</span>", Text: v}, td("amā")}
		forms := ExtractForms(cells)
		if _, ok := forms[FirstSingular]; ok {
			t.Errorf("placeholder %q produced a 1s key", v)
		}
		if forms[SecondSingular] != "amā" {
			t.Errorf("2s = %q, want amā", forms[SecondSingular])
		}
	}
}

func TestExtractFormsDashLookalikes(t *testing.T) {
	// Only the em dash marks absence.
	forms := ExtractForms(tds("-", "–", "——"))
	if len(forms) != 3 {
		t.Errorf("expected 3 forms, got %v", forms)
	}
}

func TestExtractFormsBounds(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		want  TenseForms
	}{
		{"empty", nil, TenseForms{}},
		{"short", tds("amō", "amās"), TenseForms{FirstSingular: "amō", SecondSingular: "amās"}},
		{
			"long",
			tds("a", "b", "c", "d", "e", "f", "g", "h"),
			TenseForms{
				FirstSingular: "a", SecondSingular: "b", ThirdSingular: "c",
				FirstPlural: "d", SecondPlural: "e", ThirdPlural: "f",
			},
		},
		{
			"gaps",
			tds("—", "amātō", "amātō", "—", "amātōte", "amantō"),
			TenseForms{SecondSingular: "amātō", ThirdSingular: "amātō", SecondPlural: "amātōte", ThirdPlural: "amantō"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractForms(tt.cells)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractForms mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractFormsKeepsMarkup(t *testing.T) {
	markup := ` <a href="/wiki/amo#Latin">amō</a> `
	forms := ExtractForms([]Cell{{HTML: markup, Text: " amō "}})
	if forms[FirstSingular] != markup {
		t.Errorf("markup altered: %q", forms[FirstSingular])
	}
}
