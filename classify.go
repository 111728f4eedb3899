package conjugatio

import "fmt"

// DiagnosticKind names why a row contributed nothing.
type DiagnosticKind string

const (
	// NonFiniteShapeMismatch: a non-finite row matched none of the known shapes.
	NonFiniteShapeMismatch DiagnosticKind = "nonfinite-shape-mismatch"
	// MissingContext: a tense row arrived before a mood or voice was set.
	MissingContext DiagnosticKind = "missing-context"
	// EmptyTense: a tense header normalized to the empty string.
	EmptyTense DiagnosticKind = "empty-tense"
	// UnknownShape: a row inside a mood had more than two headers outside the
	// non-finite section.
	UnknownShape DiagnosticKind = "unknown-shape"
)

// Diagnostic records a row that was skipped by the permissive parser.
// Skipped rows are never errors; diagnostics exist so callers can notice
// silent data loss.
type Diagnostic struct {
	Row    int            `json:"row"`
	Kind   DiagnosticKind `json:"kind"`
	Detail string         `json:"detail"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("row %d: %s: %s", d.Row, d.Kind, d.Detail)
}

// state is the classification state carried from row to row.
type state struct {
	mood  Mood
	voice Voice
}

// Classify reduces the rows of one conjugation table, in document order,
// into a fresh ConjugationTable.
func Classify(rows []Row) *ConjugationTable {
	table, _ := ClassifyReport(rows)
	return table
}

// ClassifyReport is Classify that also returns a diagnostic for every
// meaningful row that was dropped.
func ClassifyReport(rows []Row) (*ConjugationTable, []Diagnostic) {
	table := newTable()
	var diags []Diagnostic
	st := state{}
	for i, row := range rows {
		var d *Diagnostic
		st, d = step(st, row, table)
		if d != nil {
			d.Row = i
			diags = append(diags, *d)
		}
	}
	return table, diags
}

// step classifies a single row. Decisions are evaluated top-down and the
// first match wins. It returns the context for the next row.
func step(st state, row Row, table *ConjugationTable) (state, *Diagnostic) {
	headers := row.Headers()
	if len(headers) == 0 {
		return st, nil
	}

	first := headers[0]
	for _, rail := range railMoods {
		if first.HasClass(rail.class) {
			st.mood = rail.mood
			return st, nil
		}
	}

	if first.HasClass(NonFiniteHeader) {
		patch, shape := nonFiniteRow(row)
		if patch.empty() {
			h, d := row.Shape()
			return st, &Diagnostic{
				Kind:   NonFiniteShapeMismatch,
				Detail: fmt.Sprintf("%d headers, %d data cells (%s)", h, d, shape),
			}
		}
		patch.apply(&table.NonFinite)
		return st, nil
	}

	var tenseHeader Cell
	switch len(headers) {
	case 2:
		if v := normalizeVoice(first.Text); v != "" {
			st.voice = v
		}
		tenseHeader = headers[1]
	case 1:
		if st.mood == "" || st.voice == "" {
			return st, missingContext(st, first.Text)
		}
		tenseHeader = first
	default:
		// Column headings precede the first mood rail.
		if st.mood == "" {
			return st, nil
		}
		return st, &Diagnostic{
			Kind:   UnknownShape,
			Detail: fmt.Sprintf("%d header cells", len(headers)),
		}
	}

	if st.mood == "" || st.voice == "" {
		return st, missingContext(st, tenseHeader.Text)
	}
	tense := NormalizeTense(tenseHeader.Text)
	if tense == "" {
		return st, &Diagnostic{Kind: EmptyTense, Detail: fmt.Sprintf("%s/%s", st.mood, st.voice)}
	}
	table.set(st.mood, st.voice, tense, ExtractForms(row.Data()))
	return st, nil
}

func missingContext(st state, label string) *Diagnostic {
	return &Diagnostic{
		Kind:   MissingContext,
		Detail: fmt.Sprintf("tense %q with mood=%q voice=%q", label, st.mood, st.voice),
	}
}
