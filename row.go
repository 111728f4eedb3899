package conjugatio

import "strings"

// Marker classes carried by the first header cell of a row.
const (
	IndicativeRail  = "roa-indicative-left-rail"
	SubjunctiveRail = "roa-subjunctive-left-rail"
	ImperativeRail  = "roa-imperative-left-rail"
	NonFiniteHeader = "roa-nonfinite-header"
)

// railMoods maps each mood-rail marker to the mood it opens.
var railMoods = []struct {
	class string
	mood  Mood
}{
	{IndicativeRail, Indicative},
	{SubjunctiveRail, Subjunctive},
	{ImperativeRail, Imperative},
}

// Cell is one th or td element of a source row.
type Cell struct {
	// Header is true for th cells.
	Header bool
	// Class is the raw class attribute.
	Class string
	// HTML is the inner markup, kept opaque.
	HTML string
	// Text is the text content of the cell.
	Text string
}

// HasClass reports whether name is one of the cell's class tokens.
func (c Cell) HasClass(name string) bool {
	for _, tok := range strings.Fields(c.Class) {
		if tok == name {
			return true
		}
	}
	return false
}

// Row is an ordered sequence of cells from one tr element.
type Row struct {
	Cells []Cell
}

// Headers returns the header cells in order.
func (r Row) Headers() []Cell {
	return r.filter(true)
}

// Data returns the data cells in order.
func (r Row) Data() []Cell {
	return r.filter(false)
}

func (r Row) filter(header bool) []Cell {
	var out []Cell
	for _, c := range r.Cells {
		if c.Header == header {
			out = append(out, c)
		}
	}
	return out
}

// Shape returns the (header, data) cell counts of the row.
func (r Row) Shape() (headers, data int) {
	for _, c := range r.Cells {
		if c.Header {
			headers++
		} else {
			data++
		}
	}
	return headers, data
}
