package conjugatio

func th(text string) Cell {
	return Cell{Header: true, HTML: text, Text: text}
}

func rail(class, text string) Cell {
	return Cell{Header: true, Class: class, HTML: text, Text: text}
}

func td(text string) Cell {
	return Cell{HTML: text, Text: text}
}

func tds(texts ...string) []Cell {
	cells := make([]Cell, 0, len(texts))
	for _, t := range texts {
		cells = append(cells, td(t))
	}
	return cells
}

func mkRow(cells ...[]Cell) Row {
	var r Row
	for _, c := range cells {
		r.Cells = append(r.Cells, c...)
	}
	return r
}

func heads(texts ...string) []Cell {
	cells := make([]Cell, 0, len(texts))
	for _, t := range texts {
		cells = append(cells, th(t))
	}
	return cells
}

func one(c Cell) []Cell { return []Cell{c} }

var presentActive = []string{"amō", "amās", "amat", "amāmus", "amātis", "amant"}
