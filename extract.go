package conjugatio

// ExtractForms maps data cells to person/number slots by position.
// Cells past the sixth are ignored and placeholder cells leave their
// slot empty. Short rows are fine.
func ExtractForms(cells []Cell) TenseForms {
	forms := make(TenseForms)
	for i, cell := range cells {
		if i >= len(PersonNumbers) {
			break
		}
		if isPlaceholder(cell.Text) {
			continue
		}
		forms[PersonNumbers[i]] = cell.HTML
	}
	return forms
}
