package conjugatio

// nonFiniteShape tags the sub-tables of the non-finite section.
// They are told apart by row shape only, never by label text.
type nonFiniteShape int

const (
	shapeUnrecognized nonFiniteShape = iota
	shapeInfinitivePair
	shapeGerund
	shapeSupine
)

func (s nonFiniteShape) String() string {
	switch s {
	case shapeInfinitivePair:
		return "infinitive/participle"
	case shapeGerund:
		return "gerund"
	case shapeSupine:
		return "supine"
	default:
		return "unrecognized"
	}
}

// classifyShape matches a (headers, data) pair against the known shapes.
func classifyShape(headers, data int) nonFiniteShape {
	switch {
	case headers == 2 && data == 4:
		return shapeInfinitivePair
	case headers == 3 && data == 4:
		return shapeGerund
	case headers == 3 && data == 2:
		return shapeSupine
	default:
		return shapeUnrecognized
	}
}

// nonFinitePatch is the set of writes one non-finite row contributes.
type nonFinitePatch struct {
	infinitive map[string]string
	participle map[string]string
	gerund     map[Case]string
	supine     map[Case]string
}

func (p nonFinitePatch) empty() bool {
	return len(p.infinitive) == 0 && len(p.participle) == 0 &&
		len(p.gerund) == 0 && len(p.supine) == 0
}

// apply merges the patch into target. Later rows win on key collisions.
func (p nonFinitePatch) apply(target *NonFinite) {
	for k, v := range p.infinitive {
		target.Infinitive[k] = v
	}
	for k, v := range p.participle {
		target.Participle[k] = v
	}
	for k, v := range p.gerund {
		target.Gerund[k] = v
	}
	for k, v := range p.supine {
		target.Supine[k] = v
	}
}

// nonFiniteRow computes the patch for row together with its shape.
// An unrecognized shape or a missing tense label yields an empty patch.
func nonFiniteRow(row Row) (nonFinitePatch, nonFiniteShape) {
	headers, data := row.Headers(), row.Data()
	shape := classifyShape(len(headers), len(data))

	// The tense label sits in the second header; rows without one carry
	// nothing we can key.
	if len(headers) < 2 {
		return nonFinitePatch{}, shapeUnrecognized
	}
	tense := string(NormalizeTense(headers[1].Text))
	if tense == "" {
		return nonFinitePatch{}, shape
	}

	switch shape {
	case shapeInfinitivePair:
		return nonFinitePatch{
			infinitive: map[string]string{
				tense + "Active":  data[0].HTML,
				tense + "Passive": data[1].HTML,
			},
			participle: map[string]string{
				tense + "Active":  data[2].HTML,
				tense + "Passive": data[3].HTML,
			},
		}, shape
	case shapeGerund:
		return nonFinitePatch{gerund: map[Case]string{
			Genitive:   data[0].HTML,
			Dative:     data[1].HTML,
			Accusative: data[2].HTML,
			Ablative:   data[3].HTML,
		}}, shape
	case shapeSupine:
		return nonFinitePatch{supine: map[Case]string{
			Accusative: data[0].HTML,
			Ablative:   data[1].HTML,
		}}, shape
	}
	return nonFinitePatch{}, shape
}

// HandleNonFinite interprets one row of the non-finite section and merges
// its forms into target. Rows that match none of the three known shapes
// are dropped; the return value reports whether anything was written.
func HandleNonFinite(row Row, target *NonFinite) bool {
	patch, _ := nonFiniteRow(row)
	if patch.empty() {
		return false
	}
	target.ensure()
	patch.apply(target)
	return true
}

// ensure allocates any nil map of n.
func (n *NonFinite) ensure() {
	if n.Infinitive == nil {
		n.Infinitive = make(map[string]string)
	}
	if n.Participle == nil {
		n.Participle = make(map[string]string)
	}
	if n.Gerund == nil {
		n.Gerund = make(map[Case]string)
	}
	if n.Supine == nil {
		n.Supine = make(map[Case]string)
	}
}
