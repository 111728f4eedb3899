package conjugatio

import (
	"regexp"
	"sort"
	"strings"
)

// reBreak matches line breaks separating alternative forms in a cell.
var reBreak = regexp.MustCompile(`(?i)<br\s*/?>`)

// Non-finite categories used in Slot.Category.
const (
	CategoryInfinitive = "infinitive"
	CategoryParticiple = "participle"
	CategoryGerund     = "gerund"
	CategorySupine     = "supine"
)

// Cases lists the cases in gerund order.
var Cases = []Case{Genitive, Dative, Accusative, Ablative}

// Slot addresses one stored form of a table. Finite slots set Mood, Voice,
// Tense and Person; non-finite slots set Category and Key.
type Slot struct {
	Mood     Mood         `json:"mood,omitempty"`
	Voice    Voice        `json:"voice,omitempty"`
	Tense    TenseKey     `json:"tense,omitempty"`
	Person   PersonNumber `json:"person,omitempty"`
	Category string       `json:"category,omitempty"`
	Key      string       `json:"key,omitempty"`
	// HTML is the stored markup.
	HTML string `json:"-"`
}

// Finite reports whether s addresses a finite form.
func (s Slot) Finite() bool {
	return s.Mood != ""
}

func (s Slot) String() string {
	if s.Finite() {
		return string(s.Mood) + "." + string(s.Voice) + "." + string(s.Tense) + "." + string(s.Person)
	}
	return s.Category + "." + s.Key
}

// Slots enumerates every stored form in paradigm order: finite forms by
// mood, voice, tense and person, then infinitive, participle, gerund and
// supine. Tense keys outside the standard six follow them alphabetically.
func (t *ConjugationTable) Slots() []Slot {
	if t == nil {
		return nil
	}
	var out []Slot
	for _, m := range Moods {
		for _, v := range Voices {
			tenses := t.Finite[m][v]
			for _, tense := range orderedTenses(tenses) {
				forms := tenses[tense]
				for _, p := range PersonNumbers {
					markup, ok := forms[p]
					if !ok {
						continue
					}
					out = append(out, Slot{Mood: m, Voice: v, Tense: tense, Person: p, HTML: markup})
				}
			}
		}
	}

	nf := t.NonFinite
	for _, k := range sortedKeys(nf.Infinitive) {
		out = append(out, Slot{Category: CategoryInfinitive, Key: k, HTML: nf.Infinitive[k]})
	}
	for _, k := range sortedKeys(nf.Participle) {
		out = append(out, Slot{Category: CategoryParticiple, Key: k, HTML: nf.Participle[k]})
	}
	for _, c := range Cases {
		if markup, ok := nf.Gerund[c]; ok {
			out = append(out, Slot{Category: CategoryGerund, Key: string(c), HTML: markup})
		}
	}
	for _, c := range Cases {
		if markup, ok := nf.Supine[c]; ok {
			out = append(out, Slot{Category: CategorySupine, Key: string(c), HTML: markup})
		}
	}
	return out
}

func orderedTenses(tenses map[TenseKey]TenseForms) []TenseKey {
	if len(tenses) == 0 {
		return nil
	}
	out := make([]TenseKey, 0, len(tenses))
	known := make(map[TenseKey]bool, len(Tenses))
	for _, tense := range Tenses {
		known[tense] = true
		if _, ok := tenses[tense]; ok {
			out = append(out, tense)
		}
	}
	var extra []TenseKey
	for tense := range tenses {
		if !known[tense] {
			extra = append(extra, tense)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// slotForms returns the distinct text variants of a slot. Cells may list
// alternatives separated by commas or line breaks ("amāvērunt, amāvēre").
// Footnote markers trailing a form are dropped.
func slotForms(s Slot) []string {
	text := strings.TrimSpace(TextContent(reBreak.ReplaceAllString(s.HTML, ",")))
	if text == "" || text == Placeholder {
		return nil
	}
	var forms []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "0123456789*†")
		if part != "" && part != Placeholder {
			forms = append(forms, part)
		}
	}
	return unique(forms)
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
