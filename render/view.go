package render

import (
	"strings"

	"github.com/cours-de-latin/conjugatio"
)

// Entry is one labelled form.
type Entry struct {
	Label string
	Form  string
}

// Block is a titled list of entries, e.g. one tense of one voice.
type Block struct {
	Title   string
	Entries []Entry
}

// Column groups the blocks shown side by side within a voice.
type Column struct {
	Blocks []Block
}

// VoiceSection holds the tense columns of one voice.
type VoiceSection struct {
	Title   string
	Columns []Column
}

// MoodSection holds the voices of one mood.
type MoodSection struct {
	Title  string
	Voices []VoiceSection
}

// Group is one box of the lower section: the imperative or one non-finite
// category.
type Group struct {
	Blocks []Block
}

// View is the presentation of a ConjugationTable. Every section in it has
// at least one entry.
type View struct {
	Moods  []MoodSection
	Groups []Group
}

// Empty reports whether the view holds nothing to show.
func (v View) Empty() bool {
	return len(v.Moods) == 0 && len(v.Groups) == 0
}

// BuildView walks t against the fixed presentation schema. Forms absent
// from t are left out, as is every block, column, voice, mood or group
// that ends up without entries.
func BuildView(t *conjugatio.ConjugationTable) View {
	var view View
	if t == nil {
		return view
	}

	for _, ms := range moodSchema {
		section := MoodSection{Title: ms.title}
		for _, vs := range voiceSchema {
			voice := VoiceSection{Title: vs.title}
			for _, tenses := range columnSchema {
				var col Column
				for _, tl := range tenses {
					forms, _ := t.Forms(ms.mood, vs.voice, tl.tense)
					if b, ok := tenseBlock(tl.title, forms); ok {
						col.Blocks = append(col.Blocks, b)
					}
				}
				if len(col.Blocks) > 0 {
					voice.Columns = append(voice.Columns, col)
				}
			}
			if len(voice.Columns) > 0 {
				section.Voices = append(section.Voices, voice)
			}
		}
		if len(section.Voices) > 0 {
			view.Moods = append(view.Moods, section)
		}
	}

	var imperative Group
	for _, is := range imperativeSchema {
		forms, _ := t.Forms(conjugatio.Imperative, is.voice, is.tense)
		if b, ok := tenseBlock(is.title, forms); ok {
			imperative.Blocks = append(imperative.Blocks, b)
		}
	}
	if len(imperative.Blocks) > 0 {
		view.Groups = append(view.Groups, imperative)
	}

	nf := t.NonFinite
	for _, g := range []struct {
		title  string
		data   map[string]string
		labels []label
	}{
		{"INFINITIVE", nf.Infinitive, infinitiveLabels},
		{"PARTICIPLE", nf.Participle, participleLabels},
		{"GERUND", caseMap(nf.Gerund), gerundLabels},
		{"SUPINE", caseMap(nf.Supine), supineLabels},
	} {
		if b, ok := nonFiniteBlock(g.title, g.data, g.labels); ok {
			view.Groups = append(view.Groups, Group{Blocks: []Block{b}})
		}
	}
	return view
}

func tenseBlock(title string, forms conjugatio.TenseForms) (Block, bool) {
	b := Block{Title: title}
	for _, pl := range personLabels {
		if form := forms[conjugatio.PersonNumber(pl.key)]; form != "" {
			b.Entries = append(b.Entries, Entry{Label: pl.text, Form: form})
		}
	}
	return b, len(b.Entries) > 0
}

func nonFiniteBlock(title string, data map[string]string, labels []label) (Block, bool) {
	b := Block{Title: title}
	for _, l := range labels {
		form, ok := data[l.key]
		if !ok || isBlank(form) {
			continue
		}
		b.Entries = append(b.Entries, Entry{Label: l.text, Form: form})
	}
	return b, len(b.Entries) > 0
}

// isBlank reports whether markup shows no form: empty or the placeholder.
func isBlank(markup string) bool {
	text := strings.TrimSpace(conjugatio.TextContent(markup))
	return text == "" || text == conjugatio.Placeholder
}

func caseMap(m map[conjugatio.Case]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}
