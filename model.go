package conjugatio

// Mood is the grammatical mood of a finite form.
type Mood string

const (
	Indicative  Mood = "indicative"
	Subjunctive Mood = "subjunctive"
	Imperative  Mood = "imperative"
)

// Moods lists the finite moods in table order.
var Moods = []Mood{Indicative, Subjunctive, Imperative}

// Voice is active or passive.
type Voice string

const (
	Active  Voice = "active"
	Passive Voice = "passive"
)

// Voices lists the voices in table order.
var Voices = []Voice{Active, Passive}

// TenseKey is a normalized tense label: lowercase, no whitespace
// (e.g. "present", "futureperfect"). See NormalizeTense.
type TenseKey string

const (
	Present       TenseKey = "present"
	Imperfect     TenseKey = "imperfect"
	Future        TenseKey = "future"
	Perfect       TenseKey = "perfect"
	Pluperfect    TenseKey = "pluperfect"
	FuturePerfect TenseKey = "futureperfect"
)

// Tenses lists the finite tenses in paradigm order.
var Tenses = []TenseKey{Present, Imperfect, Future, Perfect, Pluperfect, FuturePerfect}

// PersonNumber identifies one of the six paradigm slots.
type PersonNumber string

const (
	FirstSingular  PersonNumber = "1s"
	SecondSingular PersonNumber = "2s"
	ThirdSingular  PersonNumber = "3s"
	FirstPlural    PersonNumber = "1p"
	SecondPlural   PersonNumber = "2p"
	ThirdPlural    PersonNumber = "3p"
)

// PersonNumbers is the fixed slot order. Cell position i in a finite row
// always maps to PersonNumbers[i].
var PersonNumbers = []PersonNumber{
	FirstSingular, SecondSingular, ThirdSingular,
	FirstPlural, SecondPlural, ThirdPlural,
}

// Case is the grammatical case of a gerund or supine form.
type Case string

const (
	Genitive   Case = "genitive"
	Dative     Case = "dative"
	Accusative Case = "accusative"
	Ablative   Case = "ablative"
)

// Placeholder is the glyph the source table uses for "no form".
const Placeholder = "—"

// TenseForms maps a person/number slot to the raw markup of its form.
// A missing key means no attested form.
type TenseForms map[PersonNumber]string

// NonFinite holds the infinitive, participle, gerund and supine forms.
// Infinitive and participle keys are tense+voice, e.g. "presentActive".
type NonFinite struct {
	Infinitive map[string]string `json:"infinitive"`
	Participle map[string]string `json:"participle"`
	Gerund     map[Case]string   `json:"gerund"`
	Supine     map[Case]string   `json:"supine"`
}

// ConjugationTable is the normalized model of one conjugation table.
// It is built once per parse and not modified afterwards.
type ConjugationTable struct {
	Finite    map[Mood]map[Voice]map[TenseKey]TenseForms `json:"finite"`
	NonFinite NonFinite                                  `json:"nonFinite"`
}

// newTable creates an empty table.
func newTable() *ConjugationTable {
	return &ConjugationTable{
		Finite: make(map[Mood]map[Voice]map[TenseKey]TenseForms),
		NonFinite: NonFinite{
			Infinitive: make(map[string]string),
			Participle: make(map[string]string),
			Gerund:     make(map[Case]string),
			Supine:     make(map[Case]string),
		},
	}
}

// set stores forms at mood/voice/tense, creating intermediate maps.
func (t *ConjugationTable) set(m Mood, v Voice, tense TenseKey, forms TenseForms) {
	voices, ok := t.Finite[m]
	if !ok {
		voices = make(map[Voice]map[TenseKey]TenseForms)
		t.Finite[m] = voices
	}
	tenses, ok := voices[v]
	if !ok {
		tenses = make(map[TenseKey]TenseForms)
		voices[v] = tenses
	}
	tenses[tense] = forms
}

// Forms returns the forms stored for a mood/voice/tense triple.
func (t *ConjugationTable) Forms(m Mood, v Voice, tense TenseKey) (TenseForms, bool) {
	if t == nil {
		return nil, false
	}
	forms, ok := t.Finite[m][v][tense]
	return forms, ok
}

// Empty reports whether the table holds no form at all.
func (t *ConjugationTable) Empty() bool {
	if t == nil {
		return true
	}
	nf := t.NonFinite
	return len(t.Finite) == 0 && len(nf.Infinitive) == 0 && len(nf.Participle) == 0 &&
		len(nf.Gerund) == 0 && len(nf.Supine) == 0
}
