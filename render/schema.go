package render

import "github.com/cours-de-latin/conjugatio"

type label struct {
	key  string
	text string
}

var moodSchema = []struct {
	title string
	mood  conjugatio.Mood
}{
	{"INDICATIVE", conjugatio.Indicative},
	{"SUBJUNCTIVE", conjugatio.Subjunctive},
}

var voiceSchema = []struct {
	title string
	voice conjugatio.Voice
}{
	{"ACTIVE", conjugatio.Active},
	{"PASSIVE", conjugatio.Passive},
}

type tenseLabel struct {
	tense conjugatio.TenseKey
	title string
}

// columnSchema splits the six tenses into the two columns of a voice.
var columnSchema = [][]tenseLabel{
	{
		{conjugatio.Present, "PRESENT"},
		{conjugatio.Imperfect, "IMPERFECT"},
		{conjugatio.Future, "FUTURE"},
	},
	{
		{conjugatio.Perfect, "PERFECT"},
		{conjugatio.Pluperfect, "PLUPERFECT"},
		{conjugatio.FuturePerfect, "FUTURE PERFECT"},
	},
}

var imperativeSchema = []struct {
	voice conjugatio.Voice
	tense conjugatio.TenseKey
	title string
}{
	{conjugatio.Active, conjugatio.Present, "IMPERATIVE PRESENT"},
	{conjugatio.Active, conjugatio.Future, "IMPERATIVE FUTURE"},
	{conjugatio.Passive, conjugatio.Present, "IMPERATIVE PRESENT PASSIVE"},
	{conjugatio.Passive, conjugatio.Future, "IMPERATIVE FUTURE PASSIVE"},
}

var personLabels = []label{
	{"1s", "I sing."},
	{"2s", "II sing."},
	{"3s", "III sing."},
	{"1p", "I plur."},
	{"2p", "II plur."},
	{"3p", "III plur."},
}

var infinitiveLabels = []label{
	{"presentActive", "Present Active"},
	{"perfectActive", "Perfect Active"},
	{"futureActive", "Future Active"},
	{"presentPassive", "Present Passive"},
	{"perfectPassive", "Perfect Passive"},
	{"futurePassive", "Future Passive"},
}

var participleLabels = []label{
	{"presentActive", "Present Active"},
	{"futureActive", "Future Active"},
	{"perfectPassive", "Perfect Passive"},
	{"futurePassive", "Future Passive (Gerundive)"},
}

var gerundLabels = []label{
	{"genitive", "Genitive"},
	{"dative", "Dative"},
	{"accusative", "Accusative"},
	{"ablative", "Ablative"},
}

var supineLabels = []label{
	{"accusative", "Accusative"},
	{"ablative", "Ablative"},
}
