package conjugatio

import (
	"regexp"
	"strings"
)

// reWord matches a single Latin/Unicode word token.
var reWord = regexp.MustCompile(`[a-zA-ZÀ-ÿ\x{0100}-\x{024F}\x{0300}-\x{036F}]+`)

// enclitics are suffixes stripped when a token matches no form as is.
var enclitics = []string{"que", "ne", "ve", "ue"}

// Analysis is one slot of a table that produces a given word.
type Analysis struct {
	// Form is the stored form with its quantity marks.
	Form string `json:"form"`
	// Slot addresses the matching form in the table.
	Slot Slot `json:"slot"`
	// Enclitic is the suffix stripped before matching, if any.
	Enclitic string `json:"enclitic,omitempty"`
}

// TokenResult holds the analyses of one token of a text.
type TokenResult struct {
	Token    string     `json:"token"`
	Analyses []Analysis `json:"analyses"`
}

// Analyze returns every slot of t whose form matches word. Matching
// ignores case and quantity marks and folds j/v to i/u. When nothing
// matches, a trailing enclitic is stripped and the lookup retried.
func (t *ConjugationTable) Analyze(word string) []Analysis {
	key := NormalizeKey(word)
	if key == "" {
		return nil
	}
	index := t.formIndex()
	if found := index.lookup(key, ""); len(found) > 0 {
		return found
	}
	// Suffixes are matched before j/v folding so "-ve" is reported as written.
	spelled := strings.ToLower(Atone(strings.TrimSpace(word)))
	for _, suf := range enclitics {
		if strings.HasSuffix(spelled, suf) && len(spelled) > len(suf) {
			stem := NormalizeKey(strings.TrimSuffix(spelled, suf))
			if found := index.lookup(stem, suf); len(found) > 0 {
				return found
			}
		}
	}
	return nil
}

// AnalyzeText splits text into word tokens and analyzes each against t.
// Tokens that match nothing are kept with an empty analysis list.
func (t *ConjugationTable) AnalyzeText(text string) []TokenResult {
	tokens := reWord.FindAllString(text, -1)
	if len(tokens) == 0 {
		return nil
	}
	results := make([]TokenResult, 0, len(tokens))
	for _, token := range tokens {
		results = append(results, TokenResult{Token: token, Analyses: t.Analyze(token)})
	}
	return results
}

type indexEntry struct {
	form string
	slot Slot
}

// formIndex maps normalized keys to the slots producing them.
type formIndex map[string][]indexEntry

func (t *ConjugationTable) formIndex() formIndex {
	index := make(formIndex)
	for _, slot := range t.Slots() {
		for _, form := range slotForms(slot) {
			k := NormalizeKey(form)
			index[k] = append(index[k], indexEntry{form: form, slot: slot})
		}
	}
	return index
}

func (idx formIndex) lookup(key, enclitic string) []Analysis {
	entries := idx[key]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Analysis, 0, len(entries))
	for _, e := range entries {
		out = append(out, Analysis{Form: e.form, Slot: e.slot, Enclitic: enclitic})
	}
	return out
}
