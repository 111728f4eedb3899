package conjugatio

import (
	"strings"
	"unicode"
)

// NormalizeTense turns a tense header into a TenseKey: lowercase with all
// whitespace removed, including non-breaking spaces and literal "&nbsp;"
// left over from double-escaped markup ("future perfect" → "futureperfect").
func NormalizeTense(s string) TenseKey {
	s = strings.ReplaceAll(strings.ToLower(s), "&nbsp;", "")
	return TenseKey(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// normalizeVoice returns the voice named by a header, or "" if the header
// names none.
func normalizeVoice(s string) Voice {
	switch v := Voice(strings.ToLower(strings.TrimSpace(s))); v {
	case Active, Passive:
		return v
	}
	return ""
}

// isPlaceholder reports whether a cell's text marks an absent form.
func isPlaceholder(text string) bool {
	return strings.TrimSpace(text) == Placeholder
}

// atoneReplacer removes all vowel quantity marks (macrons and breves)
// from lowercase and uppercase letters.
var atoneReplacer = strings.NewReplacer(
	// lowercase macrons and breves
	"ā", "a", // ā → a
	"ă", "a", // ă → a
	"ē", "e", // ē → e
	"ĕ", "e", // ĕ → e
	"ī", "i", // ī → i
	"ĭ", "i", // ĭ → i
	"ō", "o", // ō → o
	"ŏ", "o", // ŏ → o
	"ū", "u", // ū → u
	"ŭ", "u", // ŭ → u
	"ȳ", "y", // ȳ → y
	// uppercase macrons and breves
	"Ā", "A", // Ā → A
	"Ă", "A", // Ă → A
	"Ē", "E", // Ē → E
	"Ĕ", "E", // Ĕ → E
	"Ī", "I", // Ī → I
	"Ĭ", "I", // Ĭ → I
	"Ō", "O", // Ō → O
	"Ŏ", "O", // Ŏ → O
	"Ū", "U", // Ū → U
	"Ŭ", "U", // Ŭ → U
	"Ȳ", "Y", // Ȳ → Y
)

// Atone strips all vowel-quantity diacritics from s, including the
// combining macron (U+0304) and breve (U+0306).
func Atone(s string) string {
	s = atoneReplacer.Replace(s)
	return strings.NewReplacer("\u0304", "", "\u0306", "").Replace(s)
}

// deramiseReplacer converts Ramist spelling (j/v) to classical (i/u)
// and expands the æ/œ ligatures.
var deramiseReplacer = strings.NewReplacer(
	"J", "I",
	"j", "i",
	"v", "u",
	"V", "U",
	"æ", "ae", // æ → ae
	"Æ", "Ae", // Æ → Ae
	"œ", "oe", // œ → oe
	"Œ", "Oe", // Œ → Oe
)

// Deramise converts j→i, v→u and expands æ/œ.
func Deramise(s string) string {
	return deramiseReplacer.Replace(s)
}

// NormalizeKey returns the comparison key of a Latin word: lowercase,
// quantity marks removed, j/v folded to i/u.
func NormalizeKey(s string) string {
	return strings.ToLower(Atone(Deramise(strings.TrimSpace(s))))
}
