package conjugatio

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		fn   string
		in   string
		want string
	}{
		{"Deramise", "iuvo", "iuuo"},
		{"Deramise", "Julius", "Iulius"},
		{"Deramise", "amāvērunt", "amāuērunt"},
		{"Atone", "ā", "a"},
		{"Atone", "ē", "e"},
		{"Atone", "ī", "i"},
		{"Atone", "ō", "o"},
		{"Atone", "ū", "u"},
		{"Atone", "Ā", "A"},
		{"Atone", "\u0101\u0306bl\u016do", "abluo"},
		{"NormalizeKey", "Amāvērunt", "amauerunt"},
		{"NormalizeKey", " iūvō ", "iuuo"},
		{"NormalizeTense", "Present", "present"},
		{"NormalizeTense", "future perfect", "futureperfect"},
		{"NormalizeTense", "future\u00a0perfect", "futureperfect"},
		{"NormalizeTense", "future&nbsp;perfect", "futureperfect"},
		{"NormalizeTense", "  Plu\tperfect\n", "pluperfect"},
		{"NormalizeTense", " ", ""},
	}
	for _, tt := range tests {
		var got string
		switch tt.fn {
		case "Deramise":
			got = Deramise(tt.in)
		case "Atone":
			got = Atone(tt.in)
		case "NormalizeKey":
			got = NormalizeKey(tt.in)
		case "NormalizeTense":
			got = string(NormalizeTense(tt.in))
		}
		if got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.fn, tt.in, got, tt.want)
		}
	}
}

func TestNormalizeVoice(t *testing.T) {
	tests := map[string]Voice{
		"active":    Active,
		" Passive ": Passive,
		"ACTIVE":    Active,
		"present":   "",
		"":          "",
	}
	for in, want := range tests {
		if got := normalizeVoice(in); got != want {
			t.Errorf("normalizeVoice(%q) = %q, want %q", in, got, want)
		}
	}
}
