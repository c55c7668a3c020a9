package cardfolio

import "testing"

func TestNormalizeCondition(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Condition
	}{
		{"Canonical passes through", "NM", CondNM},
		{"Lowercase canonical", "nm", CondNM},
		{"Portuguese NM", "Quase Nova", CondNM},
		{"Portuguese NM masculine", "QUASE NOVO", CondNM},
		{"English NM", "Near Mint", CondNM},
		{"Portuguese SP", "Pouco Jogada", CondSP},
		{"English SP", "slightly played", CondSP},
		{"Portuguese MP", "Moderadamente Jogada", CondMP},
		{"English MP", "Moderately Played", CondMP},
		{"Portuguese HP", "Muito Jogada", CondHP},
		{"English HP", "HEAVILY PLAYED", CondHP},
		{"Portuguese D", "Danificada", CondD},
		{"English D", "Damaged", CondD},
		{"Whitespace trimmed", "  near mint  ", CondNM},
		{"Unknown passes through uppercased", "graded 9.5", Condition("GRADED 9.5")},
		{"Empty", "", Condition("")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeCondition(tc.in); got != tc.want {
				t.Errorf("NormalizeCondition(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeCondition_Idempotent(t *testing.T) {
	inputs := []string{"Quase Nova", "NM", "damaged", "graded 9.5", "", "  sp "}
	for _, in := range inputs {
		once := NormalizeCondition(in)
		twice := NormalizeCondition(string(once))
		if once != twice {
			t.Errorf("NormalizeCondition not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Language
	}{
		{"Canonical passes through", "EN", LangEN},
		{"Local vocabulary ING", "ING", LangEN},
		{"Full word", "Ingles", LangEN},
		{"Portuguese short", "PT", LangPTBR},
		{"Portuguese full", "portugues", LangPTBR},
		{"Japanese local word", "Japones", LangJPN},
		{"Japanese short", "jp", LangJPN},
		{"Unknown passes through uppercased", "kr", Language("KR")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeLanguage(tc.in); got != tc.want {
				t.Errorf("NormalizeLanguage(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
