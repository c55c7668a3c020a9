package cardfolio

import "testing"

func TestRatio(t *testing.T) {
	f := DefaultFactors()
	testCases := []struct {
		name               string
		fromLang, toLang   Language
		fromCond, toCond   Condition
		want               Quantity
	}{
		{"Identity", LangEN, LangEN, CondNM, CondNM, Q(1)},
		{"Language only", LangPTBR, LangEN, CondNM, CondNM, Q(0.85)},
		{"Language reverse", LangEN, LangPTBR, CondNM, CondNM, Q(1).Div(Q(0.85))},
		{"Condition only", LangEN, LangEN, CondNM, CondSP, Q(0.7)},
		{"Both axes", LangPTBR, LangEN, CondNM, CondSP, Q(0.85).Mul(Q(0.7))},
		{"Unknown language defaults to 1", LangEN, Language("KR"), CondNM, CondNM, Q(1)},
		{"Unknown condition defaults to 1", LangEN, LangEN, CondNM, Condition("GR"), Q(1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := f.Ratio(tc.fromLang, tc.fromCond, tc.toLang, tc.toCond)
			if !got.Equal(tc.want) {
				t.Errorf("Ratio(%s/%s -> %s/%s) = %v, want %v",
					tc.fromLang, tc.fromCond, tc.toLang, tc.toCond, got, tc.want)
			}
		})
	}
}

func TestRatio_EmptyFactors(t *testing.T) {
	// Without any table every factor is 1, so every ratio is 1.
	var f Factors
	if got := f.Ratio(LangPTBR, CondD, LangJPN, CondNM); !got.Equal(Q(1)) {
		t.Errorf("Ratio on empty factors = %v, want 1", got)
	}
}
