package cardfolio

import "github.com/shopspring/decimal"

// Factors holds the two multiplicative conversion tables used to adjust a
// price from one (language, condition) variant to another. Both tables are
// anchored at 1.0 for the baseline variant (PT-BR, NM); factors are only
// ever used as ratios, never in isolation.
type Factors struct {
	Language  map[Language]decimal.Decimal
	Condition map[Condition]decimal.Decimal
}

var one = decimal.NewFromInt(1)

func f(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultFactors returns the production conversion tables. These are static
// constants, not market-calibrated values: the model assumes price is
// separable into independent language and condition multipliers.
func DefaultFactors() Factors {
	return Factors{
		Language: map[Language]decimal.Decimal{
			LangPTBR: f("1.0"),
			LangEN:   f("0.85"),
			LangJPN:  f("1.15"),
			LangES:   f("0.90"),
			LangFR:   f("0.88"),
			LangDE:   f("0.87"),
			LangIT:   f("0.86"),
		},
		Condition: map[Condition]decimal.Decimal{
			CondNM: f("1.0"),
			CondSP: f("0.7"),
			CondMP: f("0.5"),
			CondHP: f("0.3"),
			CondD:  f("0.1"),
		},
	}
}

// language returns the factor for l, defaulting to 1 for unknown codes.
// A missing key is a degraded-confidence outcome, absorbed, not surfaced.
func (fs Factors) language(l Language) decimal.Decimal {
	if v, ok := fs.Language[l]; ok {
		return v
	}
	return one
}

// condition returns the factor for c, defaulting to 1 for unknown codes.
func (fs Factors) condition(c Condition) decimal.Decimal {
	if v, ok := fs.Condition[c]; ok {
		return v
	}
	return one
}

// Ratio returns the multiplier that converts a price observed in the
// (fromLang, fromCond) variant into the (toLang, toCond) variant.
func (fs Factors) Ratio(fromLang Language, fromCond Condition, toLang Language, toCond Condition) Quantity {
	langRatio := fs.language(toLang).Div(fs.language(fromLang))
	condRatio := fs.condition(toCond).Div(fs.condition(fromCond))
	return Q(langRatio.Mul(condRatio))
}
