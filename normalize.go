package cardfolio

import "strings"

// conditionSynonyms maps localized or free-text condition grades to the
// canonical codes. Keys are uppercase, the way NormalizeCondition looks
// them up.
var conditionSynonyms = map[string]Condition{
	"QUASE NOVA":           CondNM,
	"QUASE NOVO":           CondNM,
	"NEAR MINT":            CondNM,
	"POUCO JOGADA":         CondSP,
	"SLIGHTLY PLAYED":      CondSP,
	"MODERADAMENTE JOGADA": CondMP,
	"MODERATELY PLAYED":    CondMP,
	"MUITO JOGADA":         CondHP,
	"HEAVILY PLAYED":       CondHP,
	"DANIFICADA":           CondD,
	"DAMAGED":              CondD,
}

// languageSynonyms maps the drifting per-source language vocabulary to the
// canonical codes.
var languageSynonyms = map[string]Language{
	"ING":       LangEN,
	"INGLES":    LangEN,
	"EN-US":     LangEN,
	"ENGLISH":   LangEN,
	"PT":        LangPTBR,
	"PORTUGUES": LangPTBR,
	"JAPONES":   LangJPN,
	"JP":        LangJPN,
	"ESPANHOL":  LangES,
	"FRANCES":   LangFR,
	"ALEMAO":    LangDE,
	"ITALIANO":  LangIT,
}

// NormalizeCondition maps a free-text or localized condition grade to its
// canonical code. It is total: unmapped input passes through uppercased,
// and downstream consumers treat an unrecognized code as an unknown
// bucket, never as an error.
func NormalizeCondition(raw string) Condition {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if c, ok := conditionSynonyms[normalized]; ok {
		return c
	}
	return Condition(normalized)
}

// NormalizeLanguage maps a per-source language string to its canonical
// code. Total and idempotent, like NormalizeCondition.
func NormalizeLanguage(raw string) Language {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if l, ok := languageSynonyms[normalized]; ok {
		return l
	}
	return Language(normalized)
}
