package cardfolio

import (
	"strings"

	"github.com/tcgdx/cardfolio/date"
)

// Language is a canonical language code for a card print.
type Language string

// The known set of languages. Source catalogs use drifting vocabularies
// ("ING", "PORTUGUES", ...); NormalizeLanguage maps them here.
const (
	LangPTBR Language = "PT-BR"
	LangEN   Language = "EN"
	LangJPN  Language = "JPN"
	LangES   Language = "ES"
	LangFR   Language = "FR"
	LangDE   Language = "DE"
	LangIT   Language = "IT"
)

// Condition is a canonical condition grade for a card.
type Condition string

// The known set of condition grades, from Near Mint down to Damaged.
const (
	CondNM Condition = "NM"
	CondSP Condition = "SP"
	CondMP Condition = "MP"
	CondHP Condition = "HP"
	CondD  Condition = "D"
)

// Listing is one scraped price observation for a card, in a given language
// and condition, on a given collection day. Listings are immutable once
// collected; an external ingestion process appends them and this package
// only reads them.
type Listing struct {
	CardName    string
	Language    Language
	Condition   Condition
	Price       Money
	CollectedAt date.Date
	Seller      string // optional
}

// key returns the normalized name used to join listings across catalogs:
// trimmed, lowercased.
func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Key returns the normalized join key of the listing's card name.
func (l Listing) Key() string { return key(l.CardName) }

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (l Listing) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("card", l.CardName)
	w.Append("language", string(l.Language))
	w.Append("condition", string(l.Condition))
	w.Append("price", l.Price.Amount())
	w.Optional("currency", l.Price.Currency())
	w.Append("collectedAt", l.CollectedAt)
	w.Optional("seller", l.Seller)
	return w.MarshalJSON()
}

// listingJSON is the decoding counterpart of Listing.MarshalJSON.
type listingJSON struct {
	Card        string    `json:"card"`
	Language    string    `json:"language"`
	Condition   string    `json:"condition"`
	Price       Quantity  `json:"price"`
	Currency    string    `json:"currency"`
	CollectedAt date.Date `json:"collectedAt"`
	Seller      string    `json:"seller"`
}

func (j listingJSON) Listing() Listing {
	return Listing{
		CardName:    j.Card,
		Language:    Language(j.Language),
		Condition:   Condition(j.Condition),
		Price:       M(j.Price.value, j.Currency),
		CollectedAt: j.CollectedAt,
		Seller:      j.Seller,
	}
}
