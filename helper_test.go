package cardfolio

import (
	"github.com/tcgdx/cardfolio/date"
)

// listing is a helper for tests to build a local-market listing in BRL.
func listing(name string, lang Language, cond Condition, price float64, day string) Listing {
	return Listing{
		CardName:    name,
		Language:    lang,
		Condition:   cond,
		Price:       BRL(price),
		CollectedAt: date.MustParse(day),
	}
}

// refListing is a helper for tests to build a reference-market listing in USD.
func refListing(name string, price float64, day string) Listing {
	return Listing{
		CardName:    name,
		Language:    LangEN,
		Condition:   CondNM,
		Price:       USD(price),
		CollectedAt: date.MustParse(day),
	}
}
