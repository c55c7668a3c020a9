package cardfolio

import "log"

// MatchQuality reports which strategy of the cascade found the price row,
// so callers can tell a resolved zero from an unresolved card.
type MatchQuality int

const (
	MatchNone MatchQuality = iota
	MatchPrefix
	MatchFold
	MatchExact
)

// String implements the fmt.Stringer interface.
func (m MatchQuality) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchFold:
		return "case-insensitive"
	case MatchPrefix:
		return "partial-prefix"
	default:
		return "none"
	}
}

// ResolvedPrice is the outcome of a price resolution: the price adjusted
// to the requested variant, the source listing it was derived from, and
// the quality of the name match.
//
// When Match is MatchNone the price is zero. That zero is a silent absence
// signal, not a real price: callers must exclude it from aggregates or
// flag the card as unresolved rather than trust the number alone.
type ResolvedPrice struct {
	Price  Money
	Source Listing
	Match  MatchQuality
}

// Resolved reports whether a source row was found by any strategy.
func (r ResolvedPrice) Resolved() bool { return r.Match != MatchNone }

// Resolve maps a (cardName, language, condition) request to a single best
// current price, normalized to the requested variant.
//
// The source row is the most recent listing found by the match cascade;
// listings sharing that day are tied-broken by lowest price. If the row's
// variant equals the requested one, its price is returned unmodified, with
// no ratio math applied. Otherwise the price is adjusted by the language
// and condition factor ratios, with missing factors defaulting to 1.
//
// No match returns a zero price with MatchNone; this is logged, never an
// error.
func (c *Catalog) Resolve(cardName string, lang Language, cond Condition, factors Factors) ResolvedPrice {
	rows, match := c.match(cardName)
	if match == MatchNone {
		log.Printf("no price found for %q (%s/%s)", cardName, lang, cond)
		return ResolvedPrice{Match: MatchNone}
	}

	// Most recent observation wins; same-day ties go to the lowest price.
	best := rows[0]
	for _, l := range rows[1:] {
		if l.CollectedAt.After(best.CollectedAt) {
			best = l
			continue
		}
		if l.CollectedAt == best.CollectedAt && l.Price.LessThan(best.Price) {
			best = l
		}
	}

	if best.Language == lang && best.Condition == cond {
		// Exact variant: the base price is returned as observed, even if
		// the factor tables would compute a ratio close to but not 1.
		return ResolvedPrice{Price: best.Price, Source: best, Match: match}
	}

	ratio := factors.Ratio(best.Language, best.Condition, lang, cond)
	return ResolvedPrice{Price: best.Price.Mul(ratio), Source: best, Match: match}
}
