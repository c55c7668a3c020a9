package cardfolio

import (
	"strings"

	"github.com/tcgdx/cardfolio/date"
)

// Catalog holds an in-memory collection of price listings from a single
// source (one marketplace, one reference market). It is read-only to the
// resolver and scanner; the caller materializes it from fetched rows.
type Catalog struct {
	listings []Listing
}

// NewCatalog returns a catalog over the given listings.
func NewCatalog(listings ...Listing) *Catalog {
	return &Catalog{listings: listings}
}

// Add appends listings to the catalog.
func (c *Catalog) Add(listings ...Listing) { c.listings = append(c.listings, listings...) }

// Len returns the number of listings.
func (c *Catalog) Len() int { return len(c.listings) }

// Listings returns the underlying listings. The slice must not be mutated.
func (c *Catalog) Listings() []Listing { return c.listings }

// Latest returns the most recent collection date present in the catalog,
// or false if the catalog is empty.
func (c *Catalog) Latest() (date.Date, bool) {
	if len(c.listings) == 0 {
		return date.Date{}, false
	}
	latest := c.listings[0].CollectedAt
	for _, l := range c.listings[1:] {
		if l.CollectedAt.After(latest) {
			latest = l.CollectedAt
		}
	}
	return latest, true
}

// prefixLen is the number of leading characters used by the partial-prefix
// match strategy. Source catalogs truncate long titles, so a prefix is the
// last resort to still find a price.
const prefixLen = 15

// match finds the listings for a card name using the cascading strategy:
// exact match first, then case-insensitive, then a case-insensitive prefix
// on the first 15 characters of the trimmed name. Exact matches are
// preferred for correctness; the later strategies degrade availability
// gracefully instead of failing a whole valuation.
func (c *Catalog) match(name string) ([]Listing, MatchQuality) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return nil, MatchNone
	}

	var rows []Listing
	for _, l := range c.listings {
		if l.CardName == clean {
			rows = append(rows, l)
		}
	}
	if len(rows) > 0 {
		return rows, MatchExact
	}

	for _, l := range c.listings {
		if strings.EqualFold(l.CardName, clean) {
			rows = append(rows, l)
		}
	}
	if len(rows) > 0 {
		return rows, MatchFold
	}

	// Character count, not bytes: accented titles are the norm here and a
	// byte slice could cut a rune in half.
	r := []rune(clean)
	if len(r) > prefixLen {
		r = r[:prefixLen]
	}
	prefix := strings.ToLower(string(r))
	for _, l := range c.listings {
		if strings.HasPrefix(strings.ToLower(l.CardName), prefix) {
			rows = append(rows, l)
		}
	}
	if len(rows) > 0 {
		return rows, MatchPrefix
	}
	return nil, MatchNone
}
