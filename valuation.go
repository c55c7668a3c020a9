package cardfolio

import (
	"github.com/tcgdx/cardfolio/date"
)

// Position is one portfolio line: a card held in a given variant, with its
// purchase terms. Positions are owned and persisted by the caller; this
// package only consumes them to compute current value.
type Position struct {
	CardName      string
	Quantity      Quantity
	Language      Language
	Condition     Condition
	PurchasePrice Money // unit price paid
	PurchaseDate  date.Date
}

// Cost returns the total acquisition cost of the position.
func (p Position) Cost() Money { return p.PurchasePrice.Mul(p.Quantity) }

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("card", p.CardName)
	w.Append("quantity", p.Quantity)
	w.Append("language", string(p.Language))
	w.Append("condition", string(p.Condition))
	w.Append("purchasePrice", p.PurchasePrice.Amount())
	w.Optional("currency", p.PurchasePrice.Currency())
	w.Append("purchaseDate", p.PurchaseDate)
	return w.MarshalJSON()
}

// positionJSON is the decoding counterpart of Position.MarshalJSON.
type positionJSON struct {
	Card          string    `json:"card"`
	Quantity      Quantity  `json:"quantity"`
	Language      string    `json:"language"`
	Condition     string    `json:"condition"`
	PurchasePrice Quantity  `json:"purchasePrice"`
	Currency      string    `json:"currency"`
	PurchaseDate  date.Date `json:"purchaseDate"`
}

func (j positionJSON) Position() Position {
	return Position{
		CardName:      j.Card,
		Quantity:      j.Quantity,
		Language:      Language(j.Language),
		Condition:     Condition(j.Condition),
		PurchasePrice: M(j.PurchasePrice.value, j.Currency),
		PurchaseDate:  j.PurchaseDate,
	}
}

// PositionValue is a position together with its resolved current price.
type PositionValue struct {
	Position
	Current ResolvedPrice
	Value   Money // Quantity x adjusted unit price
	Gain    Money // Value - Cost
}

// Valuation is the current worth of a whole portfolio. Positions whose
// price could not be resolved are listed in Unresolved and excluded from
// the totals, so a missing catalog row never shows up as a real loss.
type Valuation struct {
	Date       date.Date
	Positions  []PositionValue
	Total      Money
	Cost       Money
	Gain       Money
	Unresolved []string
}

// Value computes the current value of each position against the catalog,
// using the one shared resolver for every line.
func Value(positions []Position, catalog *Catalog, factors Factors) Valuation {
	v := Valuation{Date: date.Today()}
	for _, p := range positions {
		current := catalog.Resolve(p.CardName, p.Language, p.Condition, factors)
		if !current.Resolved() {
			v.Unresolved = append(v.Unresolved, p.CardName)
			v.Positions = append(v.Positions, PositionValue{Position: p, Current: current})
			continue
		}
		value := current.Price.Mul(p.Quantity)
		pv := PositionValue{
			Position: p,
			Current:  current,
			Value:    value,
			Gain:     value.Sub(p.Cost()),
		}
		v.Positions = append(v.Positions, pv)
		v.Total = v.Total.Add(value)
		v.Cost = v.Cost.Add(p.Cost())
		v.Gain = v.Gain.Add(pv.Gain)
	}
	return v
}

// Series is a consolidated per-day portfolio value over a date range.
type Series struct {
	History date.History[float64]
}

// ConsolidatedSeries sums, for each collection day in the range, the value
// of every position priced from that day's observations. Each position's
// rows are found with the same cascade as single-price resolution, and
// each observed price is adjusted to the position's variant before being
// multiplied by the quantity. Positions with no matching rows contribute
// nothing.
func ConsolidatedSeries(positions []Position, catalog *Catalog, factors Factors, r date.Range) Series {
	var s Series
	for _, p := range positions {
		rows, match := catalog.match(p.CardName)
		if match == MatchNone {
			continue
		}
		for _, l := range rows {
			if !r.Contains(l.CollectedAt) {
				continue
			}
			price := l.Price
			if l.Language != p.Language || l.Condition != p.Condition {
				price = price.Mul(factors.Ratio(l.Language, l.Condition, p.Language, p.Condition))
			}
			s.History.AppendAdd(l.CollectedAt, price.Mul(p.Quantity).Amount().InexactFloat64())
		}
	}
	return s
}

// SeriesStats summarizes a consolidated series for display.
type SeriesStats struct {
	Current       float64
	PercentChange float64
	Max           float64
	Min           float64
}

// Stats returns summary statistics of the series, or false when empty.
func (s Series) Stats() (SeriesStats, bool) {
	if s.History.Len() == 0 {
		return SeriesStats{}, false
	}
	var st SeriesStats
	first := true
	var start float64
	for _, v := range s.History.Values() {
		if first {
			start, st.Max, st.Min = v, v, v
			first = false
		}
		if v > st.Max {
			st.Max = v
		}
		if v < st.Min {
			st.Min = v
		}
		st.Current = v
	}
	if start != 0 {
		st.PercentChange = (st.Current - start) / start * 100
	}
	return st, true
}
