package cardfolio

import (
	"sort"
)

// Opportunity is a card whose converted reference-market price exceeds the
// local-market buy price. Computed fresh on each scan, never persisted.
type Opportunity struct {
	CardName       string
	BuyPrice       Money    // lowest local offer of the day
	Top3Average    Money    // mean of up to 3 lowest offers, auxiliary metric
	Liquidity      int      // count of offers for the card that day
	ReferencePrice Money    // reference market price, in its own currency
	SellPrice      Money    // reference price converted to the local currency
	Profit         Money    // SellPrice - BuyPrice
	ROIPercent     Quantity // (SellPrice/BuyPrice - 1) * 100, rounded to 2 decimals
}

// Scan joins the latest local-market snapshot against the latest
// reference-market snapshot and returns the profitable gaps, ranked by ROI
// descending.
//
// Only the canonical EN/NM variant of the local catalog's most recent day
// is scanned, and only reference rows with a positive price from its most
// recent day are joined, by normalized card name, with no fuzzy fallback.
// Cards missing on either side are skipped; matches with non-positive
// profit are discarded, not ranked low. ROI is computed against the lowest
// offer, never against a zero price. Empty catalogs yield an empty result:
// that is a normal "no data yet" state, not an error.
func Scan(local, reference *Catalog, rate Quantity) []Opportunity {
	localDay, ok := local.Latest()
	if !ok {
		return nil
	}
	refDay, ok := reference.Latest()
	if !ok {
		return nil
	}

	// Group the day's EN/NM offers by normalized name, prices ascending.
	groups := make(map[string][]Listing)
	for _, l := range local.Listings() {
		if l.CollectedAt != localDay || l.Language != LangEN || l.Condition != CondNM {
			continue
		}
		groups[l.Key()] = append(groups[l.Key()], l)
	}
	for _, rows := range groups {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Price.LessThan(rows[j].Price) })
	}

	// Reference lookup by normalized name, positive prices only.
	refByKey := make(map[string]Listing)
	for _, l := range reference.Listings() {
		if l.CollectedAt != refDay || !l.Price.IsPositive() {
			continue
		}
		refByKey[l.Key()] = l
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var opportunities []Opportunity
	for _, k := range keys {
		ref, ok := refByKey[k]
		if !ok {
			continue
		}
		rows := groups[k]
		buy := rows[0].Price
		if buy.IsZero() {
			// ROI is undefined against a zero offer.
			continue
		}

		sell := ref.Price.Convert(buy.Currency(), rate)
		profit := sell.Sub(buy)
		if !profit.IsPositive() {
			continue
		}

		top := rows
		if len(top) > 3 {
			top = top[:3]
		}
		sum := M(0, buy.Currency())
		for _, l := range top {
			sum = sum.Add(l.Price)
		}

		opportunities = append(opportunities, Opportunity{
			CardName:       rows[0].CardName,
			BuyPrice:       buy,
			Top3Average:    sum.Div(Q(len(top))),
			Liquidity:      len(rows),
			ReferencePrice: ref.Price,
			SellPrice:      sell,
			Profit:         profit,
			ROIPercent:     sell.DivPrice(buy).Sub(Q(1)).Mul(Q(100)).Round(2),
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].ROIPercent.GreaterThan(opportunities[j].ROIPercent)
	})
	return opportunities
}

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (o Opportunity) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("card", o.CardName)
	w.Append("buy", o.BuyPrice.Amount())
	w.Append("top3Average", o.Top3Average.Amount())
	w.Append("liquidity", o.Liquidity)
	w.Append("reference", o.ReferencePrice.Amount())
	w.Append("sell", o.SellPrice.Amount())
	w.Append("profit", o.Profit.Amount())
	w.Append("roiPercent", o.ROIPercent)
	return w.MarshalJSON()
}
