package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tcgdx/cardfolio"
)

func ValuationMarkdown(v *cardfolio.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Valuation on %s", v.Date))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Value"),
			md.Bold(v.Total.String()),
		},
		Rows: [][]string{
			{"Acquisition Cost", v.Cost.String()},
			{"Gain / Loss", v.Gain.String()},
		},
	})

	if len(v.Positions) > 0 {
		doc.H2("Positions")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Card", "Variant", "Qty", "Unit Price", "Value", "Gain"},
			Rows:   [][]string{},
		}
		for _, p := range v.Positions {
			if !p.Current.Resolved() {
				continue
			}
			table.Rows = append(table.Rows, []string{
				p.CardName,
				fmt.Sprintf("%s/%s", p.Language, p.Condition),
				p.Quantity.String(),
				p.Current.Price.String(),
				p.Value.String(),
				p.Gain.String(),
			})
		}
		doc.Table(table)
	}

	if len(v.Unresolved) > 0 {
		doc.H2("Unresolved")
		doc.PlainText("No price could be found for these cards; they are excluded from the totals.")
		doc.BulletList(v.Unresolved...)
	}

	return doc.String()
}
