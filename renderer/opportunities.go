// Package renderer turns computed reports into markdown, ready to be
// printed raw or through a terminal renderer.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tcgdx/cardfolio"
)

func OpportunitiesMarkdown(opportunities []cardfolio.Opportunity, rate cardfolio.Quantity) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Arbitrage Opportunities")
	doc.PlainTextf("USD/BRL rate: %s", rate)

	if len(opportunities) == 0 {
		doc.PlainText("No profitable gap found today.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Card", "Buy", "Top3 Avg", "Liquidity", "Sell", "Profit", "ROI"},
		Rows:   [][]string{},
	}
	for _, o := range opportunities {
		table.Rows = append(table.Rows, []string{
			o.CardName,
			o.BuyPrice.String(),
			o.Top3Average.String(),
			fmt.Sprintf("%d", o.Liquidity),
			o.SellPrice.String(),
			o.Profit.String(),
			o.ROIPercent.String() + "%",
		})
	}
	doc.Table(table)

	return doc.String()
}
