package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tcgdx/cardfolio"
)

func PriceMarkdown(cardName string, lang cardfolio.Language, cond cardfolio.Condition, r cardfolio.ResolvedPrice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Price for %s (%s/%s)", cardName, lang, cond))

	if !r.Resolved() {
		doc.PlainText("No price found: the card has no listing under any match strategy.")
		return doc.String()
	}

	rows := [][]string{
		{"Match", r.Match.String()},
		{"Source", r.Source.CardName},
		{"Source Variant", fmt.Sprintf("%s/%s", r.Source.Language, r.Source.Condition)},
		{"Source Price", r.Source.Price.String()},
		{"Collected", r.Source.CollectedAt.String()},
	}
	if r.Source.Seller != "" {
		rows = append(rows, []string{"Seller", r.Source.Seller})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Price"),
			md.Bold(r.Price.String()),
		},
		Rows: rows,
	})

	return doc.String()
}
