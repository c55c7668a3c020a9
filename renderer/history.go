package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/date"
)

func HistoryMarkdown(s cardfolio.Series, r date.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio History from %s to %s", r.From, r.To))

	if st, ok := s.Stats(); ok {
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				md.Bold("Current"),
				md.Bold(fmt.Sprintf("%.2f", st.Current)),
			},
			Rows: [][]string{
				{"Change", fmt.Sprintf("%+.2f%%", st.PercentChange)},
				{"Max", fmt.Sprintf("%.2f", st.Max)},
				{"Min", fmt.Sprintf("%.2f", st.Min)},
			},
		})
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Value"},
		Rows:   [][]string{},
	}
	for day, value := range s.History.Values() {
		table.Rows = append(table.Rows, []string{
			day.String(),
			fmt.Sprintf("%.2f", value),
		})
	}
	doc.Table(table)

	return doc.String()
}
