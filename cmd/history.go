package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/date"
	"github.com/tcgdx/cardfolio/renderer"
)

type historyCmd struct {
	days int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the portfolio value over time" }
func (*historyCmd) Usage() string {
	return `cfo history [-days <n>]

  Consolidates the portfolio value per collection day over the last n
  days: each position contributes its quantity times the day's observed
  price, adjusted to the position's variant.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "number of days of history to report")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positions, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog, err := DecodeLocalCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	r := date.LastDays(date.Today(), c.days)
	s := cardfolio.ConsolidatedSeries(positions, catalog, cardfolio.DefaultFactors(), r)
	printMarkdown(renderer.HistoryMarkdown(s, r))
	return subcommands.ExitSuccess
}
