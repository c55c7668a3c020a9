package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/renderer"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "compute the current value of the portfolio" }
func (*valueCmd) Usage() string {
	return `cfo value

  Resolves the current price of every position and reports the total
  value, acquisition cost and gain. Positions whose price cannot be
  resolved are listed separately and excluded from the totals.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	v := cardfolio.Value(positions, catalog, cardfolio.DefaultFactors())
	printMarkdown(renderer.ValuationMarkdown(&v))
	return subcommands.ExitSuccess
}
