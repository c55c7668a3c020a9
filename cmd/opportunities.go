package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/renderer"
)

type opportunitiesCmd struct {
	rate    float64
	jsonOut bool
}

func (*opportunitiesCmd) Name() string     { return "opportunities" }
func (*opportunitiesCmd) Synopsis() string { return "scan for arbitrage opportunities" }
func (*opportunitiesCmd) Usage() string {
	return `cfo opportunities [-rate <usd-brl>] [-json]

  Joins the latest local-market snapshot against the latest reference
  snapshot and lists the cards that can be bought locally and sold on
  the reference market at a profit, ranked by ROI.

  Without -rate, the day's USD/BRL quote is fetched from AwesomeAPI.

Usage Examples:
$ cfo opportunities
$ cfo opportunities -rate 5.3 -json > today.json
`
}

func (c *opportunitiesCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "rate", 0, "USD/BRL conversion rate, fetched when omitted")
	f.BoolVar(&c.jsonOut, "json", false, "print opportunities as JSON lines instead of a report")
}

func (c *opportunitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	local, err := DecodeLocalCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load local catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	reference, err := DecodeReferenceCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load reference catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	rate := cardfolio.Q(c.rate)
	if !rate.IsPositive() {
		rate, err = cardfolio.LatestBRLPerUSD()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not fetch USD/BRL rate, pass -rate explicitly: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	opportunities := cardfolio.Scan(local, reference, rate)

	if c.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		for _, o := range opportunities {
			if err := enc.Encode(o); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding opportunity: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.OpportunitiesMarkdown(opportunities, rate))
	return subcommands.ExitSuccess
}
