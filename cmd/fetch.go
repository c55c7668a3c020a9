package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tcgdx/cardfolio/date"
	"github.com/tcgdx/cardfolio/myp"
	"github.com/tcgdx/cardfolio/pricecharting"
)

type fetchCmd struct {
	days  int
	query string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch listings from an external price source" }
func (*fetchCmd) Usage() string {
	return `cfo fetch <source...>

Fetches price listings from an external source and appends them to the
matching catalog file. At least one source must be specified.

Supported sources:
  - myp:           the local marketplace backend. Requires MYP_URL and
                   MYP_API_KEY, from the environment or an .env file.
  - pricecharting: the reference market feed. Requires
                   PRICECHARTING_TOKEN; PRICECHARTING_URL overrides the
                   default endpoint.

Usage Examples:
$ cfo fetch myp
$ cfo fetch -days 7 myp pricecharting
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 1, "fetch listings collected in the last n days")
	f.StringVar(&c.query, "q", "", "restrict the reference snapshot to matching cards")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one source is required: myp, pricecharting")
		return subcommands.ExitUsageError
	}

	for _, source := range f.Args() {
		switch source {
		case "myp":
			if status := c.fetchMyp(ctx); status != subcommands.ExitSuccess {
				return status
			}
		case "pricecharting":
			if status := c.fetchPricecharting(ctx); status != subcommands.ExitSuccess {
				return status
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown source %q\n", source)
			return subcommands.ExitUsageError
		}
	}
	return subcommands.ExitSuccess
}

func (c *fetchCmd) fetchMyp(ctx context.Context) subcommands.ExitStatus {
	baseURL, apiKey := os.Getenv("MYP_URL"), os.Getenv("MYP_API_KEY")
	if baseURL == "" || apiKey == "" {
		fmt.Fprintln(os.Stderr, "MYP_URL and MYP_API_KEY must be set to fetch from myp")
		return subcommands.ExitFailure
	}

	since := date.Today().Add(1 - c.days)
	catalog, err := myp.New(baseURL, apiKey).Listings(ctx, since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching from myp: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := appendListings(*localFile, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Appended %d listings to %s\n", catalog.Len(), *localFile)
	return subcommands.ExitSuccess
}

func (c *fetchCmd) fetchPricecharting(ctx context.Context) subcommands.ExitStatus {
	token := os.Getenv("PRICECHARTING_TOKEN")
	if token == "" {
		fmt.Fprintln(os.Stderr, "PRICECHARTING_TOKEN must be set to fetch from pricecharting")
		return subcommands.ExitFailure
	}
	baseURL := os.Getenv("PRICECHARTING_URL")
	if baseURL == "" {
		baseURL = pricecharting.DefaultBaseURL
	}

	catalog, err := pricecharting.New(baseURL, token).Snapshot(ctx, c.query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching from pricecharting: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := appendListings(*referenceFile, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Appended %d listings to %s\n", catalog.Len(), *referenceFile)
	return subcommands.ExitSuccess
}
