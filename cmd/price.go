package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/renderer"
)

type priceCmd struct {
	language  string
	condition string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "resolve the current price of a card" }
func (*priceCmd) Usage() string {
	return `cfo price [-l <language>] [-c <condition>] <card name>

  Resolves the best current price for a card in the requested language
  and condition, adjusting the observed price across variants when the
  exact one is not listed.

Usage Examples:
$ cfo price "Charizard VMAX"
$ cfo price -l EN -c SP "Charizard VMAX"
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.language, "l", "PT-BR", "language of the requested variant")
	f.StringVar(&c.condition, "c", "NM", "condition of the requested variant")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "a card name is required")
		return subcommands.ExitUsageError
	}
	cardName := strings.Join(f.Args(), " ")

	catalog, err := DecodeLocalCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	lang := cardfolio.NormalizeLanguage(c.language)
	cond := cardfolio.NormalizeCondition(c.condition)
	resolved := catalog.Resolve(cardName, lang, cond, cardfolio.DefaultFactors())

	printMarkdown(renderer.PriceMarkdown(cardName, lang, cond, resolved))
	return subcommands.ExitSuccess
}
