// Package cmd implements the CLI application to track card prices and
// hunt arbitrage opportunities.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/tcgdx/cardfolio"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&priceCmd{}, "pricing")
	c.Register(&opportunitiesCmd{}, "pricing")

	c.Register(&valueCmd{}, "portfolio")
	c.Register(&historyCmd{}, "portfolio")

	c.Register(&fetchCmd{}, "sources")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var localFile = flag.String("local-file", "local.jsonl", "Path to the local-market catalog file (JSONL format)")
var referenceFile = flag.String("reference-file", "reference.jsonl", "Path to the reference-market catalog file (JSONL format)")
var portfolioFile = flag.String("portfolio-file", "portfolio.jsonl", "Path to the portfolio positions file (JSONL format)")

// decodeCatalog reads a catalog file. A missing file is an empty catalog,
// not an error: "no data yet" is a normal state for every command.
func decodeCatalog(filename string) (*cardfolio.Catalog, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, catalog %q does not exist, using an empty one instead", filename)
		return cardfolio.NewCatalog(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cardfolio.DecodeListings(f)
}

// DecodeLocalCatalog reads the local-market catalog from the app file.
func DecodeLocalCatalog() (*cardfolio.Catalog, error) { return decodeCatalog(*localFile) }

// DecodeReferenceCatalog reads the reference-market catalog from the app file.
func DecodeReferenceCatalog() (*cardfolio.Catalog, error) { return decodeCatalog(*referenceFile) }

// DecodePortfolio reads the positions from the app portfolio file.
func DecodePortfolio() ([]cardfolio.Position, error) {
	f, err := os.Open(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, portfolio %q does not exist, using an empty one instead", *portfolioFile)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cardfolio.DecodePositions(f)
}

// appendListings appends a catalog's listings to the given file.
func appendListings(filename string, c *cardfolio.Catalog) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening catalog file %q: %w", filename, err)
	}
	defer f.Close()
	return cardfolio.EncodeListings(f, c)
}
