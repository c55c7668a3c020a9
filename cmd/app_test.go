package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/date"
)

func TestDecodeLocalCatalog_MissingFileIsEmpty(t *testing.T) {
	*localFile = filepath.Join(t.TempDir(), "local.jsonl")

	catalog, err := DecodeLocalCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 0 {
		t.Errorf("missing file decoded to %d listings, want 0", catalog.Len())
	}
}

func TestAppendListingsRoundTrip(t *testing.T) {
	*localFile = filepath.Join(t.TempDir(), "local.jsonl")

	day := cardfolio.NewCatalog(cardfolio.Listing{
		CardName:    "Pikachu",
		Language:    cardfolio.LangEN,
		Condition:   cardfolio.CondNM,
		Price:       cardfolio.BRL(10),
		CollectedAt: date.New(2025, 6, 10),
	})
	if err := appendListings(*localFile, day); err != nil {
		t.Fatal(err)
	}
	// A second append accumulates, it does not truncate.
	if err := appendListings(*localFile, day); err != nil {
		t.Fatal(err)
	}

	catalog, err := DecodeLocalCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 2 {
		t.Errorf("decoded %d listings, want 2", catalog.Len())
	}
}

func TestDecodePortfolio_MissingFileIsEmpty(t *testing.T) {
	*portfolioFile = filepath.Join(t.TempDir(), "portfolio.jsonl")

	positions, err := DecodePortfolio()
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) != 0 {
		t.Errorf("missing file decoded to %d positions, want 0", len(positions))
	}
}

func TestDecodePortfolio(t *testing.T) {
	*portfolioFile = filepath.Join(t.TempDir(), "portfolio.jsonl")
	line := `{"card":"Pikachu","quantity":3,"language":"EN","condition":"NM","purchasePrice":8.5,"currency":"BRL","purchaseDate":"2025-01-15"}` + "\n"
	if err := os.WriteFile(*portfolioFile, []byte(line), 0644); err != nil {
		t.Fatal(err)
	}

	positions, err := DecodePortfolio()
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) != 1 {
		t.Fatalf("decoded %d positions, want 1", len(positions))
	}
	if positions[0].CardName != "Pikachu" || !positions[0].Quantity.Equal(cardfolio.Q(3)) {
		t.Errorf("decoded position %+v", positions[0])
	}
}
