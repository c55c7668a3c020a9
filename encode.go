package cardfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file handles the persistence of catalogs and positions as JSONL:
// one object per line, stable field order, human-readable and
// version-controllable.

// EncodeListings writes the catalog's listings to w, one JSON object per line.
func EncodeListings(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	for _, l := range c.Listings() {
		if err := enc.Encode(l); err != nil {
			return fmt.Errorf("could not encode listing %q: %w", l.CardName, err)
		}
	}
	return nil
}

// DecodeListings reads a JSONL stream of listings into a catalog.
func DecodeListings(r io.Reader) (*Catalog, error) {
	c := NewCatalog()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var j listingJSON
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("could not decode listing line %q: %w", string(line), err)
		}
		c.Add(j.Listing())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading listings: %w", err)
	}
	return c, nil
}

// EncodePositions writes positions to w, one JSON object per line.
func EncodePositions(w io.Writer, positions []Position) error {
	enc := json.NewEncoder(w)
	for _, p := range positions {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("could not encode position %q: %w", p.CardName, err)
		}
	}
	return nil
}

// DecodePositions reads a JSONL stream of positions.
func DecodePositions(r io.Reader) ([]Position, error) {
	var positions []Position
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var j positionJSON
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("could not decode position line %q: %w", string(line), err)
		}
		positions = append(positions, j.Position())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading positions: %w", err)
	}
	return positions, nil
}
