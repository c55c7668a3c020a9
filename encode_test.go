package cardfolio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tcgdx/cardfolio/date"
)

func TestEncodeDecodeListings(t *testing.T) {
	c := NewCatalog(
		listing("Charizard VMAX", LangEN, CondNM, 50, "2025-06-10"),
		Listing{
			CardName:    "Pikachu",
			Language:    LangPTBR,
			Condition:   CondSP,
			Price:       BRL(7.25),
			CollectedAt: date.MustParse("2025-06-10"),
			Seller:      "lojinha",
		},
	)

	var buf bytes.Buffer
	if err := EncodeListings(&buf, c); err != nil {
		t.Fatal(err)
	}
	want := `{"card":"Charizard VMAX","language":"EN","condition":"NM","price":50,"currency":"BRL","collectedAt":"2025-06-10"}
{"card":"Pikachu","language":"PT-BR","condition":"SP","price":7.25,"currency":"BRL","collectedAt":"2025-06-10","seller":"lojinha"}
`
	if buf.String() != want {
		t.Errorf("EncodeListings:\n%s\nwant:\n%s", buf.String(), want)
	}

	got, err := DecodeListings(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("decoded %d listings, want 2", got.Len())
	}
	for i, l := range got.Listings() {
		orig := c.Listings()[i]
		if l.CardName != orig.CardName || l.Language != orig.Language ||
			l.Condition != orig.Condition || !l.Price.Equal(orig.Price) ||
			l.CollectedAt != orig.CollectedAt || l.Seller != orig.Seller {
			t.Errorf("listing %d round-tripped to %+v, want %+v", i, l, orig)
		}
	}
}

func TestDecodeListings_SkipsBlankLines(t *testing.T) {
	in := `{"card":"Pikachu","language":"EN","condition":"NM","price":10,"currency":"BRL","collectedAt":"2025-06-10"}

{"card":"Mewtwo","language":"EN","condition":"NM","price":20,"currency":"BRL","collectedAt":"2025-06-10"}
`
	c, err := DecodeListings(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Errorf("decoded %d listings, want 2", c.Len())
	}
}

func TestDecodeListings_BadLine(t *testing.T) {
	if _, err := DecodeListings(strings.NewReader("{not json}\n")); err == nil {
		t.Error("DecodeListings accepted a malformed line")
	}
}

func TestEncodeDecodePositions(t *testing.T) {
	positions := []Position{
		position("Pikachu", 3, LangEN, CondNM, 8.5),
		position("Mewtwo", 1, LangPTBR, CondSP, 120),
	}

	var buf bytes.Buffer
	if err := EncodePositions(&buf, positions); err != nil {
		t.Fatal(err)
	}
	got, err := DecodePositions(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d positions, want 2", len(got))
	}
	for i, p := range got {
		orig := positions[i]
		if p.CardName != orig.CardName || !p.Quantity.Equal(orig.Quantity) ||
			p.Language != orig.Language || p.Condition != orig.Condition ||
			!p.PurchasePrice.Equal(orig.PurchasePrice) || p.PurchaseDate != orig.PurchaseDate {
			t.Errorf("position %d round-tripped to %+v, want %+v", i, p, orig)
		}
	}
}
