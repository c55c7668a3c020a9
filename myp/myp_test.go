package myp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/date"
)

func TestRowListing(t *testing.T) {
	r := row{
		Carta:      "  Charizard VMAX ",
		Idioma:     "ING",
		Estado:     "Quase Nova",
		Valor:      decimal.RequireFromString("50.00"),
		DataColeta: "2025-06-10T03:12:44+00:00",
		Vendedor:   "lojinha",
	}
	l, err := r.listing()
	if err != nil {
		t.Fatal(err)
	}
	if l.CardName != "Charizard VMAX" {
		t.Errorf("CardName = %q, want trimmed %q", l.CardName, "Charizard VMAX")
	}
	if l.Language != cardfolio.LangEN {
		t.Errorf("Language = %q, want EN", l.Language)
	}
	if l.Condition != cardfolio.CondNM {
		t.Errorf("Condition = %q, want NM", l.Condition)
	}
	if !l.Price.Equal(cardfolio.BRL(50)) {
		t.Errorf("Price = %v, want R$50", l.Price)
	}
	if l.CollectedAt != date.New(2025, 6, 10) {
		t.Errorf("CollectedAt = %v, want 2025-06-10", l.CollectedAt)
	}
	if l.Seller != "lojinha" {
		t.Errorf("Seller = %q, want lojinha", l.Seller)
	}
}

func TestRowListing_BadDate(t *testing.T) {
	r := row{Carta: "Pikachu", DataColeta: "not a date"}
	if _, err := r.listing(); err == nil {
		t.Error("listing() accepted an unparseable collection date")
	}
}

func TestListings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("apikey"); got != "sekret" {
			t.Errorf("apikey header = %q, want sekret", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sekret" {
			t.Errorf("Authorization header = %q, want Bearer sekret", got)
		}
		if r.URL.Path != "/rest/v1/precos" {
			t.Errorf("path = %q, want /rest/v1/precos", r.URL.Path)
		}
		if got := r.URL.Query().Get("data_coleta"); got != "gte.2025-06-01" {
			t.Errorf("data_coleta filter = %q, want gte.2025-06-01", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"carta":"Charizard VMAX","idioma":"ING","estado":"Quase Nova","valor":50.0,"data_coleta":"2025-06-10T03:12:44+00:00","vendedor":"lojinha"},
			{"carta":"Pikachu","idioma":"PT","estado":"Pouco Jogada","valor":7.25,"data_coleta":"2025-06-10"},
			{"carta":"Broken","idioma":"ING","estado":"NM","valor":1,"data_coleta":"garbage"}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "sekret")
	catalog, err := c.Listings(context.Background(), date.New(2025, 6, 1))
	if err != nil {
		t.Fatal(err)
	}
	// The garbage row is skipped, not fatal.
	if catalog.Len() != 2 {
		t.Fatalf("catalog has %d listings, want 2", catalog.Len())
	}
	l := catalog.Listings()[1]
	if l.Language != cardfolio.LangPTBR || l.Condition != cardfolio.CondSP {
		t.Errorf("second listing normalized to %s/%s, want PT-BR/SP", l.Language, l.Condition)
	}
}

func TestListings_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, "wrong").Listings(context.Background(), date.Date{}); err == nil {
		t.Error("Listings() succeeded against a 401 backend")
	}
}
