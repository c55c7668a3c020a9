package pricecharting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/date"
)

func TestSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("t"); got != "sekret" {
			t.Errorf("token = %q, want sekret", got)
		}
		if got := r.URL.Query().Get("q"); got != "charizard" {
			t.Errorf("query = %q, want charizard", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"card_name":"Charizard VMAX","ungraded_price":12.00,"psa10_price":310.00,"data_coleta":"2025-06-09"},
			{"card_name":"Broken","ungraded_price":1,"data_coleta":"garbage"}
		]`))
	}))
	defer srv.Close()

	catalog, err := New(srv.URL, "sekret").Snapshot(context.Background(), "charizard")
	if err != nil {
		t.Fatal(err)
	}
	// The garbage row is skipped, not fatal.
	if catalog.Len() != 1 {
		t.Fatalf("catalog has %d listings, want 1", catalog.Len())
	}
	l := catalog.Listings()[0]
	if l.CardName != "Charizard VMAX" {
		t.Errorf("CardName = %q", l.CardName)
	}
	if l.Language != cardfolio.LangEN || l.Condition != cardfolio.CondNM {
		t.Errorf("variant = %s/%s, want EN/NM", l.Language, l.Condition)
	}
	if !l.Price.Equal(cardfolio.USD(12)) {
		t.Errorf("Price = %v, want $12", l.Price)
	}
	if l.CollectedAt != date.New(2025, 6, 9) {
		t.Errorf("CollectedAt = %v, want 2025-06-09", l.CollectedAt)
	}
}

func TestSnapshot_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, "wrong").Snapshot(context.Background(), ""); err == nil {
		t.Error("Snapshot() succeeded against a 403 backend")
	}
}
