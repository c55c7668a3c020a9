package cardfolio

import (
	"testing"

	"github.com/tcgdx/cardfolio/date"
)

func position(name string, qty float64, lang Language, cond Condition, paid float64) Position {
	return Position{
		CardName:      name,
		Quantity:      Q(qty),
		Language:      lang,
		Condition:     cond,
		PurchasePrice: BRL(paid),
		PurchaseDate:  date.MustParse("2025-01-15"),
	}
}

func TestValue(t *testing.T) {
	catalog := NewCatalog(
		listing("Pikachu", LangEN, CondNM, 10, "2025-06-10"),
		listing("Mewtwo", LangEN, CondNM, 100, "2025-06-10"),
	)
	positions := []Position{
		position("Pikachu", 3, LangEN, CondNM, 8),  // worth 30, cost 24
		position("Mewtwo", 1, LangEN, CondNM, 120), // worth 100, cost 120
	}

	v := Value(positions, catalog, DefaultFactors())
	if !v.Total.Equal(BRL(130)) {
		t.Errorf("Total = %v, want R$130", v.Total)
	}
	if !v.Cost.Equal(BRL(144)) {
		t.Errorf("Cost = %v, want R$144", v.Cost)
	}
	if !v.Gain.Equal(BRL(-14)) {
		t.Errorf("Gain = %v, want R$-14", v.Gain)
	}
	if len(v.Unresolved) != 0 {
		t.Errorf("Unresolved = %v, want none", v.Unresolved)
	}
	if len(v.Positions) != 2 {
		t.Fatalf("got %d position values, want 2", len(v.Positions))
	}
	if !v.Positions[0].Gain.Equal(BRL(6)) {
		t.Errorf("Pikachu gain = %v, want R$6", v.Positions[0].Gain)
	}
}

func TestValue_AdjustsToPositionVariant(t *testing.T) {
	catalog := NewCatalog(
		listing("Pikachu", LangPTBR, CondNM, 100, "2025-06-10"),
	)
	positions := []Position{position("Pikachu", 1, LangEN, CondNM, 50)}

	v := Value(positions, catalog, DefaultFactors())
	if !v.Total.Equal(BRL(85)) {
		t.Errorf("Total = %v, want the factor-adjusted R$85", v.Total)
	}
}

func TestValue_UnresolvedExcludedFromTotals(t *testing.T) {
	catalog := NewCatalog(
		listing("Pikachu", LangEN, CondNM, 10, "2025-06-10"),
	)
	positions := []Position{
		position("Pikachu", 2, LangEN, CondNM, 8),
		position("Missingno", 5, LangEN, CondNM, 99),
	}

	v := Value(positions, catalog, DefaultFactors())
	if !v.Total.Equal(BRL(20)) {
		t.Errorf("Total = %v, want R$20 with the unresolved line excluded", v.Total)
	}
	if !v.Cost.Equal(BRL(16)) {
		t.Errorf("Cost = %v, want R$16", v.Cost)
	}
	if len(v.Unresolved) != 1 || v.Unresolved[0] != "Missingno" {
		t.Errorf("Unresolved = %v, want [Missingno]", v.Unresolved)
	}
	// The unresolved line is still reported, just without a value.
	if len(v.Positions) != 2 {
		t.Fatalf("got %d position values, want 2", len(v.Positions))
	}
	if v.Positions[1].Current.Resolved() {
		t.Error("unresolved line reported as resolved")
	}
}

func TestConsolidatedSeries(t *testing.T) {
	catalog := NewCatalog(
		listing("Pikachu", LangEN, CondNM, 10, "2025-06-01"),
		listing("Pikachu", LangEN, CondNM, 12, "2025-06-02"),
		listing("Mewtwo", LangEN, CondNM, 100, "2025-06-02"),
		listing("Pikachu", LangEN, CondNM, 99, "2025-07-01"), // outside the range
	)
	positions := []Position{
		position("Pikachu", 2, LangEN, CondNM, 8),
		position("Mewtwo", 1, LangEN, CondNM, 90),
	}
	r := date.Range{From: date.MustParse("2025-06-01"), To: date.MustParse("2025-06-30")}

	s := ConsolidatedSeries(positions, catalog, DefaultFactors(), r)
	if s.History.Len() != 2 {
		t.Fatalf("series has %d days, want 2", s.History.Len())
	}
	if v, ok := s.History.Get(date.MustParse("2025-06-01")); !ok || v != 20 {
		t.Errorf("2025-06-01 = %v, want 20", v)
	}
	if v, ok := s.History.Get(date.MustParse("2025-06-02")); !ok || v != 124 {
		t.Errorf("2025-06-02 = %v, want 124", v)
	}

	st, ok := s.Stats()
	if !ok {
		t.Fatal("Stats() reported an empty series")
	}
	if st.Current != 124 || st.Max != 124 || st.Min != 20 {
		t.Errorf("Stats = %+v, want current/max 124 and min 20", st)
	}
	if st.PercentChange != 520 {
		t.Errorf("PercentChange = %v, want 520", st.PercentChange)
	}
}

func TestConsolidatedSeries_Empty(t *testing.T) {
	s := ConsolidatedSeries(nil, NewCatalog(), DefaultFactors(), date.Range{})
	if s.History.Len() != 0 {
		t.Errorf("series has %d days, want 0", s.History.Len())
	}
	if _, ok := s.Stats(); ok {
		t.Error("Stats() on an empty series reported data")
	}
}

func TestPosition_JSONRoundTrip(t *testing.T) {
	p := position("Pikachu", 3, LangEN, CondNM, 8.5)
	data, err := p.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"card":"Pikachu","quantity":3,"language":"EN","condition":"NM","purchasePrice":8.5,"currency":"BRL","purchaseDate":"2025-01-15"}`
	if string(data) != want {
		t.Errorf("MarshalJSON = %s, want %s", data, want)
	}
}
