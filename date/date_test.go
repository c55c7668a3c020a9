package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		want      Date
		expectErr bool
	}{
		{"ISO date", "2024-01-02", New(2024, time.January, 2), false},
		{"Permissive date", "2024-1-2", New(2024, time.January, 2), false},
		{"Timestamp, day part kept", "2024-01-02T15:04:05", New(2024, time.January, 2), false},
		{"Garbage", "not-a-date", Date{}, true},
		{"Empty", "", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("Parse(%q) returned error: %v, want error: %v", tc.in, err, tc.expectErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := New(2024, time.March, 15)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2024-03-15"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, `"2024-03-15"`)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{From: New(2024, time.January, 10), To: New(2024, time.January, 20)}

	if !r.Contains(r.From) || !r.Contains(r.To) {
		t.Error("boundaries must be included")
	}
	if r.Contains(New(2024, time.January, 9)) {
		t.Error("day before From must be excluded")
	}
	if r.Contains(New(2024, time.January, 21)) {
		t.Error("day after To must be excluded")
	}
}

func TestLastDays(t *testing.T) {
	r := LastDays(New(2024, time.March, 10), 7)
	if r.From != New(2024, time.March, 4) {
		t.Errorf("From = %v, want 2024-03-04", r.From)
	}
	if r.To != New(2024, time.March, 10) {
		t.Errorf("To = %v, want 2024-03-10", r.To)
	}
}
