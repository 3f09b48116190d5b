package main

import (
	"math/rand"
	"testing"
	"time"
)

func TestDemoSeries(t *testing.T) {
	end := time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))
	dates, values := demoSeries(end, 365, rng)

	if len(dates) == 0 || len(dates) != len(values) {
		t.Fatalf("got %d dates, %d values", len(dates), len(values))
	}
	// Gaps are dropped, never more than the gap probability suggests.
	if len(dates) > 365 || len(dates) < 300 {
		t.Errorf("got %d dates, want roughly 365 minus gaps", len(dates))
	}
	for i, v := range values {
		if v < 0 {
			t.Errorf("value %d is negative: %v", i, v)
		}
	}
	if dates[0].Before(end.AddDate(0, 0, -365)) || dates[len(dates)-1].After(end) {
		t.Errorf("dates out of range: %v .. %v", dates[0], dates[len(dates)-1])
	}
}

func TestRenderFlagsLoad(t *testing.T) {
	tests := []struct {
		name string
		f    renderFlags
	}{
		{"no source", renderFlags{}},
		{"both sources", renderFlags{input: "a.csv", sqlite: "a.db"}},
		{"sqlite without query", renderFlags{sqlite: "a.db"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.f.load(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
