package calheat

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildGridShape(t *testing.T) {
	tests := []struct {
		name     string
		dates    []time.Time
		wantRows int
	}{
		{"single day", []time.Time{day(2021, time.March, 3)}, 1},
		{"one week", []time.Time{day(2021, time.March, 1), day(2021, time.March, 7)}, 1},
		{"two weeks", []time.Time{day(2021, time.January, 1), day(2021, time.January, 8)}, 2},
		{"sparse months", []time.Time{day(2021, time.January, 4), day(2021, time.March, 1)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]float64, len(tt.dates))
			g, err := BuildNumericGrid(tt.dates, values, false)
			if err != nil {
				t.Fatalf("BuildNumericGrid: %v", err)
			}
			if g.Rows() != tt.wantRows {
				t.Errorf("Rows() = %d, want %d", g.Rows(), tt.wantRows)
			}
			if g.Cols() != 7 {
				t.Errorf("Cols() = %d, want 7", g.Cols())
			}
		})
	}
}

func TestBuildGridScatter(t *testing.T) {
	// 2021-01-01 and 2021-01-08 are both Fridays (ISO weekday 5) in
	// consecutive ISO weeks.
	dates := []time.Time{day(2021, time.January, 1), day(2021, time.January, 8)}
	g, err := BuildNumericGrid(dates, []float64{5, 10}, false)
	if err != nil {
		t.Fatalf("BuildNumericGrid: %v", err)
	}

	if g.Rows() != 2 {
		t.Fatalf("Rows() = %d, want 2", g.Rows())
	}
	if v, ok := g.At(0, 4).Number(); !ok || v != 5 {
		t.Errorf("At(0, 4) = %v, %v; want 5, true", v, ok)
	}
	if v, ok := g.At(1, 4).Number(); !ok || v != 10 {
		t.Errorf("At(1, 4) = %v, %v; want 10, true", v, ok)
	}

	filled := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.At(r, c).IsMissing() {
				filled++
			}
		}
	}
	if filled != 2 {
		t.Errorf("filled cells = %d, want 2", filled)
	}
}

func TestBuildGridYearBoundary(t *testing.T) {
	// Dec 31 2018 and Jan 1 2019 share ISO week 2019-W01. Jan 1 2020 is a
	// different ISO week and must not collide with either.
	dates := []time.Time{
		day(2018, time.December, 31),
		day(2019, time.January, 1),
		day(2020, time.January, 1),
	}
	g, err := BuildNumericGrid(dates, []float64{1, 2, 3}, false)
	if err != nil {
		t.Fatalf("BuildNumericGrid: %v", err)
	}

	if g.Rows() != 2 {
		t.Fatalf("Rows() = %d, want 2", g.Rows())
	}
	// Monday and Tuesday of the first row.
	if v, ok := g.At(0, 0).Number(); !ok || v != 1 {
		t.Errorf("At(0, 0) = %v, %v; want 1, true", v, ok)
	}
	if v, ok := g.At(0, 1).Number(); !ok || v != 2 {
		t.Errorf("At(0, 1) = %v, %v; want 2, true", v, ok)
	}
	// Jan 1 2020 is a Wednesday in its own week.
	if v, ok := g.At(1, 2).Number(); !ok || v != 3 {
		t.Errorf("At(1, 2) = %v, %v; want 3, true", v, ok)
	}

	wantWeeks := []WeekKey{{Year: 2019, Week: 1}, {Year: 2020, Week: 1}}
	got := g.Weeks()
	if len(got) != len(wantWeeks) {
		t.Fatalf("Weeks() = %v, want %v", got, wantWeeks)
	}
	for i := range wantWeeks {
		if got[i] != wantWeeks[i] {
			t.Errorf("Weeks()[%d] = %v, want %v", i, got[i], wantWeeks[i])
		}
	}
}

func TestBuildGridFlipMatchesTranspose(t *testing.T) {
	dates := []time.Time{
		day(2021, time.January, 1),
		day(2021, time.January, 8),
		day(2021, time.February, 14),
	}
	values := []float64{1, 2, 3}

	plain, err := BuildNumericGrid(dates, values, false)
	if err != nil {
		t.Fatalf("BuildNumericGrid(flip=false): %v", err)
	}
	flipped, err := BuildNumericGrid(dates, values, true)
	if err != nil {
		t.Fatalf("BuildNumericGrid(flip=true): %v", err)
	}

	if flipped.Rows() != 7 {
		t.Errorf("flipped Rows() = %d, want 7", flipped.Rows())
	}
	if !flipped.Flipped() {
		t.Error("flipped grid reports Flipped() = false")
	}

	want := plain.Transpose()
	if flipped.Rows() != want.Rows() || flipped.Cols() != want.Cols() {
		t.Fatalf("flipped shape %dx%d, transpose shape %dx%d",
			flipped.Rows(), flipped.Cols(), want.Rows(), want.Cols())
	}
	for r := 0; r < want.Rows(); r++ {
		for c := 0; c < want.Cols(); c++ {
			if flipped.At(r, c) != want.At(r, c) {
				t.Errorf("cell (%d, %d): flip build = %v, transpose = %v",
					r, c, flipped.At(r, c), want.At(r, c))
			}
		}
	}
}

func TestBuildGridDuplicateDatesLastWins(t *testing.T) {
	d := day(2021, time.June, 15)
	g, err := BuildNumericGrid([]time.Time{d, d}, []float64{1, 9}, false)
	if err != nil {
		t.Fatalf("BuildNumericGrid: %v", err)
	}
	if v, ok := g.At(0, isoWeekday(d)-1).Number(); !ok || v != 9 {
		t.Errorf("duplicate date cell = %v, %v; want 9, true", v, ok)
	}
}

func TestBuildGridErrors(t *testing.T) {
	if _, err := BuildNumericGrid(nil, nil, false); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("empty input error = %v, want ErrEmptySeries", err)
	}
	_, err := BuildNumericGrid([]time.Time{day(2021, time.January, 1)}, []float64{1, 2}, false)
	if err == nil {
		t.Error("length mismatch: expected error, got nil")
	}
}

func TestBuildGridEveryDateMapsToItsCell(t *testing.T) {
	start := day(2021, time.April, 1)
	var dates []time.Time
	var values []float64
	for i := 0; i < 45; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
		values = append(values, float64(i))
	}

	g, err := BuildNumericGrid(dates, values, false)
	if err != nil {
		t.Fatalf("BuildNumericGrid: %v", err)
	}

	rowOf := make(map[WeekKey]int)
	for i, wk := range g.Weeks() {
		rowOf[wk] = i
	}
	for i, d := range dates {
		r := rowOf[weekKeyOf(d)]
		c := isoWeekday(d) - 1
		if v, ok := g.At(r, c).Number(); !ok || v != values[i] {
			t.Errorf("date %s: cell (%d, %d) = %v, %v; want %v",
				d.Format("2006-01-02"), r, c, v, ok, values[i])
		}
	}
}

func TestCategoryGrid(t *testing.T) {
	dates := []time.Time{day(2021, time.January, 1), day(2021, time.February, 1)}
	g, err := BuildCategoryGrid(dates, []string{"jan", "feb"}, false)
	if err != nil {
		t.Fatalf("BuildCategoryGrid: %v", err)
	}
	if s, ok := g.At(0, 4).Label(); !ok || s != "jan" {
		t.Errorf("At(0, 4) = %q, %v; want jan, true", s, ok)
	}
	if _, ok := g.At(0, 0).Number(); ok {
		t.Error("missing cell reported a numeric value")
	}
}
