package term

import (
	"strings"
	"testing"
	"time"

	"github.com/janekbaraniewski/calheat"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleSeries(t *testing.T, flip bool) (*calheat.Grid, []time.Time) {
	t.Helper()
	var dates []time.Time
	var values []float64
	start := day(2021, time.March, 1)
	for i := 0; i < 28; i += 2 {
		dates = append(dates, start.AddDate(0, 0, i))
		values = append(values, float64(i))
	}
	g, err := calheat.BuildNumericGrid(dates, values, flip)
	if err != nil {
		t.Fatalf("BuildNumericGrid: %v", err)
	}
	return g, dates
}

func TestRenderFlippedShape(t *testing.T) {
	g, dates := sampleSeries(t, true)
	out, err := Render(g, dates, Options{WeekdayLabels: true, MonthLabels: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Month header plus one line per weekday.
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Mar") {
		t.Errorf("month header missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Mon") {
		t.Errorf("weekday gutter missing: %q", lines[1])
	}
}

func TestRenderPortraitShape(t *testing.T) {
	g, dates := sampleSeries(t, false)
	out, err := Render(g, dates, Options{WeekdayLabels: true, MonthLabels: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Weekday header plus one line per week row.
	if len(lines) != g.Rows()+1 {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), g.Rows()+1, out)
	}
	if !strings.Contains(out, "Mar") {
		t.Error("month gutter label missing")
	}
}

func TestRenderMissingCells(t *testing.T) {
	dates := []time.Time{day(2021, time.January, 1), day(2021, time.January, 8)}
	g, err := calheat.BuildNumericGrid(dates, []float64{1, 2}, false)
	if err != nil {
		t.Fatalf("BuildNumericGrid: %v", err)
	}
	out, err := Render(g, dates, Options{DateLabels: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "░") {
		t.Error("missing cells should render as hatch blocks")
	}
	if !strings.Contains(out, " 1") || !strings.Contains(out, " 8") {
		t.Errorf("day numbers missing from output:\n%s", out)
	}
	if strings.Contains(out, "NaN") {
		t.Error("missing cell leaked a NaN label")
	}
}

func TestRenderErrors(t *testing.T) {
	g, dates := sampleSeries(t, true)
	if _, err := Render(g, dates, Options{ColorScale: "nope"}); err == nil {
		t.Error("unknown scale: expected error, got nil")
	}
	if _, err := Render(nil, dates, Options{}); err == nil {
		t.Error("nil grid: expected error, got nil")
	}
}
