package calheat

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// TickLocation is a label anchored at a position along the weeks axis, in
// grid cell-corner coordinates (cell k spans [k, k+1]).
type TickLocation struct {
	Pos   float64
	Label string
}

var weekdayAbbr = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var monthAbbr = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// WeekdayLabels returns the Mon-first weekday names for axis labeling,
// single-letter for width 1, three-letter otherwise.
func WeekdayLabels(width int) []string {
	out := make([]string, 7)
	for i, name := range weekdayAbbr {
		if width <= 1 {
			out[i] = name[:1]
		} else {
			out[i] = name
		}
	}
	return out
}

// DayOfMonthGrid builds a numeric grid holding the day-of-month number of
// every input date. Renderers use it for in-cell date labels; cells with
// no date stay Missing and are skipped, not labeled.
func DayOfMonthGrid(dates []time.Time, flip bool) (*Grid, error) {
	days := lo.Map(dates, func(d time.Time, _ int) Cell { return Numeric(float64(d.Day())) })
	return BuildGrid(dates, days, flip)
}

// MonthLocations computes one label position per distinct (year, month) in
// dates. The position is the midpoint of the min and max week-axis index
// of the month's cells, which centers the label across the month's span
// even when interior weeks carry no data.
func MonthLocations(dates []time.Time, flip bool) ([]TickLocation, error) {
	spans, order, err := groupSpans(dates, flip, func(d time.Time) string {
		return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
	})
	if err != nil {
		return nil, err
	}

	locs := make([]TickLocation, 0, len(order))
	for _, key := range order {
		sp := spans[key]
		m, _ := strconv.Atoi(key[5:])
		locs = append(locs, TickLocation{
			Pos:   float64(sp.min+sp.max) / 2,
			Label: monthAbbr[m-1],
		})
	}
	return locs, nil
}

// YearLocations computes one label position per distinct year, centered
// across the year's week span.
func YearLocations(dates []time.Time, flip bool) ([]TickLocation, error) {
	spans, order, err := groupSpans(dates, flip, func(d time.Time) string {
		return strconv.Itoa(d.Year())
	})
	if err != nil {
		return nil, err
	}

	locs := make([]TickLocation, 0, len(order))
	for _, key := range order {
		sp := spans[key]
		locs = append(locs, TickLocation{
			Pos:   float64(sp.min+sp.max+1) / 2,
			Label: key,
		})
	}
	return locs, nil
}

type axisSpan struct {
	min, max int
}

// groupSpans builds a categorical grid keyed by keyFn and records, per
// key, the span of occupied indexes along the weeks axis (rows normally,
// columns when flipped).
func groupSpans(dates []time.Time, flip bool, keyFn func(time.Time) string) (map[string]axisSpan, []string, error) {
	keys := lo.Map(dates, func(d time.Time, _ int) string { return keyFn(d) })

	grid, err := BuildCategoryGrid(dates, keys, flip)
	if err != nil {
		return nil, nil, err
	}

	spans := make(map[string]axisSpan)
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			key, ok := grid.At(r, c).Label()
			if !ok {
				continue
			}
			idx := r
			if flip {
				idx = c
			}
			sp, seen := spans[key]
			if !seen {
				spans[key] = axisSpan{min: idx, max: idx}
				continue
			}
			if idx < sp.min {
				sp.min = idx
			}
			if idx > sp.max {
				sp.max = idx
			}
			spans[key] = sp
		}
	}

	order := lo.Keys(spans)
	sort.Strings(order)
	return spans, order, nil
}
