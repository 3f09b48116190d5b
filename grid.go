// Package calheat lays out (date, value) series on an ISO-week calendar
// grid for heatmap rendering.
package calheat

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
)

// ErrEmptySeries is returned when a grid is built from no dates.
var ErrEmptySeries = errors.New("calheat: empty date series")

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	KindMissing CellKind = iota
	KindNumeric
	KindCategory
)

// Cell is a single grid slot: either empty, a number, or a category tag.
type Cell struct {
	kind CellKind
	num  float64
	cat  string
}

func Missing() Cell { return Cell{} }

func Numeric(v float64) Cell { return Cell{kind: KindNumeric, num: v} }

func Category(name string) Cell { return Cell{kind: KindCategory, cat: name} }

func (c Cell) Kind() CellKind { return c.kind }

func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// Number returns the numeric value and whether the cell holds one.
func (c Cell) Number() (float64, bool) {
	return c.num, c.kind == KindNumeric
}

// Label returns the category tag and whether the cell holds one.
func (c Cell) Label() (string, bool) {
	return c.cat, c.kind == KindCategory
}

// WeekKey identifies one ISO calendar week. Week numbers alone collide
// across year boundaries, so the ISO year is part of the key.
type WeekKey struct {
	Year int
	Week int
}

func (k WeekKey) Before(o WeekKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Week < o.Week
}

// Grid is a dense calendar grid. In the default orientation rows are ISO
// weeks (earliest first) and the 7 columns are ISO weekdays Mon..Sun.
// A flipped grid is the transpose.
type Grid struct {
	cells   [][]Cell
	weeks   []WeekKey
	flipped bool
}

func (g *Grid) Rows() int { return len(g.cells) }

func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g *Grid) At(row, col int) Cell { return g.cells[row][col] }

func (g *Grid) Flipped() bool { return g.flipped }

// Weeks returns the ordered ISO week keys backing the weeks axis.
func (g *Grid) Weeks() []WeekKey {
	out := make([]WeekKey, len(g.weeks))
	copy(out, g.weeks)
	return out
}

// Transpose returns a new grid with rows and columns swapped and the
// orientation flag toggled.
func (g *Grid) Transpose() *Grid {
	rows, cols := g.Rows(), g.Cols()
	cells := make([][]Cell, cols)
	for c := 0; c < cols; c++ {
		cells[c] = make([]Cell, rows)
		for r := 0; r < rows; r++ {
			cells[c][r] = g.cells[r][c]
		}
	}
	return &Grid{cells: cells, weeks: g.weeks, flipped: !g.flipped}
}

// isoWeekday maps time.Weekday (Sun=0) to ISO weekday (Mon=1 .. Sun=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

func weekKeyOf(t time.Time) WeekKey {
	y, w := t.ISOWeek()
	return WeekKey{Year: y, Week: w}
}

// BuildGrid scatters values onto the calendar grid spanned by dates.
// Dates need not be sorted or contiguous; the grid covers every distinct
// ISO (year, week) the dates touch and nothing more. Duplicate dates keep
// the value seen last. With flip the transposed grid is returned.
func BuildGrid(dates []time.Time, values []Cell, flip bool) (*Grid, error) {
	if len(dates) == 0 {
		return nil, ErrEmptySeries
	}
	if len(dates) != len(values) {
		return nil, fmt.Errorf("calheat: %d dates but %d values", len(dates), len(values))
	}

	keys := lo.Map(dates, func(d time.Time, _ int) WeekKey { return weekKeyOf(d) })

	weeks := lo.Uniq(keys)
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	rowOf := make(map[WeekKey]int, len(weeks))
	for i, wk := range weeks {
		rowOf[wk] = i
	}

	cells := make([][]Cell, len(weeks))
	for i := range cells {
		cells[i] = make([]Cell, 7)
	}
	for i, d := range dates {
		cells[rowOf[keys[i]]][isoWeekday(d)-1] = values[i]
	}

	g := &Grid{cells: cells, weeks: weeks}
	if flip {
		return g.Transpose(), nil
	}
	return g, nil
}

// BuildNumericGrid builds a grid from a float series.
func BuildNumericGrid(dates []time.Time, values []float64, flip bool) (*Grid, error) {
	return BuildGrid(dates, lo.Map(values, func(v float64, _ int) Cell { return Numeric(v) }), flip)
}

// BuildCategoryGrid builds a grid from a string series.
func BuildCategoryGrid(dates []time.Time, values []string, flip bool) (*Grid, error) {
	return BuildGrid(dates, lo.Map(values, func(v string, _ int) Cell { return Category(v) }), flip)
}
