// Package term renders calendar grids as colored block meshes for the
// terminal.
package term

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/janekbaraniewski/calheat"
	"github.com/janekbaraniewski/calheat/colorscale"
)

// cellWidth is the character width of one cell; two columns per cell
// keep blocks roughly square in a terminal font.
const cellWidth = 2

// Options controls the terminal render.
type Options struct {
	ColorScale    string
	DateLabels    bool
	WeekdayLabels bool
	MonthLabels   bool
}

// Render draws the grid as styled lines. Orientation follows the grid:
// a flipped grid gets the contribution-graph layout (weekday rows, week
// columns), an unflipped one runs weeks top to bottom.
func Render(g *calheat.Grid, dates []time.Time, opts Options) (string, error) {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return "", fmt.Errorf("term: empty grid")
	}
	if opts.ColorScale == "" {
		opts.ColorScale = colorscale.DefaultName
	}
	scale, err := colorscale.Get(opts.ColorScale)
	if err != nil {
		return "", err
	}

	min, max, ok := numericRange(g)
	if !ok {
		return "", fmt.Errorf("term: grid holds no numeric values")
	}
	if min == max {
		max = min + 1
	}
	scale.SetMin(min)
	scale.SetMax(max)

	var dayGrid *calheat.Grid
	if opts.DateLabels {
		dayGrid, err = calheat.DayOfMonthGrid(dates, g.Flipped())
		if err != nil {
			return "", fmt.Errorf("term: date labels: %w", err)
		}
	}

	gutter := gutterWidth(g, opts)

	var sb strings.Builder

	if g.Flipped() && opts.MonthLabels {
		locs, err := calheat.MonthLocations(dates, true)
		if err != nil {
			return "", fmt.Errorf("term: month labels: %w", err)
		}
		sb.WriteString(monthHeader(locs, gutter, g.Cols()))
		sb.WriteByte('\n')
	}
	if !g.Flipped() && opts.WeekdayLabels {
		sb.WriteString(weekdayHeader(gutter))
		sb.WriteByte('\n')
	}

	var monthGutter map[int]string
	if !g.Flipped() && opts.MonthLabels {
		locs, err := calheat.MonthLocations(dates, false)
		if err != nil {
			return "", fmt.Errorf("term: month labels: %w", err)
		}
		monthGutter = make(map[int]string, len(locs))
		for _, l := range locs {
			monthGutter[int(math.Round(l.Pos))] = l.Label
		}
	}

	weekdays := calheat.WeekdayLabels(3)
	for r := 0; r < g.Rows(); r++ {
		switch {
		case g.Flipped() && opts.WeekdayLabels:
			sb.WriteString(labelStyle.Render(pad(weekdays[r], gutter)))
		case !g.Flipped() && opts.MonthLabels:
			sb.WriteString(labelStyle.Render(pad(monthGutter[r], gutter)))
		case gutter > 0:
			sb.WriteString(strings.Repeat(" ", gutter))
		}

		for c := 0; c < g.Cols(); c++ {
			dayNum := 0
			if dayGrid != nil {
				if v, ok := dayGrid.At(r, c).Number(); ok {
					dayNum = int(v)
				}
			}
			sb.WriteString(renderCell(g.At(r, c), scale, dayNum))
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func gutterWidth(g *calheat.Grid, opts Options) int {
	if g.Flipped() && opts.WeekdayLabels {
		return 4
	}
	if !g.Flipped() && opts.MonthLabels {
		return 4
	}
	return 0
}

// renderCell draws one cell: a colored block, the day number on a
// colored background when labels are on, or a dim hatch for missing
// cells (which never get a number).
func renderCell(cell calheat.Cell, scale *colorscale.Scale, dayNum int) string {
	v, ok := cell.Number()
	if !ok {
		return missingStyle.Render(strings.Repeat("░", cellWidth))
	}
	bg := lipgloss.Color(scale.Hex(v))
	if dayNum > 0 {
		st := lipgloss.NewStyle().Background(bg).Foreground(textColorOn(scale, v))
		return st.Render(fmt.Sprintf("%2d", dayNum))
	}
	return lipgloss.NewStyle().Foreground(bg).Render(strings.Repeat("█", cellWidth))
}

// textColorOn picks dark or light label text against the cell color.
func textColorOn(scale *colorscale.Scale, v float64) lipgloss.Color {
	c, err := scale.At(v)
	if err != nil {
		return lightText
	}
	r, g, b, _ := c.RGBA()
	lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
	if lum > 140 {
		return darkText
	}
	return lightText
}

func weekdayHeader(gutter int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", gutter))
	for _, name := range calheat.WeekdayLabels(1) {
		sb.WriteString(pad(name, cellWidth))
	}
	return labelStyle.Render(strings.TrimRight(sb.String(), " "))
}

// monthHeader lays month names over their week columns, clipping any
// that would overrun the line.
func monthHeader(locs []calheat.TickLocation, gutter, cols int) string {
	line := make([]byte, gutter+cols*cellWidth)
	for i := range line {
		line[i] = ' '
	}
	for _, l := range locs {
		at := gutter + int(math.Round(l.Pos))*cellWidth
		for j := 0; j < len(l.Label) && at+j < len(line); j++ {
			line[at+j] = l.Label[j]
		}
	}
	return labelStyle.Render(strings.TrimRight(string(line), " "))
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}

func numericRange(g *calheat.Grid) (min, max float64, ok bool) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v, has := g.At(r, c).Number()
			if !has {
				continue
			}
			ok = true
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max, ok
}
