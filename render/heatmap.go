// Package render draws calendar grids as heatmap plots via gonum/plot.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/janekbaraniewski/calheat"
	"github.com/janekbaraniewski/calheat/colorscale"
)

// paletteSteps is the number of discrete colors the mesh samples from
// the ramp.
const paletteSteps = 64

// Heatmap draws grid as a colored cell mesh onto p, or onto a new plot
// when p is nil, and returns the plot used so callers can compose
// multi-panel figures. dates must be the series the grid was built from;
// the label overlays are laid out from it. The weeks axis is inverted so
// the earliest week sits at the top.
func Heatmap(g *calheat.Grid, dates []time.Time, opts Options, p *plot.Plot) (*plot.Plot, error) {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, fmt.Errorf("render: empty grid")
	}
	opts = opts.withDefaults()

	scale, err := colorscale.Get(opts.ColorScale)
	if err != nil {
		return nil, err
	}
	min, max, ok := dataRange(g)
	if !ok {
		return nil, fmt.Errorf("render: grid holds no numeric values")
	}
	if min == max {
		// A flat series still needs a non-empty color range.
		max = min + 1
	}
	scale.SetMin(min)
	scale.SetMax(max)

	if p == nil {
		p = plot.New()
	}
	if opts.Title != "" {
		p.Title.Text = opts.Title
	}

	hm := plotter.NewHeatMap(gridXYZ{g: g}, scale.Palette(paletteSteps))
	hm.NaN = color.Transparent
	p.Add(hm)

	// Earliest week at the top.
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	p.X.Tick.Length = 0
	p.Y.Tick.Length = 0
	p.X.Tick.Marker = plot.ConstantTicks(nil)
	p.Y.Tick.Marker = plot.ConstantTicks(nil)

	if opts.WeekdayLabels {
		ticks := weekdayTicks()
		if g.Flipped() {
			p.Y.Tick.Marker = ticks
		} else {
			p.X.Tick.Marker = ticks
		}
	}

	if opts.MonthLabels {
		locs, err := calheat.MonthLocations(dates, g.Flipped())
		if err != nil {
			return nil, fmt.Errorf("render: month labels: %w", err)
		}
		ticks := tickLocations(locs)
		if g.Flipped() {
			p.X.Tick.Marker = ticks
		} else {
			p.Y.Tick.Marker = ticks
		}
	}

	if opts.DateLabels {
		labels, err := dayLabels(g, dates)
		if err != nil {
			return nil, fmt.Errorf("render: date labels: %w", err)
		}
		p.Add(labels)
	}

	if opts.YearLabels {
		locs, err := calheat.YearLocations(dates, g.Flipped())
		if err != nil {
			return nil, fmt.Errorf("render: year labels: %w", err)
		}
		p.Add(&yearLabels{locs: locs, flipped: g.Flipped()})
	}

	return p, nil
}

func weekdayTicks() plot.ConstantTicks {
	names := calheat.WeekdayLabels(1)
	ticks := make([]plot.Tick, 7)
	for i, name := range names {
		ticks[i] = plot.Tick{Value: float64(i) + 0.5, Label: name}
	}
	return ticks
}

func tickLocations(locs []calheat.TickLocation) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(locs))
	for i, l := range locs {
		ticks[i] = plot.Tick{Value: l.Pos, Label: l.Label}
	}
	return ticks
}

// dayLabels builds centered day-of-month texts for every non-missing
// cell. Missing cells produce no label at all.
func dayLabels(g *calheat.Grid, dates []time.Time) (*plotter.Labels, error) {
	dg, err := calheat.DayOfMonthGrid(dates, g.Flipped())
	if err != nil {
		return nil, err
	}

	var xys plotter.XYs
	var names []string
	for r := 0; r < dg.Rows(); r++ {
		for c := 0; c < dg.Cols(); c++ {
			v, ok := dg.At(r, c).Number()
			if !ok {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(c) + 0.5, Y: float64(r) + 0.5})
			names = append(names, strconv.Itoa(int(v)))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	return labels, nil
}
