package render

import (
	"gonum.org/v1/plot/vg"

	"github.com/janekbaraniewski/calheat/colorscale"
)

// DefaultCellSize is the drawn side length of one calendar cell.
const DefaultCellSize = vg.Length(18)

// Options controls a heatmap render. The zero value draws a bare mesh
// with the default color scale; each overlay is toggled independently.
type Options struct {
	// ColorScale names a ramp from the colorscale registry.
	ColorScale string

	Colorbar      bool
	DateLabels    bool
	WeekdayLabels bool
	MonthLabels   bool
	YearLabels    bool

	// CellSize sets the canvas scale used by Save; cells are always
	// square.
	CellSize vg.Length

	Title string
}

func (o Options) withDefaults() Options {
	if o.ColorScale == "" {
		o.ColorScale = colorscale.DefaultName
	}
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	return o
}
