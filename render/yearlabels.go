package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/janekbaraniewski/calheat"
)

// yearLabels annotates year names just outside the data area: above the
// plot in landscape orientation, rotated along the left edge otherwise.
type yearLabels struct {
	locs    []calheat.TickLocation
	flipped bool
}

func (yl *yearLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	sty := plt.Y.Tick.Label
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter

	if yl.flipped {
		for _, l := range yl.locs {
			c.FillText(sty, vg.Point{X: trX(l.Pos), Y: c.Max.Y + vg.Length(12)}, l.Label)
		}
		return
	}

	sty.Rotation = math.Pi / 2
	for _, l := range yl.locs {
		c.FillText(sty, vg.Point{X: c.Min.X - vg.Length(28), Y: trY(l.Pos)}, l.Label)
	}
}
