package render

import (
	"math"

	"github.com/janekbaraniewski/calheat"
)

// gridXYZ adapts a calheat.Grid to the plotter.GridXYZ interface. Cell
// centers sit at k+0.5 so cell k spans [k, k+1] in data coordinates,
// and Missing cells surface as NaN, which the heatmap plotter leaves
// undrawn.
type gridXYZ struct {
	g *calheat.Grid
}

func (d gridXYZ) Dims() (c, r int) { return d.g.Cols(), d.g.Rows() }

func (d gridXYZ) X(c int) float64 { return float64(c) + 0.5 }

func (d gridXYZ) Y(r int) float64 { return float64(r) + 0.5 }

func (d gridXYZ) Z(c, r int) float64 {
	v, ok := d.g.At(r, c).Number()
	if !ok {
		return math.NaN()
	}
	return v
}

// dataRange returns the numeric min and max over the grid, ignoring
// Missing cells. ok is false when no cell holds a number.
func dataRange(g *calheat.Grid) (min, max float64, ok bool) {
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
