package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/janekbaraniewski/calheat"
	"github.com/janekbaraniewski/calheat/colorscale"
)

// colorbarStrip is the width reserved on the right for the legend.
const colorbarStrip = vg.Length(56)

// canvasSize derives the output size from the grid shape so cells come
// out square regardless of orientation.
func canvasSize(g *calheat.Grid, opts Options) (w, h vg.Length) {
	w = opts.CellSize*vg.Length(g.Cols()) + vg.Length(70)
	h = opts.CellSize*vg.Length(g.Rows()) + vg.Length(50)
	return w, h
}

// Save writes p to path as PNG or SVG, chosen by extension. When the
// colorbar is enabled the legend is drawn in a strip to the right of the
// plot on a shared canvas.
func Save(p *plot.Plot, g *calheat.Grid, opts Options, path string) error {
	if g == nil || g.Rows() == 0 {
		return fmt.Errorf("render: empty grid")
	}
	opts = opts.withDefaults()
	w, h := canvasSize(g, opts)

	if !opts.Colorbar {
		return p.Save(w, h, path)
	}

	legend, err := colorbarPlot(g, opts)
	if err != nil {
		return err
	}
	total := w + colorbarStrip

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img := vgimg.New(total, h)
		drawPanels(draw.New(img), p, legend, total)
		if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
			return fmt.Errorf("render: write png: %w", err)
		}
	case ".svg":
		c := vgsvg.New(total, h)
		drawPanels(draw.New(c), p, legend, total)
		if _, err := c.WriteTo(f); err != nil {
			return fmt.Errorf("render: write svg: %w", err)
		}
	default:
		return fmt.Errorf("render: unsupported output format %q", filepath.Ext(path))
	}
	return nil
}

func drawPanels(dc draw.Canvas, main, legend *plot.Plot, w vg.Length) {
	main.Draw(draw.Crop(dc, 0, -colorbarStrip, 0, 0))
	legend.Draw(draw.Crop(dc, w-colorbarStrip+vg.Length(6), 0, vg.Length(10), vg.Length(10)))
}

// colorbarPlot builds the legend strip sharing the heatmap's scale and
// value range.
func colorbarPlot(g *calheat.Grid, opts Options) (*plot.Plot, error) {
	scale, err := colorscale.Get(opts.ColorScale)
	if err != nil {
		return nil, err
	}
	min, max, ok := dataRange(g)
	if !ok {
		return nil, fmt.Errorf("render: grid holds no numeric values")
	}
	if min == max {
		max = min + 1
	}
	scale.SetMin(min)
	scale.SetMax(max)

	l := plot.New()
	l.Add(&plotter.ColorBar{ColorMap: scale, Vertical: true})
	l.HideX()
	l.Y.Padding = 0
	return l, nil
}
