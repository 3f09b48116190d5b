// Package colorscale provides the named color ramps used to shade
// heatmap cells. A Scale implements gonum/plot's palette.Palette and
// palette.ColorMap so the same value drives both the cell mesh and the
// colorbar legend.
package colorscale

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/palette"
)

// DefaultName is the scale used when callers do not pick one.
const DefaultName = "greens"

// ramps holds the interpolation stops per scale name. The greens ramp is
// the familiar contribution-graph ladder; the rest follow the same
// light-to-saturated shape.
var ramps = map[string][]color.RGBA{
	"greens": {
		{R: 235, G: 237, B: 240, A: 255},
		{R: 155, G: 233, B: 168, A: 255},
		{R: 64, G: 196, B: 99, A: 255},
		{R: 48, G: 161, B: 78, A: 255},
		{R: 33, G: 110, B: 57, A: 255},
	},
	"blues": {
		{R: 239, G: 243, B: 255, A: 255},
		{R: 158, G: 202, B: 225, A: 255},
		{R: 66, G: 146, B: 198, A: 255},
		{R: 8, G: 81, B: 156, A: 255},
	},
	"purples": {
		{R: 242, G: 240, B: 247, A: 255},
		{R: 188, G: 189, B: 220, A: 255},
		{R: 128, G: 125, B: 186, A: 255},
		{R: 84, G: 39, B: 143, A: 255},
	},
	"fire": {
		{R: 255, G: 245, B: 224, A: 255},
		{R: 254, G: 196, B: 79, A: 255},
		{R: 236, G: 112, B: 20, A: 255},
		{R: 153, G: 52, B: 4, A: 255},
	},
	"greys": {
		{R: 247, G: 247, B: 247, A: 255},
		{R: 150, G: 150, B: 150, A: 255},
		{R: 37, G: 37, B: 37, A: 255},
	},
	"viridis": {
		{R: 68, G: 1, B: 84, A: 255},
		{R: 59, G: 82, B: 139, A: 255},
		{R: 33, G: 145, B: 140, A: 255},
		{R: 94, G: 201, B: 98, A: 255},
		{R: 253, G: 231, B: 37, A: 255},
	},
}

// Scale is a named color ramp over a [min, max] value range. Values are
// clamped to the range rather than treated as overflow.
type Scale struct {
	name     string
	stops    []color.RGBA
	min, max float64
	alpha    float64
}

// Get returns a fresh Scale for name. Unknown names are an error so that
// a typoed scale fails the render call instead of silently defaulting.
func Get(name string) (*Scale, error) {
	stops, ok := ramps[name]
	if !ok {
		return nil, fmt.Errorf("colorscale: unknown color scale %q (known: %v)", name, Names())
	}
	return &Scale{name: name, stops: stops, min: 0, max: 1, alpha: 1}, nil
}

// Default returns the greens scale.
func Default() *Scale {
	s, _ := Get(DefaultName)
	return s
}

// Names lists the registered scale names, sorted.
func Names() []string {
	names := make([]string, 0, len(ramps))
	for name := range ramps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scale) Name() string { return s.name }

// Min, Max, SetMin and SetMax implement the range half of
// palette.ColorMap.
func (s *Scale) Min() float64 { return s.min }

func (s *Scale) Max() float64 { return s.max }

func (s *Scale) SetMin(v float64) { s.min = v }

func (s *Scale) SetMax(v float64) { s.max = v }

// Alpha and SetAlpha implement the opacity half of palette.ColorMap.
// The ramps are fully opaque, so alpha defaults to 1.
func (s *Scale) Alpha() float64 { return s.alpha }

func (s *Scale) SetAlpha(a float64) { s.alpha = a }

// At maps a value in [Min, Max] to a ramp color, implementing
// palette.ColorMap. Out-of-range values clamp to the ramp ends.
func (s *Scale) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, fmt.Errorf("colorscale: cannot map NaN")
	}
	if s.max <= s.min {
		return nil, fmt.Errorf("colorscale: range [%v, %v] is empty", s.min, s.max)
	}
	return s.interp((v - s.min) / (s.max - s.min)), nil
}

// Colors implements palette.Palette with the raw ramp stops.
func (s *Scale) Colors() []color.Color {
	out := make([]color.Color, len(s.stops))
	for i, c := range s.stops {
		out[i] = c
	}
	return out
}

// Palette samples the ramp into n evenly spaced colors, implementing the
// palette factory half of palette.ColorMap.
func (s *Scale) Palette(n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	out := make(sampled, n)
	for i := range out {
		out[i] = s.interp(float64(i) / float64(n-1))
	}
	return out
}

// Hex maps a value to a "#RRGGBB" string for terminal styling, with the
// same clamping as At.
func (s *Scale) Hex(v float64) string {
	t := 0.0
	if s.max > s.min {
		t = (v - s.min) / (s.max - s.min)
	}
	c := s.interp(t)
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// interp linearly interpolates the ramp at t in [0, 1], clamping outside.
func (s *Scale) interp(t float64) color.RGBA {
	if t <= 0 {
		return s.stops[0]
	}
	if t >= 1 {
		return s.stops[len(s.stops)-1]
	}
	pos := t * float64(len(s.stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := s.stops[i], s.stops[i+1]
	return color.RGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

type sampled []color.Color

func (p sampled) Colors() []color.Color { return p }
