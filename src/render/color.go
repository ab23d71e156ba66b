package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
)

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (drawing.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return drawing.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return drawing.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return drawing.ColorFromHex(h), nil
}

// ResolveColor turns a ColorRef into a concrete color. Gradient stops are spread evenly
// over [0,1] and sampled linearly at T.
func ResolveColor(ref chartspec.ColorRef) (drawing.Color, error) {
	if !ref.IsGradient() {
		return ParseHex(ref.Hex)
	}
	stops := make([]drawing.Color, len(ref.Stops))
	for i, s := range ref.Stops {
		c, err := ParseHex(s)
		if err != nil {
			return drawing.Color{}, err
		}
		stops[i] = c
	}
	if len(stops) == 1 {
		return stops[0], nil
	}
	t := math.Min(math.Max(ref.T, 0), 1)
	pos := t * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1], nil
	}
	return lerp(stops[i], stops[i+1], pos-float64(i)), nil
}

func lerp(a, b drawing.Color, f float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// resolveAll resolves a color per series entry.
func resolveAll(spec chartspec.ChartSpec) ([]drawing.Color, error) {
	out := make([]drawing.Color, len(spec.Series))
	for i, e := range spec.Series {
		c, err := ResolveColor(e.Color)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", e.Label, err)
		}
		out[i] = c
	}
	return out, nil
}

// legendColors resolves the legend swatches. Renderers call it before drawing.
func legendColors(spec chartspec.ChartSpec) ([]drawing.Color, error) {
	out := make([]drawing.Color, len(spec.Legend))
	for i, e := range spec.Legend {
		c, err := ResolveColor(e.Color)
		if err != nil {
			return nil, fmt.Errorf("legend %q: %w", e.Label, err)
		}
		out[i] = c
	}
	return out, nil
}

// textColorOn picks black or white text for legibility on bg.
func textColorOn(bg drawing.Color) drawing.Color {
	lum := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if lum > 160 {
		return drawing.ColorBlack
	}
	return drawing.ColorWhite
}
