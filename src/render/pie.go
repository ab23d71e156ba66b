package render

import (
	"errors"
	"image"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
)

// arcStep is the angular resolution of wedge outlines, in degrees.
const arcStep = 1.5

// drawCircular renders Pie and Donut specs. Wedges run counter-clockwise from the
// start angle; each is pushed out along its mid angle by its offset.
func (p *panel) drawCircular() (image.Image, error) {
	geom := p.spec.Pie
	if geom == nil {
		return nil, errors.New("circular chart without pie geometry")
	}
	colors, err := resolveAll(p.spec)
	if err != nil {
		return nil, err
	}
	swatches, err := legendColors(p.spec)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, e := range p.spec.Series {
		total += e.Value
	}
	if total <= 0 {
		return nil, errors.New("circular chart with zero total")
	}

	r, band, err := p.canvas()
	if err != nil {
		return nil, err
	}
	legendW, legendH := p.legendSize(r)
	pad := 8
	availW := p.w - 2*pad
	if legendW > 0 {
		availW -= legendW + pad
	}
	availH := p.h - band - 2*pad
	side := max(min(availW, availH), 10)
	left := pad + (availW-side)/2
	top := band + pad + (availH-side)/2
	f := plotFrame{
		box: chart.Box{Left: left, Top: top, Right: left + side, Bottom: top + side},
		xr:  rangeOr(p.spec.XRange, chartspec.AxisRange{Min: -1.1, Max: 1.1}),
		yr:  rangeOr(p.spec.YRange, chartspec.AxisRange{Min: -1.1, Max: 1.1}),
	}

	edge := p.bg
	start := geom.StartAngle
	for i, e := range p.spec.Series {
		sweep := 360 * e.Value / total
		if sweep <= 0 {
			continue
		}
		mid := (start + sweep/2) * math.Pi / 180
		ox, oy := e.Offset*math.Cos(mid), e.Offset*math.Sin(mid)
		polygon(r, wedge(f, ox, oy, geom.HoleRadius, start, sweep), colors[i], edge, 1.5)
		start += sweep
	}

	wedgeIdx := 0
	p.annotate(r, f, func(a chartspec.Annotation) (float64, drawing.Color) {
		switch a.Role {
		case chartspec.RoleWedgeLabel:
			c := inkColor
			if wedgeIdx < len(colors) {
				c = textColorOn(colors[wedgeIdx])
			}
			wedgeIdx++
			return p.fs, c
		case chartspec.RoleCenterLabel:
			return p.fs * 1.2, inkColor
		}
		return p.fs, inkColor
	})

	if legendW > 0 {
		lx := p.w - pad - legendW
		ly := band + (p.h-band-legendH)/2
		p.drawLegend(r, lx, ly, swatches)
	}
	return savePNG(r)
}

// wedge returns the outline of one wedge in pixels. With a hole it is an annular
// sector, otherwise it starts at the (offset) centre.
func wedge(f plotFrame, ox, oy, hole, start, sweep float64) []image.Point {
	steps := int(math.Ceil(sweep/arcStep)) + 1
	arc := func(radius float64, from, to float64) []image.Point {
		out := make([]image.Point, 0, steps)
		for k := 0; k < steps; k++ {
			deg := from + (to-from)*float64(k)/float64(steps-1)
			rad := deg * math.Pi / 180
			out = append(out, image.Pt(f.px(ox+radius*math.Cos(rad)), f.py(oy+radius*math.Sin(rad))))
		}
		return out
	}
	outer := arc(1, start, start+sweep)
	if hole > 0 {
		return append(outer, arc(hole, start+sweep, start)...)
	}
	return append([]image.Point{image.Pt(f.px(ox), f.py(oy))}, outer...)
}
