package render

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
)

// plotFrame maps chart coordinates onto a pixel box inside one panel image.
type plotFrame struct {
	box chart.Box
	xr  chartspec.AxisRange
	yr  chartspec.AxisRange
}

func (f plotFrame) px(x float64) int {
	return f.box.Left + int(math.Round((x-f.xr.Min)/f.xr.Span()*float64(f.box.Width())))
}

func (f plotFrame) py(y float64) int {
	return f.box.Bottom - int(math.Round((y-f.yr.Min)/f.yr.Span()*float64(f.box.Height())))
}

// resolve returns the pixel position of a data or axes anchor. Figure anchors are
// not resolvable inside a panel and report false.
func (f plotFrame) resolve(a chartspec.Anchor) (int, int, bool) {
	switch a.Space {
	case chartspec.DataSpace:
		return f.px(a.X), f.py(a.Y), true
	case chartspec.AxesFraction:
		x := f.box.Left + int(math.Round(a.X*float64(f.box.Width())))
		y := f.box.Bottom - int(math.Round(a.Y*float64(f.box.Height())))
		return x, y, true
	}
	return 0, 0, false
}

// figurePixel resolves a figure-fraction anchor on a w x h figure.
func figurePixel(a chartspec.Anchor, w, h int) image.Point {
	return image.Pt(int(math.Round(a.X*float64(w))), int(math.Round((1-a.Y)*float64(h))))
}

// rangeOr returns *r, or def when r is missing or empty.
func rangeOr(r *chartspec.AxisRange, def chartspec.AxisRange) chartspec.AxisRange {
	if r == nil || r.Span() <= 0 {
		return def
	}
	return *r
}

func fillRect(r chart.Renderer, b chart.Box, fill drawing.Color) {
	r.SetFillColor(fill)
	r.SetStrokeWidth(0)
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.Close()
	r.Fill()
}

func strokeLine(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color, width float64) {
	r.SetStrokeColor(c)
	r.SetStrokeWidth(width)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}

// polygon fills and outlines a closed path.
func polygon(r chart.Renderer, pts []image.Point, fill, stroke drawing.Color, width float64) {
	if len(pts) < 3 {
		return
	}
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(width)
	r.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.LineTo(p.X, p.Y)
	}
	r.Close()
	r.FillStroke()
}

// savePNG flushes a renderer into an image.
func savePNG(r chart.Renderer) (image.Image, error) {
	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
