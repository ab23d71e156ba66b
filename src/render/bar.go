package render

import (
	"image"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
)

// barThickness is the bar height in category units.
const barThickness = 0.6

// drawBars renders a HorizontalBar spec: category ticks on the left, value ticks and
// gridlines along the bottom.
func (p *panel) drawBars() (image.Image, error) {
	colors, err := resolveAll(p.spec)
	if err != nil {
		return nil, err
	}
	r, band, err := p.canvas()
	if err != nil {
		return nil, err
	}

	r.SetFontSize(p.fs)
	labelW, lineH := 0, 0
	for _, t := range p.spec.YTicks {
		b := r.MeasureText(t.Label)
		labelW = max(labelW, b.Width())
		lineH = max(lineH, b.Height())
	}
	if lineH == 0 {
		lineH = int(p.fs)
	}
	bottom := lineH*2 + 16
	if p.spec.XLabel != "" {
		bottom += lineH + 8
	}
	top := band + 8
	if p.spec.YLabel != "" {
		top += lineH + 8
	}
	f := plotFrame{
		box: chart.Box{Left: labelW + 18, Top: top, Right: p.w - 24, Bottom: p.h - bottom},
		xr:  rangeOr(p.spec.XRange, chartspec.AxisRange{Min: 0, Max: 1}),
		yr:  rangeOr(p.spec.YRange, chartspec.AxisRange{Min: -0.5, Max: float64(len(p.spec.Series)) - 0.5}),
	}
	if f.box.Width() < 10 || f.box.Height() < 10 {
		return nil, errTooSmall(p.w, p.h)
	}

	fillRect(r, f.box, drawing.ColorWhite)
	for _, v := range BuildNumericTicks(f.xr.Min, f.xr.Max, 6) {
		x := f.px(v)
		strokeLine(r, x, f.box.Top, x, f.box.Bottom, gridColor, 1)
		rendererText(r, FormatNumericTick(v), x, f.box.Bottom+6, p.fs, axisColor, chartspec.AlignCenter, chartspec.AlignTop)
	}
	for _, t := range p.spec.YTicks {
		rendererText(r, t.Label, f.box.Left-8, f.py(t.Value), p.fs, inkColor, chartspec.AlignRight, chartspec.AlignMiddle)
	}

	for i, e := range p.spec.Series {
		x0, x1 := f.px(e.Base), f.px(e.Top())
		y0, y1 := f.py(e.Position+barThickness/2), f.py(e.Position-barThickness/2)
		polygon(r, []image.Point{image.Pt(x0, y0), image.Pt(x1, y0), image.Pt(x1, y1), image.Pt(x0, y1)}, colors[i], drawing.ColorWhite, 1.5)
	}
	strokeLine(r, f.box.Left, f.box.Top, f.box.Left, f.box.Bottom, axisColor, 1)
	strokeLine(r, f.box.Left, f.box.Bottom, f.box.Right, f.box.Bottom, axisColor, 1)

	if p.spec.XLabel != "" {
		rendererText(r, p.spec.XLabel, (f.box.Left+f.box.Right)/2, p.h-8, p.fs*1.1, inkColor, chartspec.AlignCenter, chartspec.AlignBottom)
	}
	if p.spec.YLabel != "" {
		rendererText(r, p.spec.YLabel, 8, f.box.Top-6, p.fs*1.1, inkColor, chartspec.AlignLeft, chartspec.AlignBottom)
	}

	p.annotate(r, f, func(a chartspec.Annotation) (float64, drawing.Color) {
		if a.Role == chartspec.RoleSummary {
			return p.fs * 1.1, inkColor
		}
		return p.fs, inkColor
	})
	return savePNG(r)
}
