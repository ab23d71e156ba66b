package render

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
)

// panel is one chart being drawn into its own w x h image.
type panel struct {
	spec  chartspec.ChartSpec
	title string
	w, h  int
	bg    drawing.Color
	font  *truetype.Font
	fs    float64 // base label size
	// figure collects annotations anchored in figure space; the composer draws them.
	figure []chartspec.Annotation
}

var (
	inkColor  = drawing.Color{R: 34, G: 34, B: 34, A: 255}
	gridColor = drawing.Color{R: 225, G: 225, B: 225, A: 255}
	axisColor = drawing.Color{R: 120, G: 120, B: 120, A: 255}
)

func newPanel(spec chartspec.ChartSpec, title string, w, h int, bg drawing.Color) (*panel, error) {
	if w < 40 || h < 40 {
		return nil, errTooSmall(w, h)
	}
	f, err := defaultFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &panel{spec: spec, title: title, w: w, h: h, bg: bg, font: f, fs: fontSizeFor(w, h)}, nil
}

func errTooSmall(w, h int) error {
	return fmt.Errorf("panel %dx%d is too small to draw", w, h)
}

// canvas starts a renderer with the panel background and title. It returns the
// height of the title band.
func (p *panel) canvas() (chart.Renderer, int, error) {
	r, err := chart.PNG(p.w, p.h)
	if err != nil {
		return nil, 0, err
	}
	r.SetFont(p.font)
	fillRect(r, chart.Box{Left: 0, Top: 0, Right: p.w, Bottom: p.h}, p.bg)
	if p.title == "" {
		return r, 0, nil
	}
	size := p.fs * 1.35
	r.SetFontSize(size)
	band := int(float64(r.MeasureText(p.title).Height())*1.25) + 12
	rendererText(r, p.title, p.w/2, 6, size, inkColor, chartspec.AlignCenter, chartspec.AlignTop)
	return r, band, nil
}

// annotate draws the chart's annotations through the frame, deferring figure anchors.
func (p *panel) annotate(r chart.Renderer, f plotFrame, style func(chartspec.Annotation) (float64, drawing.Color)) {
	for _, a := range p.spec.Annotations {
		if a.Anchor.Space == chartspec.FigureFraction {
			p.figure = append(p.figure, a)
			continue
		}
		x, y, ok := f.resolve(a.Anchor)
		if !ok {
			continue
		}
		size, col := style(a)
		if a.Role == chartspec.RoleSummary {
			boxedRendererText(r, a.Text, x, y, size, a.HAlign, a.VAlign)
			continue
		}
		rendererText(r, a.Text, x, y, size, col, a.HAlign, a.VAlign)
	}
}

func boxedRendererText(r chart.Renderer, text string, x, y int, size float64, ha chartspec.HAlign, va chartspec.VAlign) {
	r.SetFontSize(size)
	b := r.MeasureText(text)
	w, h := b.Width(), int(float64(b.Height())*1.25)
	left, top := blockOrigin(x, y, w, h, ha, va)
	pad := h / 2
	box := chart.Box{Left: left - pad, Top: top - pad, Right: left + w + pad, Bottom: top + h + pad}
	r.SetFillColor(drawing.ColorWhite.WithAlpha(220))
	r.SetStrokeColor(axisColor)
	r.SetStrokeWidth(1)
	r.MoveTo(box.Left, box.Top)
	r.LineTo(box.Right, box.Top)
	r.LineTo(box.Right, box.Bottom)
	r.LineTo(box.Left, box.Bottom)
	r.Close()
	r.FillStroke()
	rendererText(r, text, x, y, size, inkColor, ha, va)
}

// legendSize measures the legend box for entries.
func (p *panel) legendSize(r chart.Renderer) (int, int) {
	if len(p.spec.Legend) == 0 {
		return 0, 0
	}
	r.SetFontSize(p.fs)
	w, lineH := 0, 0
	lines := make([]string, 0, len(p.spec.Legend)+1)
	for _, e := range p.spec.Legend {
		lines = append(lines, e.Label)
	}
	if p.spec.LegendTitle != "" {
		lines = append(lines, p.spec.LegendTitle)
	}
	for _, l := range lines {
		b := r.MeasureText(l)
		w = max(w, b.Width())
		lineH = max(lineH, b.Height())
	}
	row := int(float64(lineH) * 1.6)
	swatch := row * 2 / 3
	return w + swatch + 24, row*len(lines) + 12
}

// drawLegend draws a framed legend with its top-left corner at (x, y). colors holds
// the resolved swatch of each legend entry.
func (p *panel) drawLegend(r chart.Renderer, x, y int, colors []drawing.Color) {
	if len(p.spec.Legend) == 0 {
		return
	}
	w, h := p.legendSize(r)
	box := chart.Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
	r.SetFillColor(drawing.ColorWhite.WithAlpha(230))
	r.SetStrokeColor(gridColor)
	r.SetStrokeWidth(1)
	r.MoveTo(box.Left, box.Top)
	r.LineTo(box.Right, box.Top)
	r.LineTo(box.Right, box.Bottom)
	r.LineTo(box.Left, box.Bottom)
	r.Close()
	r.FillStroke()

	rows := len(p.spec.Legend)
	if p.spec.LegendTitle != "" {
		rows++
	}
	row := (h - 12) / rows
	swatch := row * 2 / 3
	cy := y + 6
	if p.spec.LegendTitle != "" {
		rendererText(r, p.spec.LegendTitle, x+w/2, cy+row/2, p.fs, inkColor, chartspec.AlignCenter, chartspec.AlignMiddle)
		cy += row
	}
	for i, e := range p.spec.Legend {
		c := colors[i]
		sx, sy := x+8, cy+(row-swatch)/2
		polygon(r, []image.Point{image.Pt(sx, sy), image.Pt(sx+swatch, sy), image.Pt(sx+swatch, sy+swatch), image.Pt(sx, sy+swatch)}, c, c, 1)
		rendererText(r, e.Label, sx+swatch+8, cy+row/2, p.fs, inkColor, chartspec.AlignLeft, chartspec.AlignMiddle)
		cy += row
	}
}
