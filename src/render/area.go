package render

import (
	"bytes"
	"image"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
)

// drawStacked renders a StackedArea spec as a cumulative staircase: band i is filled
// from its category onwards up to its running total, so at category i the visible
// slice spans Base..Top. Bands are drawn largest first so lower bands stay on top.
func (p *panel) drawStacked() (image.Image, error) {
	colors, err := resolveAll(p.spec)
	if err != nil {
		return nil, err
	}
	swatches, err := legendColors(p.spec)
	if err != nil {
		return nil, err
	}
	xr := rangeOr(p.spec.XRange, chartspec.AxisRange{Min: 0.5, Max: float64(len(p.spec.Series)) + 0.5})
	yr := rangeOr(p.spec.YRange, chartspec.AxisRange{Min: 0, Max: 1})

	series := make([]chart.Series, 0, len(p.spec.Series))
	for i := len(p.spec.Series) - 1; i >= 0; i-- {
		e := p.spec.Series[i]
		series = append(series, chart.ContinuousSeries{
			Name:    e.Label,
			XValues: []float64{e.Position - 0.5, xr.Max},
			YValues: []float64{e.Top(), e.Top()},
			Style: chart.Style{
				StrokeColor: colors[i],
				StrokeWidth: 1,
				FillColor:   colors[i],
			},
		})
	}

	xTicks := make([]chart.Tick, 0, len(p.spec.XTicks))
	for _, t := range p.spec.XTicks {
		xTicks = append(xTicks, chart.Tick{Value: t.Value, Label: t.Label})
	}
	var yTicks []chart.Tick
	for _, v := range BuildNumericTicks(yr.Min, yr.Max, 6) {
		yTicks = append(yTicks, chart.Tick{Value: v, Label: FormatNumericTick(v)})
	}

	ch := chart.Chart{
		Title:      p.title,
		TitleStyle: chart.Style{FontSize: p.fs * 1.35, FontColor: inkColor},
		Width:      p.w,
		Height:     p.h,
		Font:       p.font,
		Background: chart.Style{
			FillColor: p.bg,
			Padding:   chart.Box{Top: 48, Left: 16, Right: 20, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: drawing.ColorWhite},
		XAxis: chart.XAxis{
			Name:  p.spec.XLabel,
			Ticks: xTicks,
			Range: &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
		},
		YAxis: chart.YAxis{
			Name:  p.spec.YLabel,
			Ticks: yTicks,
			Range: &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{p.bandLabels(xr, yr, colors), p.legendElement(swatches)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// bandLabels is a chart element that places the band annotations through the
// canvas box go-chart hands to elements.
func (p *panel) bandLabels(xr, yr chartspec.AxisRange, colors []drawing.Color) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		r.SetFont(p.font)
		f := plotFrame{box: canvasBox, xr: xr, yr: yr}
		band := 0
		p.annotate(r, f, func(a chartspec.Annotation) (float64, drawing.Color) {
			if a.Role != chartspec.RoleBandLabel {
				return p.fs, inkColor
			}
			c := drawing.ColorWhite
			if band < len(colors) {
				c = textColorOn(colors[band])
			}
			band++
			return p.fs, c
		})
	}
}

// legendElement draws the chart legend in the upper-left corner of the plot.
func (p *panel) legendElement(colors []drawing.Color) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		r.SetFont(p.font)
		p.drawLegend(r, canvasBox.Left+8, canvasBox.Top+8, colors)
	}
}
