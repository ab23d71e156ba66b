package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/layout"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

func ratingLayout(t *testing.T) layout.PanelLayout {
	t.Helper()
	rs := survey.MustResponseSet(
		survey.Response{Label: "1 (Poor)", Count: 26},
		survey.Response{Label: "2 (Below Average)", Count: 36},
		survey.Response{Label: "3 (Average)", Count: 78},
		survey.Response{Label: "4 (Good)", Count: 142},
		survey.Response{Label: "5 (Excellent)", Count: 47},
	)
	m, err := survey.Compute(rs)
	require.NoError(t, err)
	palette := []string{"#FF4136", "#FF851B", "#FFDC00", "#2ECC40", "#3D9970"}

	bar, err := chartspec.Build(chartspec.HorizontalBar, m, rs, chartspec.Style{Title: "bars", Palette: palette, Summary: "Average"})
	require.NoError(t, err)
	pie, err := chartspec.Build(chartspec.Pie, m, rs, chartspec.Style{Palette: palette, Explode: []float64{0.05, 0.02, 0, 0, 0.02}, ShowCategory: true})
	require.NoError(t, err)
	area, err := chartspec.Build(chartspec.StackedArea, m, rs, chartspec.Style{Palette: palette, Legend: true})
	require.NoError(t, err)

	out, err := layout.Compose([]layout.Panel{
		{Spec: bar, Position: layout.Position{Row: 1, Col: 1, ColSpan: 2}},
		{Spec: pie, Position: layout.At(2, 1)},
		{Spec: area, Position: layout.At(2, 2)},
	}, layout.Options{
		Title:   "Ratings",
		Grid:    layout.Grid{Rows: 3, Cols: 2},
		Size:    layout.Size{Width: 900, Height: 700},
		Summary: &layout.SummaryInput{Responses: rs, Metrics: m, Noun: "rating"},
		Footer:  "footer",
	})
	require.NoError(t, err)
	return out
}

// hasColor reports whether any pixel inside r matches c exactly.
func hasColor(img image.Image, r image.Rectangle, c drawing.Color) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if uint8(cr>>8) == c.R && uint8(cg>>8) == c.G && uint8(cb>>8) == c.B {
				return true
			}
		}
	}
	return false
}

func TestRenderRatingsFigure(t *testing.T) {
	pl := ratingLayout(t)
	img, err := New().Render(context.Background(), pl)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 900, 700), img.Bounds())

	green, err := ParseHex("#2ECC40")
	require.NoError(t, err)
	for _, p := range pl.Panels {
		r := pixelRect(p.Rect, 900, 700)
		assert.True(t, hasColor(img, r, green), "panel %s lacks the fourth category color", p.Spec.Kind)
	}
}

func TestRenderPNGWithWidth(t *testing.T) {
	pl := ratingLayout(t)
	var buf bytes.Buffer
	b := New(WithWidth(1200), WithStamp("sample"))
	require.NoError(t, b.RenderPNG(context.Background(), pl, &buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	w, h := b.Size(pl)
	assert.Equal(t, 1200, w)
	assert.Equal(t, image.Rect(0, 0, w, h), img.Bounds())
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Render(ctx, ratingLayout(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderDonutDefersFigureText(t *testing.T) {
	rs := survey.MustResponseSet(survey.Response{Label: "Yes", Count: 329}, survey.Response{Label: "No", Count: 38})
	m, err := survey.Compute(rs)
	require.NoError(t, err)
	spec, err := chartspec.Build(chartspec.Donut, m, rs, chartspec.Style{
		Palette:     []string{"#6A0DAD", "#1E90FF"},
		Gradient:    true,
		ShowTotal:   true,
		CenterLabel: "Survey\nResults",
		Legend:      true,
		LegendTitle: "Responses",
	})
	require.NoError(t, err)

	img, figTexts, err := New().RenderPanel(spec, "", 600, 420, drawing.ColorWhite)
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	require.Len(t, figTexts, 1)
	assert.Equal(t, "Total Responses: 367", figTexts[0].Text)

	purple, err := ParseHex("#6A0DAD")
	require.NoError(t, err)
	assert.True(t, hasColor(img, img.Bounds(), purple))
}

func TestRenderPanelRejects(t *testing.T) {
	_, _, err := New().RenderPanel(chartspec.ChartSpec{Kind: chartspec.Kind(42)}, "", 200, 200, drawing.ColorWhite)
	var uke *chartspec.UnsupportedKindError
	assert.True(t, errors.As(err, &uke))

	_, _, err = New().RenderPanel(chartspec.ChartSpec{Kind: chartspec.Pie}, "", 10, 10, drawing.ColorWhite)
	assert.Error(t, err)

	_, err = New().Render(context.Background(), layout.PanelLayout{})
	assert.ErrorIs(t, err, layout.ErrNoPanels)
}

func TestRenderPanelBadLegendColor(t *testing.T) {
	rs := survey.MustResponseSet(survey.Response{Label: "Yes", Count: 329}, survey.Response{Label: "No", Count: 38})
	m, err := survey.Compute(rs)
	require.NoError(t, err)
	style := chartspec.Style{Palette: []string{"#6A0DAD", "#D3D3D3"}, Legend: true}

	for _, kind := range []chartspec.Kind{chartspec.StackedArea, chartspec.Donut} {
		spec, err := chartspec.Build(kind, m, rs, style)
		require.NoError(t, err)
		require.NotEmpty(t, spec.Legend)

		_, _, err = New().RenderPanel(spec, "", 400, 300, drawing.ColorWhite)
		require.NoError(t, err, kind)

		spec.Legend[0].Color = chartspec.ColorRef{Hex: "#nothex"}
		_, _, err = New().RenderPanel(spec, "", 400, 300, drawing.ColorWhite)
		assert.ErrorContains(t, err, `legend "`, kind)
	}
}

func TestResolveColorGradient(t *testing.T) {
	ref := chartspec.ColorRef{Stops: []string{"#000000", "#FFFFFF"}, T: 0.5}
	c, err := ResolveColor(ref)
	require.NoError(t, err)
	assert.Equal(t, drawing.Color{R: 128, G: 128, B: 128, A: 255}, c)

	ref.T = 1
	c, err = ResolveColor(ref)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)

	three := chartspec.ColorRef{Stops: []string{"#FF0000", "#00FF00", "#0000FF"}, T: 0.75}
	c, err = ResolveColor(three)
	require.NoError(t, err)
	assert.Equal(t, drawing.Color{R: 0, G: 128, B: 128, A: 255}, c)

	_, err = ResolveColor(chartspec.ColorRef{Hex: "blue"})
	assert.Error(t, err)
	_, err = ParseHex("#12345G")
	assert.Error(t, err)
}

func TestPixelRectAndFrame(t *testing.T) {
	r := pixelRect(layout.Rect{X: 0.1, Y: 0.5, W: 0.4, H: 0.4}, 1000, 500)
	assert.Equal(t, image.Rect(100, 50, 500, 250), r)

	f := plotFrame{
		box: chart.Box{Left: 10, Top: 10, Right: 110, Bottom: 210},
		xr:  chartspec.AxisRange{Min: 0, Max: 10},
		yr:  chartspec.AxisRange{Min: 0, Max: 100},
	}
	x, y, ok := f.resolve(chartspec.DataPoint(5, 50))
	require.True(t, ok)
	assert.Equal(t, 60, x)
	assert.Equal(t, 110, y)

	x, y, ok = f.resolve(chartspec.AxesPoint(0.02, 0.05))
	require.True(t, ok)
	assert.Equal(t, 12, x)
	assert.Equal(t, 200, y)

	_, _, ok = f.resolve(chartspec.FigurePoint(0.5, 0.5))
	assert.False(t, ok)
	assert.Equal(t, image.Pt(500, 125), figurePixel(chartspec.FigurePoint(0.5, 0.75), 1000, 500))
}
