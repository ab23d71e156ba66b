package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

func ratingSet() survey.ResponseSet {
	return survey.MustResponseSet(
		survey.Response{Label: "1 (Poor)", Count: 26},
		survey.Response{Label: "2 (Below Average)", Count: 36},
		survey.Response{Label: "3 (Average)", Count: 78},
		survey.Response{Label: "4 (Good)", Count: 142},
		survey.Response{Label: "5 (Excellent)", Count: 47},
	)
}

func spec(kind chartspec.Kind, title string) chartspec.ChartSpec {
	return chartspec.ChartSpec{Kind: kind, Title: title}
}

func TestComposeCollision(t *testing.T) {
	_, err := Compose([]Panel{
		{Spec: spec(chartspec.Pie, "a"), Position: At(1, 1)},
		{Spec: spec(chartspec.HorizontalBar, "b"), Position: At(1, 1)},
	}, Options{})
	var pce *PanelCollisionError
	require.True(t, errors.As(err, &pce))
	assert.Equal(t, 1, pce.Row)
	assert.Equal(t, 1, pce.Col)
	assert.Equal(t, 0, pce.First)
	assert.Equal(t, 1, pce.Second)
}

func TestComposeSpanCollision(t *testing.T) {
	_, err := Compose([]Panel{
		{Spec: spec(chartspec.HorizontalBar, "wide"), Position: Position{Row: 1, Col: 1, ColSpan: 2}},
		{Spec: spec(chartspec.Pie, "right"), Position: At(1, 2)},
	}, Options{})
	var pce *PanelCollisionError
	require.True(t, errors.As(err, &pce))
	assert.Equal(t, 2, pce.Col)
}

func TestComposeRejectsBadInput(t *testing.T) {
	_, err := Compose(nil, Options{})
	assert.ErrorIs(t, err, ErrNoPanels)

	var ipe *InvalidPositionError
	_, err = Compose([]Panel{{Spec: spec(chartspec.Pie, ""), Position: At(0, 1)}}, Options{})
	assert.True(t, errors.As(err, &ipe))

	_, err = Compose([]Panel{{Spec: spec(chartspec.Pie, ""), Position: At(3, 1)}}, Options{Grid: Grid{Rows: 2, Cols: 1}})
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, Grid{Rows: 2, Cols: 1}, ipe.Grid)

	_, err = Compose([]Panel{{Spec: spec(chartspec.Pie, ""), Position: At(1, 1)}}, Options{Margins: Margins{Left: 0.5, Right: 0.4, Top: 1}})
	assert.Error(t, err)
}

func TestComposeRatingsGrid(t *testing.T) {
	out, err := Compose([]Panel{
		{Spec: spec(chartspec.HorizontalBar, "bars"), Position: Position{Row: 1, Col: 1, ColSpan: 2}},
		{Spec: spec(chartspec.Pie, "pie"), Position: At(2, 1), Title: "Rating Distribution"},
		{Spec: spec(chartspec.StackedArea, "area"), Position: At(2, 2)},
	}, Options{Title: "Ratings", Grid: Grid{Rows: 3, Cols: 2}})
	require.NoError(t, err)
	require.Len(t, out.Panels, 3)
	assert.Equal(t, DefaultSize, out.Size)

	bar, pie, area := out.Panels[0].Rect, out.Panels[1].Rect, out.Panels[2].Rect
	assert.InDelta(t, DefaultMargins.Top, bar.Y+bar.H, 1e-9)
	assert.InDelta(t, DefaultMargins.Left, bar.X, 1e-9)
	assert.InDelta(t, DefaultMargins.Right, bar.X+bar.W, 1e-9)
	assert.InDelta(t, pie.Y, area.Y, 1e-9)
	assert.InDelta(t, pie.W, area.W, 1e-9)
	assert.Greater(t, area.X, pie.X+pie.W)
	assert.Less(t, pie.Y+pie.H, bar.Y)
	// row 3 is left free
	assert.Greater(t, pie.Y, DefaultMargins.Bottom+pie.H)

	assert.Equal(t, "bars", out.Panels[0].Title)
	assert.Equal(t, "Rating Distribution", out.Panels[1].Title)
}

func TestComposeInfersGrid(t *testing.T) {
	out, err := Compose([]Panel{
		{Spec: spec(chartspec.Pie, ""), Position: At(1, 1)},
		{Spec: spec(chartspec.Pie, ""), Position: Position{Row: 2, Col: 1, ColSpan: 3}},
	}, Options{})
	require.NoError(t, err)
	assert.Equal(t, Grid{Rows: 2, Cols: 3}, out.Grid)
}

func TestComposeSingleFillsMargins(t *testing.T) {
	out, err := Compose([]Panel{{Spec: spec(chartspec.Donut, ""), Position: At(1, 1)}}, Options{Footer: "n=367"})
	require.NoError(t, err)
	r := out.Panels[0].Rect
	assert.InDelta(t, DefaultMargins.Right-DefaultMargins.Left, r.W, 1e-9)
	assert.InDelta(t, DefaultMargins.Top-DefaultMargins.Bottom, r.H, 1e-9)
	require.Len(t, out.Texts, 1)
	assert.Equal(t, chartspec.FigureFraction, out.Texts[0].Anchor.Space)
	assert.Nil(t, out.Summary)
}

func TestComposeSummaryIndependentOfPanels(t *testing.T) {
	rs := ratingSet()
	m, err := survey.Compute(rs)
	require.NoError(t, err)
	sum := &SummaryInput{Responses: rs, Metrics: m, Noun: "rating"}

	one, err := Compose([]Panel{{Spec: spec(chartspec.Pie, ""), Position: At(1, 1)}}, Options{Summary: sum})
	require.NoError(t, err)
	two, err := Compose([]Panel{
		{Spec: spec(chartspec.Pie, ""), Position: At(1, 1)},
		{Spec: spec(chartspec.StackedArea, ""), Position: At(2, 2)},
	}, Options{Summary: sum})
	require.NoError(t, err)

	require.NotNil(t, one.Summary)
	assert.Equal(t, chartspec.FigurePoint(0.5, 0.35), one.Summary.Anchor)
	assert.Equal(t, *one.Summary, *two.Summary)
}
