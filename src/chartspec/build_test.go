package chartspec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

func ratings(t *testing.T) (survey.ResponseSet, survey.Metrics) {
	t.Helper()
	rs, err := survey.NewResponseSet(
		survey.Response{Label: "1 (Not at all)", Count: 26},
		survey.Response{Label: "2", Count: 36},
		survey.Response{Label: "3", Count: 78},
		survey.Response{Label: "4", Count: 142},
		survey.Response{Label: "5 (Very)", Count: 47},
	)
	require.NoError(t, err)
	m, err := survey.Compute(rs)
	require.NoError(t, err)
	return rs, m
}

func adoption(t *testing.T) (survey.ResponseSet, survey.Metrics) {
	t.Helper()
	rs, err := survey.NewResponseSet(
		survey.Response{Label: "Yes", Count: 329},
		survey.Response{Label: "No", Count: 38},
	)
	require.NoError(t, err)
	m, err := survey.Compute(rs)
	require.NoError(t, err)
	return rs, m
}

func TestStackedAreaBases(t *testing.T) {
	rs, m := ratings(t)
	spec, err := Build(StackedArea, m, rs, Style{})
	require.NoError(t, err)
	require.Len(t, spec.Series, 5)

	prev := 0.0
	for i, e := range spec.Series {
		assert.Equal(t, prev, e.Base, "band %d base", i)
		assert.Equal(t, float64(i+1), e.Position)
		prev += e.Value
	}
	assert.Equal(t, float64(m.Total), spec.Series[4].Top())
	assert.Equal(t, AxisRange{Min: 0, Max: 329}, *spec.YRange)
	assert.Equal(t, AxisRange{Min: 0.5, Max: 5.5}, *spec.XRange)

	bands := spec.AnnotationsByRole(RoleBandLabel)
	require.Len(t, bands, 5)
	assert.Equal(t, "142", bands[3].Text)
	assert.Equal(t, DataPoint(4, 140+71), bands[3].Anchor)
}

func TestStackedAreaNeedsTwoCategories(t *testing.T) {
	rs := survey.MustResponseSet(survey.Response{Label: "Only", Count: 3})
	m, err := survey.Compute(rs)
	require.NoError(t, err)

	_, err = Build(StackedArea, m, rs, Style{})
	var ide *InsufficientDataError
	require.True(t, errors.As(err, &ide))
	assert.Equal(t, 2, ide.Want)
	assert.Equal(t, 1, ide.Got)

	// the same single category is a valid pie
	_, err = Build(Pie, m, rs, Style{})
	assert.NoError(t, err)
}

func TestExplodeLengthMismatch(t *testing.T) {
	rs, m := ratings(t)
	_, err := Build(Pie, m, rs, Style{Explode: []float64{0.05, 0.02}})
	var ide *InsufficientDataError
	require.True(t, errors.As(err, &ide))
	assert.Equal(t, 5, ide.Want)
	assert.Equal(t, 2, ide.Got)
}

func TestUnsupportedKind(t *testing.T) {
	rs, m := adoption(t)
	_, err := Build(Kind(99), m, rs, Style{})
	var uke *UnsupportedKindError
	require.True(t, errors.As(err, &uke))
	assert.Equal(t, Kind(99), uke.Kind)

	_, err = ParseKind("radar")
	require.True(t, errors.As(err, &uke))
	assert.Equal(t, "radar", uke.Name)
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"donut":          Donut,
		"Doughnut":       Donut,
		"pie":            Pie,
		"hbar":           HorizontalBar,
		"horizontal_bar": HorizontalBar,
		" area ":         StackedArea,
		"stacked_area":   StackedArea,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		again, err := ParseKind(got.String())
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}
}

func TestKindJSON(t *testing.T) {
	b, err := HorizontalBar.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"horizontal_bar"`, string(b))

	var k Kind
	require.NoError(t, k.UnmarshalJSON([]byte(`"donut"`)))
	assert.Equal(t, Donut, k)
	assert.Error(t, k.UnmarshalJSON([]byte(`"radar"`)))
}

func TestMismatchedMetricsRejected(t *testing.T) {
	rs, _ := ratings(t)
	_, other := adoption(t)
	_, err := Build(HorizontalBar, other, rs, Style{})
	var ide *InsufficientDataError
	assert.True(t, errors.As(err, &ide))
}

func TestWedgeLabels(t *testing.T) {
	rs, m := adoption(t)
	spec, err := Build(Donut, m, rs, Style{
		CenterLabel: "Survey\nResults",
		ShowTotal:   true,
		Legend:      true,
	})
	require.NoError(t, err)

	wedges := spec.AnnotationsByRole(RoleWedgeLabel)
	require.Len(t, wedges, 2)
	assert.Equal(t, "89.6%", wedges[0].Text)
	assert.Equal(t, "10.4%", wedges[1].Text)
	for _, w := range wedges {
		assert.Equal(t, DataSpace, w.Anchor.Space)
	}

	// the dominant Yes wedge is centred opposite its start, so its label sits low-left
	assert.Less(t, wedges[0].Anchor.Y, 0.0)
	// No closes the circle just right of twelve o'clock
	assert.Greater(t, wedges[1].Anchor.X, 0.0)
	assert.Greater(t, wedges[1].Anchor.Y, 0.5)

	center := spec.AnnotationsByRole(RoleCenterLabel)
	require.Len(t, center, 1)
	assert.Equal(t, DataPoint(0, 0), center[0].Anchor)

	foot := spec.AnnotationsByRole(RoleFootnote)
	require.Len(t, foot, 1)
	assert.Equal(t, "Total Responses: 367", foot[0].Text)
	assert.Equal(t, FigureFraction, foot[0].Anchor.Space)

	require.Len(t, spec.Legend, 2)
	assert.Equal(t, "Yes (329/367)", spec.Legend[0].Label)
	require.NotNil(t, spec.Pie)
	assert.Equal(t, 0.4, spec.Pie.HoleRadius)
	assert.Equal(t, 90.0, spec.Pie.StartAngle)
}

func TestExplicitZeroStartAngle(t *testing.T) {
	rs := survey.MustResponseSet(
		survey.Response{Label: "A", Count: 1},
		survey.Response{Label: "B", Count: 1},
	)
	m, err := survey.Compute(rs)
	require.NoError(t, err)

	spec, err := Build(Pie, m, rs, Style{StartAngle: Degrees(0), LabelDistance: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, spec.Pie.StartAngle)
	wedges := spec.AnnotationsByRole(RoleWedgeLabel)
	require.Len(t, wedges, 2)
	// A spans 0..180 degrees, B spans 180..360
	assert.InDelta(t, 0, wedges[0].Anchor.X, 1e-9)
	assert.InDelta(t, 0.5, wedges[0].Anchor.Y, 1e-9)
	assert.InDelta(t, -0.5, wedges[1].Anchor.Y, 1e-9)

	spec, err = Build(Pie, m, rs, Style{LabelDistance: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 90.0, spec.Pie.StartAngle)
	assert.InDelta(t, -0.5, spec.AnnotationsByRole(RoleWedgeLabel)[0].Anchor.X, 1e-9)
}

func TestWedgeLabelFollowsExplode(t *testing.T) {
	rs := survey.MustResponseSet(
		survey.Response{Label: "A", Count: 1},
		survey.Response{Label: "B", Count: 1},
	)
	m, err := survey.Compute(rs)
	require.NoError(t, err)

	spec, err := Build(Pie, m, rs, Style{Explode: []float64{0.1, 0}, LabelDistance: 0.5})
	require.NoError(t, err)
	wedges := spec.AnnotationsByRole(RoleWedgeLabel)
	// A is the left half: mid angle 180 degrees
	assert.InDelta(t, -0.6, wedges[0].Anchor.X, 1e-9)
	assert.InDelta(t, 0, wedges[0].Anchor.Y, 1e-9)
	assert.InDelta(t, 0.5, wedges[1].Anchor.X, 1e-9)
	assert.Equal(t, 0.0, spec.Pie.HoleRadius)
	assert.InDelta(t, 1.2, spec.XRange.Max, 1e-9)
}

func TestBarAnnotations(t *testing.T) {
	rs, m := adoption(t)
	spec, err := Build(HorizontalBar, m, rs, Style{Summary: "Key Insights"})
	require.NoError(t, err)

	bars := spec.AnnotationsByRole(RoleBarLabel)
	require.Len(t, bars, 2)
	assert.Equal(t, "329 (89.6%)", bars[0].Text)
	assert.Equal(t, DataPoint(332, 1), bars[0].Anchor)
	assert.Equal(t, "38 (10.4%)", bars[1].Text)
	assert.Equal(t, DataPoint(41, 0), bars[1].Anchor)

	summary := spec.AnnotationsByRole(RoleSummary)
	require.Len(t, summary, 1)
	assert.Equal(t, AxesPoint(0.02, 0.05), summary[0].Anchor)

	assert.InDelta(t, 329*1.15, spec.XRange.Max, 1e-9)
	assert.Equal(t, AxisRange{Min: -0.5, Max: 1.5}, *spec.YRange)
	assert.Equal(t, []Tick{{Value: 1, Label: "Yes"}, {Value: 0, Label: "No"}}, spec.YTicks)
}

func TestBarBottomUp(t *testing.T) {
	rs, m := adoption(t)
	spec, err := Build(HorizontalBar, m, rs, Style{Order: BottomUp, BarPadding: 1, ValueMax: 400})
	require.NoError(t, err)
	assert.Equal(t, 0.0, spec.Series[0].Position)
	assert.Equal(t, DataPoint(330, 0), spec.AnnotationsByRole(RoleBarLabel)[0].Anchor)
	assert.Equal(t, 400.0, spec.XRange.Max)
}

func TestBarShareMode(t *testing.T) {
	rs := survey.MustResponseSet(
		survey.Response{Label: "English", Count: 737},
		survey.Response{Label: "Math", Count: 84},
	)
	m, err := survey.Compute(rs)
	require.NoError(t, err)

	spec, err := Build(HorizontalBar, m, rs, Style{Label: SharePercent, ShareBase: 1000})
	require.NoError(t, err)
	assert.InDelta(t, 73.7, spec.Series[0].Value, 1e-9)
	bars := spec.AnnotationsByRole(RoleBarLabel)
	assert.Equal(t, "73.7%", bars[0].Text)
	assert.Equal(t, "8.4%", bars[1].Text)

	_, err = Build(HorizontalBar, m, rs, Style{Label: SharePercent})
	var ide *InsufficientDataError
	assert.True(t, errors.As(err, &ide))

	_, err = Build(HorizontalBar, m, rs, Style{Label: SharePercent, ShareBase: 500})
	assert.True(t, errors.As(err, &ide))
}

func TestReorderChangesSeriesOrder(t *testing.T) {
	ab := survey.MustResponseSet(survey.Response{Label: "A", Count: 1}, survey.Response{Label: "B", Count: 2})
	ba := survey.MustResponseSet(survey.Response{Label: "B", Count: 2}, survey.Response{Label: "A", Count: 1})
	m1, err := survey.Compute(ab)
	require.NoError(t, err)
	m2, err := survey.Compute(ba)
	require.NoError(t, err)

	s1, err := Build(Pie, m1, ab, Style{})
	require.NoError(t, err)
	s2, err := Build(Pie, m2, ba, Style{})
	require.NoError(t, err)

	assert.Equal(t, "A", s1.Series[0].Label)
	assert.Equal(t, "B", s2.Series[0].Label)
	assert.NotEqual(t, s1.Series, s2.Series)
	// colors follow position, not label
	assert.Equal(t, s1.Series[0].Color, s2.Series[0].Color)
}

func TestPaletteCycles(t *testing.T) {
	s := Style{Palette: []string{"#111111", "#222222"}}
	assert.Equal(t, "#111111", s.ColorAt(0, 3).Hex)
	assert.Equal(t, "#222222", s.ColorAt(1, 3).Hex)
	assert.Equal(t, "#111111", s.ColorAt(2, 3).Hex)

	assert.Equal(t, DefaultPalette[0], Style{}.ColorAt(0, 1).Hex)
}

func TestGradientColors(t *testing.T) {
	s := Style{Palette: []string{"#6A0DAD", "#1E90FF"}, Gradient: true}
	c := s.ColorAt(1, 4)
	require.True(t, c.IsGradient())
	assert.Equal(t, 0.25, c.T)
	assert.Equal(t, []string{"#6A0DAD", "#1E90FF"}, c.Stops)

	s.Palette[0] = "#000000"
	assert.Equal(t, "#6A0DAD", c.Stops[0])
}

func TestCategoryLabelsWidenExtent(t *testing.T) {
	rs, m := adoption(t)
	spec, err := Build(Pie, m, rs, Style{ShowCategory: true})
	require.NoError(t, err)
	cats := spec.AnnotationsByRole(RoleCategory)
	require.Len(t, cats, 2)
	assert.Equal(t, "Yes", cats[0].Text)
	assert.InDelta(t, 1.5, spec.XRange.Max, 1e-9)
}
