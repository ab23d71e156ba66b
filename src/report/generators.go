package report

import (
	"fmt"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/layout"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

var (
	adoptionGradient = []string{"#6A0DAD", "#4B0082", "#0000FF", "#1E90FF"}
	ratingPalette    = []string{"#FF4136", "#FF851B", "#FFDC00", "#2ECC40", "#3D9970"}
	ratingExplode    = []float64{0.05, 0.02, 0, 0, 0.02}
	subjectColor     = "#3498db"
)

const (
	figureBackground = "#f8f8f8"
	subjectAxisMax   = 80
)

func adoption(in Input) (layout.PanelLayout, error) {
	rs := in.Responses
	m, err := survey.Compute(rs)
	if err != nil {
		return layout.PanelLayout{}, err
	}
	palette := adoptionGradient
	if len(in.Palette) > 0 {
		palette = in.Palette
	}
	spec, err := chartspec.Build(chartspec.Donut, m, rs, chartspec.Style{
		Palette:       palette,
		Gradient:      true,
		LabelDistance: 0.8,
		HoleRadius:    0.4,
		CenterLabel:   "Survey\nResults",
		ShowTotal:     true,
		Legend:        true,
		LegendTitle:   "Responses",
	})
	if err != nil {
		return layout.PanelLayout{}, err
	}
	return layout.Compose([]layout.Panel{{Spec: spec, Position: layout.At(1, 1)}}, layout.Options{
		Title:      orDefault(in.Title, "Magic School Classroom Usage Survey"),
		Size:       sizeOr(in.Size, layout.Size{Width: 1000, Height: 700}),
		Background: figureBackground,
		Footer:     in.Footer,
	})
}

func ratings(in Input) (layout.PanelLayout, error) {
	rs := in.Responses
	m, err := survey.Compute(rs)
	if err != nil {
		return layout.PanelLayout{}, err
	}
	avg, ok := m.WeightedAverage()
	if !ok {
		// Compute leaves the average unset only when some label is not ordinal.
		_, err := survey.WeightedAverage(rs)
		return layout.PanelLayout{}, err
	}
	palette := ratingPalette
	if len(in.Palette) > 0 {
		palette = in.Palette
	}
	explode := in.Explode
	if explode == nil && rs.Len() == len(ratingExplode) {
		explode = ratingExplode
	}

	bars, err := chartspec.Build(chartspec.HorizontalBar, m, rs, chartspec.Style{
		Title:   "Distribution of Ratings (Horizontal Bar Chart)",
		XLabel:  "Number of Responses",
		YLabel:  "Rating",
		Palette: palette,
		Order:   chartspec.BottomUp,
		Summary: fmt.Sprintf("Average Rating: %.2f/%d", avg, m.MaxOrdinal),
	})
	if err != nil {
		return layout.PanelLayout{}, err
	}
	pie, err := chartspec.Build(chartspec.Pie, m, rs, chartspec.Style{
		Title:        "Rating Distribution (Pie Chart)",
		Palette:      palette,
		Explode:      explode,
		ShowCategory: true,
	})
	if err != nil {
		return layout.PanelLayout{}, err
	}
	area, err := chartspec.Build(chartspec.StackedArea, m, rs, chartspec.Style{
		Title:   "Cumulative Rating Distribution",
		XLabel:  "Rating",
		YLabel:  "Cumulative Count",
		Palette: palette,
		Legend:  true,
	})
	if err != nil {
		return layout.PanelLayout{}, err
	}

	groups := in.Groups
	if groups == nil {
		groups, err = defaultRatingGroups(rs, m.MaxOrdinal)
		if err != nil {
			return layout.PanelLayout{}, err
		}
	}
	title := orDefault(in.Title, "MagicSchool AI Classroom Experience Ratings")
	return layout.Compose([]layout.Panel{
		{Spec: bars, Position: layout.Position{Row: 1, Col: 1, ColSpan: 2}},
		{Spec: pie, Position: layout.At(2, 1)},
		{Spec: area, Position: layout.At(2, 2)},
	}, layout.Options{
		Title:      fmt.Sprintf("%s (n=%d)", title, m.Total),
		Grid:       layout.Grid{Rows: 3, Cols: 2},
		Size:       sizeOr(in.Size, layout.Size{Width: 1800, Height: 1400}),
		Background: figureBackground,
		Summary:    &layout.SummaryInput{Responses: rs, Metrics: m, Noun: "rating", Groups: groups},
		Footer:     in.Footer,
	})
}

// defaultRatingGroups splits a 1..max scale into its top two and bottom two ratings.
func defaultRatingGroups(rs survey.ResponseSet, maxOrd int) ([]layout.Group, error) {
	if maxOrd < 4 {
		return nil, nil
	}
	pos, err := layout.OrdinalGroup(fmt.Sprintf("Positive ratings (%d-%d)", maxOrd-1, maxOrd), maxOrd-1, maxOrd, rs)
	if err != nil {
		return nil, err
	}
	neg, err := layout.OrdinalGroup("Negative ratings (1-2)", 1, 2, rs)
	if err != nil {
		return nil, err
	}
	return []layout.Group{pos, neg}, nil
}

func subjects(in Input) (layout.PanelLayout, error) {
	rs := in.Responses
	m, err := survey.Compute(rs)
	if err != nil {
		return layout.PanelLayout{}, err
	}
	palette := []string{subjectColor}
	if len(in.Palette) > 0 {
		palette = in.Palette
	}
	valueMax := in.ValueMax
	if valueMax <= 0 && in.Respondents > 0 {
		valueMax = subjectAxisMax
		if shares, err := survey.Shares(rs, in.Respondents); err == nil {
			for _, s := range shares {
				if s >= valueMax {
					// a bar past the fixed axis would be clipped; let the builder pick
					valueMax = 0
					break
				}
			}
		}
	}
	spec, err := chartspec.Build(chartspec.HorizontalBar, m, rs, chartspec.Style{
		XLabel:     "Percentage of Students",
		Palette:    palette,
		Order:      chartspec.BottomUp,
		Label:      chartspec.SharePercent,
		ShareBase:  in.Respondents,
		BarPadding: 1,
		ValueMax:   valueMax,
	})
	if err != nil {
		return layout.PanelLayout{}, err
	}
	return layout.Compose([]layout.Panel{{Spec: spec, Position: layout.At(1, 1)}}, layout.Options{
		Title:      orDefault(in.Title, "Percentage of Students Using MagicSchool AI by Class"),
		Size:       sizeOr(in.Size, layout.Size{Width: 1000, Height: 600}),
		Background: "#ffffff",
		Footer:     in.Footer,
	})
}
