package chartspec

import (
	"fmt"
	"math"
	"strconv"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

// Build describes one chart of the given kind over rs. metrics must have been computed
// from rs.
func Build(kind Kind, metrics survey.Metrics, rs survey.ResponseSet, style Style) (ChartSpec, error) {
	if !kind.Valid() {
		return ChartSpec{}, &UnsupportedKindError{Kind: kind}
	}
	n := rs.Len()
	if n < kind.minCategories() {
		return ChartSpec{}, &InsufficientDataError{Kind: kind, Reason: "too few categories", Want: kind.minCategories(), Got: n}
	}
	if !metrics.Describes(rs) {
		return ChartSpec{}, &InsufficientDataError{Kind: kind, Reason: "metrics were computed from different responses"}
	}
	spec := ChartSpec{
		Kind:   kind,
		Title:  style.Title,
		XLabel: style.XLabel,
		YLabel: style.YLabel,
	}
	var err error
	switch kind {
	case Donut, Pie:
		err = buildCircular(&spec, metrics, rs, style)
	case HorizontalBar:
		err = buildBars(&spec, metrics, rs, style)
	case StackedArea:
		buildStacked(&spec, metrics, rs, style)
	}
	if err != nil {
		return ChartSpec{}, err
	}
	return spec, nil
}

func buildCircular(spec *ChartSpec, m survey.Metrics, rs survey.ResponseSet, style Style) error {
	n := rs.Len()
	explode := style.Explode
	if explode == nil {
		explode = make([]float64, n)
	} else if len(explode) != n {
		return &InsufficientDataError{Kind: spec.Kind, Reason: "explode offsets must match the category count", Want: n, Got: len(explode)}
	}

	geom := &PieGeometry{
		StartAngle:   style.startAngle(),
		LabelRadius:  style.labelDistance(),
		ShowCategory: style.ShowCategory,
	}
	if spec.Kind == Donut {
		geom.HoleRadius = style.holeRadius()
	}
	spec.Pie = geom

	maxExplode := 0.0
	for i := 0; i < n; i++ {
		r := rs.At(i)
		color := style.ColorAt(i, n)
		spec.Series = append(spec.Series, Entry{
			Label:  r.Label,
			Value:  float64(r.Count),
			Color:  color,
			Offset: explode[i],
		})
		maxExplode = math.Max(maxExplode, explode[i])

		mid := wedgeMidAngle(geom.StartAngle, m.PreviousCumulative(i), r.Count, m.Total)
		cos, sin := math.Cos(mid), math.Sin(mid)
		cx, cy := explode[i]*cos, explode[i]*sin
		spec.Annotations = append(spec.Annotations, Annotation{
			Text:   FormatPercent(m.Percentages[i]),
			Anchor: DataPoint(cx+geom.LabelRadius*cos, cy+geom.LabelRadius*sin),
			Role:   RoleWedgeLabel,
			HAlign: AlignCenter,
			VAlign: AlignMiddle,
		})
		if style.ShowCategory {
			h := AlignLeft
			if cos < 0 {
				h = AlignRight
			}
			spec.Annotations = append(spec.Annotations, Annotation{
				Text:   r.Label,
				Anchor: DataPoint(cx+categoryLabelRadius*cos, cy+categoryLabelRadius*sin),
				Role:   RoleCategory,
				HAlign: h,
				VAlign: AlignMiddle,
			})
		}
		if style.Legend {
			spec.Legend = append(spec.Legend, LegendEntry{
				Label: fmt.Sprintf("%s (%d/%d)", r.Label, r.Count, m.Total),
				Color: color,
			})
		}
	}
	spec.LegendTitle = style.LegendTitle

	if style.CenterLabel != "" {
		spec.Annotations = append(spec.Annotations, Annotation{
			Text:   style.CenterLabel,
			Anchor: DataPoint(0, 0),
			Role:   RoleCenterLabel,
			HAlign: AlignCenter,
			VAlign: AlignMiddle,
		})
	}
	if style.ShowTotal {
		spec.Annotations = append(spec.Annotations, Annotation{
			Text:   fmt.Sprintf("Total Responses: %d", m.Total),
			Anchor: style.totalAnchor(),
			Role:   RoleFootnote,
			HAlign: AlignLeft,
			VAlign: AlignBottom,
		})
	}

	extent := 1 + maxExplode + 0.1
	if style.ShowCategory {
		extent = categoryLabelRadius + maxExplode + 0.4
	}
	spec.XRange = &AxisRange{Min: -extent, Max: extent}
	spec.YRange = &AxisRange{Min: -extent, Max: extent}
	return nil
}

// categoryLabelRadius matches the usual outside-label distance of 1.1 radii.
const categoryLabelRadius = 1.1

// wedgeMidAngle returns, in radians, the middle of the wedge that starts after prev
// responses, turning counter-clockwise from start degrees.
func wedgeMidAngle(start float64, prev, count, total int) float64 {
	frac := (float64(prev) + float64(count)/2) / float64(total)
	return (start + 360*frac) * math.Pi / 180
}

func buildBars(spec *ChartSpec, m survey.Metrics, rs survey.ResponseSet, style Style) error {
	n := rs.Len()
	values := make([]float64, n)
	labels := make([]string, n)
	switch style.Label {
	case SharePercent:
		if style.ShareBase <= 0 {
			return &InsufficientDataError{Kind: spec.Kind, Reason: "share labels need a positive respondent base"}
		}
		shares, err := survey.Shares(rs, style.ShareBase)
		if err != nil {
			return &InsufficientDataError{Kind: spec.Kind, Reason: err.Error()}
		}
		for i, s := range shares {
			values[i] = s
			labels[i] = FormatPercent(s)
		}
	default:
		for i := 0; i < n; i++ {
			c := rs.At(i).Count
			values[i] = float64(c)
			labels[i] = FormatCountPercent(c, m.Percentages[i])
		}
	}

	pad := style.barPadding()
	maxVal := 0.0
	for i := 0; i < n; i++ {
		pos := float64(i)
		if style.Order == TopDown {
			pos = float64(n - 1 - i)
		}
		color := style.ColorAt(i, n)
		spec.Series = append(spec.Series, Entry{
			Label:    rs.At(i).Label,
			Value:    values[i],
			Color:    color,
			Position: pos,
		})
		spec.YTicks = append(spec.YTicks, Tick{Value: pos, Label: rs.At(i).Label})
		spec.Annotations = append(spec.Annotations, Annotation{
			Text:   labels[i],
			Anchor: DataPoint(values[i]+pad, pos),
			Role:   RoleBarLabel,
			HAlign: AlignLeft,
			VAlign: AlignMiddle,
		})
		maxVal = math.Max(maxVal, values[i])
	}
	if style.Summary != "" {
		spec.Annotations = append(spec.Annotations, Annotation{
			Text:   style.Summary,
			Anchor: style.summaryAnchor(),
			Role:   RoleSummary,
			HAlign: AlignLeft,
			VAlign: AlignBottom,
		})
	}

	xMax := style.ValueMax
	if xMax <= 0 {
		xMax = maxVal * valueHeadroom
		if xMax == 0 {
			xMax = 1
		}
	}
	spec.XRange = &AxisRange{Min: 0, Max: xMax}
	spec.YRange = &AxisRange{Min: -0.5, Max: float64(n) - 0.5}
	return nil
}

func buildStacked(spec *ChartSpec, m survey.Metrics, rs survey.ResponseSet, style Style) {
	n := rs.Len()
	for i := 0; i < n; i++ {
		r := rs.At(i)
		base := float64(m.PreviousCumulative(i))
		x := float64(i + 1)
		color := style.ColorAt(i, n)
		spec.Series = append(spec.Series, Entry{
			Label:    r.Label,
			Value:    float64(r.Count),
			Base:     base,
			Color:    color,
			Position: x,
		})
		spec.XTicks = append(spec.XTicks, Tick{Value: x, Label: r.Label})
		spec.Annotations = append(spec.Annotations, Annotation{
			Text:   strconv.Itoa(r.Count),
			Anchor: DataPoint(x, base+float64(r.Count)/2),
			Role:   RoleBandLabel,
			HAlign: AlignCenter,
			VAlign: AlignMiddle,
		})
		if style.Legend {
			spec.Legend = append(spec.Legend, LegendEntry{Label: r.Label, Color: color})
		}
	}
	spec.LegendTitle = style.LegendTitle
	spec.XRange = &AxisRange{Min: 0.5, Max: float64(n) + 0.5}
	spec.YRange = &AxisRange{Min: 0, Max: float64(m.Total)}
}
