package chartspec

// BarOrder decides whether the first category is drawn at the top or the bottom.
type BarOrder int

const (
	TopDown BarOrder = iota
	BottomUp
)

// BarLabel selects the per-bar annotation text.
type BarLabel int

const (
	// CountAndPercent renders "{count} ({pct:.1f}%)".
	CountAndPercent BarLabel = iota
	// SharePercent renders "{share:.1f}%" where share is count over Style.ShareBase.
	SharePercent
)

// Style is the caller-side configuration of a chart. The zero value is usable; the
// defaults below reproduce the report figures.
type Style struct {
	Title  string
	XLabel string
	YLabel string

	// Palette colors are assigned by category position, cycling when categories
	// outnumber colors. With Gradient set the palette is a list of gradient stops and
	// category i samples it at i/n.
	Palette  []string
	Gradient bool

	// Pie and donut.
	Explode       []float64 // nil means no explode; otherwise one value per category
	LabelDistance float64   // fraction of the radius, default 0.6
	StartAngle    *float64  // degrees, nil means 90
	HoleRadius    float64   // donut only, default 0.4
	CenterLabel   string
	ShowTotal     bool
	TotalAnchor   *Anchor // default FigurePoint(0.05, 0.05)
	ShowCategory  bool    // draw category labels outside the wedges
	Legend        bool
	LegendTitle   string

	// Horizontal bar.
	BarPadding    float64 // data units right of the bar end, default 3
	Order         BarOrder
	Label         BarLabel
	ShareBase     int
	ValueMax      float64 // value-axis maximum; 0 picks 1.15 * largest value
	Summary       string
	SummaryAnchor *Anchor // default AxesPoint(0.02, 0.05)
}

// DefaultPalette is used when a style names none.
var DefaultPalette = []string{"#4a90d9", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6", "#1abc9c", "#e67e22", "#34495e"}

const (
	defaultLabelDistance = 0.6
	defaultStartAngle    = 90
	defaultHoleRadius    = 0.4
	defaultBarPadding    = 3
	valueHeadroom        = 1.15
)

func (s Style) palette() []string {
	if len(s.Palette) == 0 {
		return DefaultPalette
	}
	return s.Palette
}

// ColorAt returns the positional color for category i of n.
func (s Style) ColorAt(i, n int) ColorRef {
	p := s.palette()
	if s.Gradient {
		stops := make([]string, len(p))
		copy(stops, p)
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		return ColorRef{Stops: stops, T: t}
	}
	return ColorRef{Hex: p[i%len(p)]}
}

func (s Style) labelDistance() float64 {
	if s.LabelDistance <= 0 {
		return defaultLabelDistance
	}
	return s.LabelDistance
}

func (s Style) startAngle() float64 {
	if s.StartAngle == nil {
		return defaultStartAngle
	}
	return *s.StartAngle
}

// Degrees returns a pointer to d, for Style.StartAngle.
func Degrees(d float64) *float64 { return &d }

func (s Style) holeRadius() float64 {
	if s.HoleRadius <= 0 {
		return defaultHoleRadius
	}
	return s.HoleRadius
}

func (s Style) barPadding() float64 {
	if s.BarPadding == 0 {
		return defaultBarPadding
	}
	return s.BarPadding
}

func (s Style) totalAnchor() Anchor {
	if s.TotalAnchor != nil {
		return *s.TotalAnchor
	}
	return FigurePoint(0.05, 0.05)
}

func (s Style) summaryAnchor() Anchor {
	if s.SummaryAnchor != nil {
		return *s.SummaryAnchor
	}
	return AxesPoint(0.02, 0.05)
}
