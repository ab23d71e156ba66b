// Package chartspec turns survey metrics into declarative, renderer-agnostic chart
// descriptions: which shape, which color per category, where every label goes.
package chartspec

// ColorRef is either a literal hex color or a position on a gradient through Stops.
// Gradient interpolation is left to the renderer.
type ColorRef struct {
	Hex   string   `json:"hex,omitempty"`
	Stops []string `json:"stops,omitempty"`
	T     float64  `json:"t,omitempty"`
}

// IsGradient reports whether the color is a gradient sample.
func (c ColorRef) IsGradient() bool { return len(c.Stops) > 0 }

// Entry is one wedge, bar or band.
type Entry struct {
	Label string   `json:"label"`
	Value float64  `json:"value"`
	Base  float64  `json:"base"`
	Color ColorRef `json:"color"`
	// Offset is the radial explode of a wedge.
	Offset float64 `json:"offset"`
	// Position is the category coordinate of a bar or band.
	Position float64 `json:"position"`
}

// Top is where the entry ends on its value axis.
func (e Entry) Top() float64 { return e.Base + e.Value }

// AxisRange is an inclusive data range on one axis.
type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span returns Max-Min.
func (r AxisRange) Span() float64 { return r.Max - r.Min }

// Tick is a labelled position on an axis.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// LegendEntry pairs legend text with the color of its series entry.
type LegendEntry struct {
	Label string   `json:"label"`
	Color ColorRef `json:"color"`
}

// PieGeometry carries the circular-chart parameters. Radii are in data units where
// the outer radius is 1.
type PieGeometry struct {
	StartAngle   float64 `json:"start_angle"`
	HoleRadius   float64 `json:"hole_radius"`
	LabelRadius  float64 `json:"label_radius"`
	ShowCategory bool    `json:"show_category"`
}

// ChartSpec is everything a renderer needs to draw one chart.
type ChartSpec struct {
	Kind        Kind          `json:"kind"`
	Title       string        `json:"title,omitempty"`
	Series      []Entry       `json:"series"`
	Annotations []Annotation  `json:"annotations,omitempty"`
	XRange      *AxisRange    `json:"x_range,omitempty"`
	YRange      *AxisRange    `json:"y_range,omitempty"`
	XTicks      []Tick        `json:"x_ticks,omitempty"`
	YTicks      []Tick        `json:"y_ticks,omitempty"`
	XLabel      string        `json:"x_label,omitempty"`
	YLabel      string        `json:"y_label,omitempty"`
	Legend      []LegendEntry `json:"legend,omitempty"`
	LegendTitle string        `json:"legend_title,omitempty"`
	Pie         *PieGeometry  `json:"pie,omitempty"`
}

// AnnotationsByRole returns the annotations with the given role, in order.
func (s ChartSpec) AnnotationsByRole(role Role) []Annotation {
	var out []Annotation
	for _, a := range s.Annotations {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out
}
