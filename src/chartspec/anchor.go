package chartspec

import "fmt"

// Space names the coordinate system an Anchor is expressed in.
type Space string

const (
	// DataSpace coordinates are chart values (counts, category indices, pie units).
	DataSpace Space = "data"
	// AxesFraction coordinates are 0..1 over the panel's plot box, origin bottom-left.
	AxesFraction Space = "axes"
	// FigureFraction coordinates are 0..1 over the whole figure, origin bottom-left.
	FigureFraction Space = "figure"
)

// Anchor is a tagged point: the same X/Y pair means different places depending on
// Space.
type Anchor struct {
	Space Space   `json:"space"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func DataPoint(x, y float64) Anchor   { return Anchor{Space: DataSpace, X: x, Y: y} }
func AxesPoint(fx, fy float64) Anchor { return Anchor{Space: AxesFraction, X: fx, Y: fy} }
func FigurePoint(fx, fy float64) Anchor {
	return Anchor{Space: FigureFraction, X: fx, Y: fy}
}

func (a Anchor) String() string {
	return fmt.Sprintf("%s(%.3g,%.3g)", a.Space, a.X, a.Y)
}

// HAlign is horizontal text alignment relative to the anchor.
type HAlign string

// VAlign is vertical text alignment relative to the anchor.
type VAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"

	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "middle"
	AlignBottom VAlign = "bottom"
)

// Role tells the renderer what an annotation is for, so it can pick a text style.
type Role string

const (
	RoleWedgeLabel  Role = "wedge_label"
	RoleBarLabel    Role = "bar_label"
	RoleBandLabel   Role = "band_label"
	RoleCenterLabel Role = "center_label"
	RoleCategory    Role = "category_label"
	RoleSummary     Role = "summary"
	RoleFootnote    Role = "footnote"
)

// Annotation is a piece of text placed at an anchor.
type Annotation struct {
	Text   string `json:"text"`
	Anchor Anchor `json:"anchor"`
	Role   Role   `json:"role"`
	HAlign HAlign `json:"halign"`
	VAlign VAlign `json:"valign"`
}
