// Package layout arranges chart specs into a multi-panel figure description. It
// computes panel rectangles and figure-level text but never draws anything.
package layout

import "github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"

// Position is a 1-based grid slot. Zero spans mean 1.
type Position struct {
	Row     int `json:"row" yaml:"row"`
	Col     int `json:"col" yaml:"col"`
	RowSpan int `json:"row_span,omitempty" yaml:"row_span"`
	ColSpan int `json:"col_span,omitempty" yaml:"col_span"`
}

// At is shorthand for a single-cell position.
func At(row, col int) Position { return Position{Row: row, Col: col} }

func (p Position) rowSpan() int {
	if p.RowSpan <= 0 {
		return 1
	}
	return p.RowSpan
}

func (p Position) colSpan() int {
	if p.ColSpan <= 0 {
		return 1
	}
	return p.ColSpan
}

func (p Position) lastRow() int { return p.Row + p.rowSpan() - 1 }
func (p Position) lastCol() int { return p.Col + p.colSpan() - 1 }

// Grid is the panel grid size.
type Grid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Panel is one chart and where it goes. An empty Title falls back to the chart's title.
type Panel struct {
	Spec     chartspec.ChartSpec
	Position Position
	Title    string
}

// Rect is a rectangle in figure fractions, origin bottom-left.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// PlacedPanel is a panel with its resolved rectangle.
type PlacedPanel struct {
	Title    string              `json:"title,omitempty"`
	Position Position            `json:"position"`
	Rect     Rect                `json:"rect"`
	Spec     chartspec.ChartSpec `json:"spec"`
}

// TextBlock is figure-level text.
type TextBlock struct {
	Text   string           `json:"text"`
	Anchor chartspec.Anchor `json:"anchor"`
	HAlign chartspec.HAlign `json:"halign"`
	VAlign chartspec.VAlign `json:"valign"`
	Role   chartspec.Role   `json:"role"`
	// Boxed asks for a rounded background box behind the text.
	Boxed bool `json:"boxed,omitempty"`
}

// Size is the intended figure size in pixels. Renderers may scale it.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Margins are the subplot parameters in figure fractions. WSpace and HSpace are gaps
// relative to the average panel width and height.
type Margins struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
	WSpace float64 `json:"wspace"`
	HSpace float64 `json:"hspace"`
}

// DefaultMargins leave the top tenth of the figure for its title.
var DefaultMargins = Margins{Left: 0.08, Right: 0.95, Bottom: 0.07, Top: 0.90, WSpace: 0.25, HSpace: 0.4}

// Options configure Compose. The zero value composes an untitled figure with a grid
// just large enough for the panels.
type Options struct {
	Title      string
	Grid       Grid
	Size       Size
	Background string
	Margins    Margins
	Summary    *SummaryInput
	Footer     string
}

// PanelLayout is the finished figure description handed to a renderer.
type PanelLayout struct {
	Title      string        `json:"title,omitempty"`
	Size       Size          `json:"size"`
	Background string        `json:"background,omitempty"`
	Grid       Grid          `json:"grid"`
	Panels     []PlacedPanel `json:"panels"`
	Summary    *TextBlock    `json:"summary,omitempty"`
	Texts      []TextBlock   `json:"texts,omitempty"`
}

// DefaultSize is used when Options.Size is zero.
var DefaultSize = Size{Width: 1000, Height: 700}
