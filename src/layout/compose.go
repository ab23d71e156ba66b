package layout

import (
	"fmt"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
)

// Compose validates panel positions and resolves them into figure rectangles. It
// returns a new layout on every call and keeps no state between calls.
func Compose(panels []Panel, opts Options) (PanelLayout, error) {
	if len(panels) == 0 {
		return PanelLayout{}, ErrNoPanels
	}
	grid, err := resolveGrid(panels, opts.Grid)
	if err != nil {
		return PanelLayout{}, err
	}
	if err := checkCollisions(panels); err != nil {
		return PanelLayout{}, err
	}
	m := opts.Margins
	if m == (Margins{}) {
		m = DefaultMargins
	}
	if m.Left >= m.Right || m.Bottom >= m.Top || m.WSpace < 0 || m.HSpace < 0 {
		return PanelLayout{}, fmt.Errorf("layout: invalid margins %+v", m)
	}
	size := opts.Size
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}

	out := PanelLayout{
		Title:      opts.Title,
		Size:       size,
		Background: opts.Background,
		Grid:       grid,
		Panels:     make([]PlacedPanel, 0, len(panels)),
	}
	g := newGeometry(grid, m)
	for _, p := range panels {
		title := p.Title
		if title == "" {
			title = p.Spec.Title
		}
		out.Panels = append(out.Panels, PlacedPanel{
			Title:    title,
			Position: p.Position,
			Rect:     g.rect(p.Position),
			Spec:     p.Spec,
		})
	}

	if opts.Summary != nil {
		text, err := SummaryText(*opts.Summary)
		if err != nil {
			return PanelLayout{}, err
		}
		anchor := chartspec.FigurePoint(0.5, 0.35)
		if opts.Summary.Anchor != nil {
			anchor = *opts.Summary.Anchor
		}
		out.Summary = &TextBlock{
			Text:   text,
			Anchor: anchor,
			HAlign: chartspec.AlignCenter,
			VAlign: chartspec.AlignTop,
			Role:   chartspec.RoleSummary,
			Boxed:  true,
		}
	}
	if opts.Footer != "" {
		out.Texts = append(out.Texts, TextBlock{
			Text:   opts.Footer,
			Anchor: chartspec.FigurePoint(0.5, 0.015),
			HAlign: chartspec.AlignCenter,
			VAlign: chartspec.AlignBottom,
			Role:   chartspec.RoleFootnote,
		})
	}
	return out, nil
}

// resolveGrid checks positions and returns the explicit grid, or the smallest grid
// covering every panel when none is given.
func resolveGrid(panels []Panel, grid Grid) (Grid, error) {
	explicit := grid.Rows > 0 || grid.Cols > 0
	if explicit && (grid.Rows <= 0 || grid.Cols <= 0) {
		return Grid{}, fmt.Errorf("layout: invalid grid %dx%d", grid.Rows, grid.Cols)
	}
	need := Grid{}
	for i, p := range panels {
		pos := p.Position
		if pos.Row < 1 || pos.Col < 1 || pos.RowSpan < 0 || pos.ColSpan < 0 {
			return Grid{}, &InvalidPositionError{Panel: i, Position: pos}
		}
		if explicit && (pos.lastRow() > grid.Rows || pos.lastCol() > grid.Cols) {
			return Grid{}, &InvalidPositionError{Panel: i, Position: pos, Grid: grid}
		}
		need.Rows = max(need.Rows, pos.lastRow())
		need.Cols = max(need.Cols, pos.lastCol())
	}
	if explicit {
		return grid, nil
	}
	return need, nil
}

type cell struct{ row, col int }

func checkCollisions(panels []Panel) error {
	owner := make(map[cell]int)
	for i, p := range panels {
		pos := p.Position
		for r := pos.Row; r <= pos.lastRow(); r++ {
			for c := pos.Col; c <= pos.lastCol(); c++ {
				if j, taken := owner[cell{r, c}]; taken {
					return &PanelCollisionError{Row: r, Col: c, First: j, Second: i}
				}
				owner[cell{r, c}] = i
			}
		}
	}
	return nil
}

// geometry splits the area inside the margins into equal cells separated by gaps,
// the way subplot grids do.
type geometry struct {
	m     Margins
	cellW float64
	gapW  float64
	cellH float64
	gapH  float64
}

func newGeometry(grid Grid, m Margins) geometry {
	cols, rows := float64(grid.Cols), float64(grid.Rows)
	cellW := (m.Right - m.Left) / (cols + m.WSpace*(cols-1))
	cellH := (m.Top - m.Bottom) / (rows + m.HSpace*(rows-1))
	return geometry{
		m:     m,
		cellW: cellW,
		gapW:  cellW * m.WSpace,
		cellH: cellH,
		gapH:  cellH * m.HSpace,
	}
}

func (g geometry) rect(p Position) Rect {
	rs, cs := float64(p.rowSpan()), float64(p.colSpan())
	w := cs*g.cellW + (cs-1)*g.gapW
	h := rs*g.cellH + (rs-1)*g.gapH
	x := g.m.Left + float64(p.Col-1)*(g.cellW+g.gapW)
	top := g.m.Top - float64(p.Row-1)*(g.cellH+g.gapH)
	return Rect{X: x, Y: top - h, W: w, H: h}
}
