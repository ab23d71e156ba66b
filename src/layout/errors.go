package layout

import (
	"errors"
	"fmt"
)

// ErrNoPanels is returned when Compose is given nothing to place.
var ErrNoPanels = errors.New("layout needs at least one panel")

// PanelCollisionError is returned when two panels claim the same grid cell.
type PanelCollisionError struct {
	Row, Col      int
	First, Second int // panel indices in the Compose argument
}

func (e *PanelCollisionError) Error() string {
	return fmt.Sprintf("panels %d and %d both claim grid cell (%d,%d)", e.First, e.Second, e.Row, e.Col)
}

// InvalidPositionError is returned for a position that is not 1-based or does not fit
// the grid.
type InvalidPositionError struct {
	Panel    int
	Position Position
	Grid     Grid
}

func (e *InvalidPositionError) Error() string {
	if e.Grid.Rows > 0 {
		return fmt.Sprintf("panel %d position %+v does not fit a %dx%d grid", e.Panel, e.Position, e.Grid.Rows, e.Grid.Cols)
	}
	return fmt.Sprintf("panel %d has invalid position %+v", e.Panel, e.Position)
}
