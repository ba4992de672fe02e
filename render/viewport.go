package render

import (
	"math"

	"github.com/lixenwraith/gaze/engine"
	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/vmath"
)

// Viewport maps between terminal cells and world units
// The constellation area starts below the header and ends above the status line
type Viewport struct {
	Cols, Rows   int
	CellW, CellH float64
}

// NewViewport creates a viewport for a screen of cols x rows cells
// Non-positive cell sizes fall back to the defaults
func NewViewport(cols, rows int, cellW, cellH float64) Viewport {
	if cellW <= 0 {
		cellW = parameter.CellWidth
	}
	if cellH <= 0 {
		cellH = parameter.CellHeight
	}
	return Viewport{Cols: cols, Rows: rows, CellW: cellW, CellH: cellH}
}

// AreaRows returns the number of rows available to the constellation
func (v Viewport) AreaRows() int {
	return max(v.Rows-parameter.HeaderHeight-parameter.StatusHeight, 0)
}

// World returns the world-unit size of the constellation area
func (v Viewport) World() engine.Viewport {
	return engine.Viewport{
		Width:  float64(v.Cols) * v.CellW,
		Height: float64(v.AreaRows()) * v.CellH,
	}
}

// ToWorld returns the world position of a cell's center, implements input.Projector
func (v Viewport) ToWorld(col, row int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(col) + 0.5) * v.CellW,
		Y: (float64(row-parameter.HeaderHeight) + 0.5) * v.CellH,
	}
}

// ToCellF returns fractional cell coordinates of a world position, in screen space
func (v Viewport) ToCellF(p vmath.Vec2) (float64, float64) {
	return p.X / v.CellW, p.Y/v.CellH + parameter.HeaderHeight
}

// ToCell returns the cell containing a world position
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	x, y := v.ToCellF(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

// InArea reports whether a screen cell lies inside the constellation area
func (v Viewport) InArea(col, row int) bool {
	return col >= 0 && col < v.Cols &&
		row >= parameter.HeaderHeight && row < parameter.HeaderHeight+v.AreaRows()
}
