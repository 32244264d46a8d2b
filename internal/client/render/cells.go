package render

import (
	"math"

	"github.com/yourusername/botfield/internal/protocol"
)

// Cell is one terminal character of a CellGrid
type Cell struct {
	Paint Paint
	Set   bool // false after Clear until something paints the cell
}

// CellGrid is a terminal surface: each cell covers ScaleX x ScaleY world units.
// Terminal cells are roughly twice as tall as wide, hence the two scales.
type CellGrid struct {
	ScaleX, ScaleY float64

	size       int
	cols, rows int
	cells      []Cell
}

// NewCellGrid creates a grid for a mapSize world
func NewCellGrid(mapSize int, scaleX, scaleY float64) *CellGrid {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	g := &CellGrid{ScaleX: scaleX, ScaleY: scaleY}
	g.Resize(mapSize)
	return g
}

func (g *CellGrid) Size() int { return g.size }

// Dims returns the grid size in cells
func (g *CellGrid) Dims() (cols, rows int) { return g.cols, g.rows }

func (g *CellGrid) Resize(mapSize int) {
	if mapSize < 0 {
		mapSize = 0
	}
	if mapSize > MaxSize {
		return
	}
	if g.cells != nil && mapSize == g.size {
		return
	}
	g.size = mapSize
	g.cols = int(math.Ceil(float64(mapSize) / g.ScaleX))
	g.rows = int(math.Ceil(float64(mapSize) / g.ScaleY))
	g.cells = make([]Cell, g.cols*g.rows)
}

func (g *CellGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

func (g *CellGrid) Fill(p Paint) {
	for i := range g.cells {
		g.cells[i] = Cell{Paint: p, Set: true}
	}
}

// FillCircle paints every cell whose centre lies inside the circle, and
// always the cell holding the circle's centre so small circles stay visible.
func (g *CellGrid) FillCircle(center protocol.Point, radius float64, p Paint) {
	if radius <= 0 {
		return
	}
	g.set(g.cellOf(center), p)

	c0 := int(math.Floor((center.X - radius) / g.ScaleX))
	c1 := int(math.Floor((center.X + radius) / g.ScaleX))
	r0 := int(math.Floor((center.Y - radius) / g.ScaleY))
	r1 := int(math.Floor((center.Y + radius) / g.ScaleY))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * g.ScaleX
			cy := (float64(row) + 0.5) * g.ScaleY
			if math.Hypot(cx-center.X, cy-center.Y) <= radius {
				g.set([2]int{col, row}, p)
			}
		}
	}
}

// At returns the cell at col,row; ok is false outside the grid
func (g *CellGrid) At(col, row int) (Cell, bool) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return Cell{}, false
	}
	return g.cells[row*g.cols+col], true
}

// CellOffset converts a world offset into whole cells, rounding towards the
// origin so the world edge stays visible.
func (g *CellGrid) CellOffset(x, y float64) (col, row int) {
	return int(math.Floor(-x / g.ScaleX)), int(math.Floor(-y / g.ScaleY))
}

func (g *CellGrid) cellOf(p protocol.Point) [2]int {
	return [2]int{int(math.Floor(p.X / g.ScaleX)), int(math.Floor(p.Y / g.ScaleY))}
}

func (g *CellGrid) set(at [2]int, p Paint) {
	col, row := at[0], at[1]
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = Cell{Paint: p, Set: true}
}
