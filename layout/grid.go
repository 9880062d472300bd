package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/csg"
)

const methodGrid = "Grid"

// StaggerAxis selects whose parity drives the stagger offset.
type StaggerAxis int

const (
	// ByRow offsets odd rows.
	ByRow StaggerAxis = iota
	// ByColumn offsets odd columns.
	ByColumn
)

// Grid places Rows × Columns copies of Tile in the XY plane. Odd rows (or odd
// columns with ByColumn) are shifted by (StaggerX, StaggerY). The placement
// is centered on the midpoint of the extreme tile centers.
type Grid struct {
	Tile           csg.Solid
	Rows, Columns  int
	PitchX, PitchY float64

	StaggerX, StaggerY float64
	StaggerBy          StaggerAxis
}

// Cell is one placed grid tile.
type Cell struct {
	Row, Col int
	Center   r3.Vec
	Solid    csg.Solid
}

// GridPlacement is the row-major result of Grid.Place.
type GridPlacement struct {
	rows, cols int
	cells      []Cell
}

// Place lays out the grid. Zero rows or columns give an empty placement.
// Complexity: O(Rows*Columns).
func (g Grid) Place() (*GridPlacement, error) {
	if g.Tile == nil {
		return nil, fmt.Errorf("%s: nil tile: %w", methodGrid, ErrInvalidGrid)
	}
	if g.Rows < 0 || g.Columns < 0 {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, g.Rows, g.Columns, ErrInvalidGrid)
	}
	if g.PitchX <= 0 || g.PitchY <= 0 {
		return nil, fmt.Errorf("%s: pitch (%g, %g) must be > 0: %w", methodGrid, g.PitchX, g.PitchY, ErrInvalidGrid)
	}
	gp := &GridPlacement{rows: g.Rows, cols: g.Columns}
	if g.Rows == 0 || g.Columns == 0 {
		gp.rows, gp.cols = 0, 0
		return gp, nil
	}

	raw := make([]r3.Vec, 0, g.Rows*g.Columns)
	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Columns; c++ {
			parity := r % 2
			if g.StaggerBy == ByColumn {
				parity = c % 2
			}
			p := r3.Vec{
				X: float64(c)*g.PitchX + float64(parity)*g.StaggerX,
				Y: float64(r)*g.PitchY + float64(parity)*g.StaggerY,
			}
			lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
			hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
			raw = append(raw, p)
		}
	}
	mid := r3.Scale(0.5, r3.Add(lo, hi))
	gp.cells = make([]Cell, len(raw))
	for i, p := range raw {
		c := r3.Sub(p, mid)
		row, col := gp.Coordinate(i)
		gp.cells[i] = Cell{Row: row, Col: col, Center: c, Solid: csg.TranslateVec(g.Tile, c)}
	}
	return gp, nil
}

// Len returns the number of cells.
func (gp *GridPlacement) Len() int { return len(gp.cells) }

// Cells returns the cells in row-major order.
func (gp *GridPlacement) Cells() []Cell { return append([]Cell(nil), gp.cells...) }

// InBounds reports whether (row, col) lies in the grid.
func (gp *GridPlacement) InBounds(row, col int) bool {
	return row >= 0 && row < gp.rows && col >= 0 && col < gp.cols
}

// Index maps (row, col) to a row-major index: row*Columns + col.
func (gp *GridPlacement) Index(row, col int) int { return row*gp.cols + col }

// Coordinate converts a row-major index back to (row, col).
func (gp *GridPlacement) Coordinate(idx int) (row, col int) { return idx / gp.cols, idx % gp.cols }

// Cell returns the cell at (row, col).
func (gp *GridPlacement) Cell(row, col int) (Cell, bool) {
	if !gp.InBounds(row, col) {
		return Cell{}, false
	}
	return gp.cells[gp.Index(row, col)], true
}

// Solid returns the compound of every tile (empty for no cells).
func (gp *GridPlacement) Solid() csg.Solid {
	if len(gp.cells) == 0 {
		return csg.Empty()
	}
	ss := make([]csg.Solid, len(gp.cells))
	for i, c := range gp.cells {
		ss[i] = c.Solid
	}
	return csg.NewCompound(ss...)
}

// Members exposes the cells as a Placement so masks apply to grids too.
func (gp *GridPlacement) Members() *Placement {
	ms := make([]Member, len(gp.cells))
	for i, c := range gp.cells {
		ms[i] = Member{Index: i, Slot: c.Col, Center: c.Center, Solid: c.Solid}
	}
	return &Placement{members: ms}
}
