// Package grid provides the tile primitives for the ruin map.
// It contains no external dependencies to keep the world model pure
// and testable.
package grid

// Cell is the type of a single map tile.
type Cell uint8

const (
	// Wall blocks movement. It is the zero value so a fresh grid is
	// solid rock until the generator carves into it.
	Wall Cell = iota
	// Floor is open ground the warden and guardians can occupy.
	Floor
)

// String returns a human-readable name for the cell type.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	default:
		return "unknown"
	}
}

// Grid represents the ruin map as a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Cells []Cell // Flat array of cells, length W*H
}

// New creates a grid of the given dimensions filled with walls.
func New(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
}

// index converts a point to a flat array index.
func (g *Grid) index(p Point) int {
	return p.Y*g.W + p.X
}

// InBounds returns true if the point is within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// At returns the cell at the given point.
// Out-of-bounds points read as Wall, so everything beyond the map
// edge blocks movement.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.Cells[g.index(p)]
}

// Set replaces the cell at the given point. Out-of-bounds sets are ignored.
func (g *Grid) Set(p Point, c Cell) {
	if g.InBounds(p) {
		g.Cells[g.index(p)] = c
	}
}

// IsFloor returns true when the point is in bounds and open ground.
func (g *Grid) IsFloor(p Point) bool {
	return g.At(p) == Floor
}

// FloorCells returns every floor cell ordered by row then column.
// The ordering is part of the contract: placement draws positions from
// this list, so it must be stable for a given grid.
func (g *Grid) FloorCells() []Point {
	cells := make([]Point, 0, len(g.Cells))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := Pt(x, y)
			if g.Cells[g.index(p)] == Floor {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// FloorCount returns the number of floor cells in the grid.
func (g *Grid) FloorCount() int {
	count := 0
	for _, c := range g.Cells {
		if c == Floor {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}
