package sokoban

// Grid is a bounded rectangle of cells stored in row-major order
// (index = y*W + x). Reads outside the rectangle yield CellEmpty.
type Grid struct {
	W     int
	H     int
	cells []Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the cell at c, or CellEmpty when c is out of bounds.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return CellEmpty
	}
	return g.cells[c.Y*g.W+c.X]
}

// Set replaces the cell at c. Out of bounds writes are ignored.
func (g *Grid) Set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.cells[c.Y*g.W+c.X] = cell
	}
}

// Add sets flags on the cell at c.
func (g *Grid) Add(c Coord, flags Cell) {
	g.Set(c, g.Get(c)|flags)
}

// Clear removes flags from the cell at c.
func (g *Grid) Clear(c Coord, flags Cell) {
	g.Set(c, g.Get(c)&^flags)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells carrying all of the given flags.
func (g *Grid) Count(flags Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell&flags == flags {
			n++
		}
	}
	return n
}

// goalsCovered reports whether every goal cell holds an atom.
func (g *Grid) goalsCovered() bool {
	for _, cell := range g.cells {
		if cell.Has(CellGoal) && !cell.Has(CellAtom) {
			return false
		}
	}
	return true
}
