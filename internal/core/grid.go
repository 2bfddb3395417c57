package core

// Grid stores the cell states of a fixed W×H floor in row-major order.
// All coordinate-taking operations are total: out-of-bounds coordinates
// read as false/Empty and mutate nothing.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell state at (x, y), or Empty when out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[g.Index(x, y)]
}

// IsDirt reports whether (x, y) holds dirt.
func (g *Grid) IsDirt(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.Index(x, y)] == Dirt
}

// IsObstacle reports whether (x, y) holds an obstacle.
func (g *Grid) IsObstacle(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.Index(x, y)] == Obstacle
}

// AddDirt marks (x, y) as dirt, overwriting any prior state.
func (g *Grid) AddDirt(x, y int) {
	if g.InBounds(x, y) {
		g.cells[g.Index(x, y)] = Dirt
	}
}

// AddObstacle marks (x, y) as an obstacle, overwriting any prior state.
func (g *Grid) AddObstacle(x, y int) {
	if g.InBounds(x, y) {
		g.cells[g.Index(x, y)] = Obstacle
	}
}

// Clean marks (x, y) as cleaned regardless of its prior state. Callers
// are expected to check IsDirt first; the grid does not.
func (g *Grid) Clean(x, y int) {
	if g.InBounds(x, y) {
		g.cells[g.Index(x, y)] = Cleaned
	}
}
