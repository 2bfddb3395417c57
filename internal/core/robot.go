package core

// Robot occupies one grid cell and cleans dirt under a pluggable
// traversal strategy. It references the grid but does not own it.
type Robot struct {
	x, y     int
	grid     *Grid
	strategy Strategy
	display  Display
}

// NewRobot places a robot at (0,0) on the provided grid. The display
// may be nil, in which case steps render nothing.
func NewRobot(g *Grid, d Display) *Robot {
	return &Robot{grid: g, display: d}
}

// Position returns the robot's current coordinates.
func (r *Robot) Position() (int, int) { return r.x, r.y }

// Move relocates the robot to (x, y). It fails, leaving the position
// unchanged, when the target is out of bounds or an obstacle. A frame
// is rendered only on success.
func (r *Robot) Move(x, y int) bool {
	if !r.grid.InBounds(x, y) || r.grid.IsObstacle(x, y) {
		return false
	}
	r.x, r.y = x, y
	r.render()
	return true
}

// CleanCurrentSpot cleans the cell under the robot when it holds dirt.
// Anything else (empty, obstacle, already cleaned) is left untouched
// and renders no frame.
func (r *Robot) CleanCurrentSpot() {
	if !r.grid.IsDirt(r.x, r.y) {
		return
	}
	r.grid.Clean(r.x, r.y)
	r.render()
}

// SetStrategy replaces the active traversal strategy. The swap takes
// effect on the next StartCleaning call.
func (r *Robot) SetStrategy(s Strategy) { r.strategy = s }

// StartCleaning delegates a full traversal to the active strategy and
// returns when the scan order is exhausted. Without a strategy it is a
// no-op.
func (r *Robot) StartCleaning() {
	if r.strategy == nil {
		return
	}
	r.strategy.Clean(r, r.grid)
}

func (r *Robot) render() {
	if r.display != nil {
		r.display.Render(r.grid, r.x, r.y)
	}
}
