// Package strategies provides the built-in boustrophedon traversal
// policies and registers them with the core registry.
package strategies

import "gridsweep/internal/core"

// SPattern sweeps the floor row by row, alternating horizontal
// direction each row.
type SPattern struct{}

// Name returns the strategy identifier.
func (SPattern) Name() string { return "spattern" }

// Clean visits every cell in row-major order with the horizontal
// direction flipping on every row, obstacles or not. Cells the robot
// cannot enter are skipped without rerouting.
func (SPattern) Clean(r *core.Robot, g *core.Grid) {
	size := g.Size()
	for y := 0; y < size.H; y++ {
		if y%2 == 0 {
			for x := 0; x < size.W; x++ {
				visit(r, x, y)
			}
			continue
		}
		for x := size.W - 1; x >= 0; x-- {
			visit(r, x, y)
		}
	}
}

// visit attempts one step of the scan order: move onto the cell, and
// only on success attempt a clean. A failed move leaves the robot where
// it was and the scan proceeds to the next index.
func visit(r *core.Robot, x, y int) {
	if r.Move(x, y) {
		r.CleanCurrentSpot()
	}
}

func init() {
	core.Register("spattern", SPattern{})
}
