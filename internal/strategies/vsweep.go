package strategies

import "gridsweep/internal/core"

// VerticalSweep sweeps the floor column by column, alternating vertical
// direction each column.
type VerticalSweep struct{}

// Name returns the strategy identifier.
func (VerticalSweep) Name() string { return "vsweep" }

// Clean visits every cell in column-major order, descending even
// columns and ascending odd ones. Obstacle handling matches SPattern.
func (VerticalSweep) Clean(r *core.Robot, g *core.Grid) {
	size := g.Size()
	for x := 0; x < size.W; x++ {
		if x%2 == 0 {
			for y := 0; y < size.H; y++ {
				visit(r, x, y)
			}
			continue
		}
		for y := size.H - 1; y >= 0; y-- {
			visit(r, x, y)
		}
	}
}

func init() {
	core.Register("vsweep", VerticalSweep{})
}
