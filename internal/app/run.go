package app

import "gridsweep/internal/core"

// Run drives a full simulation on the provided grid: one initial frame,
// then each strategy to completion in the given order, reusing a single
// robot so later strategies resume from wherever the previous one
// finished.
func Run(g *core.Grid, d core.Display, order []core.Strategy) {
	robot := core.NewRobot(g, d)
	if d != nil {
		x, y := robot.Position()
		d.Render(g, x, y)
	}
	for _, s := range order {
		robot.SetStrategy(s)
		robot.StartCleaning()
	}
}
