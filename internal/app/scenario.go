package app

import "gridsweep/internal/core"

// Coord is a grid coordinate pair.
type Coord struct {
	X int
	Y int
}

// Scenario describes the initial floor layout the driver seeds.
type Scenario struct {
	Width     int
	Height    int
	Obstacles []Coord
	Dirt      []Coord
}

// DefaultScenario returns the fixed 20×10 demo layout.
func DefaultScenario() Scenario {
	return Scenario{
		Width:  20,
		Height: 10,
		Obstacles: []Coord{
			{X: 3, Y: 8},
			{X: 10, Y: 4},
			{X: 5, Y: 5},
			{X: 13, Y: 6},
		},
		Dirt: []Coord{
			{X: 2, Y: 2},
			{X: 4, Y: 5},
			{X: 7, Y: 7},
			{X: 12, Y: 3},
			{X: 17, Y: 6},
		},
	}
}

// Build allocates a grid and seeds the scenario's obstacles and dirt.
func (s Scenario) Build() *core.Grid {
	g := core.NewGrid(s.Width, s.Height)
	for _, o := range s.Obstacles {
		g.AddObstacle(o.X, o.Y)
	}
	for _, d := range s.Dirt {
		g.AddDirt(d.X, d.Y)
	}
	return g
}

// BuildScattered seeds the obstacles, then scatters as many dirt cells
// as the scenario lists onto random empty cells. Equal seeds produce
// identical grids.
func (s Scenario) BuildScattered(seed int64) *core.Grid {
	g := core.NewGrid(s.Width, s.Height)
	for _, o := range s.Obstacles {
		g.AddObstacle(o.X, o.Y)
	}
	rng := core.NewRNG(seed)
	size := g.Size()
	remaining := len(s.Dirt)
	for tries := 0; remaining > 0 && tries < size.W*size.H*10; tries++ {
		x := rng.IntN(size.W)
		y := rng.IntN(size.H)
		if g.At(x, y) != core.Empty {
			continue
		}
		g.AddDirt(x, y)
		remaining--
	}
	return g
}
