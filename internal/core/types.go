package core

// Size describes the dimensions of a floor grid.
type Size struct {
	W int
	H int
}

// Strategy defines the contract a traversal policy must implement. A
// strategy owns no state: Clean drives the robot through its full scan
// order and returns only when the traversal is complete.
type Strategy interface {
	Name() string
	Clean(r *Robot, g *Grid)
}

// Display receives a frame after every state-changing robot step.
type Display interface {
	Render(g *Grid, robotX, robotY int)
}

var strategies = map[string]Strategy{}

// Register adds a strategy under the provided name.
func Register(name string, s Strategy) {
	if name == "" || s == nil {
		return
	}
	strategies[name] = s
}

// Strategies exposes the registry of available traversal strategies.
func Strategies() map[string]Strategy {
	return strategies
}
