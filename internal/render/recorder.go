package render

import "gridsweep/internal/core"

// Snapshot captures the grid contents and robot position at one frame.
type Snapshot struct {
	Cells  []core.Cell
	RobotX int
	RobotY int
}

// Recorder stores every rendered frame so a run can be replayed or
// inspected after the fact.
type Recorder struct {
	size   core.Size
	frames []Snapshot
}

// NewRecorder returns a Recorder for grids of the given size.
func NewRecorder(size core.Size) *Recorder {
	return &Recorder{size: size}
}

// Render implements core.Display by appending a copied snapshot.
func (r *Recorder) Render(g *core.Grid, robotX, robotY int) {
	cells := make([]core.Cell, len(g.Cells()))
	copy(cells, g.Cells())
	r.frames = append(r.frames, Snapshot{Cells: cells, RobotX: robotX, RobotY: robotY})
}

// Frames returns the recorded snapshots in render order.
func (r *Recorder) Frames() []Snapshot { return r.frames }

// Size returns the grid dimensions the recorder was built for.
func (r *Recorder) Size() core.Size { return r.size }
