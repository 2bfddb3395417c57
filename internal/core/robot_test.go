package core

import "testing"

// frameLog records the robot position passed to every Render call.
type frameLog struct {
	positions [][2]int
}

func (f *frameLog) Render(g *Grid, x, y int) {
	f.positions = append(f.positions, [2]int{x, y})
}

func TestMoveRejectsObstaclesAndOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	g.AddObstacle(1, 1)
	log := &frameLog{}
	r := NewRobot(g, log)

	if r.Move(1, 1) {
		t.Fatal("move onto obstacle succeeded")
	}
	if r.Move(3, 0) || r.Move(0, 3) || r.Move(-1, 0) {
		t.Fatal("move out of bounds succeeded")
	}
	if x, y := r.Position(); x != 0 || y != 0 {
		t.Fatalf("position moved to (%d,%d) after failed moves", x, y)
	}
	if len(log.positions) != 0 {
		t.Fatalf("failed moves rendered %d frames, expected 0", len(log.positions))
	}

	if !r.Move(2, 2) {
		t.Fatal("move onto free cell failed")
	}
	if x, y := r.Position(); x != 2 || y != 2 {
		t.Fatalf("position is (%d,%d), expected (2,2)", x, y)
	}
	if len(log.positions) != 1 {
		t.Fatalf("successful move rendered %d frames, expected 1", len(log.positions))
	}
}

func TestCleanCurrentSpotIsIdempotent(t *testing.T) {
	g := NewGrid(2, 1)
	g.AddDirt(1, 0)
	log := &frameLog{}
	r := NewRobot(g, log)

	r.Move(1, 0)
	r.CleanCurrentSpot()
	if got := g.At(1, 0); got != Cleaned {
		t.Fatalf("cell is %v after clean, expected cleaned", got)
	}

	frames := len(log.positions)
	r.CleanCurrentSpot()
	if got := g.At(1, 0); got != Cleaned {
		t.Fatalf("cell is %v after second clean, expected cleaned", got)
	}
	if len(log.positions) != frames {
		t.Fatal("second clean on an already-cleaned cell rendered a frame")
	}
}

func TestCleanCurrentSpotIgnoresNonDirt(t *testing.T) {
	g := NewGrid(2, 1)
	r := NewRobot(g, nil)

	r.CleanCurrentSpot()
	if got := g.At(0, 0); got != Empty {
		t.Fatalf("cleaning an empty cell changed it to %v", got)
	}
}

// stubStrategy records whether it ran and with which receiver.
type stubStrategy struct {
	name string
	runs *[]string
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) Clean(r *Robot, g *Grid) {
	*s.runs = append(*s.runs, s.name)
}

func TestStartCleaningDelegatesToActiveStrategy(t *testing.T) {
	g := NewGrid(2, 2)
	r := NewRobot(g, nil)
	var runs []string

	r.StartCleaning() // no strategy yet

	r.SetStrategy(stubStrategy{name: "first", runs: &runs})
	r.StartCleaning()
	r.SetStrategy(stubStrategy{name: "second", runs: &runs})
	r.StartCleaning()

	if len(runs) != 2 || runs[0] != "first" || runs[1] != "second" {
		t.Fatalf("strategy runs = %v, expected [first second]", runs)
	}
}

func TestRegistryIgnoresInvalidEntries(t *testing.T) {
	var runs []string
	Register("", stubStrategy{name: "anon", runs: &runs})
	Register("nil-strategy", nil)

	if _, ok := Strategies()[""]; ok {
		t.Fatal("registry accepted an empty name")
	}
	if _, ok := Strategies()["nil-strategy"]; ok {
		t.Fatal("registry accepted a nil strategy")
	}
}
