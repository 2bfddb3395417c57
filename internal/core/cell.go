package core

// Cell is the state of a single floor position.
type Cell uint8

const (
	// Empty marks a cell with nothing on it.
	Empty Cell = iota
	// Dirt marks a cell the robot should clean.
	Dirt
	// Obstacle marks a cell the robot can never enter.
	Obstacle
	// Cleaned marks a cell the robot has already cleaned.
	Cleaned
)

// Glyph returns the console character for the cell state.
func (c Cell) Glyph() byte {
	switch c {
	case Dirt:
		return 'D'
	case Obstacle:
		return '#'
	case Cleaned:
		return 'C'
	default:
		return '.'
	}
}

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Dirt:
		return "dirt"
	case Obstacle:
		return "obstacle"
	case Cleaned:
		return "cleaned"
	default:
		return "unknown"
	}
}
