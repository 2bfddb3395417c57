// Package render turns grid state into output: console text frames,
// recorded snapshots for playback, and RGBA pixel buffers for the GUI.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gridsweep/internal/core"
)

const (
	title  = "Cleaning Robot"
	legend = "# obstacle  D dirt  . empty  R robot  C cleaned"

	// clearScreen homes the cursor and wipes the terminal, giving
	// full-redraw semantics between frames.
	clearScreen = "\033[H\033[2J"

	// DefaultDelay is the pause after each emitted frame that makes
	// the traversal observable step by step.
	DefaultDelay = 200 * time.Millisecond
)

// Frame renders the grid plus robot position as console text: a title
// line, a separator, a legend, then one line per row of space-separated
// cell glyphs. The robot glyph overrides the underlying cell.
func Frame(g *core.Grid, robotX, robotY int) string {
	size := g.Size()
	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(legend)))
	b.WriteByte('\n')
	b.WriteString(legend)
	b.WriteByte('\n')
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if x == robotX && y == robotY {
				b.WriteByte('R')
				continue
			}
			b.WriteByte(g.At(x, y).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Console emits frames to a terminal-like writer, optionally clearing
// the screen before each frame and pausing after it.
type Console struct {
	Out   io.Writer
	Delay time.Duration
	Clear bool
}

// NewConsole returns a Console writing to stdout with full-redraw
// clearing and the default pacing delay.
func NewConsole() *Console {
	return &Console{Out: os.Stdout, Delay: DefaultDelay, Clear: true}
}

// Render implements core.Display: clear, draw, pause.
func (c *Console) Render(g *core.Grid, robotX, robotY int) {
	if c.Clear {
		fmt.Fprint(c.Out, clearScreen)
	}
	fmt.Fprint(c.Out, Frame(g, robotX, robotY))
	if c.Delay > 0 {
		time.Sleep(c.Delay)
	}
}
