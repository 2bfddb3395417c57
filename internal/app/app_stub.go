//go:build !ebiten

package app

import (
	"fmt"

	"gridsweep/internal/core"
	"gridsweep/internal/render"
)

// Player is a placeholder that satisfies the API expected by the GUI build.
type Player struct{}

// NewPlayer panics to indicate that the ebiten build tag is required for GUI support.
func NewPlayer([]render.Snapshot, core.Size, int) *Player {
	panic("app.NewPlayer requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (p *Player) Update() error {
	return fmt.Errorf("app.Player.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (p *Player) Draw(any) {}

// Layout returns zeros in the headless build.
func (p *Player) Layout(int, int) (int, int) { return 0, 0 }
