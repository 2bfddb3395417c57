//go:build ebiten

package app

import (
	"gridsweep/internal/core"
	"gridsweep/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Player replays a recorded cleaning run as an ebiten.Game.
type Player struct {
	frames  []render.Snapshot
	size    core.Size
	painter *render.GridPainter

	scale    int
	cursor   int
	paused   bool
	tickOnce bool
}

// NewPlayer constructs a Player over the recorded frames.
func NewPlayer(frames []render.Snapshot, size core.Size, scale int) *Player {
	if scale <= 0 {
		scale = 1
	}
	return &Player{
		frames:  frames,
		size:    size,
		painter: render.NewGridPainter(size.W, size.H),
		scale:   scale,
	}
}

// Update handles playback controls and advances the frame cursor.
func (p *Player) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		p.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.cursor = 0
	}

	if (!p.paused) || p.tickOnce {
		if p.cursor < len(p.frames)-1 {
			p.cursor++
		}
		p.tickOnce = false
	}
	return nil
}

// Draw renders the frame under the playback cursor.
func (p *Player) Draw(screen *ebiten.Image) {
	if len(p.frames) == 0 {
		return
	}
	f := p.frames[p.cursor]
	robotIdx := f.RobotY*p.size.W + f.RobotX
	p.painter.Blit(screen, f.Cells, robotIdx, p.scale)
}

// Layout returns the logical screen size.
func (p *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.size.W * p.scale, p.size.H * p.scale
}
