//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridsweep/internal/app"
	"gridsweep/internal/render"
	_ "gridsweep/internal/strategies"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	order, err := cfg.RunOrder()
	if err != nil {
		log.Fatal(err)
	}

	scenario := app.DefaultScenario()
	grid := scenario.Build()
	if cfg.Seed >= 0 {
		grid = scenario.BuildScattered(cfg.Seed)
	}

	// The run itself is headless; the recorder captures every frame
	// for playback.
	rec := render.NewRecorder(grid.Size())
	app.Run(grid, rec, order)

	player := app.NewPlayer(rec.Frames(), rec.Size(), cfg.Scale)
	size := rec.Size()

	ebiten.SetWindowTitle("gridsweep — playback")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(player); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
