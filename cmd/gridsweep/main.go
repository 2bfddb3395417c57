package main

import (
	"flag"
	"log"

	"gridsweep/internal/app"
	"gridsweep/internal/render"
	_ "gridsweep/internal/strategies"
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

	console := render.NewConsole()
	console.Delay = cfg.Delay
	console.Clear = !cfg.Plain

	app.Run(grid, console, order)
}
