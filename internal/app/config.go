// Package app wires the simulator together: command-line configuration,
// the seeded demo scenario, and the GUI playback adapter.
package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"gridsweep/internal/core"
	"gridsweep/internal/render"
)

// Config represents the command-line parameters for the simulator.
type Config struct {
	Strategies string
	Delay      time.Duration
	Plain      bool
	Seed       int64
	TPS        int
	Scale      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Strategies: "spattern,vsweep",
		Delay:      render.DefaultDelay,
		Seed:       -1,
		TPS:        12,
		Scale:      24,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Strategies, "strategy", c.Strategies, "comma-separated strategies to run in order")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause after each rendered frame")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "append frames instead of clearing the screen")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "scatter dirt randomly with this seed (negative keeps the fixed layout)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "playback frames per second (GUI viewer)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI viewer)")
}

// RunOrder resolves the configured strategy list against the registry,
// preserving the requested order.
func (c *Config) RunOrder() ([]core.Strategy, error) {
	var order []core.Strategy
	for _, name := range strings.Split(c.Strategies, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, ok := core.Strategies()[name]
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q", name)
		}
		order = append(order, s)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("no strategies selected")
	}
	return order, nil
}
