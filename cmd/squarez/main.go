// Command squarez is the playable front end: an ebiten window drawing the
// simulation, keyboard controls, synthesized sound and an optional inspector.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/squarez/sfx"
	"github.com/plus3/squarez/sim"
)

func main() {
	config := sim.DefaultConfig()

	flag.Float64Var(&config.Width, "width", config.Width, "World and window width.")
	flag.Float64Var(&config.Height, "height", config.Height, "World and window height.")
	flag.IntVar(&config.Boxes, "boxes", config.Boxes, "Number of hazards.")
	flag.Uint64Var(&config.Seed, "seed", config.Seed, "World generation seed.")
	debug := flag.Bool("debug", false, "Show the entity inspector.")
	mute := flag.Bool("mute", false, "Disable sound.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []sim.Option{sim.WithLogger(logger)}
	if !*mute {
		player, err := sfx.NewPlayer()
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			opts = append(opts, sim.WithAudio(player))
		}
	}

	simulation, err := sim.New(config, opts...)
	if err != nil {
		logger.Error("failed to create simulation", "err", err)
		os.Exit(1)
	}

	game := NewGame(simulation, logger)
	if *debug {
		game.EnableInspector()
	} else {
		ebiten.SetWindowSize(int(config.Width), int(config.Height))
		ebiten.SetWindowTitle("squarez")
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
