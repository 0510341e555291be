// Command sim-stress runs the simulation headless as fast as it can and
// reports tick timings, per-system timings and memory use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/squarez/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	boxes := flag.Int("boxes", 1000, "The initial number of hazards to create.")
	seed := flag.Uint64("seed", 1, "Seed for world generation and the input bot.")
	dt := flag.Float64("dt", 1.0/60, "Simulated seconds per tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logger.Info("starting simulation stress test", "boxes", *boxes, "duration", *duration)

	config := sim.DefaultConfig()
	config.Boxes = *boxes
	config.Seed = *seed

	simulation, err := sim.New(config, sim.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create simulation", "err", err)
		os.Exit(1)
	}

	report := &Report{
		Duration:       *duration,
		Boxes:          *boxes,
		DeltaTime:      *dt,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	bot := newBot(*seed)
	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			input := bot.next()

			updateStart := time.Now()
			simulation.Tick(input, *dt)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++

			if simulation.Mode() == sim.ModeLost && report.LostAtUpdate == 0 {
				report.LostAtUpdate = totalUpdates
				logger.Info("player lost", "update", totalUpdates, "score", simulation.Score())
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Score = simulation.Score()
	report.Storage = simulation.Storage().CollectStats()
	report.Schedulers = simulation.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Debug("simulation finished", "updates", totalUpdates, "entities", report.Storage.TotalEntityCount)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "err", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

// bot holds thrust and fire and changes its turn direction now and then.
type bot struct {
	rng  *rand.Rand
	turn sim.Button
}

func newBot(seed uint64) *bot {
	return &bot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), turn: sim.ButtonLeft}
}

func (b *bot) next() sim.Input {
	if b.rng.IntN(30) == 0 {
		if b.turn == sim.ButtonLeft {
			b.turn = sim.ButtonRight
		} else {
			b.turn = sim.ButtonLeft
		}
	}
	return sim.Buttons{HeldMask: sim.Mask(sim.ButtonUp, sim.ButtonA, b.turn)}
}
