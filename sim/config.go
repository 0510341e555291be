package sim

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes the world the simulation runs in.
type Config struct {
	// Width and Height are the world extent in world units.
	Width, Height float64
	// Boxes is the number of hazards spawned at start.
	Boxes int
	// Seed feeds the random source when no WithRand option is given.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		Boxes:  100,
		Seed:   1,
	}
}

func (c Config) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: world extent %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Boxes < 0 {
		return fmt.Errorf("%w: box count %d is negative", ErrInvalidConfig, c.Boxes)
	}
	return nil
}

// World is the extent the simulation wraps, bounds and spawns within.
type World struct {
	Width, Height float64
}

// Contains reports whether (x, y) lies within [0,Width]x[0,Height].
func (w World) Contains(x, y float64) bool {
	return x >= 0 && x <= w.Width && y >= 0 && y <= w.Height
}
