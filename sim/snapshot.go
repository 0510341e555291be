package sim

import (
	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/geom"
	"github.com/plus3/squarez/palette"
)

// Square is a drawable square entity: the player or a hazard.
type Square struct {
	Bounds geom.Rect
	Center geom.Pos
	Angle  float64
	Size   float64
	Color  palette.Color
	// Filled is set for the player; hazards are drawn as outlines.
	Filled bool
	Firing bool
}

// Dot is a single point, used for bullets and particles.
type Dot struct {
	Pos   geom.Pos
	Color palette.Color
}

// Snapshot is everything the front end needs to draw one frame. It holds
// copies only and stays valid after later ticks.
type Snapshot struct {
	Squares   []Square
	Bullets   []Dot
	Particles []Dot
	// Flashes and Fades are full-screen overlays with opacity already applied.
	Flashes []palette.Color
	Fades   []palette.Color

	Mode  Mode
	Score int
	// PlayerHealth is the player's health as a fraction of PlayerHealth, or
	// zero once the player is gone.
	PlayerHealth float64
}

type drawViews struct {
	squares *ecs.View[struct {
		*Position
		*Size
		*Color
		Angle  *Angle         `ecs:"optional"`
		Player *PlayerControl `ecs:"optional"`
		Firing *Firing        `ecs:"optional"`
	}]
	bullets *ecs.View[struct {
		*Bullet
		*Position
	}]
	particles *ecs.View[struct {
		*Particle
		*Position
		*Color
		*Timer
	}]
	flashes *ecs.View[struct {
		*Flash
		*Color
		*Timer
	}]
	fades *ecs.View[struct {
		*FadeOut
		*Color
		*Timer
	}]
	players *ecs.View[struct {
		*PlayerControl
		*Health
	}]
}

func newDrawViews(storage *ecs.Storage) drawViews {
	return drawViews{
		squares: ecs.NewView[struct {
			*Position
			*Size
			*Color
			Angle  *Angle         `ecs:"optional"`
			Player *PlayerControl `ecs:"optional"`
			Firing *Firing        `ecs:"optional"`
		}](storage),
		bullets: ecs.NewView[struct {
			*Bullet
			*Position
		}](storage),
		particles: ecs.NewView[struct {
			*Particle
			*Position
			*Color
			*Timer
		}](storage),
		flashes: ecs.NewView[struct {
			*Flash
			*Color
			*Timer
		}](storage),
		fades: ecs.NewView[struct {
			*FadeOut
			*Color
			*Timer
		}](storage),
		players: ecs.NewView[struct {
			*PlayerControl
			*Health
		}](storage),
	}
}

// Snapshot captures the drawable state after the last tick.
func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	s.SnapshotInto(&snap)
	return snap
}

// SnapshotInto is Snapshot reusing the slices already held by dst.
func (s *Simulation) SnapshotInto(dst *Snapshot) {
	v := &s.draw

	dst.Squares = dst.Squares[:0]
	for sq := range v.squares.Iter() {
		square := Square{
			Bounds: geom.Square(sq.Position.Pos, sq.Size.Value),
			Center: sq.Position.Pos,
			Size:   sq.Size.Value,
			Color:  sq.Color.Color,
			Filled: sq.Player != nil,
			Firing: sq.Firing != nil,
		}
		if sq.Angle != nil {
			square.Angle = sq.Angle.Radians
		}
		dst.Squares = append(dst.Squares, square)
	}

	dst.Bullets = dst.Bullets[:0]
	for b := range v.bullets.Iter() {
		dst.Bullets = append(dst.Bullets, Dot{Pos: b.Position.Pos, Color: palette.White})
	}

	dst.Particles = dst.Particles[:0]
	for p := range v.particles.Iter() {
		dst.Particles = append(dst.Particles, Dot{
			Pos:   p.Position.Pos,
			Color: p.Color.WithOpacity(1 - p.Timer.Ratio()),
		})
	}

	dst.Flashes = dst.Flashes[:0]
	for f := range v.flashes.Iter() {
		dst.Flashes = append(dst.Flashes, f.Color.WithOpacity(1-f.Timer.Ratio()))
	}

	dst.Fades = dst.Fades[:0]
	for f := range v.fades.Iter() {
		dst.Fades = append(dst.Fades, f.Color.WithOpacity(f.Timer.Ratio()))
	}

	game := s.game.Get()
	dst.Mode = game.Mode
	dst.Score = game.Score

	dst.PlayerHealth = 0
	for p := range v.players.Iter() {
		dst.PlayerHealth = float64(p.Health.Points) / PlayerHealth
		break
	}
}
