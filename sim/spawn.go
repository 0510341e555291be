package sim

import (
	"math"
	"math/rand/v2"

	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/geom"
	"github.com/plus3/squarez/palette"
)

const (
	PlayerColor  palette.Color = 0xd8ff00ff
	PlayerSize                 = 20.0
	PlayerHealth               = 1000

	FlashColor    palette.Color = 0x77000033
	FlashLifetime               = 0.2
	FadeLifetime                = 2.5

	ExplosionParticles = 500

	BulletSpeed  = 13.0
	BulletOffset = 5.0
)

// Spawner creates the entities of the game. It is held as a singleton so
// systems share one random source.
type Spawner struct {
	World World
	rng   *rand.Rand
}

func NewSpawner(world World, rng *rand.Rand) Spawner {
	return Spawner{World: world, rng: rng}
}

func (sp *Spawner) uniform(lo, hi float64) float64 {
	return lo + sp.rng.Float64()*(hi-lo)
}

// Player spawns the player ship at the centre of the world.
func (sp *Spawner) Player(s *ecs.Storage) ecs.EntityId {
	return s.Spawn(
		Color{PlayerColor},
		Position{geom.Pos{X: sp.World.Width / 2, Y: sp.World.Height / 2}},
		PlayerControl{},
		Collision{},
		ScreenWrap{},
		Acceleration{},
		Velocity{},
		Angle{},
		Rotation{},
		Size{PlayerSize},
		Health{PlayerHealth},
	)
}

// Box spawns one drifting hazard at a random place in the world.
func (sp *Spawner) Box(s *ecs.Storage) ecs.EntityId {
	return s.Spawn(
		Health{1},
		Color{palette.MustHSL(sp.uniform(0, 260), 1, 0.5)},
		Position{geom.Pos{X: sp.uniform(0, sp.World.Width), Y: sp.uniform(0, sp.World.Height)}},
		Size{float64(10 + sp.rng.IntN(11))},
		Collision{},
		Velocity{sp.uniform(1, 5)},
		Angle{sp.uniform(0, 2*math.Pi)},
		NewMaxVelocity(),
		Flocking{},
		StayInBounds{},
	)
}

// Boxes spawns n hazards.
func (sp *Spawner) Boxes(s *ecs.Storage, n int) {
	for range n {
		sp.Box(s)
	}
}

// Explosion bursts particles of color c outwards from at.
func (sp *Spawner) Explosion(s *ecs.Storage, at geom.Pos, c palette.Color) {
	for range ExplosionParticles {
		s.Spawn(
			Particle{},
			NewTimer(sp.uniform(1.5, 4.5)),
			Position{at},
			Color{c},
			Velocity{sp.uniform(1, 15)},
			Angle{sp.uniform(0, 2*math.Pi)},
			StayInBounds{},
		)
	}
}

// Flash spawns the short red overlay shown when the player is hit.
func (sp *Spawner) Flash(s *ecs.Storage) ecs.EntityId {
	return s.Spawn(Flash{}, NewTimer(FlashLifetime), Color{FlashColor})
}

// Fade spawns the fade-to-black overlay. Its timer never expires.
func (sp *Spawner) Fade(s *ecs.Storage) ecs.EntityId {
	return s.Spawn(FadeOut{}, Timer{Lifetime: FadeLifetime}, Color{palette.Black})
}

// Bullet spawns a projectile just ahead of at along angle.
func (sp *Spawner) Bullet(s *ecs.Storage, source ecs.EntityId, at geom.Pos, angle float64) ecs.EntityId {
	return s.Spawn(
		Bullet{Source: source},
		Position{at.Add(geom.Polar(BulletOffset, angle))},
		Velocity{BulletSpeed},
		Angle{angle},
		KillOffScreen{},
	)
}
