package sim

import (
	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/geom"
	"github.com/plus3/squarez/palette"
)

type Position struct {
	geom.Pos
}

// Velocity is a speed along the entity's Angle, in world units per frame.
type Velocity struct {
	Value float64
}

// Angle is a heading in radians.
type Angle struct {
	Radians float64
}

// Acceleration is the forward thrust applied this frame.
type Acceleration struct {
	Value float64
}

// Rotation is a turning rate in radians per second.
type Rotation struct {
	Rate float64
}

// TargetDirection is the heading that steering turns Angle towards.
type TargetDirection struct {
	Radians float64
}

type MaxVelocity struct {
	Max float64
}

const DefaultMaxVelocity = 5.0

func NewMaxVelocity() MaxVelocity {
	return MaxVelocity{Max: DefaultMaxVelocity}
}

// Size is the side of the entity's bounding square.
type Size struct {
	Value float64
}

type Color struct {
	palette.Color
}

type Health struct {
	Points int
}

const DefaultHealth = 20

func NewHealth() Health {
	return Health{Points: DefaultHealth}
}

// Bullet marks a projectile. Source is the entity that fired it and may
// already be gone.
type Bullet struct {
	Source ecs.EntityId
}

// Firing is the weapon cooldown, present only while fire is held.
type Firing struct {
	Rate float64
	Time float64
}

const DefaultFiringRate = 0.25

func NewFiring() Firing {
	return Firing{Rate: DefaultFiringRate}
}

// Timer counts up towards Lifetime. Entities whose timer has Expire set are
// destroyed once Elapsed passes Lifetime.
type Timer struct {
	Lifetime float64
	Elapsed  float64
	Expire   bool
}

func NewTimer(lifetime float64) Timer {
	return Timer{Lifetime: lifetime, Expire: true}
}

// Ratio is the elapsed fraction of the lifetime. It is not clamped.
func (t Timer) Ratio() float64 {
	return t.Elapsed / t.Lifetime
}

// Markers.
type (
	Collision     struct{}
	ScreenWrap    struct{}
	PlayerControl struct{}
	Particle      struct{}
	Flash         struct{}
	FadeOut       struct{}
	Flocking      struct{}
	StayInBounds  struct{}
	KillOffScreen struct{}
)

// NewRegistry returns a registry holding every simulation component.
func NewRegistry() *ecs.ComponentRegistry {
	r := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](r)
	ecs.RegisterComponent[Velocity](r)
	ecs.RegisterComponent[Angle](r)
	ecs.RegisterComponent[Acceleration](r)
	ecs.RegisterComponent[Rotation](r)
	ecs.RegisterComponent[TargetDirection](r)
	ecs.RegisterComponent[MaxVelocity](r)
	ecs.RegisterComponent[Size](r)
	ecs.RegisterComponent[Color](r)
	ecs.RegisterComponent[Health](r)
	ecs.RegisterComponent[Bullet](r)
	ecs.RegisterComponent[Firing](r)
	ecs.RegisterComponent[Timer](r)
	ecs.RegisterComponent[Collision](r)
	ecs.RegisterComponent[ScreenWrap](r)
	ecs.RegisterComponent[PlayerControl](r)
	ecs.RegisterComponent[Particle](r)
	ecs.RegisterComponent[Flash](r)
	ecs.RegisterComponent[FadeOut](r)
	ecs.RegisterComponent[Flocking](r)
	ecs.RegisterComponent[StayInBounds](r)
	ecs.RegisterComponent[KillOffScreen](r)
	return r
}
