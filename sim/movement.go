package sim

import (
	"math"

	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/geom"
)

// Drag applied to accelerated velocity every frame.
const drag = 0.99

// AccelerationSystem integrates thrust into speed with a constant drag.
type AccelerationSystem struct {
	Entities ecs.Query[struct {
		*Velocity
		*Acceleration
	}]
}

func (s *AccelerationSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Entities.Iter() {
		e.Velocity.Value = (e.Velocity.Value + e.Acceleration.Value*frame.DeltaTime) * drag
	}
}

type RotationSystem struct {
	Entities ecs.Query[struct {
		*Angle
		*Rotation
	}]
}

func (s *RotationSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Entities.Iter() {
		e.Angle.Radians += e.Rotation.Rate * frame.DeltaTime
	}
}

// SteeringSystem turns Angle towards TargetDirection by at most dt radians.
type SteeringSystem struct {
	Entities ecs.Query[struct {
		*Angle
		*TargetDirection
	}]
}

func (s *SteeringSystem) Execute(frame *ecs.UpdateFrame) {
	dt := frame.DeltaTime
	for e := range s.Entities.Iter() {
		e.Angle.Radians += clamp(e.TargetDirection.Radians-e.Angle.Radians, -dt, dt)
	}
}

// MaxVelocitySystem clamps the magnitude of Velocity.
type MaxVelocitySystem struct {
	Entities ecs.Query[struct {
		*Velocity
		*MaxVelocity
	}]
}

func (s *MaxVelocitySystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Entities.Iter() {
		e.Velocity.Value = clamp(e.Velocity.Value, -e.MaxVelocity.Max, e.MaxVelocity.Max)
	}
}

// MovementSystem displaces entities by one frame of velocity along their heading.
// Velocity is already per frame, so the displacement is not scaled by dt.
type MovementSystem struct {
	World    ecs.Singleton[World]
	Entities ecs.Query[struct {
		*Position
		*Velocity
		*Angle
		Wrap *ScreenWrap `ecs:"optional"`
	}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	world := s.World.Get()
	for e := range s.Entities.Iter() {
		p := e.Position.Add(geom.Polar(e.Velocity.Value, e.Angle.Radians))
		if e.Wrap != nil {
			p.X = wrap(p.X, world.Width)
			p.Y = wrap(p.Y, world.Height)
		}
		e.Position.Pos = p
	}
}

// OffScreenSystem destroys KillOffScreen entities that left the world.
type OffScreenSystem struct {
	World    ecs.Singleton[World]
	Entities ecs.Query[struct {
		ecs.EntityId
		*Position
		*KillOffScreen
	}]
}

func (s *OffScreenSystem) Execute(frame *ecs.UpdateFrame) {
	world := s.World.Get()
	for e := range s.Entities.Iter() {
		if !world.Contains(e.Position.X, e.Position.Y) {
			frame.Storage.Delete(e.EntityId)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// wrap folds v into [0, extent), however far outside it lies.
func wrap(v, extent float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	v = math.Mod(v, extent)
	if v < 0 {
		v += extent
	}
	if v >= extent {
		v -= extent
	}
	return v
}
