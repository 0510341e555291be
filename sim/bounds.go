package sim

import (
	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/geom"
)

// Distance from an edge at which StayInBounds starts pushing back.
const boundsBuffer = 25.0

// StayInBoundsSystem nudges entities near an edge back towards the middle by
// adding one unit per frame to their velocity vector.
type StayInBoundsSystem struct {
	World    ecs.Singleton[World]
	Entities ecs.Query[struct {
		*StayInBounds
		*Position
		*Velocity
		*Angle
	}]
}

func (s *StayInBoundsSystem) Execute(frame *ecs.UpdateFrame) {
	world := s.World.Get()
	for e := range s.Entities.Iter() {
		p := e.Position.Pos
		v := geom.Polar(e.Velocity.Value, e.Angle.Radians)

		if p.X < boundsBuffer {
			v.X++
		}
		if p.X > world.Width-boundsBuffer {
			v.X--
		}
		if p.Y < boundsBuffer {
			v.Y++
		}
		if p.Y > world.Height-boundsBuffer {
			v.Y--
		}

		e.Velocity.Value = v.Mag()
		e.Angle.Radians = v.Angle()
	}
}
