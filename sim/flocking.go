package sim

import (
	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/geom"
)

const (
	sightRadius      = 75.0
	separationRadius = 20.0

	cohesionWeight   = 0.005
	separationWeight = 0.05
	alignmentWeight  = 0.05
)

// FlockingSystem steers boids towards the centre and mean heading of their
// neighbours while keeping them apart. Every boid is compared with every other.
type FlockingSystem struct {
	Boids ecs.Query[struct {
		ecs.EntityId
		*Flocking
		*Position
		*Velocity
		*Angle
	}]
}

func (s *FlockingSystem) Execute(frame *ecs.UpdateFrame) {
	for boid := range s.Boids.Iter() {
		self := boid.Position.Pos

		count := 0
		var center, flock, avoid geom.Pos
		for other := range s.Boids.Iter() {
			if other.EntityId == boid.EntityId {
				continue
			}

			p := other.Position.Pos
			d := p.Dist2(self)

			if d < sightRadius*sightRadius {
				count++
				center = center.Add(p)
				flock = flock.Add(geom.Polar(other.Velocity.Value, other.Angle.Radians))
			}
			if d < separationRadius*separationRadius {
				avoid = avoid.Add(self.Sub(p))
			}
		}

		if count == 0 {
			continue
		}

		center = center.Div(float64(count))
		flock = flock.Div(float64(count))

		delta := center.Sub(self).Scale(cohesionWeight).
			Add(avoid.Scale(separationWeight)).
			Add(flock.Scale(alignmentWeight))
		v := geom.Polar(boid.Velocity.Value, boid.Angle.Radians).Add(delta)

		ecs.Emplace(frame.Storage, boid.EntityId, TargetDirection{v.Angle()})
		boid.Velocity.Value = v.Mag()
	}
}
