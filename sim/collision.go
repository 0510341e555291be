package sim

import (
	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/geom"
)

// CollisionSystem resolves player contacts with hazards and bullet hits.
//
// A hazard touching the player costs the player one health point and is
// replaced with a fresh hazard elsewhere. A bullet inside a square with
// health other than its source's costs that square one point and is removed
// when the frame ends.
type CollisionSystem struct {
	Spawner ecs.Singleton[Spawner]
	Speaker ecs.Singleton[Speaker]

	Players ecs.Query[struct {
		ecs.EntityId
		*PlayerControl
		*Position
		*Size
		*Health
	}]
	Targets ecs.Query[struct {
		ecs.EntityId
		*Collision
		*Position
		*Size
		Health *Health `ecs:"optional"`
	}]
	Bullets ecs.Query[struct {
		ecs.EntityId
		*Bullet
		*Position
	}]
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	s.players(frame)
	s.bullets(frame)
}

func (s *CollisionSystem) players(frame *ecs.UpdateFrame) {
	spawner := s.Spawner.Get()
	speaker := s.Speaker.Get()

	for p := range s.Players.Iter() {
		self := geom.Square(p.Position.Pos, p.Size.Value)
		for id, t := range s.Targets.All() {
			if id == p.EntityId {
				continue
			}
			if !self.Intersects(geom.Square(t.Position.Pos, t.Size.Value)) {
				continue
			}

			p.Health.Points--
			spawner.Flash(frame.Storage)
			speaker.play(frame.Commands, SoundHit)

			frame.Storage.Delete(id)
			spawner.Box(frame.Storage)
		}
	}
}

func (s *CollisionSystem) bullets(frame *ecs.UpdateFrame) {
	for b := range s.Bullets.Iter() {
		for id, t := range s.Targets.All() {
			if t.Health == nil || id == b.Source {
				continue
			}
			if !geom.Square(t.Position.Pos, t.Size.Value).Contains(b.Position.Pos) {
				continue
			}

			t.Health.Points--
			frame.Commands.Delete(b.EntityId)
			break
		}
	}
}
