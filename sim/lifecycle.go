package sim

import "github.com/plus3/squarez/ecs"

// TimerSystem advances every Timer and destroys entities whose expiring
// timer has run out.
type TimerSystem struct {
	Timers ecs.Query[struct {
		ecs.EntityId
		*Timer
	}]
}

func (s *TimerSystem) Execute(frame *ecs.UpdateFrame) {
	for t := range s.Timers.Iter() {
		t.Timer.Elapsed += frame.DeltaTime
		if t.Timer.Expire && t.Timer.Elapsed > t.Timer.Lifetime {
			frame.Storage.Delete(t.EntityId)
		}
	}
}

// DeathSystem destroys entities that ran out of health. Visible ones burst
// into particles. Every hazard destroyed scores a point and is replaced.
type DeathSystem struct {
	Game    ecs.Singleton[Game]
	Spawner ecs.Singleton[Spawner]
	Speaker ecs.Singleton[Speaker]

	Mortals ecs.Query[struct {
		ecs.EntityId
		*Health
		Position *Position      `ecs:"optional"`
		Color    *Color         `ecs:"optional"`
		Player   *PlayerControl `ecs:"optional"`
	}]
}

func (s *DeathSystem) Execute(frame *ecs.UpdateFrame) {
	spawner := s.Spawner.Get()
	for m := range s.Mortals.Iter() {
		if m.Health.Points > 0 {
			continue
		}

		if m.Position != nil && m.Color != nil {
			spawner.Explosion(frame.Storage, m.Position.Pos, m.Color.Color)
			s.Speaker.Get().play(frame.Commands, SoundExplosion)
		}
		if m.Player == nil {
			s.Game.Get().Score++
			spawner.Box(frame.Storage)
		}

		frame.Storage.Delete(m.EntityId)
	}
}

// DefeatSystem ends the game once no player is left.
type DefeatSystem struct {
	Game    ecs.Singleton[Game]
	Spawner ecs.Singleton[Spawner]
	Speaker ecs.Singleton[Speaker]

	Players ecs.Query[struct {
		*PlayerControl
	}]
}

func (s *DefeatSystem) Execute(frame *ecs.UpdateFrame) {
	game := s.Game.Get()
	if game.Mode == ModeLost || s.Players.Count() > 0 {
		return
	}

	game.Mode = ModeLost
	s.Spawner.Get().Fade(frame.Storage)
	s.Speaker.Get().play(frame.Commands, SoundGameOver)
}
