package sim

import "github.com/plus3/squarez/ecs"

const (
	PlayerThrust  = 10.0
	PlayerReverse = -2.0
	PlayerTurn    = 1.0
)

// InputSystem maps the held buttons onto the player's thrust, turn rate and
// weapon. Firing is present only while A is held.
type InputSystem struct {
	Controls ecs.Singleton[Controls]
	Players  ecs.Query[struct {
		ecs.EntityId
		*PlayerControl
		*Acceleration
		*Rotation
	}]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	controls := s.Controls.Get()
	for p := range s.Players.Iter() {
		p.Acceleration.Value = 0
		if controls.held(ButtonUp) {
			p.Acceleration.Value += PlayerThrust
		}
		if controls.held(ButtonDown) {
			p.Acceleration.Value += PlayerReverse
		}

		p.Rotation.Rate = 0
		if controls.held(ButtonLeft) {
			p.Rotation.Rate -= PlayerTurn
		}
		if controls.held(ButtonRight) {
			p.Rotation.Rate += PlayerTurn
		}

		if controls.held(ButtonA) {
			ecs.GetOrCreate(frame.Storage, p.EntityId, NewFiring())
		} else {
			ecs.Remove[Firing](frame.Storage, p.EntityId)
		}
	}
}

// FiringSystem spawns a bullet each time the weapon cooldown elapses.
type FiringSystem struct {
	Spawner ecs.Singleton[Spawner]
	Speaker ecs.Singleton[Speaker]
	Guns    ecs.Query[struct {
		ecs.EntityId
		*Firing
		*Position
		*Angle
	}]
}

func (s *FiringSystem) Execute(frame *ecs.UpdateFrame) {
	spawner := s.Spawner.Get()
	for g := range s.Guns.Iter() {
		g.Firing.Time += frame.DeltaTime
		if g.Firing.Time <= g.Firing.Rate {
			continue
		}
		g.Firing.Time -= g.Firing.Rate

		spawner.Bullet(frame.Storage, g.EntityId, g.Position.Pos, g.Angle.Radians)
		s.Speaker.Get().play(frame.Commands, SoundShoot)
	}
}
