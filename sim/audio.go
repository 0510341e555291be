package sim

import "github.com/plus3/squarez/ecs"

//go:generate go tool stringer -type=Sound -trimprefix=Sound
//go:generate go tool mockgen -destination=./mocks/audio_mock.go -package=mocks . Audio

// Sound is a cue the simulation asks the front end to play.
type Sound int

const (
	SoundShoot Sound = iota
	SoundHit
	SoundExplosion
	SoundGameOver
)

// Audio plays sound cues. Cues are delivered after the frame's systems have run.
type Audio interface {
	Play(sound Sound)
}

type silence struct{}

func (silence) Play(Sound) {}

// Speaker is the singleton through which systems queue sound cues.
type Speaker struct {
	Audio Audio
}

func (s *Speaker) play(cmds *ecs.Commands, sound Sound) {
	audio := s.Audio
	if audio == nil {
		return
	}
	cmds.Defer(func() { audio.Play(sound) })
}
