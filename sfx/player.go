package sfx

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/squarez/sim"
)

// Player implements sim.Audio by mixing cues into the speaker.
type Player struct {
	mixer *beep.Mixer
}

// NewPlayer opens the speaker. Only one Player may exist per process.
func NewPlayer() (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}

	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	return p, nil
}

func (p *Player) Play(sound sim.Sound) {
	cue := Cue(sound)
	if cue == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
