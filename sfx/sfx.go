// Package sfx synthesizes the simulation's sound cues and plays them through
// the system speaker.
package sfx

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"

	"github.com/plus3/squarez/sim"
)

const SampleRate = beep.SampleRate(44100)

// Tone is a sine sweep from one frequency to another with a linear fade out.
type Tone struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	length   int
	pos      int
	phase    float64
}

func NewTone(sr beep.SampleRate, from, to, volume float64, d time.Duration) *Tone {
	return &Tone{sr: sr, from: from, to: to, volume: volume, length: sr.N(d)}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress

		t.phase += 2 * math.Pi * freq / float64(t.sr)
		sample := t.volume * (1 - progress) * math.Sin(t.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}

// Noise is white noise with an exponential decay.
type Noise struct {
	rng    *rand.Rand
	volume float64
	decay  float64
	length int
	pos    int
}

func NewNoise(sr beep.SampleRate, volume float64, d time.Duration, seed uint64) *Noise {
	length := sr.N(d)
	return &Noise{
		rng:    rand.New(rand.NewPCG(seed, seed)),
		volume: volume,
		// Down to 1% of the starting volume by the end.
		decay:  math.Log(100) / float64(length),
		length: length,
	}
}

func (n *Noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.length {
			return i, i > 0
		}
		envelope := n.volume * math.Exp(-n.decay*float64(n.pos))
		sample := envelope * (n.rng.Float64()*2 - 1)

		samples[i][0] = sample
		samples[i][1] = sample
		n.pos++
	}
	return len(samples), true
}

func (n *Noise) Err() error {
	return nil
}

// Cue returns a fresh streamer for sound, or nil for an unknown cue.
func Cue(sound sim.Sound) beep.Streamer {
	switch sound {
	case sim.SoundShoot:
		return NewTone(SampleRate, 1200, 600, 0.15, 80*time.Millisecond)
	case sim.SoundHit:
		return beep.Mix(
			NewTone(SampleRate, 220, 110, 0.25, 150*time.Millisecond),
			NewNoise(SampleRate, 0.1, 100*time.Millisecond, 2),
		)
	case sim.SoundExplosion:
		return NewNoise(SampleRate, 0.35, 450*time.Millisecond, 3)
	case sim.SoundGameOver:
		return beep.Seq(
			NewTone(SampleRate, 440, 330, 0.3, 400*time.Millisecond),
			NewTone(SampleRate, 330, 220, 0.3, 400*time.Millisecond),
			NewTone(SampleRate, 220, 110, 0.3, 800*time.Millisecond),
		)
	}
	return nil
}
