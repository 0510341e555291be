package sfx

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/squarez/sim"
)

// drain streams s to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()

	var out []float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			out = append(out, sample[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneLength(t *testing.T) {
	samples := drain(t, NewTone(SampleRate, 440, 440, 0.5, 100*time.Millisecond))

	assert.Len(t, samples, SampleRate.N(100*time.Millisecond))
	for _, s := range samples {
		require.LessOrEqual(t, math.Abs(s), 0.5)
	}
}

func TestToneFadesOut(t *testing.T) {
	samples := drain(t, NewTone(SampleRate, 440, 440, 1, time.Second))

	peak := func(from, to int) float64 {
		var p float64
		for _, s := range samples[from:to] {
			p = math.Max(p, math.Abs(s))
		}
		return p
	}
	n := len(samples)
	assert.Greater(t, peak(0, n/10), peak(n-n/10, n))
}

func TestNoiseDecays(t *testing.T) {
	samples := drain(t, NewNoise(SampleRate, 1, 200*time.Millisecond, 1))

	require.NotEmpty(t, samples)
	tail := samples[len(samples)-100:]
	for _, s := range tail {
		assert.LessOrEqual(t, math.Abs(s), 0.02)
	}
}

func TestEveryCueTerminates(t *testing.T) {
	for _, sound := range []sim.Sound{sim.SoundShoot, sim.SoundHit, sim.SoundExplosion, sim.SoundGameOver} {
		t.Run(sound.String(), func(t *testing.T) {
			cue := Cue(sound)
			require.NotNil(t, cue)

			samples := drain(t, cue)
			assert.NotEmpty(t, samples)
			for _, s := range samples {
				require.LessOrEqual(t, math.Abs(s), 1.0)
			}
		})
	}

	assert.Nil(t, Cue(sim.Sound(99)))
}
