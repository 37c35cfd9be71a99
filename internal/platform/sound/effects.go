// Package sound implements the game's sound emitter: short synthesized
// effects played through the system speaker, so no audio assets ship
// with the binary.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// newOscillator creates a finite streamer producing the given wave.
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream so effects do not
// click at their edges.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer. math.Log2(0) is -Inf, so zero volume is
// handled by silencing outright.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// newPickupSound generates a bright two-note chime for catching an item.
func newPickupSound(rate beep.SampleRate) beep.Streamer {
	const (
		noteDuration = 70 * time.Millisecond
		attack       = 5 * time.Millisecond
		release      = 40 * time.Millisecond
	)

	// B5 then E6, the classic coin jump.
	n1 := newOscillator(987.77, noteDuration, WaveSine, rate)
	n1Shaped := newEnvelope(n1, noteDuration, attack, release, rate)

	n2 := newOscillator(1318.51, noteDuration, WaveSine, rate)
	n2Shaped := newEnvelope(n2, noteDuration, attack, release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5)
}

// newExplosionSound generates a noise burst over a low saw rumble for
// catching a bomb.
func newExplosionSound(rate beep.SampleRate) beep.Streamer {
	const (
		duration = 350 * time.Millisecond
		attack   = 2 * time.Millisecond
		release  = 250 * time.Millisecond
	)

	noise := newOscillator(0, duration, WaveNoise, rate)
	noiseShaped := newEnvelope(noise, duration, attack, release, rate)

	rumble := newOscillator(60.0, duration, WaveSaw, rate)
	rumbleShaped := newEnvelope(rumble, duration, attack, release, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)

	return newVolume(mixed, 0.7)
}
