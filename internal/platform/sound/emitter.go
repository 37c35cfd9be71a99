package sound

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tuigames/fruitcatch/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Emitter plays named short effects through the system speaker. A failed
// speaker init degrades to silent mode instead of blocking the game.
type Emitter struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	silent bool
}

// NewEmitter opens the speaker unless muted. The returned emitter always
// works; it is just silent when audio is unavailable.
func NewEmitter(muted bool) *Emitter {
	e := &Emitter{mixer: &beep.Mixer{}, silent: muted}
	if muted {
		return e
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		log.Warn("audio unavailable, continuing without sound", "err", err)
		e.silent = true
		return e
	}
	speaker.Play(e.mixer)
	return e
}

// Play implements game.SoundEmitter. Unknown effect names are ignored.
func (e *Emitter) Play(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.silent {
		return
	}

	var s beep.Streamer
	switch name {
	case game.SoundPickup:
		s = newPickupSound(sampleRate)
	case game.SoundExplosion:
		s = newExplosionSound(sampleRate)
	default:
		return
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}
