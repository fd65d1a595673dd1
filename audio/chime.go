package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/the-sequence/constants"
)

// Chime plays a short bell when the sequence reaches a limit milestone
type Chime struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewChime creates a chime at the given linear volume; call Init before Play
func NewChime(volume float64) *Chime {
	return &Chime{
		rate:   beep.SampleRate(constants.ChimeSampleRate),
		volume: volume,
	}
}

// Init opens the speaker; failure leaves the chime silent
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(constants.ChimeBuffer)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Ready reports whether Play reaches the speaker
func (c *Chime) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Play starts the chime without blocking; no-op before Init
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Play(c.Streamer())
}

// Streamer builds a fresh bell: fundamental plus octave overtone
func (c *Chime) Streamer() beep.Streamer {
	fund := NewTone(constants.ChimeFrequency, constants.ChimeDuration, constants.ChimeAttack, constants.ChimeRelease, c.rate)
	over := NewTone(constants.ChimeOvertone, constants.ChimeDuration, constants.ChimeAttack, constants.ChimeRelease/2, c.rate)

	mixed := beep.Mix(
		withVolume(fund, 0.7),
		withVolume(over, 0.3),
	)
	return withVolume(mixed, c.volume)
}

// Close releases the speaker
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
