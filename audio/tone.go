package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine wave shaped by a linear attack and release
type tone struct {
	freq    float64
	phase   float64
	rate    beep.SampleRate
	pos     int
	total   int
	attack  int
	release int
}

// NewTone creates a finite sine streamer of the given duration
// attack and release are clamped so together they never exceed duration
func NewTone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att > total {
		att = total
	}
	if att+rel > total {
		rel = total - att
	}
	return &tone{
		freq:    freq,
		rate:    rate,
		total:   total,
		attack:  att,
		release: rel,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		val := math.Sin(2*math.Pi*t.phase) * t.gain()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain is the envelope level at the current position, in [0, 1]
func (t *tone) gain() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	releaseStart := t.total - t.release
	if t.release > 0 && t.pos >= releaseStart {
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1.0
}

// withVolume scales s linearly; math.Log2(0) is -Inf so zero is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
