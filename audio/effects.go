package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/gaze/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
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
			return i, i > 0
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

		// Keep phase in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSound builds the streamer of a cue, nil for unknown cues
func CreateSound(st SoundType, cfg AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch st {
	case SoundOpen:
		s = bellSound(rate)
	case SoundPublish:
		s = whooshSound(rate)
	case SoundCollision:
		s = tickSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.effectVolume(st))
}

// bellSound is a soft two-partial chime
func bellSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.OpenSoundDuration
	fund := NewEnvelope(NewOscillator(660.0, d, WaveSine, rate), d, parameter.OpenSoundAttack, parameter.OpenSoundRelease, rate)
	over := NewEnvelope(NewOscillator(1320.0, d, WaveSine, rate), d, parameter.OpenSoundAttack, parameter.OpenSoundRelease/2, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// whooshSound is enveloped noise over a low saw
func whooshSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.PublishSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.PublishSoundAttack, parameter.PublishSoundRelease, rate)
	body := NewEnvelope(NewOscillator(110.0, d, WaveSaw, rate), d, parameter.PublishSoundAttack, parameter.PublishSoundRelease, rate)
	return beep.Mix(newVolume(noise, 0.6), newVolume(body, 0.25))
}

// tickSound is a short muted square click
func tickSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.CollisionSoundDuration
	return NewEnvelope(NewOscillator(330.0, d, WaveSquare, rate), d, parameter.CollisionSoundAttack, parameter.CollisionSoundRelease, rate)
}
