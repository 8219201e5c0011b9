package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect names a synthesized sound.
type Effect int

const (
	EffectFire Effect = iota
	EffectKill
	EffectCollect
	EffectDeath
)

func (e Effect) String() string {
	switch e {
	case EffectFire:
		return "fire"
	case EffectKill:
		return "kill"
	case EffectCollect:
		return "collect"
	case EffectDeath:
		return "death"
	default:
		return "unknown"
	}
}

const (
	fireDuration    = 120 * time.Millisecond
	killDuration    = 180 * time.Millisecond
	chimeNote       = 70 * time.Millisecond
	deathDuration   = 900 * time.Millisecond
	envelopeAttack  = 5 * time.Millisecond
	envelopeRelease = 40 * time.Millisecond
)

// sweep is a square-ish tone gliding linearly between two frequencies.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{from: from, to: to, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		f := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		// Sine with a touch of third harmonic, kept inside [-1, 1].
		v := 0.8*math.Sin(2*math.Pi*s.phase) + 0.2*math.Sin(6*math.Pi*s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += f / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is a decaying white noise burst.
type noise struct {
	rng   *rand.Rand
	total int
	pos   int
}

func newNoise(d time.Duration, rate beep.SampleRate, seed int64) *noise {
	return &noise{rng: rand.New(rand.NewSource(seed)), total: rate.N(d)} // #nosec G404 -- audio only
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		decay := 1 - float64(s.pos)/float64(s.total)
		v := (s.rng.Float64()*2 - 1) * decay * decay
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

// envelope fades a finite streamer in and out to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		total:    rate.N(d),
		attack:   rate.N(envelopeAttack),
		release:  rate.N(envelopeRelease),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack && e.attack > 0 {
			vol = float64(e.pos) / float64(e.attack)
		}
		if rem := e.total - e.pos; rem < e.release && e.release > 0 {
			vol = math.Max(0, float64(rem)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// chime plays two short sine notes in sequence.
func chime(rate beep.SampleRate, notes ...float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		tone, err := generators.SineTone(rate, f)
		if err != nil {
			continue
		}
		parts = append(parts, newEnvelope(beep.Take(rate.N(chimeNote), tone), chimeNote, rate))
	}
	return beep.Seq(parts...)
}

// NewEffect builds a fresh, finite streamer for an effect at the given
// linear volume.
func NewEffect(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectFire:
		s = newEnvelope(newSweep(1400, 500, fireDuration, rate), fireDuration, rate)
	case EffectKill:
		s = newEnvelope(newNoise(killDuration, rate, 7), killDuration, rate)
	case EffectCollect:
		s = chime(rate, 988, 1319)
	case EffectDeath:
		s = newEnvelope(newSweep(440, 55, deathDuration, rate), deathDuration, rate)
	default:
		s = beep.Silence(0)
	}
	return newVolume(s, volume)
}
