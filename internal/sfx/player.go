package sfx

import (
	"sync"
	"time"

	"github.com/Garsondee/Kitten-Dodge/internal/config"
	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes effects onto the speaker. Until Init succeeds every call is
// a no-op, so a machine without audio still runs the game.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	log         *zap.Logger
}

// New creates a player from the audio config section.
func New(cfg config.AudioConfig, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		log:     log,
	}
}

// Init opens the speaker. Failures are returned for logging; the player
// stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts an effect on top of whatever is already playing.
func (p *Player) Play(e Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := NewEffect(e, sampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// effectFor maps engine events to sounds. Spawns, moves and exits are silent.
func effectFor(k game.EventKind) (Effect, bool) {
	switch k {
	case game.EventFire:
		return EffectFire, true
	case game.EventKill:
		return EffectKill, true
	case game.EventCollect:
		return EffectCollect, true
	case game.EventDeath:
		return EffectDeath, true
	default:
		return 0, false
	}
}

// OnEvent is an engine subscriber.
func (p *Player) OnEvent(ev game.Event) {
	if e, ok := effectFor(ev.Kind); ok {
		p.Play(e)
	}
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
