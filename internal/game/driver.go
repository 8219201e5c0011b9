package game

import (
	"time"

	"go.uber.org/zap"
)

// LoopState is the driver's state machine. GameOver is terminal for a session.
type LoopState int

const (
	StateIdle LoopState = iota
	StateRunning
	StateGameOver
)

func (s LoopState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Clock supplies wall-clock time to the driver.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

// ManualClock is a Clock advanced by hand. The headless harness and tests
// use it to drive fixed frame intervals.
type ManualClock struct {
	t time.Time
}

// NewManualClock starts a clock at an arbitrary fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{t: time.Unix(1_000_000, 0)}
}

func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// Driver sequences one engine step per host frame and stops stepping the
// moment the player dies.
type Driver struct {
	engine    *Engine
	clock     Clock
	log       *zap.Logger
	state     LoopState
	lastFrame time.Time
	frames    int
}

// NewDriver wraps an engine. A nil clock means SystemClock.
func NewDriver(e *Engine, clock Clock, log *zap.Logger) *Driver {
	if clock == nil {
		clock = SystemClock
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{engine: e, clock: clock, log: log}
}

func (d *Driver) State() LoopState { return d.state }
func (d *Driver) Engine() *Engine  { return d.engine }
func (d *Driver) Frames() int      { return d.frames }

// Start marks the first frame and enters Running. Starting a running or
// finished driver does nothing.
func (d *Driver) Start() {
	if d.state != StateIdle {
		return
	}
	d.lastFrame = d.clock.Now()
	d.state = StateRunning
	d.log.Info("session started")
}

// Tick runs one frame. It returns false when no step was taken, either
// because the driver is not running or because the session just ended.
func (d *Driver) Tick() bool {
	if d.state != StateRunning {
		return false
	}
	now := d.clock.Now()
	dt := float64(now.Sub(d.lastFrame)) / float64(time.Millisecond)
	res := d.engine.Step(dt)
	d.frames++
	if res.Dead {
		d.state = StateGameOver
		d.log.Info("session over",
			zap.Int("frames", d.frames),
			zap.Int("score", d.engine.DisplayScore()))
		return false
	}
	// Time spent inside the step is not charged to the next frame.
	d.lastFrame = d.clock.Now()
	return true
}

// Apply forwards a command while the session is live.
func (d *Driver) Apply(c Command) {
	if d.state == StateGameOver {
		return
	}
	d.engine.Apply(c)
}

// Restart begins a new session after game over.
func (d *Driver) Restart() {
	d.engine.Reset()
	d.frames = 0
	d.state = StateIdle
	d.Start()
}
