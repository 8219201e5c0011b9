package game

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// defaultFrameInterval approximates a 60Hz display.
const defaultFrameInterval = 16 * time.Millisecond

// TestSim is a headless session harness used by tests and the headless
// report. It drives a real Engine and Driver from a manual clock so runs are
// reproducible from a seed.
type TestSim struct {
	Engine    *Engine
	Driver    *Driver
	Clock     *ManualClock
	SimLog    *SimLog
	Feed      *EventFeed
	Reporter  *SimReporter
	Frames    *DisplayList
	Autopilot *Autopilot

	FrameInterval time.Duration
	ReportEvery   int

	rules  Rules
	rng    *rand.Rand
	logger *zap.Logger
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // rules, seed, clock, logging: applied before the engine exists
	simOptWorld                      // entity placement: applied to the built engine
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSimSeed sets the RNG seed for deterministic runs.
func WithSimSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithSimRules replaces the default rules.
func WithSimRules(r Rules) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rules = r
	}}
}

// WithFrameInterval sets the virtual time between frames.
func WithFrameInterval(d time.Duration) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.FrameInterval = d
	}}
}

// WithVerbose records spawn, exit and move events in the SimLog.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithSimLogger routes engine logging to l.
func WithSimLogger(l *zap.Logger) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.logger = l
	}}
}

// WithAutopilot lets the built-in policy play.
func WithAutopilot() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Autopilot = NewAutopilot()
	}}
}

// WithReportEvery collects a SimReport every n frames.
func WithReportEvery(n int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.ReportEvery = n
	}}
}

// WithEmptyLanes removes every spawned enemy and ammo drop.
func WithEmptyLanes() SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.Engine.Enemies().Clear()
		ts.Engine.AmmoDrops().Clear()
	}}
}

// WithEnemyAt places an enemy in column with its top edge at y.
func WithEnemyAt(column int, y, speed float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.Engine.Enemies().Set(column, &Enemy{
			Column: column,
			X:      float64(column * ts.rules.ColumnWidth),
			Y:      y,
			Speed:  speed,
		})
	}}
}

// WithAmmoAt places an ammo drop in column with its top edge at y.
func WithAmmoAt(column int, y, speed float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.Engine.AmmoDrops().Set(column, &Ammo{
			Column: column,
			X:      float64(column * ts.rules.ColumnWidth),
			Y:      y,
			Speed:  speed,
			Rounds: ts.rules.AmmoRounds,
		})
	}}
}

// WithPlayerAt moves the player to column and row y.
func WithPlayerAt(column int, y float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		p := ts.Engine.Player()
		p.Column = column
		p.Y = y
	}}
}

// WithPlayerAmmo sets the player's ammo count.
func WithPlayerAmmo(n int) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.Engine.Player().Ammo = n
	}}
}

// NewTestSim constructs a TestSim in two ordered passes:
//  1. Infrastructure (rules, seed, interval, logging), then the engine is built
//  2. World placement on the built engine
//
// Rules violations are returned unchanged from NewEngine.
func NewTestSim(opts ...SimOption) (*TestSim, error) {
	ts := &TestSim{
		SimLog:        NewSimLog(false),
		Feed:          NewEventFeed(),
		Frames:        &DisplayList{},
		FrameInterval: defaultFrameInterval,
		rules:         DefaultRules(),
		rng:           rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
		logger:        zap.NewNop(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	e, err := NewEngine(
		WithRules(ts.rules),
		WithRand(ts.rng),
		WithLogger(ts.logger),
		WithRenderer(ts.Frames),
	)
	if err != nil {
		return nil, err
	}
	ts.Engine = e
	e.Subscribe(ts.SimLog.Record)
	e.Subscribe(ts.Feed.Push)
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(ts)
		}
	}
	if ts.ReportEvery > 0 {
		ts.Reporter = NewSimReporter(0)
	}
	ts.Clock = NewManualClock()
	ts.Driver = NewDriver(e, ts.Clock, ts.logger)
	ts.Driver.Start()
	return ts, nil
}

// Rules returns the rules the engine was built with.
func (ts *TestSim) Rules() Rules { return ts.rules }

// Apply forwards a command through the driver.
func (ts *TestSim) Apply(c Command) {
	ts.Driver.Apply(c)
}

// RunFrames advances the session n frames and returns how many steps the
// driver actually took. Frames after game over are no-ops.
func (ts *TestSim) RunFrames(n int) int {
	stepped := 0
	for i := 0; i < n; i++ {
		if ts.runOneFrame() {
			stepped++
		}
	}
	return stepped
}

// RunUntil advances up to maxFrames, stopping early if predicate returns
// true. Returns the frame at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		ts.runOneFrame()
		if predicate(ts) {
			return ts.Engine.Frame()
		}
	}
	return -1
}

// runOneFrame mirrors a host frame: input first, then one driver tick.
func (ts *TestSim) runOneFrame() bool {
	if ts.Driver.State() != StateRunning {
		ts.Clock.Advance(ts.FrameInterval)
		ts.Driver.Tick()
		return false
	}
	if ts.Autopilot != nil {
		if c := ts.Autopilot.Decide(ts.Engine); c != CmdNone {
			ts.Driver.Apply(c)
		}
	}
	ts.Clock.Advance(ts.FrameInterval)
	before := ts.Engine.Frame()
	ts.Driver.Tick()
	stepped := ts.Engine.Frame() != before
	if stepped && ts.Reporter != nil && ts.Engine.Frame()%ts.ReportEvery == 0 {
		ts.Reporter.Collect(ts.Engine)
	}
	return stepped
}

// Outcome classifies the session against a frame budget.
func (ts *TestSim) Outcome(frameBudget int) SessionOutcomeReason {
	return DetermineSessionOutcome(ts.Engine, ts.SimLog, frameBudget)
}

// EntitySnapshot is a lightweight copy of one entity.
type EntitySnapshot struct {
	Column int
	X, Y   float64
	Sprite SpriteID
}

// SimSnapshot captures the world at one frame.
type SimSnapshot struct {
	Frame    int
	Score    float64
	State    LoopState
	Player   EntitySnapshot
	Ammo     int
	Enemies  []EntitySnapshot
	Drops    []EntitySnapshot
	Missiles []EntitySnapshot
}

// Snapshot returns the current world state.
func (ts *TestSim) Snapshot() SimSnapshot {
	e := ts.Engine
	p := e.Player()
	snap := SimSnapshot{
		Frame:  e.Frame(),
		Score:  e.Score(),
		State:  ts.Driver.State(),
		Player: EntitySnapshot{Column: p.Column, X: p.X(), Y: p.Y, Sprite: p.Sprite()},
		Ammo:   p.Ammo,
	}
	e.Enemies().Each(func(col int, en *Enemy) {
		snap.Enemies = append(snap.Enemies, EntitySnapshot{Column: col, X: en.X, Y: en.Y, Sprite: en.Sprite()})
	})
	e.AmmoDrops().Each(func(col int, a *Ammo) {
		snap.Drops = append(snap.Drops, EntitySnapshot{Column: col, X: a.X, Y: a.Y, Sprite: a.Sprite()})
	})
	for _, m := range p.Missiles {
		snap.Missiles = append(snap.Missiles, EntitySnapshot{Column: m.Target, X: m.X, Y: m.Y, Sprite: m.Sprite()})
	}
	return snap
}
