package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Engine owns the world: the player, the enemy and ammo populations and the
// score. It is not safe for concurrent use; frontends call Apply and Step
// from a single goroutine.
type Engine struct {
	rules Rules
	rng   *rand.Rand
	log   *zap.Logger

	player  *Player
	enemies *Population[Enemy]
	ammo    *Population[Ammo]

	score float64 // elapsed ms survived
	frame int

	renderer  Renderer
	listeners []func(Event)
}

// StepResult summarises one simulation step.
type StepResult struct {
	Frame     int
	Dt        float64
	Kills     int
	Collected int
	Dead      bool
}

// EngineOption configures an Engine at construction.
type EngineOption func(*Engine)

// WithRules replaces the default rules.
func WithRules(r Rules) EngineOption {
	return func(e *Engine) { e.rules = r }
}

// WithRand sets the random source used for lanes and fall speeds.
func WithRand(rng *rand.Rand) EngineOption {
	return func(e *Engine) { e.rng = rng }
}

// WithSeed seeds a private random source. Zero means time based.
func WithSeed(seed int64) EngineOption {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// WithRenderer sets the sink every step renders into.
func WithRenderer(r Renderer) EngineOption {
	return func(e *Engine) { e.renderer = r }
}

// NewEngine validates the rules and builds a populated world. A rules
// violation is fatal: no engine is returned.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		rules: DefaultRules(),
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	if err := e.rules.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- gameplay only
	}
	cols := e.rules.Columns()
	e.enemies = NewPopulation[Enemy](cols)
	e.ammo = NewPopulation[Ammo](cols)
	e.player = NewPlayer(e.rules)
	e.repopulate()
	e.log.Info("engine ready",
		zap.Int("columns", cols),
		zap.Int("max_enemies", e.rules.MaxEnemies),
		zap.Int("max_ammo", e.rules.MaxAmmo))
	return e, nil
}

// Reset starts a fresh session on the same engine.
func (e *Engine) Reset() {
	e.player = NewPlayer(e.rules)
	e.enemies.Clear()
	e.ammo.Clear()
	e.score = 0
	e.frame = 0
	e.repopulate()
	e.log.Info("session reset")
}

// Subscribe registers fn to receive every event.
func (e *Engine) Subscribe(fn func(Event)) {
	e.listeners = append(e.listeners, fn)
}

// SetRenderer swaps the render sink.
func (e *Engine) SetRenderer(r Renderer) { e.renderer = r }

func (e *Engine) Rules() Rules                 { return e.rules }
func (e *Engine) Player() *Player              { return e.player }
func (e *Engine) Enemies() *Population[Enemy]  { return e.enemies }
func (e *Engine) AmmoDrops() *Population[Ammo] { return e.ammo }
func (e *Engine) Score() float64               { return e.score }
func (e *Engine) Frame() int                   { return e.frame }
func (e *Engine) Dead() bool                   { return e.player.Dead }

// DisplayScore is the score as shown on screen.
func (e *Engine) DisplayScore() int {
	return int(math.Floor(e.score / 100))
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.listeners {
		fn(ev)
	}
}

// Apply executes a player command immediately. Commands are ignored once
// the player is dead.
func (e *Engine) Apply(c Command) {
	p := e.player
	if p.Dead {
		return
	}
	if c == CmdFire {
		m, ok := p.Fire(e.rules)
		if !ok {
			e.log.Debug("fire ignored, no ammo")
			return
		}
		e.emit(Event{Kind: EventFire, Frame: e.frame, Column: m.Target, X: m.X, Y: m.Y, Value: float64(p.Ammo)})
		return
	}
	if !p.Move(c) {
		return
	}
	e.log.Debug("player moved",
		zap.Stringer("dir", c),
		zap.Float64("x", p.X()),
		zap.Float64("y", p.Y))
	e.emit(Event{Kind: EventMove, Frame: e.frame, Column: p.Column, X: p.X(), Y: p.Y})
}

// Step runs one frame of simulation dtMs after the previous one. Once the
// player is dead it does nothing.
func (e *Engine) Step(dtMs float64) StepResult {
	if e.player.Dead {
		return StepResult{Frame: e.frame, Dead: true}
	}
	if dtMs < 0 || math.IsNaN(dtMs) {
		dtMs = 0
	}
	e.frame++
	res := StepResult{Frame: e.frame, Dt: dtMs}

	e.score += dtMs

	e.advance(dtMs)
	res.Kills = e.resolveMissiles()
	res.Collected = e.collectAmmo()
	e.removeOutOfBounds()

	res.Dead = e.playerStruck()

	e.repopulate()

	if res.Dead {
		e.player.Dead = true
		e.log.Info("game over",
			zap.Int("score", e.DisplayScore()),
			zap.Int("frame", e.frame),
			zap.Int("column", e.player.Column))
		e.emit(Event{Kind: EventDeath, Frame: e.frame, Column: e.player.Column, X: e.player.X(), Y: e.player.Y, Value: e.score})
	}
	e.drawFrame(e.renderer, res.Dead)
	return res
}

// Render draws the current world without stepping.
func (e *Engine) Render(r Renderer) {
	e.drawFrame(r, e.player.Dead)
}

func (e *Engine) advance(dt float64) {
	e.enemies.Each(func(_ int, en *Enemy) { en.Advance(dt) })
	e.ammo.Each(func(_ int, a *Ammo) { a.Advance(dt) })
	for _, m := range e.player.Missiles {
		m.Advance(dt)
	}
	e.player.Advance(dt)
}

// resolveMissiles removes every missile whose nose reached the lower half of
// the enemy in its target lane, together with that enemy.
func (e *Engine) resolveMissiles() int {
	r := e.rules
	kills := 0
	kept := e.player.Missiles[:0]
	for _, m := range e.player.Missiles {
		target := e.enemies.At(m.Target)
		if target != nil && m.Y+float64(r.MissileHeight)/2 <= target.Y+float64(r.EnemyHeight) {
			e.enemies.Remove(m.Target)
			kills++
			e.log.Debug("enemy destroyed", zap.Int("column", m.Target), zap.Float64("y", target.Y))
			e.emit(Event{Kind: EventKill, Frame: e.frame, Column: m.Target, X: target.X, Y: target.Y})
			continue
		}
		kept = append(kept, m)
	}
	clearTail(e.player.Missiles, len(kept))
	e.player.Missiles = kept
	return kills
}

func (e *Engine) collectAmmo() int {
	p := e.player
	h := float64(e.rules.AmmoHeight)
	collected := 0
	e.ammo.Each(func(col int, a *Ammo) {
		if a.Column == p.Column && p.Y > a.Y && p.Y <= a.Y+h {
			p.Ammo += a.Rounds
			collected += a.Rounds
			e.ammo.Remove(col)
			e.log.Debug("ammo collected", zap.Int("rounds", a.Rounds), zap.Int("ammo", p.Ammo))
			e.emit(Event{Kind: EventCollect, Frame: e.frame, Column: col, X: a.X, Y: a.Y, Value: float64(a.Rounds)})
		}
	})
	return collected
}

// removeOutOfBounds culls falling entities past the bottom edge and
// missiles more than one missile height above the top edge.
func (e *Engine) removeOutOfBounds() {
	bottom := float64(e.rules.GameHeight)
	e.enemies.Each(func(col int, en *Enemy) {
		if en.Y > bottom {
			e.enemies.Remove(col)
			e.emit(Event{Kind: EventEnemyExit, Frame: e.frame, Column: col, X: en.X, Y: en.Y})
		}
	})
	e.ammo.Each(func(col int, a *Ammo) {
		if a.Y > bottom {
			e.ammo.Remove(col)
			e.emit(Event{Kind: EventAmmoExit, Frame: e.frame, Column: col, X: a.X, Y: a.Y})
		}
	})
	top := -float64(e.rules.MissileHeight)
	kept := e.player.Missiles[:0]
	for _, m := range e.player.Missiles {
		if m.Y < top {
			e.emit(Event{Kind: EventMissileExit, Frame: e.frame, Column: m.Target, X: m.X, Y: m.Y})
			continue
		}
		kept = append(kept, m)
	}
	clearTail(e.player.Missiles, len(kept))
	e.player.Missiles = kept
}

// playerStruck reports whether the lower half of an enemy in the player's
// lane overlaps the player's row.
func (e *Engine) playerStruck() bool {
	en := e.enemies.At(e.player.Column)
	if en == nil {
		return false
	}
	return StruckBy(e.player.Y, en.Y, float64(e.rules.EnemyHeight))
}

// StruckBy is the death band: the player row must lie within the lower half
// of the enemy sprite, bottom edge included, midpoint excluded.
func StruckBy(playerY, enemyY, enemyHeight float64) bool {
	return playerY <= enemyY+enemyHeight && playerY > enemyY+enemyHeight/2
}

func (e *Engine) repopulate() {
	for _, col := range EnsurePopulation(e.enemies, e.rules.MaxEnemies, e.rng, func(c int) *Enemy {
		return NewEnemy(c, e.rng, e.rules)
	}) {
		en := e.enemies.At(col)
		e.emit(Event{Kind: EventSpawnEnemy, Frame: e.frame, Column: col, X: en.X, Y: en.Y, Value: en.Speed})
	}
	for _, col := range EnsurePopulation(e.ammo, e.rules.MaxAmmo, e.rng, func(c int) *Ammo {
		return NewAmmo(c, e.rng, e.rules)
	}) {
		a := e.ammo.At(col)
		e.emit(Event{Kind: EventSpawnAmmo, Frame: e.frame, Column: col, X: a.X, Y: a.Y, Value: a.Speed})
	}
}

// clearTail nils out the dropped tail so removed missiles can be collected.
func clearTail(s []*Missile, keep int) {
	for i := keep; i < len(s); i++ {
		s[i] = nil
	}
}
