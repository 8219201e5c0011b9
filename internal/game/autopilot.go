package game

// defaultDangerMargin is how far above the player row (in units) the bottom
// of an enemy may be before the autopilot treats the lane as unsafe.
const defaultDangerMargin = 140.0

// Autopilot is a deterministic player policy for headless runs. It reads
// the engine state and proposes at most one command per frame.
type Autopilot struct {
	DangerMargin float64
	ChaseAmmo    bool
}

// NewAutopilot returns the policy used by the headless report.
func NewAutopilot() *Autopilot {
	return &Autopilot{DangerMargin: defaultDangerMargin, ChaseAmmo: true}
}

// laneDanger scores how soon the enemy in column will reach the player row.
// 0 means safe; larger is more urgent.
func (a *Autopilot) laneDanger(e *Engine, column int) float64 {
	en := e.Enemies().At(column)
	if en == nil {
		return 0
	}
	p := e.Player()
	h := float64(e.Rules().EnemyHeight)
	if en.Y+h/2 >= p.Y {
		// The dangerous half has already passed the player.
		return 0
	}
	gap := p.Y - (en.Y + h)
	if gap > a.DangerMargin {
		return 0
	}
	// Faster enemies at the same gap are more urgent.
	return (a.DangerMargin - gap + 1) * (1 + en.Speed)
}

func laneTargeted(p *Player, column int) bool {
	for _, m := range p.Missiles {
		if m.Target == column {
			return true
		}
	}
	return false
}

// Decide returns the next command, or CmdNone to hold position.
func (a *Autopilot) Decide(e *Engine) Command {
	p := e.Player()
	if p.Dead {
		return CmdNone
	}
	here := a.laneDanger(e, p.Column)

	if here > 0 {
		if p.Ammo > 0 && !laneTargeted(p, p.Column) {
			return CmdFire
		}
		if laneTargeted(p, p.Column) {
			// Trust the shot in flight unless a neighbour is clearly safe.
			if c := a.safeNeighbour(e, 0); c != CmdNone {
				return c
			}
			return CmdNone
		}
		if c := a.safeNeighbour(e, here); c != CmdNone {
			return c
		}
		if p.Y < e.Rules().PlayerStartingHeight() {
			return CmdMoveDown
		}
		return CmdNone
	}

	if a.ChaseAmmo && p.Ammo == 0 {
		target := -1
		e.AmmoDrops().Each(func(col int, _ *Ammo) { target = col })
		if target >= 0 && target != p.Column {
			dir, next := CmdMoveRight, p.Column+1
			if target < p.Column {
				dir, next = CmdMoveLeft, p.Column-1
			}
			if a.laneDanger(e, next) == 0 {
				return dir
			}
		}
	}
	return CmdNone
}

// safeNeighbour picks the adjacent lane whose danger is strictly below
// limit, preferring the lower score and then the left side.
func (a *Autopilot) safeNeighbour(e *Engine, limit float64) Command {
	p := e.Player()
	best, bestScore := CmdNone, limit
	if limit == 0 {
		bestScore = 1e-9
	}
	cols := e.Rules().Columns()
	if p.Column > 0 {
		if d := a.laneDanger(e, p.Column-1); d < bestScore {
			best, bestScore = CmdMoveLeft, d
		}
	}
	if p.Column < cols-1 {
		if d := a.laneDanger(e, p.Column+1); d < bestScore {
			best = CmdMoveRight
		}
	}
	return best
}
