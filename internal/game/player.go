package game

// Command is a discrete input event. Mapping raw keys to commands is the
// frontend's job.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveUp
	CmdMoveDown
	CmdFire
)

func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "left"
	case CmdMoveRight:
		return "right"
	case CmdMoveUp:
		return "up"
	case CmdMoveDown:
		return "down"
	case CmdFire:
		return "fire"
	default:
		return "none"
	}
}

// Player is the single user-controlled entity. It moves a whole lane or a
// whole sprite height per command and drifts back down to its starting row.
type Player struct {
	Column   int
	Y        float64
	Ammo     int
	Missiles []*Missile
	Dead     bool

	speed     float64
	columnW   float64
	maxColumn int
	stepY     float64
	startY    float64
	topY      float64
}

// NewPlayer places the player in the middle lane on the starting row.
func NewPlayer(r Rules) *Player {
	return &Player{
		Column:    2,
		Y:         r.PlayerStartingHeight(),
		speed:     r.PlayerFallBack,
		columnW:   float64(r.PlayerWidth),
		maxColumn: (r.GameWidth - r.PlayerWidth) / r.PlayerWidth,
		stepY:     float64(r.PlayerHeight),
		startY:    r.PlayerStartingHeight(),
		topY:      r.PlayerMaxHeight(),
	}
}

// X is the player's horizontal pixel position.
func (p *Player) X() float64 { return float64(p.Column) * p.columnW }

func (p *Player) Position() (float64, float64) { return p.X(), p.Y }

func (p *Player) Sprite() SpriteID {
	if p.Dead {
		return SpriteSkull
	}
	return SpritePlayer
}

// Advance settles the player toward the starting row while above it.
func (p *Player) Advance(dtMs float64) {
	if p.Y < p.startY {
		p.Y += dtMs * p.speed
	}
}

// Move applies one directional command. It reports whether the player
// actually moved; moves past the playfield edges are ignored.
func (p *Player) Move(c Command) bool {
	switch {
	case c == CmdMoveLeft && p.Column > 0:
		p.Column--
	case c == CmdMoveRight && p.Column < p.maxColumn:
		p.Column++
	case c == CmdMoveUp && p.Y > p.topY:
		p.Y -= p.stepY
	case c == CmdMoveDown && p.Y < p.startY:
		p.Y += p.stepY
	default:
		return false
	}
	return true
}

// Fire launches a missile from the current position when ammo is available.
func (p *Player) Fire(r Rules) (*Missile, bool) {
	if p.Ammo <= 0 {
		return nil, false
	}
	m := NewMissile(p.X(), p.Y, r)
	p.Missiles = append(p.Missiles, m)
	p.Ammo--
	return m, true
}
