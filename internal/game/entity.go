package game

import "math/rand"

// SpriteID is the logical name of an image. The engine only forwards it;
// frontends resolve it against their own asset tables.
type SpriteID string

const (
	SpriteStars     SpriteID = "stars"
	SpriteEnemy     SpriteID = "enemy"
	SpritePlayer    SpriteID = "player"
	SpriteSkull     SpriteID = "skull"
	SpriteAmmo      SpriteID = "ammo"
	SpriteAmmoStash SpriteID = "ammo_stash"
	SpriteMissile   SpriteID = "missile"
)

// AllSprites lists every sprite the engine can emit, in draw-table order.
var AllSprites = []SpriteID{
	SpriteStars, SpriteEnemy, SpritePlayer, SpriteSkull,
	SpriteAmmo, SpriteAmmoStash, SpriteMissile,
}

// Entity is the capability set shared by everything on the playfield.
// Collision rules live in the engine, not on the entities.
type Entity interface {
	Position() (x, y float64)
	Sprite() SpriteID
	Advance(dtMs float64)
}

// fallSpeed draws a per-instance speed in [min, max).
func fallSpeed(rng *rand.Rand, r Rules) float64 {
	return r.MinFallSpeed + rng.Float64()*(r.MaxFallSpeed-r.MinFallSpeed)
}

// Enemy falls down its lane at a speed fixed at creation.
type Enemy struct {
	Column int
	X, Y   float64
	Speed  float64
}

// NewEnemy creates an enemy just above the top edge of the given column.
func NewEnemy(column int, rng *rand.Rand, r Rules) *Enemy {
	return &Enemy{
		Column: column,
		X:      float64(column * r.ColumnWidth),
		Y:      -float64(r.EnemyHeight),
		Speed:  fallSpeed(rng, r),
	}
}

func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }
func (e *Enemy) Sprite() SpriteID             { return SpriteEnemy }

func (e *Enemy) Advance(dtMs float64) {
	e.Y += dtMs * e.Speed
}

// Ammo is a falling pickup worth Rounds missiles.
type Ammo struct {
	Column int
	X, Y   float64
	Speed  float64
	Rounds int
}

// NewAmmo creates an ammo drop just above the top edge of the given column.
func NewAmmo(column int, rng *rand.Rand, r Rules) *Ammo {
	return &Ammo{
		Column: column,
		X:      float64(column * r.ColumnWidth),
		Y:      -float64(r.AmmoHeight),
		Speed:  fallSpeed(rng, r),
		Rounds: r.AmmoRounds,
	}
}

func (a *Ammo) Position() (float64, float64) { return a.X, a.Y }
func (a *Ammo) Sprite() SpriteID             { return SpriteAmmo }

func (a *Ammo) Advance(dtMs float64) {
	a.Y += dtMs * a.Speed
}

// Missile flies straight up. Target is the enemy column it was aimed at
// when fired; it never retargets.
type Missile struct {
	X, Y   float64
	Speed  float64
	Target int
}

// NewMissile creates a missile at the firing position.
func NewMissile(x, y float64, r Rules) *Missile {
	return &Missile{
		X:      x,
		Y:      y,
		Speed:  r.MissileSpeed,
		Target: int(x) / r.EnemyWidth,
	}
}

func (m *Missile) Position() (float64, float64) { return m.X, m.Y }
func (m *Missile) Sprite() SpriteID             { return SpriteMissile }

func (m *Missile) Advance(dtMs float64) {
	m.Y -= dtMs * m.Speed
}
