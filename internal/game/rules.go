package game

import (
	"errors"
	"fmt"
)

// ErrPopulationExceedsColumns is returned by NewEngine when a population
// maximum could never be satisfied by the column count.
var ErrPopulationExceedsColumns = errors.New("population maximum exceeds column count")

// ErrBadGeometry is returned by NewEngine when the playfield does not split
// into whole columns.
var ErrBadGeometry = errors.New("invalid playfield geometry")

// Rules holds the fixed gameplay constants. They are not loaded from config;
// NewEngine takes them so tests can exercise the startup validation.
type Rules struct {
	GameWidth    int
	GameHeight   int
	ColumnWidth  int
	FooterHeight int
	FontSize     int

	EnemyWidth  int
	EnemyHeight int
	MaxEnemies  int

	PlayerWidth  int
	PlayerHeight int

	AmmoWidth  int
	AmmoHeight int
	MaxAmmo    int
	AmmoRounds int

	MissileWidth  int
	MissileHeight int

	MinFallSpeed   float64 // units/ms, inclusive
	MaxFallSpeed   float64 // units/ms, exclusive
	MissileSpeed   float64
	PlayerFallBack float64
}

// DefaultRules returns the classic 375x900 five-lane layout.
func DefaultRules() Rules {
	return Rules{
		GameWidth:    375,
		GameHeight:   900,
		ColumnWidth:  75,
		FooterHeight: 40 + 10,
		FontSize:     30,

		EnemyWidth:  75,
		EnemyHeight: 156,
		MaxEnemies:  5,

		PlayerWidth:  75,
		PlayerHeight: 54,

		AmmoWidth:  75,
		AmmoHeight: 40,
		MaxAmmo:    1,
		AmmoRounds: 1,

		MissileWidth:  75,
		MissileHeight: 54,

		MinFallSpeed:   0.25,
		MaxFallSpeed:   0.75,
		MissileSpeed:   0.5,
		PlayerFallBack: 0.1,
	}
}

// Columns is the number of horizontal lanes.
func (r Rules) Columns() int {
	return r.GameWidth / r.ColumnWidth
}

// PlayerStartingHeight is the resting row the player settles back to.
func (r Rules) PlayerStartingHeight() float64 {
	return float64(r.GameHeight - r.FooterHeight - 10 - r.PlayerHeight)
}

// PlayerMaxHeight is the highest row the player may dodge up to.
func (r Rules) PlayerMaxHeight() float64 {
	return float64(r.PlayerHeight * 2)
}

// Validate checks the configuration invariants the allocator relies on.
// A population may fill every lane but never more, otherwise the slot
// search has nowhere to go.
func (r Rules) Validate() error {
	if r.ColumnWidth <= 0 || r.GameWidth <= 0 || r.GameHeight <= 0 {
		return fmt.Errorf("%w: width=%d height=%d column=%d", ErrBadGeometry, r.GameWidth, r.GameHeight, r.ColumnWidth)
	}
	if r.GameWidth%r.ColumnWidth != 0 {
		return fmt.Errorf("%w: width %d is not a multiple of column width %d", ErrBadGeometry, r.GameWidth, r.ColumnWidth)
	}
	if r.EnemyWidth != r.ColumnWidth {
		// Missile targets are derived from x / EnemyWidth.
		return fmt.Errorf("%w: enemy width %d must equal column width %d", ErrBadGeometry, r.EnemyWidth, r.ColumnWidth)
	}
	if r.MaxFallSpeed < r.MinFallSpeed {
		return fmt.Errorf("%w: fall speed range [%g, %g)", ErrBadGeometry, r.MinFallSpeed, r.MaxFallSpeed)
	}
	cols := r.Columns()
	if r.MaxEnemies < 0 || r.MaxEnemies > cols {
		return fmt.Errorf("enemies: %w: max=%d columns=%d", ErrPopulationExceedsColumns, r.MaxEnemies, cols)
	}
	if r.MaxAmmo < 0 || r.MaxAmmo > cols {
		return fmt.Errorf("ammo: %w: max=%d columns=%d", ErrPopulationExceedsColumns, r.MaxAmmo, cols)
	}
	return nil
}
