package game

import (
	"errors"
	"testing"
)

func TestRules_DefaultsAreValid(t *testing.T) {
	r := DefaultRules()
	if err := r.Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}
	if got := r.Columns(); got != 5 {
		t.Fatalf("expected 5 columns, got %d", got)
	}
	if got := r.PlayerStartingHeight(); got != 786 {
		t.Fatalf("expected starting height 786, got %.1f", got)
	}
	if got := r.PlayerMaxHeight(); got != 108 {
		t.Fatalf("expected max height 108, got %.1f", got)
	}
}

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
		want   error
	}{
		{"enemies fill every lane", func(r *Rules) { r.MaxEnemies = 5 }, nil},
		{"no ammo", func(r *Rules) { r.MaxAmmo = 0 }, nil},
		{"too many enemies", func(r *Rules) { r.MaxEnemies = 6 }, ErrPopulationExceedsColumns},
		{"too much ammo", func(r *Rules) { r.MaxAmmo = 9 }, ErrPopulationExceedsColumns},
		{"negative max", func(r *Rules) { r.MaxEnemies = -1 }, ErrPopulationExceedsColumns},
		{"zero column", func(r *Rules) { r.ColumnWidth = 0 }, ErrBadGeometry},
		{"ragged width", func(r *Rules) { r.GameWidth = 380 }, ErrBadGeometry},
		{"enemy narrower than lane", func(r *Rules) { r.EnemyWidth = 60 }, ErrBadGeometry},
		{"inverted speeds", func(r *Rules) { r.MinFallSpeed, r.MaxFallSpeed = 0.8, 0.2 }, ErrBadGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.mutate(&r)
			err := r.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewEngine_RejectsOverfullPopulation(t *testing.T) {
	r := DefaultRules()
	r.MaxEnemies = r.Columns() + 1
	e, err := NewEngine(WithRules(r), WithSeed(1))
	if err == nil {
		t.Fatal("expected construction to fail")
	}
	if e != nil {
		t.Fatal("expected no engine on failure")
	}
	if !errors.Is(err, ErrPopulationExceedsColumns) {
		t.Fatalf("expected ErrPopulationExceedsColumns, got %v", err)
	}
}
