package game

import (
	"testing"
)

// --- Invariant helpers ---

// checkPopulationBounds verifies that no population holds more live entities
// than its maximum and that every entity sits in its own column's slot.
func checkPopulationBounds(t *testing.T, ts *TestSim) {
	t.Helper()
	e := ts.Engine
	r := e.Rules()
	if n := e.Enemies().Occupied(); n > r.MaxEnemies {
		t.Fatalf("F=%d: %d enemies exceeds max %d", e.Frame(), n, r.MaxEnemies)
	}
	if n := e.AmmoDrops().Occupied(); n > r.MaxAmmo {
		t.Fatalf("F=%d: %d ammo drops exceeds max %d", e.Frame(), n, r.MaxAmmo)
	}
	e.Enemies().Each(func(col int, en *Enemy) {
		if en.Column != col {
			t.Fatalf("F=%d: enemy for column %d stored in slot %d", e.Frame(), en.Column, col)
		}
		if en.Speed < r.MinFallSpeed || en.Speed >= r.MaxFallSpeed {
			t.Fatalf("F=%d: enemy speed %.3f out of range", e.Frame(), en.Speed)
		}
	})
	e.AmmoDrops().Each(func(col int, a *Ammo) {
		if a.Column != col {
			t.Fatalf("F=%d: ammo for column %d stored in slot %d", e.Frame(), a.Column, col)
		}
	})
}

// checkRefilled verifies that a live session is back at full strength after
// every step. With no more entities than columns there is always room.
func checkRefilled(t *testing.T, ts *TestSim) {
	t.Helper()
	e := ts.Engine
	r := e.Rules()
	if e.Dead() {
		return
	}
	if e.Enemies().Occupied() != r.MaxEnemies || e.AmmoDrops().Occupied() != r.MaxAmmo {
		t.Fatalf("F=%d: populations not refilled: enemies=%d ammo=%d",
			e.Frame(), e.Enemies().Occupied(), e.AmmoDrops().Occupied())
	}
}

// checkMissilesInBounds verifies that every missile in flight is below the
// top slack and targets a real lane.
func checkMissilesInBounds(t *testing.T, ts *TestSim) {
	t.Helper()
	r := ts.Rules()
	for _, m := range ts.Engine.Player().Missiles {
		if m.Y < -float64(r.MissileHeight) {
			t.Fatalf("F=%d: missile at %.1f should have been removed", ts.Engine.Frame(), m.Y)
		}
		if m.Target < 0 || m.Target >= r.Columns() {
			t.Fatalf("F=%d: missile target %d out of range", ts.Engine.Frame(), m.Target)
		}
	}
}

// runChecked advances frame by frame, checking invariants after each one.
// It returns the score history.
func runChecked(t *testing.T, ts *TestSim, frames int) []float64 {
	t.Helper()
	scores := make([]float64, 0, frames)
	for i := 0; i < frames; i++ {
		ts.RunFrames(1)
		checkPopulationBounds(t, ts)
		checkRefilled(t, ts)
		checkMissilesInBounds(t, ts)
		scores = append(scores, ts.Engine.Score())
	}
	return scores
}

func TestInvariant_PopulationsAcrossSeeds(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1337} {
		ts, err := NewTestSim(WithSimSeed(seed), WithAutopilot())
		if err != nil {
			t.Fatal(err)
		}
		runChecked(t, ts, 2000)
	}
}

func TestInvariant_ScoreIsMonotonic(t *testing.T) {
	ts, err := NewTestSim(WithSimSeed(7), WithAutopilot(), WithFrameInterval(0))
	if err != nil {
		t.Fatal(err)
	}
	// Zero-length frames still count as steps but add no score.
	runChecked(t, ts, 50)
	if ts.Engine.Score() != 0 {
		t.Fatalf("zero interval frames added score %.1f", ts.Engine.Score())
	}

	ts, err = NewTestSim(WithSimSeed(7), WithAutopilot())
	if err != nil {
		t.Fatal(err)
	}
	scores := runChecked(t, ts, 1500)
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[i-1] {
			t.Fatalf("score decreased at frame %d: %.0f -> %.0f", i, scores[i-1], scores[i])
		}
	}
}

func TestInvariant_FullLanesEveryEnemyColumnBusy(t *testing.T) {
	r := DefaultRules()
	r.MaxEnemies = r.Columns()
	ts, err := NewTestSim(WithSimRules(r), WithSimSeed(9))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 300 && !ts.Engine.Dead(); i++ {
		ts.RunFrames(1)
		if !ts.Engine.Dead() && len(ts.Engine.Enemies().Free()) != 0 {
			t.Fatalf("F=%d: free lanes %v with max == columns", ts.Engine.Frame(), ts.Engine.Enemies().Free())
		}
	}
}

func TestInvariant_NoSpawnsWhenMaxIsZero(t *testing.T) {
	ts := newQuietSim(t)
	runChecked(t, ts, 200)
	if ts.Engine.Enemies().Occupied() != 0 || ts.Engine.AmmoDrops().Occupied() != 0 {
		t.Fatal("nothing should spawn with zero maxima")
	}
	if ts.Engine.Dead() {
		t.Fatal("an empty playfield cannot kill")
	}
}
