package game

import (
	"math"
	"strings"
	"testing"
)

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A+"}, {93, "A+"}, {92.9, "A"}, {78, "B+"}, {70, "B"},
		{62, "C+"}, {55, "C"}, {45, "D"}, {44.9, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := LetterGrade(tt.score); got != tt.want {
			t.Errorf("LetterGrade(%.1f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestGradeSession_Survivor(t *testing.T) {
	r := SessionOutcomeReason{
		Outcome: OutcomeSurvived, Frames: 3600,
		Fired: 8, Kills: 8, Collected: 8, DeathFrame: -1, DeathColumn: -1,
	}
	wr := &WindowReport{SampleCount: 60, ThreatenedPct: 0}
	g := GradeSession(r, wr, 3600)
	if math.Abs(g.Score-100) > 1e-9 || g.Grade != "A+" {
		t.Fatalf("perfect session graded %s (%.1f)", g.Grade, g.Score)
	}
	if strings.Join(g.GoodTraits, ",") != "survivor,sharpshooter,cool_headed" {
		t.Fatalf("unexpected good traits %v", g.GoodTraits)
	}
	if len(g.BadTraits) != 0 {
		t.Fatalf("unexpected bad traits %v", g.BadTraits)
	}
}

func TestGradeSession_EarlyDeathWithoutData(t *testing.T) {
	r := SessionOutcomeReason{
		Outcome: OutcomeKilled, Frames: 360, DeathFrame: 360, DeathColumn: 2,
	}
	g := GradeSession(r, nil, 3600)
	if g.MarksmanshipScore != -1 || g.ComposureScore != -1 || g.SupplyScore != -1 {
		t.Fatalf("ungraded situations should be -1: %+v", g)
	}
	// Only survival counts: 360/3600.
	if g.Score != 10 || g.Grade != "F" {
		t.Fatalf("expected F (10.0), got %s (%.1f)", g.Grade, g.Score)
	}
	if len(g.BadTraits) != 1 || g.BadTraits[0] != "early_death" {
		t.Fatalf("expected early_death, got %v", g.BadTraits)
	}
	out := FormatGrade(g)
	if !strings.Contains(out, "Survival=10") || strings.Contains(out, "Aim=") {
		t.Fatalf("unexpected format:\n%s", out)
	}
}

func TestGradeSession_FromAutopilotRun(t *testing.T) {
	ts, err := NewTestSim(WithSimSeed(11), WithAutopilot(), WithReportEvery(10))
	if err != nil {
		t.Fatal(err)
	}
	const budget = 1200
	ts.RunFrames(budget)
	wr := ts.Reporter.WindowSummary()
	g := GradeSession(ts.Outcome(budget), wr, budget)
	t.Logf("\n%s", FormatGrade(g))
	if g.Score < 0 || g.Score > 100 {
		t.Fatalf("score %.1f out of range", g.Score)
	}
	if wr != nil && g.ComposureScore < 0 {
		t.Fatal("a reported session should grade composure")
	}
}

func TestFormatGradesSummary(t *testing.T) {
	if !strings.Contains(FormatGradesSummary(nil), "no sessions") {
		t.Fatal("empty summary should say so")
	}
	grades := []SessionGrade{
		{Score: 90, GoodTraits: []string{"survivor"}},
		{Score: 50, GoodTraits: []string{"survivor"}, BadTraits: []string{"wasteful"}},
	}
	out := FormatGradesSummary(grades)
	if !strings.Contains(out, "avg_score=70.0 (B)") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if !strings.Contains(out, "survivor(2)") || !strings.Contains(out, "wasteful(1)") {
		t.Fatalf("missing traits:\n%s", out)
	}
}
