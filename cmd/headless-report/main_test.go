package main

import (
	"testing"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
)

func TestCollectAggregate(t *testing.T) {
	all := []runStats{
		{outcome: game.SessionOutcomeReason{Outcome: game.OutcomeKilled, Score: 40, Kills: 3, Fired: 4, DeathColumn: 2, DeathFrame: 900}},
		{outcome: game.SessionOutcomeReason{Outcome: game.OutcomeSurvived, Score: 120, Kills: 5, Fired: 6, Collected: 6}},
		{outcome: game.SessionOutcomeReason{Outcome: game.OutcomeKilled, Score: 10, DeathColumn: 2, DeathFrame: 300}},
	}
	ag := collectAggregate(all)
	if ag.survived != 1 || ag.killed != 2 {
		t.Fatalf("expected survived=1 killed=2, got survived=%d killed=%d", ag.survived, ag.killed)
	}
	if got := ag.medianScore(); got != 40 {
		t.Fatalf("expected median 40, got %d", got)
	}
	if got := ag.accuracy(); got != 0.8 {
		t.Fatalf("expected accuracy 0.8, got %.2f", got)
	}
	if got := laneString(ag.deathLane); got != "L2=2" {
		t.Fatalf("expected L2=2, got %s", got)
	}
	if got := avgFrameString(ag.deathAt); got != "600.0" {
		t.Fatalf("expected 600.0, got %s", got)
	}
}

func TestEmptyHelpers(t *testing.T) {
	if got := laneString(nil); got != "none" {
		t.Fatalf("expected none, got %s", got)
	}
	if got := avgFrameString(nil); got != "n/a" {
		t.Fatalf("expected n/a, got %s", got)
	}
	if got := avg(5, 0); got != 0 {
		t.Fatalf("expected 0, got %.1f", got)
	}
	if got := (aggregate{}).medianScore(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestRunAutopilotSession(t *testing.T) {
	rs, err := runAutopilotSession(1, 7, 600, 10, false)
	if err != nil {
		t.Fatal(err)
	}
	if rs.outcome.Outcome == game.OutcomeInconclusive {
		t.Fatalf("a 600 frame run should end decided, got %s", game.FormatOutcome(rs.outcome))
	}
	if rs.windowSummary == nil {
		t.Fatal("expected a window summary")
	}
}
