package game

import (
	"strings"
	"testing"
)

func TestSimReporter_Collect(t *testing.T) {
	ts := newQuietSim(t, WithEnemyAt(2, 500, 0), WithAmmoAt(0, 10, 0), WithPlayerAmmo(2))
	r := NewSimReporter(0)
	if r.Latest() != nil {
		t.Fatal("empty reporter should have no latest report")
	}
	if !strings.Contains(r.FormatLatest(), "No data") {
		t.Fatal("empty reporter should say so")
	}
	r.Collect(ts.Engine)
	rpt := r.Latest()
	if rpt.Enemies != 1 || rpt.AmmoDrops != 1 || rpt.PlayerAmmo != 2 || rpt.PlayerColumn != 2 {
		t.Fatalf("unexpected report %+v", *rpt)
	}
	if rpt.ThreatGap != 786-656 {
		t.Fatalf("threat gap %.1f, want 130", rpt.ThreatGap)
	}
	if !rpt.Threatened {
		t.Fatal("an enemy 130 units above should count as a threat")
	}

	ts.Apply(CmdMoveLeft)
	r.Collect(ts.Engine)
	if got := r.Latest().ThreatGap; got != NoThreat {
		t.Fatalf("empty lane should have no threat, got %.1f", got)
	}
}

func TestSimReporter_WindowSummary(t *testing.T) {
	ts, err := NewTestSim(WithSimRules(quietRules()), WithReportEvery(10))
	if err != nil {
		t.Fatal(err)
	}
	if ts.Reporter.WindowSummary() != nil {
		t.Fatal("no samples yet")
	}
	if !strings.Contains((*WindowReport)(nil).Format(), "No data") {
		t.Fatal("nil window should format as no data")
	}
	ts.RunFrames(1000)
	if n := len(ts.Reporter.History()); n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}
	wr := ts.Reporter.WindowSummary()
	// Default window is 600 frames, sampled every 10 frames inclusive.
	if wr.SampleCount != 61 || wr.ToFrame != 1000 || wr.FromFrame != 400 {
		t.Fatalf("unexpected window %+v", *wr)
	}
	if wr.AvgEnemies != 0 || wr.ThreatenedPct != 0 || wr.MinThreatGap != NoThreat {
		t.Fatalf("empty playfield window %+v", *wr)
	}
	if !strings.Contains(wr.Format(), "min_gap=none") {
		t.Fatalf("unexpected format:\n%s", wr.Format())
	}
}
