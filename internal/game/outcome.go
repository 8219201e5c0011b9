package game

import "fmt"

type SessionOutcome int

const (
	OutcomeInconclusive SessionOutcome = iota
	OutcomeSurvived
	OutcomeKilled
)

func (o SessionOutcome) String() string {
	switch o {
	case OutcomeSurvived:
		return "survived"
	case OutcomeKilled:
		return "killed"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

type SessionOutcomeReason struct {
	Outcome     SessionOutcome
	Frames      int
	Score       int
	Kills       int
	Collected   int
	Fired       int
	Wasted      int // missiles that left the top edge without a hit
	DeathFrame  int // -1 when alive
	DeathColumn int // -1 when alive
	Description string
}

// Accuracy is kills per missile fired, 0 when nothing was fired.
func (r SessionOutcomeReason) Accuracy() float64 {
	if r.Fired == 0 {
		return 0
	}
	return float64(r.Kills) / float64(r.Fired)
}

// DetermineSessionOutcome classifies a session from the engine state and
// its event log. frameBudget is how many frames the run was allowed; a
// session with no frames is inconclusive.
func DetermineSessionOutcome(e *Engine, sl *SimLog, frameBudget int) SessionOutcomeReason {
	r := SessionOutcomeReason{
		Frames:      e.Frame(),
		Score:       e.DisplayScore(),
		Kills:       sl.CountCategory("enemy", "kill"),
		Collected:   sl.CountCategory("ammo", "collect"),
		Fired:       sl.CountCategory("missile", "fire"),
		DeathFrame:  -1,
		DeathColumn: -1,
	}
	r.Wasted = r.Fired - r.Kills - len(e.Player().Missiles)
	if r.Wasted < 0 {
		r.Wasted = 0
	}

	switch {
	case e.Dead():
		r.Outcome = OutcomeKilled
		if last, ok := sl.LastOf("player", "death"); ok {
			r.DeathFrame = last.Frame
			r.DeathColumn = last.Column
		} else {
			r.DeathFrame = e.Frame()
			r.DeathColumn = e.Player().Column
		}
		r.Description = fmt.Sprintf("killed_in_lane_%d_at_frame_%d", r.DeathColumn, r.DeathFrame)
	case e.Frame() == 0:
		r.Outcome = OutcomeInconclusive
		r.Description = "no_frames_run"
	case frameBudget > 0 && e.Frame() >= frameBudget:
		r.Outcome = OutcomeSurvived
		r.Description = fmt.Sprintf("survived_full_budget_%d_frames", frameBudget)
	default:
		r.Outcome = OutcomeInconclusive
		r.Description = "stopped_early"
	}
	return r
}

// FormatOutcome renders a one-line result.
func FormatOutcome(r SessionOutcomeReason) string {
	return fmt.Sprintf("outcome=%s score=%d frames=%d kills=%d fired=%d collected=%d accuracy=%.2f (%s)",
		r.Outcome, r.Score, r.Frames, r.Kills, r.Fired, r.Collected, r.Accuracy(), r.Description)
}
