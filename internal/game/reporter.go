package game

import (
	"fmt"
	"strings"
)

// reportWindowFrames is the default sliding window for recent-behaviour
// reports (~10s at 60 frames per second).
const reportWindowFrames = 600

// SimReport is a snapshot of the world at one frame.
type SimReport struct {
	Frame            int
	Score            int
	Enemies          int
	AmmoDrops        int
	MissilesInFlight int
	PlayerAmmo       int
	PlayerColumn     int
	PlayerY          float64

	// ThreatGap is the vertical distance from the lowest point of the enemy
	// in the player's lane to the player row. Negative means overlapping;
	// NoThreat when the lane is empty.
	ThreatGap  float64
	Threatened bool // gap smaller than one enemy height
}

// NoThreat marks an empty player lane in SimReport.ThreatGap.
const NoThreat = 1e9

// SimReporter collects periodic snapshots of a session.
type SimReporter struct {
	history      []SimReport
	windowFrames int
}

// NewSimReporter creates a reporter with the given window size in frames.
func NewSimReporter(windowFrames int) *SimReporter {
	if windowFrames <= 0 {
		windowFrames = reportWindowFrames
	}
	return &SimReporter{windowFrames: windowFrames}
}

// Collect gathers a snapshot from the engine. Call it periodically
// (e.g. every 60 frames).
func (r *SimReporter) Collect(e *Engine) {
	p := e.Player()
	report := SimReport{
		Frame:            e.Frame(),
		Score:            e.DisplayScore(),
		Enemies:          e.Enemies().Occupied(),
		AmmoDrops:        e.AmmoDrops().Occupied(),
		MissilesInFlight: len(p.Missiles),
		PlayerAmmo:       p.Ammo,
		PlayerColumn:     p.Column,
		PlayerY:          p.Y,
		ThreatGap:        NoThreat,
	}
	if en := e.Enemies().At(p.Column); en != nil {
		h := float64(e.Rules().EnemyHeight)
		report.ThreatGap = p.Y - (en.Y + h)
		report.Threatened = report.ThreatGap < h
	}
	r.history = append(r.history, report)
}

// Latest returns the most recent report, or nil.
func (r *SimReporter) Latest() *SimReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all collected reports.
func (r *SimReporter) History() []SimReport {
	return r.history
}

// WindowReport aggregates the reports inside the recent window.
type WindowReport struct {
	FromFrame, ToFrame int
	SampleCount        int

	AvgEnemies          float64
	AvgAmmoDrops        float64
	AvgMissilesInFlight float64
	AvgPlayerAmmo       float64
	AvgPlayerY          float64

	// ThreatenedPct is the share of samples with an enemy in the player lane
	// closer than one enemy height.
	ThreatenedPct float64
	MinThreatGap  float64
}

// WindowSummary averages every report within the window ending at the
// latest one.
func (r *SimReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}
	latest := r.history[len(r.history)-1].Frame
	cutoff := latest - r.windowFrames
	var window []SimReport
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Frame < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	wr := &WindowReport{
		FromFrame:    window[len(window)-1].Frame,
		ToFrame:      latest,
		SampleCount:  len(window),
		MinThreatGap: NoThreat,
	}
	threatened := 0
	for _, s := range window {
		wr.AvgEnemies += float64(s.Enemies)
		wr.AvgAmmoDrops += float64(s.AmmoDrops)
		wr.AvgMissilesInFlight += float64(s.MissilesInFlight)
		wr.AvgPlayerAmmo += float64(s.PlayerAmmo)
		wr.AvgPlayerY += s.PlayerY
		if s.ThreatGap < wr.MinThreatGap {
			wr.MinThreatGap = s.ThreatGap
		}
		if s.Threatened {
			threatened++
		}
	}
	n := float64(len(window))
	wr.AvgEnemies /= n
	wr.AvgAmmoDrops /= n
	wr.AvgMissilesInFlight /= n
	wr.AvgPlayerAmmo /= n
	wr.AvgPlayerY /= n
	wr.ThreatenedPct = 100 * float64(threatened) / n
	return wr
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Session Report (F=%d..%d, %d samples) ===\n",
		wr.FromFrame, wr.ToFrame, wr.SampleCount)
	fmt.Fprintf(&sb, "  populations: enemies=%.2f ammo_drops=%.2f\n", wr.AvgEnemies, wr.AvgAmmoDrops)
	fmt.Fprintf(&sb, "  player: ammo=%.2f missiles_in_flight=%.2f row=%.1f\n",
		wr.AvgPlayerAmmo, wr.AvgMissilesInFlight, wr.AvgPlayerY)
	gap := "none"
	if wr.MinThreatGap != NoThreat {
		gap = fmt.Sprintf("%.1f", wr.MinThreatGap)
	}
	fmt.Fprintf(&sb, "  threat: threatened=%.1f%% min_gap=%s\n", wr.ThreatenedPct, gap)
	return sb.String()
}

// FormatLatest returns a concise snapshot of the most recent report.
func (r *SimReporter) FormatLatest() string {
	rpt := r.Latest()
	if rpt == nil {
		return "No data.\n"
	}
	return fmt.Sprintf("--- Snapshot F=%d --- score=%d enemies=%d ammo_drops=%d missiles=%d ammo=%d lane=%d row=%.1f\n",
		rpt.Frame, rpt.Score, rpt.Enemies, rpt.AmmoDrops, rpt.MissilesInFlight,
		rpt.PlayerAmmo, rpt.PlayerColumn, rpt.PlayerY)
}
