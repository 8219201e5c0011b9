package game

import (
	"fmt"
	"sort"
	"strings"
)

// earlyDeathFrames is ~10s at 60 frames per second.
const earlyDeathFrames = 600

// SessionGrade is the computed performance grade for one session.
type SessionGrade struct {
	Grade string  // A+, A, B+, B, C+, C, D, F
	Score float64 // 0-100

	// Situation scores (0-100; -1 = not enough data to grade).
	SurvivalScore     float64
	MarksmanshipScore float64
	ComposureScore    float64
	SupplyScore       float64

	GoodTraits []string
	BadTraits  []string
}

// GradeSession scores a finished session. wr may be nil when no reporter
// ran; composure is then left ungraded.
func GradeSession(r SessionOutcomeReason, wr *WindowReport, frameBudget int) SessionGrade {
	g := SessionGrade{
		MarksmanshipScore: -1,
		ComposureScore:    -1,
		SupplyScore:       -1,
	}

	switch {
	case r.Outcome == OutcomeSurvived:
		g.SurvivalScore = 100
	case frameBudget > 0:
		g.SurvivalScore = gradeClamp(100 * gradeFrac(r.Frames, frameBudget))
	}
	if r.Fired > 0 {
		g.MarksmanshipScore = gradeClamp(100 * r.Accuracy())
	}
	if wr != nil && wr.SampleCount > 0 {
		g.ComposureScore = gradeClamp(100 - wr.ThreatenedPct)
	}
	if r.Collected > 0 {
		g.SupplyScore = gradeClamp(100 * gradeFrac(r.Fired, r.Collected))
	}

	weights := []struct {
		score, weight float64
	}{
		{g.SurvivalScore, 0.5},
		{g.MarksmanshipScore, 0.25},
		{g.ComposureScore, 0.15},
		{g.SupplyScore, 0.1},
	}
	var sum, total float64
	for _, w := range weights {
		if w.score < 0 {
			continue
		}
		sum += w.score * w.weight
		total += w.weight
	}
	if total > 0 {
		g.Score = sum / total
	}
	g.Grade = LetterGrade(g.Score)
	g.GoodTraits, g.BadTraits = sessionTraits(r, wr)
	return g
}

func sessionTraits(r SessionOutcomeReason, wr *WindowReport) (good, bad []string) {
	if r.Outcome == OutcomeSurvived {
		good = append(good, "survivor")
	}
	if r.Fired >= 5 && r.Accuracy() >= 0.75 {
		good = append(good, "sharpshooter")
	}
	if wr != nil && wr.SampleCount > 0 && wr.ThreatenedPct < 5 {
		good = append(good, "cool_headed")
	}
	if r.Outcome == OutcomeKilled && r.DeathFrame >= 0 && r.DeathFrame < earlyDeathFrames {
		bad = append(bad, "early_death")
	}
	if r.Wasted >= 3 && r.Accuracy() < 0.5 {
		bad = append(bad, "wasteful")
	}
	if r.Collected >= 3 && r.Fired == 0 {
		bad = append(bad, "hoarder")
	}
	return good, bad
}

// FormatGrade renders one grade on two or three lines.
func FormatGrade(g SessionGrade) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "grade: %-2s (%.1f)\n", g.Grade, g.Score)

	var scores []string
	if g.SurvivalScore >= 0 {
		scores = append(scores, fmt.Sprintf("Survival=%.0f", g.SurvivalScore))
	}
	if g.MarksmanshipScore >= 0 {
		scores = append(scores, fmt.Sprintf("Aim=%.0f", g.MarksmanshipScore))
	}
	if g.ComposureScore >= 0 {
		scores = append(scores, fmt.Sprintf("Composure=%.0f", g.ComposureScore))
	}
	if g.SupplyScore >= 0 {
		scores = append(scores, fmt.Sprintf("Supply=%.0f", g.SupplyScore))
	}
	fmt.Fprintf(&sb, "  scores: %s\n", strings.Join(scores, "  "))
	if len(g.GoodTraits)+len(g.BadTraits) > 0 {
		fmt.Fprintf(&sb, "  traits: good=[%s] bad=[%s]\n",
			strings.Join(g.GoodTraits, ","), strings.Join(g.BadTraits, ","))
	}
	return sb.String()
}

// FormatGradesSummary returns a compact summary over many sessions.
func FormatGradesSummary(grades []SessionGrade) string {
	if len(grades) == 0 {
		return "  no sessions graded\n"
	}
	good := map[string]int{}
	bad := map[string]int{}
	sum := 0.0
	for _, g := range grades {
		sum += g.Score
		for _, t := range g.GoodTraits {
			good[t]++
		}
		for _, t := range g.BadTraits {
			bad[t]++
		}
	}
	avg := sum / float64(len(grades))

	var sb strings.Builder
	fmt.Fprintf(&sb, "  avg_score=%.1f (%s) sessions=%d\n", avg, LetterGrade(avg), len(grades))
	if len(good) > 0 {
		fmt.Fprintf(&sb, "    Top good: %s\n", topTraits(good, 3))
	}
	if len(bad) > 0 {
		fmt.Fprintf(&sb, "    Top bad:  %s\n", topTraits(bad, 3))
	}
	return sb.String()
}

func gradeFrac(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func gradeClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// LetterGrade maps a 0-100 score to a letter grade.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

func topTraits(counts map[string]int, n int) string {
	type kv struct {
		trait string
		count int
	}
	items := make([]kv, 0, len(counts))
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].trait < items[j].trait
	})
	if len(items) > n {
		items = items[:n]
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s(%d)", it.trait, it.count)
	}
	return strings.Join(parts, ", ")
}
