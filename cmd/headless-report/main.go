package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstFireFrame    int
	firstKillFrame    int
	firstCollectFrame int

	outcome       game.SessionOutcomeReason
	moves         int
	windowSummary *game.WindowReport
	grade         game.SessionGrade
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var reportEvery int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot sessions")
	flag.IntVar(&frames, "frames", 3600, "frame budget per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&reportEvery, "report-every", 10, "frames between world snapshots")
	flag.BoolVar(&verbose, "verbose", false, "print the kill, fire and collect log of each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if reportEvery <= 0 {
		fmt.Println("error: -report-every must be > 0")
		return
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d\n\n", runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runAutopilotSession(i+1, seed, frames, reportEvery, verbose)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runAutopilotSession(runIndex int, seed int64, frames, reportEvery int, verbose bool) (runStats, error) {
	ts, err := game.NewTestSim(
		game.WithSimSeed(seed),
		game.WithVerbose(true),
		game.WithAutopilot(),
		game.WithReportEvery(reportEvery),
	)
	if err != nil {
		return runStats{}, err
	}
	ts.RunFrames(frames)
	if verbose {
		for _, e := range ts.SimLog.Entries() {
			if e.Category != "spawn" && e.Key != "move" {
				fmt.Println(e.String())
			}
		}
	}

	outcome := ts.Outcome(frames)
	window := ts.Reporter.WindowSummary()
	return runStats{
		runIndex:          runIndex,
		seed:              seed,
		firstFireFrame:    ts.SimLog.FirstFrame("missile", "fire"),
		firstKillFrame:    ts.SimLog.FirstFrame("enemy", "kill"),
		firstCollectFrame: ts.SimLog.FirstFrame("ammo", "collect"),
		outcome:           outcome,
		moves:             ts.SimLog.CountCategory("player", "move"),
		windowSummary:     window,
		grade:             game.GradeSession(outcome, window, frames),
	}, nil
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Println(game.FormatOutcome(rs.outcome))
	fmt.Printf("phase_markers: first_fire=%d first_kill=%d first_collect=%d\n",
		rs.firstFireFrame, rs.firstKillFrame, rs.firstCollectFrame)
	fmt.Printf("player: moves=%d wasted_missiles=%d\n", rs.moves, rs.outcome.Wasted)
	if rs.windowSummary != nil {
		fmt.Print(rs.windowSummary.Format())
	}
	fmt.Print(game.FormatGrade(rs.grade))
	fmt.Println()
}

// aggregate holds the cross-run totals printed at the end.
type aggregate struct {
	runs      int
	survived  int
	killed    int
	scores    []int
	kills     int
	fired     int
	collected int
	deathLane map[int]int
	deathAt   []int
}

func collectAggregate(all []runStats) aggregate {
	ag := aggregate{runs: len(all), deathLane: map[int]int{}}
	for _, rs := range all {
		o := rs.outcome
		switch o.Outcome {
		case game.OutcomeSurvived:
			ag.survived++
		case game.OutcomeKilled:
			ag.killed++
			ag.deathLane[o.DeathColumn]++
			ag.deathAt = append(ag.deathAt, o.DeathFrame)
		}
		ag.scores = append(ag.scores, o.Score)
		ag.kills += o.Kills
		ag.fired += o.Fired
		ag.collected += o.Collected
	}
	sort.Ints(ag.scores)
	return ag
}

func (ag aggregate) medianScore() int {
	if len(ag.scores) == 0 {
		return 0
	}
	return ag.scores[len(ag.scores)/2]
}

func (ag aggregate) accuracy() float64 {
	if ag.fired == 0 {
		return 0
	}
	return float64(ag.kills) / float64(ag.fired)
}

func printAggregate(all []runStats) {
	ag := collectAggregate(all)

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d survived=%d killed=%d inconclusive=%d\n",
		ag.runs, ag.survived, ag.killed, ag.runs-ag.survived-ag.killed)
	fmt.Printf("score: median=%d min=%d max=%d\n",
		ag.medianScore(), ag.scores[0], ag.scores[len(ag.scores)-1])
	fmt.Printf("avg_per_run: kills=%.1f fired=%.1f collected=%.1f accuracy=%.2f\n",
		avg(ag.kills, ag.runs), avg(ag.fired, ag.runs), avg(ag.collected, ag.runs), ag.accuracy())
	fmt.Printf("death_frame_avg=%s death_lanes=%s\n", avgFrameString(ag.deathAt), laneString(ag.deathLane))

	fmt.Println("\n--- Grades (across all runs) ---")
	fmt.Print(game.FormatGradesSummary(collectGrades(all)))
}

func collectGrades(all []runStats) []game.SessionGrade {
	out := make([]game.SessionGrade, 0, len(all))
	for _, rs := range all {
		out = append(out, rs.grade)
	}
	return out
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func laneString(counts map[int]int) string {
	if len(counts) == 0 {
		return "none"
	}
	lanes := make([]int, 0, len(counts))
	for l := range counts {
		lanes = append(lanes, l)
	}
	sort.Ints(lanes)
	out := ""
	for i, l := range lanes {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("L%d=%d", l, counts[l])
	}
	return out
}
