package driver

import "github.com/linusvdv/puppet-cube-v2/pclog"

// Report is the aggregate statistic the driver prints at the end of a
// batch of runs (spec.md §4.10, `SPEC_FULL.md` §3's "Reproducible
// multi-run statistics").
type Report struct {
	Runs      int
	Time      Statistics
	Positions Statistics
	Depth     Statistics
}

// buildReport guards the original's "num_runs vectors mismatched size"
// edge case: if the three metric slices disagree in length (which
// should not happen given how Run appends them, but is checked
// defensively the way search_manager.cpp's ShowSearchStatistic does),
// it truncates to the shortest and reports a Warning rather than
// panicking or silently dropping data from the longer slices.
func buildReport(log *pclog.Handler, times, positions, depths []float64) Report {
	if len(times) != len(positions) || len(times) != len(depths) {
		log.Warning("aggregate statistic vectors mismatched size (time=%d positions=%d depth=%d); truncating to the shortest", len(times), len(positions), len(depths))
		n := shortest(len(times), len(positions), len(depths))
		times, positions, depths = times[:n], positions[:n], depths[:n]
	}

	timeStats, ok := Summarize(times)
	if !ok {
		log.Warning("no successful runs to summarize")
	}
	positionStats, _ := Summarize(positions)
	depthStats, _ := Summarize(depths)

	return Report{Runs: len(times), Time: timeStats, Positions: positionStats, Depth: depthStats}
}

func shortest(a, b, c int) int {
	n := a
	if b < n {
		n = b
	}
	if c < n {
		n = c
	}
	return n
}
