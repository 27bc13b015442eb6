package siman

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// RunResult is one completed run's outcome, independent of which optimizer
// produced it.
type RunResult struct {
	InitialCost float64
	BestCost    float64
	Equilibria  int
	DurationSec float64
}

// AlgorithmStatistics summarizes a batch of RunResults for one named
// configuration. Mean/StdDev are computed with gonum/stat rather than
// by hand: these are cross-run aggregate diagnostics, not part of the
// bit-reproducible per-run annealing math, so there's no reason to avoid
// a library here the way project/equilibrate must.
type AlgorithmStatistics struct {
	Name   string
	Mean   float64
	StdDev float64
	Best   float64
	Worst  float64
	Runs   int
}

// SummarizeRuns reduces a batch of same-configuration RunResults to an
// AlgorithmStatistics. If results is empty, only Name is set.
func SummarizeRuns(name string, results []RunResult) AlgorithmStatistics {
	if len(results) == 0 {
		return AlgorithmStatistics{Name: name}
	}

	costs := make([]float64, len(results))
	best, worst := results[0].BestCost, results[0].BestCost
	for i, r := range results {
		costs[i] = r.BestCost
		if r.BestCost < best {
			best = r.BestCost
		}
		if r.BestCost > worst {
			worst = r.BestCost
		}
	}

	mean, stdDev := stat.MeanStdDev(costs, nil)

	return AlgorithmStatistics{
		Name:   name,
		Mean:   mean,
		StdDev: stdDev,
		Best:   best,
		Worst:  worst,
		Runs:   len(results),
	}
}

// ComparisonResult ranks several named configurations' run batches by mean
// best-cost, lowest first.
type ComparisonResult struct {
	BenchmarkName string
	Stats         []AlgorithmStatistics
	Rankings      []int // index into Stats, best (lowest mean) first
}

// Compare builds a ComparisonResult from a set of named run batches.
func Compare(benchmarkName string, batches map[string][]RunResult) ComparisonResult {
	names := make([]string, 0, len(batches))
	for name := range batches {
		names = append(names, name)
	}
	sort.Strings(names)

	stats := make([]AlgorithmStatistics, len(names))
	for i, name := range names {
		stats[i] = SummarizeRuns(name, batches[name])
	}

	rankings := make([]int, len(stats))
	for i := range rankings {
		rankings[i] = i
	}
	sort.Slice(rankings, func(i, j int) bool {
		return stats[rankings[i]].Mean < stats[rankings[j]].Mean
	})

	return ComparisonResult{BenchmarkName: benchmarkName, Stats: stats, Rankings: rankings}
}

// String renders a ComparisonResult as a ranked table.
func (cr ComparisonResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparison: %s\n", cr.BenchmarkName)
	for rank, idx := range cr.Rankings {
		s := cr.Stats[idx]
		fmt.Fprintf(&b, "  %d. %-20s mean=%.4f stddev=%.4f best=%.4f worst=%.4f (n=%d)\n",
			rank+1, s.Name, s.Mean, s.StdDev, s.Best, s.Worst, s.Runs)
	}
	return b.String()
}
