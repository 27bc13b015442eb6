package siman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeRunsEmpty(t *testing.T) {
	stats := SummarizeRuns("empty", nil)
	assert.Equal(t, "empty", stats.Name)
	assert.Equal(t, 0, stats.Runs)
}

func TestSummarizeRunsComputesMeanAndExtremes(t *testing.T) {
	results := []RunResult{
		{BestCost: 10},
		{BestCost: 20},
		{BestCost: 30},
	}
	stats := SummarizeRuns("batch", results)

	assert.Equal(t, 3, stats.Runs)
	assert.InDelta(t, 20.0, stats.Mean, 1e-9)
	assert.Equal(t, 10.0, stats.Best)
	assert.Equal(t, 30.0, stats.Worst)
}

func TestCompareRanksLowestMeanFirst(t *testing.T) {
	batches := map[string][]RunResult{
		"slow": {{BestCost: 100}, {BestCost: 110}},
		"fast": {{BestCost: 10}, {BestCost: 12}},
	}

	cr := Compare("demo", batches)
	assert.Equal(t, "fast", cr.Stats[cr.Rankings[0]].Name)
	assert.Equal(t, "slow", cr.Stats[cr.Rankings[1]].Name)
}
