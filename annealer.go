package siman

import (
	"context"
	"math"
)

// Annealer knobs. These are not user-pluggable beyond the values in
// AnnealerConfig: the schedule itself stays geometric with a fixed ratio,
// rather than exposing a pluggable cooling-schedule strategy.
const (
	// MinEquils is the minimum number of equilibria before the convergence
	// test arms.
	MinEquils = 5
	// RequiredImprovement is the minimum fractional improvement over the
	// initial cost the convergence test requires before it may fire.
	RequiredImprovement = 0.10
	// EquilsSinceBestLimit stops the anneal after this many equilibria with
	// no new best score.
	EquilsSinceBestLimit = 100
	// MovesPerTempKnob scales calibration attempts per trial temperature.
	MovesPerTempKnob = 100
	// MaxAttemptKnob scales the per-equilibrium attempt cap.
	MaxAttemptKnob = 100.0
	// MaxAcceptKnob scales the per-equilibrium acceptance cap.
	MaxAcceptKnob = 10.0
	// CoolingRatio is the geometric temperature reduction per outer
	// iteration.
	CoolingRatio = 0.95
	// ConvEpsilon is the absolute tolerance for the intercept-vs-current-
	// cost convergence check.
	ConvEpsilon = 1e-5
	// HiTempInit and LoTempInit bound the calibration bisection.
	HiTempInit = 1e7
	LoTempInit = 1e-5
	// CalibrationGap is the bisection's stopping width.
	CalibrationGap = 1.0
	// RNGSeed is the fixed seed Optimize reseeds with, making a run
	// deterministic given a deterministic MoveManager.
	RNGSeed = 5241999
)

// AnnealerConfig holds the tunable knobs for Annealer. The zero value is
// not usable directly; use NewAnnealerConfig for sane defaults.
type AnnealerConfig struct {
	MinEquils           int     `json:"min_equils"`
	RequiredImprovement float64 `json:"required_improvement"`
	EquilsSinceBest     int     `json:"equils_since_best"`
	MovesPerTempKnob    int     `json:"moves_per_temp_knob"`
	MaxAttemptKnob      float64 `json:"max_attempt_knob"`
	MaxAcceptKnob       float64 `json:"max_accept_knob"`
	CoolingRatio        float64 `json:"cooling_ratio"`
	ConvEpsilon         float64 `json:"conv_epsilon"`
	HiTempInit          float64 `json:"hi_temp_init"`
	LoTempInit          float64 `json:"lo_temp_init"`
	CalibrationGap      float64 `json:"calibration_gap"`
	RNGSeed             uint32  `json:"rng_seed"`
	// ZeroIsOptimal gates the best<=0 termination short-circuit. Defaults
	// to true, assuming non-negative cost with zero as optimum. Callers
	// with problems that admit negative cost must set this false.
	ZeroIsOptimal bool `json:"zero_is_optimal"`
}

// NewAnnealerConfig returns the default knob values.
func NewAnnealerConfig() AnnealerConfig {
	return AnnealerConfig{
		MinEquils:           MinEquils,
		RequiredImprovement: RequiredImprovement,
		EquilsSinceBest:     EquilsSinceBestLimit,
		MovesPerTempKnob:    MovesPerTempKnob,
		MaxAttemptKnob:      MaxAttemptKnob,
		MaxAcceptKnob:       MaxAcceptKnob,
		CoolingRatio:        CoolingRatio,
		ConvEpsilon:         ConvEpsilon,
		HiTempInit:          HiTempInit,
		LoTempInit:          LoTempInit,
		CalibrationGap:      CalibrationGap,
		RNGSeed:             RNGSeed,
		ZeroIsOptimal:       true,
	}
}

// Annealer runs simulated annealing against a MoveManager[T, C]. Annealer
// itself holds no problem state: everything problem-specific lives inside
// the MoveManager passed to Optimize.
//
// Annealer does not snapshot or restore the best-ever state it observes;
// best only tracks the minimum score seen. Because annealing can wander
// away from that minimum before terminating, the MoveManager's final state
// is not guaranteed to equal the best state seen during the run. This is
// intentional, not a bug: Annealer trades a snapshot/restore step for a
// simpler, allocation-free hot loop.
type Annealer[T any, C Cost] struct {
	Config AnnealerConfig
	Sink   ProgressSink

	rng *RNG
}

// NewAnnealer creates an Annealer with the given config. A nil sink
// discards diagnostic output.
func NewAnnealer[T any, C Cost](cfg AnnealerConfig, sink ProgressSink) *Annealer[T, C] {
	if sink == nil {
		sink = discardSink{}
	}
	return &Annealer[T, C]{Config: cfg, Sink: sink}
}

// equilTempCost is one entry in the history ring consumed by project.
type equilTempCost struct {
	temp float64
	cost float64
}

// Optimize runs calibration, then the annealing loop, mutating mm through
// its MoveManager contract until the convergence test fires, EquilsSinceBest
// equilibria pass without a new best, or (when ZeroIsOptimal) the best cost
// reaches zero. ctx is checked once per equilibrium; cancellation stops the
// loop early and Optimize returns ctx.Err().
func (a *Annealer[T, C]) Optimize(ctx context.Context, mm MoveManager[T, C]) error {
	a.rng = NewRNG(a.Config.RNGSeed)

	temp := a.measureTemp(mm)
	best := mm.Score()
	first := best

	ring := make([]equilTempCost, a.Config.MinEquils)

	equilsSinceBest := a.Config.EquilsSinceBest
	for equils := 0; ; equils++ {
		if a.Config.ZeroIsOptimal && best <= 0 {
			break
		}
		equilsSinceBest--
		if equilsSinceBest < 0 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.equilibrate(mm, temp)

		c := mm.Score()
		if c < best {
			best = c
			equilsSinceBest = a.Config.EquilsSinceBest
		}

		a.Sink.Printf("t=%v c=%v ", temp, c)

		ix := equils % a.Config.MinEquils
		ring[ix] = equilTempCost{temp: temp, cost: toFloat64(c)}

		if equils > a.Config.MinEquils {
			intercept := a.project(ring)
			a.Sink.Printf("s=%v\n", intercept)
			improvedEnough := toFloat64(c) < toFloat64(first)*(1.0-a.Config.RequiredImprovement)
			if !math.IsNaN(intercept) && math.Abs(intercept-toFloat64(c)) < a.Config.ConvEpsilon && improvedEnough {
				break
			}
		} else {
			a.Sink.Printf("\n")
		}

		temp *= a.Config.CoolingRatio
	}

	a.Sink.Printf("t=%v c=%v   --   ", temp, mm.Score())
	return nil
}

// measureTemp performs the starting-temperature bisection: find a
// temperature at which roughly half of random proposals would be accepted.
// Proposals are evaluated but never committed — committing would drift the
// measurement away from the initial state it is meant to characterize.
func (a *Annealer[T, C]) measureTemp(mm MoveManager[T, C]) float64 {
	movesPerTemp := a.Config.MovesPerTempKnob * mm.ProblemSize()
	half := movesPerTemp / 2

	hi := a.Config.HiTempInit
	lo := a.Config.LoTempInit

	var move T
	for hi-lo > a.Config.CalibrationGap {
		t := (hi + lo) / 2.0
		accepted := 0
		for attempt := 0; attempt < movesPerTemp; attempt++ {
			mm.GenerateMove(&move)
			delta := mm.ProposeMove(&move)
			boltzmann := math.Exp(-toFloat64(absCost(delta)) / t)
			if delta < 0 || a.rng.Float64() < boltzmann {
				accepted++
			}
		}

		if accepted > half {
			a.Sink.Printf("t=%v acc=%v of %v - going down\n", t, accepted, movesPerTemp)
			hi = t
		} else {
			a.Sink.Printf("t=%v acc=%v of %v - going up\n", t, accepted, movesPerTemp)
			lo = t
		}
	}

	return hi
}

// equilibrate runs one equilibrium at fixed temperature t: attempts moves
// until the attempt cap or acceptance cap is reached, accepting via the
// Metropolis criterion and accumulating running statistics.
func (a *Annealer[T, C]) equilibrate(mm MoveManager[T, C], t float64) EquilibriumStats {
	maxAttempts := int(float64(mm.ProblemSize()) * a.Config.MaxAttemptKnob)
	maxAcceptances := int(float64(mm.ProblemSize()) * a.Config.MaxAcceptKnob)

	var totalCost, totalCostSq, totalDeltaCost, totalDeltaCostSq float64
	attempts, acceptances := 0, 0

	currCost := toFloat64(mm.Score())

	var move T
	for attempts < maxAttempts && acceptances < maxAcceptances {
		mm.GenerateMove(&move)
		delta := mm.ProposeMove(&move)
		deltaF := toFloat64(delta)
		absDelta := toFloat64(absCost(delta))
		boltzmann := math.Exp(-absDelta / t)

		totalDeltaCost += absDelta * boltzmann
		totalDeltaCostSq += absDelta * absDelta * boltzmann

		effProb := 1.0
		if delta >= 0 {
			effProb = boltzmann
		}
		totalCost += currCost + effProb*deltaF
		newCost := currCost + deltaF
		totalCostSq += (1.0-effProb)*(currCost*currCost) + effProb*(newCost*newCost)

		if delta < 0 || a.rng.Float64() < boltzmann {
			applied := mm.MakeMove(&move)
			currCost += toFloat64(applied)
			if Debug {
				debugAssert(currCost == toFloat64(mm.Score()),
					"siman: curr_cost %v disagrees with Score() %v after MakeMove", currCost, mm.Score())
			}
			acceptances++
		}

		attempts++
	}

	n := float64(attempts)
	stats := EquilibriumStats{
		Attempts:    attempts,
		Acceptances: acceptances,
	}
	if n > 0 {
		stats.MeanCost = totalCost / n
		stats.CostVariance = totalCostSq/n - (totalCost/n)*(totalCost/n)
		stats.DeltaCostVariance = totalDeltaCostSq/n - (totalDeltaCost/n)*(totalDeltaCost/n)
		stats.AcceptRatio = float64(acceptances) / n
	}
	return stats
}

// project fits y = m*x + c by ordinary least squares over the history ring
// and returns the y-intercept c — the cost the fit projects at temp == 0.
// When the ring's temperatures are nearly identical (common late in
// cooling, after many 0.95 multiplications), the denominator underflows and
// this returns NaN, which callers must treat as "does not converge" rather
// than comparing it numerically: NaN compares false against everything,
// so a degenerate fit simply never satisfies the convergence check.
func (a *Annealer[T, C]) project(ring []equilTempCost) float64 {
	var sumX, sumXsq, sumY, sumXY float64
	n := float64(len(ring))
	for _, p := range ring {
		sumX += p.temp
		sumXsq += p.temp * p.temp
		sumY += p.cost
		sumXY += p.temp * p.cost
	}

	denom := n*sumXsq - sumX*sumX
	return (sumY*sumXsq - sumX*sumXY) / denom
}

// Project exposes the least-squares y-intercept computation for testing and
// for callers that want to run the regression over arbitrary (x, y) pairs.
func Project(x, y []float64) float64 {
	var sumX, sumXsq, sumY, sumXY float64
	n := float64(len(x))
	for i := range x {
		sumX += x[i]
		sumXsq += x[i] * x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
	}
	denom := n*sumXsq - sumX*sumX
	return (sumY*sumXsq - sumX*sumXY) / denom
}
