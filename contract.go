package siman

// Cost is the type set accepted for a MoveManager's score. Lower is better;
// maximization problems must be inverted by the caller. Both arithmetic
// (subtraction, negation for abs) and conversion to float64 (for statistics
// and the Boltzmann factor) must be available, which restricts the set to
// the built-in numeric kinds rather than an arbitrary ordered type.
type Cost interface {
	~float64 | ~int | ~int64
}

// absCost returns the absolute value of a delta cost without assuming a
// signed-zero or NaN-aware float type; both int and float64 deltas only
// ever need a sign flip here.
func absCost[C Cost](c C) C {
	if c < 0 {
		return -c
	}
	return c
}

// toFloat64 converts a Cost value to float64 for use in the Boltzmann
// factor and running statistics. The conversion is exact for the int kinds
// in range and for float64 itself.
func toFloat64[C Cost](c C) float64 {
	return float64(c)
}

// MoveManager is the contract every problem implements. T is the opaque
// move type produced by GenerateMove and consumed by ProposeMove/MakeMove;
// C is the Cost type tracked by Score.
//
// Invariant: after any sequence of GenerateMove/ProposeMove/MakeMove calls,
// Score() equals the true cost of the committed state. The optimizer relies
// on this to run equilibria without recomputing cost from scratch.
//
// ProposeMove must be side-effect-free on the committed state: calling it
// twice in a row with the same move must return the same delta, and Score()
// must be unchanged in between. MakeMove's returned delta must equal the
// value ProposeMove would return immediately before the call.
type MoveManager[T any, C Cost] interface {
	// GenerateMove populates move with a candidate transition. The move
	// must be legal for ProposeMove/MakeMove; the distribution it is drawn
	// from is up to the implementation, but it should explore the
	// neighborhood usefully.
	GenerateMove(move *T)

	// ProposeMove returns the delta cost (new score minus current score)
	// of applying move, without mutating the committed state.
	ProposeMove(move *T) C

	// MakeMove applies move and returns the delta cost actually incurred.
	// The returned value must equal what ProposeMove would return on the
	// pre-commit state.
	MakeMove(move *T) C

	// Score returns the current total cost. Expected O(1): the move
	// manager is assumed to track its score incrementally.
	Score() C

	// ProblemSize returns a positive, fixed-for-the-optimizer's-lifetime
	// size used to scale the optimizer's internal knobs.
	ProblemSize() int

	// Debug is an optional diagnostic hook; the core never calls it.
	Debug()
}

// ProgressSink is the write-line capability the core writes its diagnostic
// trace to. Decoupling from os.Stdout/os.Stderr lets tests capture the
// trace deterministically and lets callers route it anywhere (a file, a
// buffer, /dev/null).
type ProgressSink interface {
	Printf(format string, args ...any)
}
