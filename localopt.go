package siman

import "context"

// MissThreshold is the number of consecutive non-improving proposals
// LocalOpt tolerates before it gives up on a plateau.
const MissThreshold = 10000

// LocalOpt is a greedy local-search optimizer: it accepts only moves with
// strictly negative delta cost, and stops once more than MissThreshold
// consecutive proposals fail to improve the score. It shares the MoveManager contract
// with Annealer, which makes it a useful cheap post-pass after annealing
// (anneal to get near a good basin, then LocalOpt to mop up residual
// improving moves an accepted uphill step left on the table).
type LocalOpt[T any, C Cost] struct {
	Sink ProgressSink
}

// NewLocalOpt creates a LocalOpt. A nil sink discards diagnostic output.
func NewLocalOpt[T any, C Cost](sink ProgressSink) *LocalOpt[T, C] {
	if sink == nil {
		sink = discardSink{}
	}
	return &LocalOpt[T, C]{Sink: sink}
}

// Optimize generates moves, committing any with a negative delta, until
// more than MissThreshold consecutive non-improving proposals accumulate or
// ctx is canceled. Termination is guaranteed in expectation only if improving
// moves exist; otherwise the miss counter is what stops it.
func (lo *LocalOpt[T, C]) Optimize(ctx context.Context, mm MoveManager[T, C]) error {
	misses := MissThreshold

	var move T
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		mm.GenerateMove(&move)
		delta := mm.ProposeMove(&move)

		if delta < 0 {
			mm.MakeMove(&move)
			misses = MissThreshold
		} else {
			misses--
			if misses < 0 {
				return nil
			}
		}

		lo.Sink.Printf("score = %v\n", mm.Score())
	}
}
