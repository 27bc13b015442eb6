package invsort

import (
	"context"
	"testing"

	"github.com/anneal-go/siman"
)

func TestNewManagerRejectsTinyProblem(t *testing.T) {
	if _, err := NewManager(5, 1); err == nil {
		t.Fatal("expected error for n <= 5")
	}
}

func TestProposeMoveMatchesFullRecompute(t *testing.T) {
	mgr, err := NewManager(20, 9)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	before := mgr.Score()
	var move Move
	mgr.GenerateMove(&move)
	delta := mgr.ProposeMove(&move)
	if mgr.Score() != before {
		t.Fatalf("ProposeMove mutated state: Score() = %d, want %d", mgr.Score(), before)
	}

	mgr.MakeMove(&move)
	after := mgr.Score()
	if after != before+delta {
		t.Fatalf("after MakeMove, Score() = %d, want %d (before %d + delta %d)", after, before+delta, before, delta)
	}
}

// Annealing a shuffled sequence should sort it fully (inversion count 0).
func TestAnnealerSortsSequence(t *testing.T) {
	mgr, err := NewManager(60, 123)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	cfg := siman.NewAnnealerConfig()
	a := siman.NewAnnealer[Move, int](cfg, nil)

	if err := a.Optimize(context.Background(), mgr); err != nil {
		t.Fatalf("Optimize error: %v", err)
	}

	if got := mgr.Score(); got != 0 {
		t.Fatalf("Score() = %d, want 0", got)
	}

	snap := mgr.Snapshot()
	for i := 1; i < len(snap); i++ {
		if snap[i-1] > snap[i] {
			t.Fatalf("snapshot not sorted at index %d: %v", i, snap)
		}
	}
}
