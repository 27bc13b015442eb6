package siman

import (
	"context"
	"testing"
)

// stepDownMoveManager is a deterministic 1-D MoveManager: score starts at N
// and every GenerateMove/ProposeMove proposes decrementing by 1, down to 0,
// after which every move is non-improving (delta 0). It exercises LocalOpt's
// MissThreshold plateau exit without relying on any randomness.
type stepDownMoveManager struct {
	score int
}

func (m *stepDownMoveManager) GenerateMove(move *int) { *move = 1 }

func (m *stepDownMoveManager) ProposeMove(move *int) int {
	if m.score <= 0 {
		return 0
	}
	return -*move
}

func (m *stepDownMoveManager) MakeMove(move *int) int {
	delta := m.ProposeMove(move)
	m.score += delta
	return delta
}

func (m *stepDownMoveManager) Score() int      { return m.score }
func (m *stepDownMoveManager) ProblemSize() int { return 1 }
func (m *stepDownMoveManager) Debug()          {}

func TestLocalOptDescendsToZero(t *testing.T) {
	mm := &stepDownMoveManager{score: 50}
	lo := NewLocalOpt[int, int](nil)

	if err := lo.Optimize(context.Background(), mm); err != nil {
		t.Fatalf("Optimize returned error: %v", err)
	}

	if mm.Score() != 0 {
		t.Fatalf("Score() = %d, want 0", mm.Score())
	}
}

func TestLocalOptRespectsCancellation(t *testing.T) {
	mm := &stepDownMoveManager{score: 1_000_000}
	lo := NewLocalOpt[int, int](nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := lo.Optimize(ctx, mm); err == nil {
		t.Fatal("expected context.Canceled, got nil")
	}
}
