// Package invsort implements an inversion-count sorting move manager: a
// "world's simplest sorting algorithm" demo reframed as simulated
// annealing. A move swaps two array elements; the cost is the number of
// out-of-order pairs, so a fully sorted array scores zero.
package invsort

import (
	"fmt"

	"github.com/anneal-go/siman"
)

// Move names the two positions to swap.
type Move struct {
	From, To int
}

// Manager anneals a slice of int towards ascending order.
type Manager struct {
	data []int
	rng  *siman.RNG
}

// NewManager builds a Manager over a freshly shuffled ascending sequence
// 0..n-1, using a Fisher-Yates shuffle driven by the same RNG the move
// manager uses for move generation, so setup and search share one
// deterministic random stream.
func NewManager(n int, seed uint32) (*Manager, error) {
	if n <= 5 {
		return nil, fmt.Errorf("invsort: problem size must exceed 5, got %d", n)
	}

	rng := siman.NewRNG(seed)
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	for i := 1; i < n; i++ {
		j := rng.Intn(i + 1)
		data[i], data[j] = data[j], data[i]
	}

	return &Manager{data: data, rng: rng}, nil
}

// GenerateMove picks two distinct random positions.
func (m *Manager) GenerateMove(move *Move) {
	n := len(m.data)
	for {
		move.From = m.rng.Intn(n)
		move.To = m.rng.Intn(n)
		if move.From != move.To {
			return
		}
	}
}

// ProposeMove reports the signed change in inversion count from swapping
// the two named positions, without mutating the array. The scan considers
// only the elements strictly between the two positions: an element outside
// [data[lo], data[hi]] keeps the same relative order to both endpoints
// after the swap, so only values strictly between them flip two relations
// at once (hence the += 2), plus the pair itself (+= 1).
func (m *Manager) ProposeMove(move *Move) int {
	lo, hi := move.From, move.To
	if lo > hi {
		lo, hi = hi, lo
	}

	loVal, hiVal := m.data[lo], m.data[hi]
	if loVal > hiVal {
		loVal, hiVal = hiVal, loVal
	}

	cost := 0
	for i := lo + 1; i < hi; i++ {
		if m.data[i] > loVal && m.data[i] < hiVal {
			cost += 2
		}
	}
	cost++

	if m.data[lo] < m.data[hi] {
		return cost
	}
	return -cost
}

// MakeMove commits the swap and returns the same delta ProposeMove would
// have reported.
func (m *Manager) MakeMove(move *Move) int {
	delta := m.ProposeMove(move)
	m.data[move.From], m.data[move.To] = m.data[move.To], m.data[move.From]
	return delta
}

// Score recomputes the inversion count from scratch: an O(n^2) ground
// truth used to cross-check the incrementally tracked cost, not the value
// the hot path relies on.
func (m *Manager) Score() int {
	cost := 0
	for i := 0; i < len(m.data); i++ {
		for j := i + 1; j < len(m.data); j++ {
			if m.data[i] > m.data[j] {
				cost++
			}
		}
	}
	return cost
}

// ProblemSize returns the number of elements.
func (m *Manager) ProblemSize() int { return len(m.data) }

// Snapshot returns a copy of the current element order.
func (m *Manager) Snapshot() []int {
	out := make([]int, len(m.data))
	copy(out, m.data)
	return out
}

// Debug prints the current array.
func (m *Manager) Debug() {
	fmt.Println(m.data)
}
