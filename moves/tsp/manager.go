// Package tspmove implements the 2-opt travelling-salesman move manager:
// the canonical demo problem for the annealer. A tour is held as a
// successor array (succ[i] is the city visited after i), and a move
// removes two edges and replaces them with their crossed pair, reversing
// the tour segment between them.
package tspmove

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru"
	"github.com/katalvlaran/lvlath/tsp"

	"github.com/anneal-go/siman"
	"github.com/anneal-go/siman/tsplib"
)

// Move names the two cities whose outgoing edges are swapped.
type Move struct {
	A, B int
}

// edgeKey is a canonical (unordered) city pair, used as the LRU cache key.
type edgeKey struct{ u, v int }

func canonicalEdge(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// Manager is a MoveManager[Move, float64] over a Euclidean TSP instance.
type Manager struct {
	Name string

	x, y []float64
	succ []int
	cost float64

	rng *siman.RNG

	// distCache memoizes pairwise L2 distances: a tour's edge set is
	// revisited often across equilibria at a fixed temperature, so caching
	// pays off on anything past a trivial instance size.
	distCache *lru.Cache
}

// NewManager builds a Manager from a parsed TSPLIB instance, constructing
// the initial tour 0 -> 1 -> 2 -> ... -> n-1 -> 0.
func NewManager(inst tsplib.Instance, seed uint32) (*Manager, error) {
	n := inst.Size()
	if n <= 2 {
		return nil, fmt.Errorf("tspmove: instance must have more than 2 cities, got %d", n)
	}

	cache, err := lru.New(4 * n)
	if err != nil {
		return nil, fmt.Errorf("tspmove: create edge cache: %w", err)
	}

	succ := make([]int, n)
	for i := range succ {
		succ[i] = (i + 1) % n
	}

	m := &Manager{
		Name:      inst.Name,
		x:         inst.X,
		y:         inst.Y,
		succ:      succ,
		rng:       siman.NewRNG(seed),
		distCache: cache,
	}
	m.cost = m.computeScore()
	return m, nil
}

func l2Dist(x0, y0, x1, y1 float64) float64 {
	dx := x0 - x1
	dy := y0 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

func (m *Manager) dist(i, j int) float64 {
	key := canonicalEdge(i, j)
	if v, ok := m.distCache.Get(key); ok {
		return v.(float64)
	}
	d := l2Dist(m.x[i], m.y[i], m.x[j], m.y[j])
	m.distCache.Add(key, d)
	return d
}

func (m *Manager) computeScore() float64 {
	cost := 0.0
	for i := 0; i < len(m.succ); i++ {
		cost += m.dist(i, m.succ[i])
	}
	return cost
}

// GenerateMove picks a random pair of cities that are distinct and not
// already tour-adjacent, rejecting and resampling otherwise.
func (m *Manager) GenerateMove(move *Move) {
	n := len(m.succ)
	for {
		a := m.rng.Intn(n)
		b := m.rng.Intn(n)
		if a == b {
			continue
		}
		if m.succ[a] == b || m.succ[b] == a {
			continue
		}
		move.A, move.B = a, b
		return
	}
}

// ProposeMove reports the cost delta of replacing edges (a,aNext) and
// (b,bNext) with (a,b) and (aNext,bNext), without mutating the tour.
func (m *Manager) ProposeMove(move *Move) float64 {
	a, aNext := move.A, m.succ[move.A]
	b, bNext := move.B, m.succ[move.B]

	newEdges := m.dist(a, b) + m.dist(aNext, bNext)
	oldEdges := m.dist(a, aNext) + m.dist(b, bNext)

	return newEdges - oldEdges
}

// MakeMove commits the move: removes edges (a,aNext) and (b,bNext), adds
// (a,b) and (aNext,bNext), and reverses the successor chain between aNext
// and bNext so the result is still a single Hamiltonian cycle.
func (m *Manager) MakeMove(move *Move) float64 {
	delta := m.ProposeMove(move)
	m.cost += delta

	a, aNext := move.A, m.succ[move.A]
	b, bNext := move.B, m.succ[move.B]

	x := aNext
	n1 := m.succ[x]
	for n1 != bNext {
		n2 := m.succ[n1]
		m.succ[n1] = x
		x = n1
		n1 = n2
	}
	m.succ[a] = b
	m.succ[aNext] = bNext

	return delta
}

// Score returns the tour's running cost, maintained incrementally by
// MakeMove rather than recomputed on every call.
func (m *Manager) Score() float64 { return m.cost }

// ProblemSize returns the number of cities.
func (m *Manager) ProblemSize() int { return len(m.succ) }

// ClosedTour materializes the successor array as a closed tour slice
// (length n+1, first == last == start), the representation
// github.com/katalvlaran/lvlath/tsp's validators expect.
func (m *Manager) ClosedTour(start int) []int {
	n := len(m.succ)
	tour := make([]int, n+1)
	c := start
	for i := 0; i < n; i++ {
		tour[i] = c
		c = m.succ[c]
	}
	tour[n] = start
	return tour
}

// Debug prints the tour and cross-checks the incrementally maintained cost
// against a from-scratch recomputation, and (when siman.Debug is set)
// validates the tour is still a well-formed Hamiltonian cycle.
func (m *Manager) Debug() {
	fmt.Printf("tour:")
	n := len(m.succ)
	c := 0
	for i := 0; i < n; i++ {
		fmt.Printf(" %d", c)
		c = m.succ[c]
	}
	fmt.Println()

	scratch := m.computeScore()
	fmt.Printf("alleged cost: %v\n", m.cost)
	fmt.Printf("scratch cost: %v\n", scratch)

	if siman.Debug {
		if err := tsp.ValidateTour(m.ClosedTour(0), n, 0); err != nil {
			panic(fmt.Sprintf("tspmove: invalid tour: %v", err))
		}
	}
}
