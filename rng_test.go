package siman

import "testing"

func TestRNGFloat64Range(t *testing.T) {
	r := NewRNG(5241999)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want in [0,1)", v)
		}
	}
}

func TestRNGIntnRange(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %v, want in [0,7)", v)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("seeded RNGs diverged at step %d: %v != %v", i, va, vb)
		}
	}
}

func TestRNGSeedResets(t *testing.T) {
	r := NewRNG(9)
	first := make([]float64, 20)
	for i := range first {
		first[i] = r.Float64()
	}
	r.Seed(9)
	for i := range first {
		if v := r.Float64(); v != first[i] {
			t.Fatalf("after reseed, step %d = %v, want %v", i, v, first[i])
		}
	}
}

func TestRNGIntnPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Intn(0)")
		}
	}()
	NewRNG(1).Intn(0)
}
