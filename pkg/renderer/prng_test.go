package renderer

import "testing"

func TestXorshift32DeterministicPerSeed(t *testing.T) {
	a := newXorshift32(3, 7)
	b := newXorshift32(3, 7)
	for i := 0; i < 10; i++ {
		av, bv := a.next(), b.next()
		if av != bv {
			t.Fatalf("sequence diverged at step %d: %v != %v", i, av, bv)
		}
	}
}

func TestXorshift32DifferentTilesDifferentSeeds(t *testing.T) {
	a := newXorshift32(0, 0)
	b := newXorshift32(1, 0)
	if a.state == b.state {
		t.Errorf("expected different seeds for different tile coordinates")
	}
}

func TestXorshift32SeedNonZero(t *testing.T) {
	x := newXorshift32(0, 0)
	if x.state == 0 {
		t.Errorf("seed must be non-zero")
	}
}

func TestXorshift32UnitInRange(t *testing.T) {
	x := newXorshift32(5, 5)
	for i := 0; i < 100; i++ {
		u := x.unit()
		if u < 0 || u >= 1 {
			t.Fatalf("unit() = %v, want [0,1)", u)
		}
	}
}
