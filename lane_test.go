package hipmatmul

import (
	"testing"
)

// The 64 lanes must tile the 4x16 grid of (m, n) fragment coordinates with
// no collision and no gap.
func TestLaneCoverage(t *testing.T) {
	w := NewWavefront()

	seen := make(map[[2]int]int)
	for id := 0; id < ThreadsPerSubgroup; id++ {
		m, n := w.Lane(id).Coords()

		if m%FragmentLen != 0 || m < 0 || m >= TileM {
			t.Errorf("lane %d: m = %d outside {0, 4, 8, 12}", id, m)
		}
		if n < 0 || n >= TileN {
			t.Errorf("lane %d: n = %d outside [0, 16)", id, n)
		}
		if prev, dup := seen[[2]int{m, n}]; dup {
			t.Errorf("lanes %d and %d both map to (%d, %d)", prev, id, m, n)
		}
		seen[[2]int{m, n}] = id
	}

	if len(seen) != ThreadsPerSubgroup {
		t.Errorf("mapping covers %d of %d (m, n) pairs", len(seen), ThreadsPerSubgroup)
	}
}

func TestLaneID(t *testing.T) {
	w := NewWavefront()
	for id := 0; id < ThreadsPerSubgroup; id++ {
		if got := w.Lane(id).ID(); got != id {
			t.Errorf("Lane(%d).ID() = %d", id, got)
		}
	}
}

func TestLaneOutOfRangePanics(t *testing.T) {
	w := NewWavefront()
	for _, id := range []int{-1, ThreadsPerSubgroup, ThreadsPerSubgroup + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Lane(%d) should have panicked", id)
				}
			}()
			w.Lane(id)
		}()
	}
}
