package hexgrid

import "fmt"

// centerRingSize is the fixed population of ring 0.
const centerRingSize = 1

// cellsPerRingUnit is the growth factor of the ring population: 6·r for r ≥ 1.
const cellsPerRingUnit = 6

// RingSize reports the number of cells in ring r: 1 for the center, 6·r
// otherwise. This is a closed-form invariant of the honeycomb, not a tunable.
// Complexity: O(1).
func RingSize(r int) int {
	if r == 0 {
		return centerRingSize
	}

	return cellsPerRingUnit * r
}

// New constructs a Lattice from ring contents: rings[r] holds the symbols of
// ring r in position order, concatenated. Each ring must contain exactly
// RingSize(r) symbols (runes); a mismatch is reported as ErrRingLength and
// no lattice is built. Adjacency is resolved exactly once, here, after all
// cells exist.
// Complexity: O(C) time and memory, C = total cell count.
func New(rings []string) (*Lattice, error) {
	// 1. Validate ring count.
	if len(rings) == 0 {
		return nil, ErrNoRings
	}

	// 2. Validate every ring length before allocating anything: a lattice is
	//    never built in a structurally inconsistent state.
	total := 0
	for r, ring := range rings {
		want := RingSize(r)
		if got := len([]rune(ring)); got != want {
			return nil, fmt.Errorf("ring %d has %d symbols, want %d: %w", r, got, want, ErrRingLength)
		}
		total += want
	}

	// 3. Allocate all cells in ring-then-position order.
	l := &Lattice{
		cells:     make([]Cell, 0, total),
		ringStart: make([]int, len(rings)),
		neighbors: make([][]int, total),
	}
	for r, ring := range rings {
		l.ringStart[r] = len(l.cells)
		for p, sym := range []rune(ring) {
			l.cells = append(l.cells, Cell{Symbol: sym, Ring: r, Pos: p})
		}
	}

	// 4. Resolve adjacency once; the lattice is immutable afterwards.
	l.resolveAdjacency()

	return l, nil
}
