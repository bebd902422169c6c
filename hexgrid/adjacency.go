package hexgrid

import "fmt"

// resolveAdjacency computes and installs the full neighbor set of every cell.
// It runs exactly once, at construction, after all cells exist: the inner
// link of ring r depends on ring r−1 being allocated.
//
// Two relations are derived per non-center cell:
//
//  1. Same-ring: (r, p) ↔ (r, (p+1) mod 6r). Only the "+1" direction is
//     computed, but links are recorded symmetrically, so once every cell of
//     the ring has been processed the ring closes into a full cycle and each
//     cell ends up adjacent to both rotational neighbors.
//  2. Inner-ring: with offset = p mod r, a corner cell (offset == 0) touches
//     the single inner cell (p/r)·(r−1); an edge cell touches the two
//     consecutive inner cells at base = ((p−offset)/r)·(r−1)+offset modulo
//     RingSize(r−1), and base−1.
//
// Ring 0 has no same-ring successor and no inner ring; it is linked only by
// ring 1's corner cells, all six of which resolve to it.
// Complexity: O(C) time, O(C) memory for the neighbor slices.
func (l *Lattice) resolveAdjacency() {
	var nr int
	for r := 1; r < len(l.ringStart); r++ {
		size := RingSize(r)
		innerSize := RingSize(r - 1)
		for p := 0; p < size; p++ {
			// 1. Same-ring successor; symmetry closes the cycle.
			l.link(l.at(r, p), l.at(r, (p+1)%size))

			// 2. Inner-ring link(s).
			offset := p % r
			if offset == 0 {
				// Corner: one inner neighbor.
				nr = (p / r) * (r - 1)
				l.link(l.at(r, p), l.at(r-1, nr%innerSize))
				continue
			}
			// Edge: two consecutive inner neighbors.
			nr = ((p-offset)/r*(r-1) + offset) % innerSize
			l.link(l.at(r, p), l.at(r-1, nr))
			l.link(l.at(r, p), l.at(r-1, (nr-1+innerSize)%innerSize))
		}
	}
}

// at maps (ring, pos) to the flat cell index, panicking on out-of-range
// arguments. Such an index can only arise from a corrupted builder, never
// from validated input, so it is an internal-consistency failure rather
// than a recoverable error.
func (l *Lattice) at(r, p int) int {
	if r < 0 || r >= len(l.ringStart) || p < 0 || p >= RingSize(r) {
		panic(fmt.Sprintf("hexgrid: adjacency index (%d,%d) out of range", r, p))
	}

	return l.ringStart[r] + p
}

// link records the undirected edge u↔v symmetrically. Each edge is derived
// exactly once by resolveAdjacency, so no duplicate check is needed.
func (l *Lattice) link(u, v int) {
	l.neighbors[u] = append(l.neighbors[u], v)
	l.neighbors[v] = append(l.neighbors[v], u)
}
