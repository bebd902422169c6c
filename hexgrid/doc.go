// Package hexgrid models a hexagonal "honeycomb" lattice of symbols arranged
// in concentric rings around a single center cell, and derives the lattice's
// full adjacency structure purely from ring/position arithmetic.
//
// What:
//
//   - RingSize(r): the closed-form ring population — 1 for the center,
//     6·r for every ring r ≥ 1.
//   - New(rings): validates ring contents and builds an immutable Lattice
//     with adjacency resolved exactly once at construction time.
//   - Parse(r): decodes the textual lattice description (ring count header
//     followed by one line of concatenated symbols per ring).
//   - Accessors: At, Symbol, Neighbors, Index/CoordOf for flat-index ↔
//     (ring, position) mapping.
//
// Topology:
//
//	Each cell at (r, p) is adjacent to its same-ring successor
//	(r, (p+1) mod 6r); applied over the whole ring with symmetric
//	recording, this closes every ring into a cycle. A cell whose position
//	is a multiple of r (a "corner") additionally touches exactly one cell
//	of ring r−1; every other cell (an "edge") touches two consecutive
//	inner cells. Ring 0 has no inner ring.
//
// Why:
//   - The lattice is shared read-only by every subsequent word search;
//     resolving adjacency once up front keeps searches allocation-light
//     and makes the structure safe for concurrent readers.
//
// Complexity:
//
//   - Construction: O(C) time and memory, C = total cell count.
//   - All accessors: O(1) (Neighbors returns a pre-resolved slice).
//
// Errors:
//
//	ErrNoRings    - the lattice description contains no rings.
//	ErrRingLength - a ring's symbol count differs from RingSize(r).
//	ErrBadHeader  - the textual header is not a positive ring count.
//	ErrRingCount  - fewer ring lines than the header promises.
package hexgrid
