// Package honeyword decides which dictionary words can be traced through a
// hexagonal "honeycomb" lattice of letters.
//
// The lattice is a center cell surrounded by concentric rings of 6·r cells;
// its entire adjacency structure is derived from ring/position arithmetic
// alone. A word is traceable when its letters form a simple path — adjacent
// cells, none reused — through the lattice.
//
// Everything is organized under two packages plus a CLI:
//
//	hexgrid/  — Cell, Coord, and Lattice types; ring-size arithmetic,
//	            validated construction, one-shot adjacency resolution,
//	            and the textual lattice decoder
//	search/   — backtracking path matcher with per-search visited marks,
//	            the word-existence driver, and the dictionary runner
//	            (optionally parallel across words)
//
// Quick ASCII sketch (center plus ring 1):
//
//	  C───D
//	 ╱ ╲ ╱ ╲
//	B───A───E
//	 ╲ ╱ ╲ ╱
//	  G───F
//
// Quick start:
//
//	l, err := hexgrid.New([]string{"A", "BCDEFG"})
//	if err != nil { ... }
//	found, err := search.Run(l, []string{"BAD", "CAB"})
//
// The cmd/honeyword binary wires the same pipeline to a pair of input
// files and prints every traceable word, sorted, one per line.
package honeyword
