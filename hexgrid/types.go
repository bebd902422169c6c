// Package hexgrid defines the core Coord, Cell, and Lattice types for the
// honeycomb lattice. Construction lives in hexgrid.go, adjacency resolution
// in adjacency.go, textual decoding in parse.go.
package hexgrid

// Coord is the structural key of a lattice cell: its ring and its 0-indexed
// rotational position within that ring. Coords are comparable and replace
// reference identity everywhere a cell must be named.
type Coord struct {
	// Ring is the concentric band index; ring 0 is the single center cell.
	Ring int
	// Pos is the 0-indexed slot within the ring, in [0, RingSize(Ring)).
	Pos int
}

// Cell is one lattice position. It is pure value data: adjacency is held by
// the Lattice, and search bookkeeping (visited marks) is owned by each
// search, never by the cell.
type Cell struct {
	// Symbol is the character stored at this position.
	Symbol rune
	// Ring and Pos locate the cell; together they form its Coord.
	Ring int
	Pos  int
}

// Coord returns the cell's structural key.
func (c Cell) Coord() Coord {
	return Coord{Ring: c.Ring, Pos: c.Pos}
}

// Lattice is an immutable honeycomb of cells. Cells are stored flat in
// ring-then-position order; adjacency is a pre-resolved neighbor index slice
// per cell. Once built, a Lattice never changes — it is safe to share
// read-only across concurrent searches.
type Lattice struct {
	cells     []Cell  // flat, ring-then-position order
	ringStart []int   // ringStart[r] = flat index of (r, 0)
	neighbors [][]int // neighbors[i] = flat indices adjacent to cell i
}

// NumRings reports the number of rings, including the center.
// Complexity: O(1).
func (l *Lattice) NumRings() int {
	return len(l.ringStart)
}

// NumCells reports the total cell count.
// Complexity: O(1).
func (l *Lattice) NumCells() int {
	return len(l.cells)
}

// Index maps a Coord to its flat ring-then-position index.
// The Coord must be in range; Index does not validate.
// Complexity: O(1).
func (l *Lattice) Index(c Coord) int {
	return l.ringStart[c.Ring] + c.Pos
}

// CoordOf converts a flat index back to its (ring, position) Coord.
// Complexity: O(1).
func (l *Lattice) CoordOf(i int) Coord {
	return l.cells[i].Coord()
}

// Cell returns the cell at flat index i.
// Complexity: O(1).
func (l *Lattice) Cell(i int) Cell {
	return l.cells[i]
}

// Symbol returns the symbol of the cell at flat index i.
// Complexity: O(1).
func (l *Lattice) Symbol(i int) rune {
	return l.cells[i].Symbol
}

// At returns the cell at the given Coord, or ok=false if the Coord is out of
// range. Complexity: O(1).
func (l *Lattice) At(c Coord) (Cell, bool) {
	if c.Ring < 0 || c.Ring >= len(l.ringStart) {
		return Cell{}, false
	}
	if c.Pos < 0 || c.Pos >= RingSize(c.Ring) {
		return Cell{}, false
	}

	return l.cells[l.Index(c)], true
}

// Neighbors returns the pre-resolved neighbor indices of cell i. The slice
// is owned by the Lattice and must not be mutated.
// Complexity: O(1).
func (l *Lattice) Neighbors(i int) []int {
	return l.neighbors[i]
}
