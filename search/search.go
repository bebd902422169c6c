package search

import (
	"fmt"

	"github.com/katalvlaran/honeyword/hexgrid"
)

// walker encapsulates the state of one top-level search attempt: the word
// being matched and this search's private visited marks. The lattice itself
// is never mutated.
type walker struct {
	lat     *hexgrid.Lattice
	word    []rune
	visited []bool // indexed by flat cell index, scoped to this search
	opts    Options
}

// Exists reports whether word can be traced as a simple path through l,
// matching one symbol per cell. Every cell whose symbol equals the word's
// first character is tried as a start, in ring-then-position order; the
// first success wins and no further candidates are examined.
//
// Repeated calls with the same arguments are idempotent and deterministic:
// visited marks live in the call, not in the lattice.
//
// Returns ErrLatticeNil for a nil lattice, ErrEmptyWord for an empty word,
// and the context's error if an Option-supplied context is cancelled.
func Exists(l *hexgrid.Lattice, word string, opts ...Option) (bool, error) {
	// 1. Validate input lattice.
	if l == nil {
		return false, ErrLatticeNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return false, fmt.Errorf("exists %q: %w", word, o.err)
	}

	// 3. Reject the degenerate empty word.
	runes := []rune(word)
	if len(runes) == 0 {
		return false, ErrEmptyWord
	}

	// 4. Try every candidate start cell.
	w := &walker{
		lat:     l,
		word:    runes,
		visited: make([]bool, l.NumCells()),
		opts:    o,
	}
	for i := 0; i < l.NumCells(); i++ {
		if l.Symbol(i) != runes[0] {
			continue
		}
		ok, err := w.matches(i, 1)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

// matches reports whether word[idx:] can be matched along a simple path
// whose previous cell is `cell`. On any return, success or failure, the
// cell's visited mark is restored, so no state leaks across sibling
// branches or across start-cell attempts.
func (w *walker) matches(cell, idx int) (bool, error) {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	// 2. Base case: the whole word has been consumed.
	if idx == len(w.word) {
		return true, nil
	}

	// 3. Mark, recurse into matching unvisited neighbors, unmark.
	w.visited[cell] = true
	defer func() { w.visited[cell] = false }()

	for _, n := range w.lat.Neighbors(cell) {
		if w.visited[n] || w.lat.Symbol(n) != w.word[idx] {
			continue
		}
		ok, err := w.matches(n, idx+1)
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}
