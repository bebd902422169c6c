// Package search decides whether dictionary words can be traced as simple
// paths through a hexgrid.Lattice, matching one symbol per cell and never
// reusing a cell.
//
// What:
//
//   - Exists(l, word, opts...): tries every cell whose symbol equals the
//     word's first character as a path start, in ring-then-position order,
//     and reports whether any start yields a full match. First success wins.
//   - Run(l, words, opts...): evaluates a whole word list against one
//     lattice and returns the found words sorted ascending; duplicates in
//     the input are preserved in the output. WithParallelism spreads the
//     words across workers.
//   - ReadWords(r): decodes the one-word-per-line dictionary format.
//
// How:
//
//	The matcher is a recursive backtracking depth-first walk. Visited
//	state is a per-search []bool indexed by flat cell index — never state
//	on the lattice itself — so a single Lattice may serve any number of
//	concurrent searches, and no marks can leak between sibling branches
//	or between top-level attempts.
//
// Complexity:
//
//   - Worst case per start cell: O(b^|word|), b ≤ 6 (cell degree).
//     Dictionary words are short, so this is fine in practice.
//   - Memory: O(C) for the visited marks, C = lattice cell count;
//     recursion depth is bounded by |word|.
//
// Options:
//
//   - WithContext(ctx)      aborts an in-flight search when ctx is done.
//   - WithParallelism(n)    Run only: evaluate words on up to n workers.
//
// Errors:
//
//   - ErrLatticeNil      if the lattice is nil.
//   - ErrEmptyWord       if a word is empty (rejected, not trivially found).
//   - ErrOptionViolation if an option argument is invalid.
//   - context.Canceled / context.DeadlineExceeded from the context.
package search
