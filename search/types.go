// Package search defines tunable options and error definitions for word
// searches over a hexgrid.Lattice.
package search

import (
	"context"
	"errors"
)

// Sentinel errors for search execution.
var (
	// ErrLatticeNil is returned if a nil lattice pointer is passed.
	ErrLatticeNil = errors.New("search: lattice is nil")

	// ErrEmptyWord is returned when a word has no characters. An empty word
	// is invalid input, not a trivially-found word.
	ErrEmptyWord = errors.New("search: word is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures search behavior via functional arguments. An invalid
// Option (e.g. non-positive parallelism) is recorded internally and surfaced
// as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters customizing Exists and Run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked at every recursion step.
	Ctx context.Context

	// Parallelism caps the number of workers Run uses to evaluate words.
	// 1 (the default) keeps Run fully synchronous. Exists ignores it.
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - synchronous evaluation (Parallelism == 1)
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Parallelism: 1,
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallelism lets Run evaluate up to n words concurrently. Each worker
// owns its own visited marks, so the shared lattice stays read-only.
// n must be ≥ 1; anything else is an ErrOptionViolation.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.Parallelism = n
	}
}
