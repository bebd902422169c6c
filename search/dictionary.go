package search

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/honeyword/hexgrid"
)

// Run evaluates every word in words against l and returns those that exist,
// sorted ascending lexicographically. Matching is case-sensitive and literal;
// duplicate input words that are found appear in the output once per
// occurrence. A word that is not found is a normal negative outcome, never
// an error; an empty word in the list is invalid input and aborts the run
// with ErrEmptyWord.
//
// With WithParallelism(n), n > 1, words are evaluated on up to n workers.
// Each worker owns its private visited marks (inside Exists), so the shared
// lattice stays strictly read-only. The result is identical to the
// synchronous run.
// Complexity: the sum of the per-word Exists costs, plus O(F·log F) for the
// final sort over F found words.
func Run(l *hexgrid.Lattice, words []string, opts ...Option) ([]string, error) {
	// 1. Validate lattice and options up front so workers can't race on it.
	if l == nil {
		return nil, ErrLatticeNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("run: %w", o.err)
	}

	// 2. Evaluate. found[i] records the verdict for words[i] so the output
	//    can preserve input duplicates deterministically.
	found := make([]bool, len(words))
	if o.Parallelism <= 1 {
		for i, word := range words {
			ok, err := Exists(l, word, WithContext(o.Ctx))
			if err != nil {
				return nil, fmt.Errorf("word %d %q: %w", i, word, err)
			}
			found[i] = ok
		}
	} else {
		g, ctx := errgroup.WithContext(o.Ctx)
		g.SetLimit(o.Parallelism)
		for i, word := range words {
			i, word := i, word
			g.Go(func() error {
				ok, err := Exists(l, word, WithContext(ctx))
				if err != nil {
					return fmt.Errorf("word %d %q: %w", i, word, err)
				}
				found[i] = ok

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	// 3. Collect and sort.
	out := make([]string, 0, len(words))
	for i, word := range words {
		if found[i] {
			out = append(out, word)
		}
	}
	sort.Strings(out)

	return out, nil
}

// ReadWords decodes the dictionary format: one candidate word per line,
// case-sensitive, matched literally. Blank lines are skipped; surrounding
// whitespace (including Windows carriage returns) is trimmed.
// An empty dictionary is not an error and yields an empty slice.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	return words, nil
}
