package hexgrid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse decodes the textual lattice description: the first token is the ring
// count N, followed by N lines, line r holding the RingSize(r) symbols of
// ring r in position order with no separators.
//
// Returns ErrBadHeader if the header is absent or not a positive integer,
// ErrRingCount if fewer than N ring lines follow, and ErrRingLength (from
// New) if any ring line's length is wrong.
// Complexity: O(C) over the total symbol count.
func Parse(r io.Reader) (*Lattice, error) {
	sc := bufio.NewScanner(r)

	// 1. Ring-count header.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read lattice header: %w", err)
		}

		return nil, ErrBadHeader
	}
	header := strings.TrimSpace(sc.Text())
	n, err := strconv.Atoi(header)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("ring count %q: %w", header, ErrBadHeader)
	}

	// 2. Exactly n ring lines. Trailing carriage returns are stripped so the
	//    same file parses on every platform; symbols themselves are taken
	//    literally.
	rings := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("read ring %d: %w", i, err)
			}

			return nil, fmt.Errorf("ring %d: %w", i, ErrRingCount)
		}
		rings = append(rings, strings.TrimRight(sc.Text(), "\r"))
	}

	return New(rings)
}
