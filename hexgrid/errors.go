package hexgrid

import "errors"

// Sentinel errors for lattice construction and decoding.
var (
	// ErrNoRings indicates an empty lattice description (zero rings).
	ErrNoRings = errors.New("hexgrid: lattice must have at least one ring")
	// ErrRingLength indicates a ring whose symbol count differs from RingSize(r).
	ErrRingLength = errors.New("hexgrid: ring length does not match ring size")
	// ErrBadHeader indicates a textual description whose first token is not a positive integer.
	ErrBadHeader = errors.New("hexgrid: malformed ring-count header")
	// ErrRingCount indicates a textual description with fewer ring lines than the header promises.
	ErrRingCount = errors.New("hexgrid: missing ring line")
)
