package graph

import "errors"

// Sentinel errors for programmatic checks via errors.Is().
var (
	// ErrInvalidHandle indicates a handle at or beyond the current arena
	// length. Queries return it rather than an empty result so that a bad
	// position is never silently mistaken for "no children".
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrInvalidEdge indicates an edge insertion that would break the graph's
	// invariants: a self-loop, a duplicate (source, target) pair, fewer than
	// two nodes present, or an endpoint out of range.
	ErrInvalidEdge = errors.New("invalid edge")
)
