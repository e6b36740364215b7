package matching

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a malformed instance: wrong table or list
	// length, an index out of range, or a list that is not a permutation.
	ErrInvalidInput = errors.New("matching: invalid input")

	// ErrEmptyInstance indicates n < 1. It also matches ErrInvalidInput.
	ErrEmptyInstance = fmt.Errorf("matching: instance must have at least one agent per side: %w", ErrInvalidInput)

	// ErrNoStableMatching indicates that a proposer exhausted its list (or the
	// proposal budget) while still free. For complete permutation inputs this
	// is an internal-consistency failure, never a genuine infeasibility.
	ErrNoStableMatching = errors.New("matching: no stable matching")
)
