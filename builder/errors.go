// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach the method name with %w wrapping.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewAgents indicates that n is smaller than MinAgents.
// Usage: if errors.Is(err, ErrTooFewAgents) { /* report invalid size */ }.
var ErrTooFewAgents = errors.New("builder: too few agents")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilConstructor indicates Build was called with a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
