// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng = nil (pure/deterministic unless seeded)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stablematch/matching"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// Constructor generates an Instance from a resolved configuration.
type Constructor func(cfg builderConfig) (matching.Instance, error)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Build resolves opts and runs c. The produced instance is checked with
// matching.Validate before it is returned.
func Build(c Constructor, opts ...BuilderOption) (matching.Instance, error) {
	if c == nil {
		return matching.Instance{}, ErrNilConstructor
	}
	inst, err := c(newBuilderConfig(opts...))
	if err != nil {
		return matching.Instance{}, err
	}
	if err = matching.Validate(inst); err != nil {
		return matching.Instance{}, fmt.Errorf("builder: generated instance: %w", err)
	}
	return inst, nil
}
