// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// instances.go — market constructors.
//
// Contract:
//   • n ≥ MinAgents (else ErrTooFewAgents).
//   • Every list is a permutation of [0,n); tables hold exactly n lists.
//   • Deterministic constructors ignore cfg.rng; Random requires it.
//
// Complexity: O(n²) time and space for every constructor.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stablematch/matching"
)

// Aligned returns a Constructor where hospital h and resident r both rank the
// other side in index order. The unique stable matching pairs h with h and
// hospital-proposing deferred acceptance makes exactly n proposals.
func Aligned(n int) Constructor {
	return func(cfg builderConfig) (matching.Instance, error) {
		if err := validateSize(MethodAligned, n); err != nil {
			return matching.Instance{}, err
		}
		return matching.Instance{
			Hospitals: table(n, func(_, pos int) int { return pos }),
			Residents: table(n, func(_, pos int) int { return pos }),
		}, nil
	}
}

// MasterList returns a Constructor where every hospital ranks residents
// 0..n-1 and every resident ranks hospitals n-1..0. Each round all free
// hospitals chase the same resident, which keeps the highest index, so the
// hospital-proposing run makes n(n+1)/2 proposals and pairs hospital h with
// resident n-1-h.
func MasterList(n int) Constructor {
	return func(cfg builderConfig) (matching.Instance, error) {
		if err := validateSize(MethodMasterList, n); err != nil {
			return matching.Instance{}, err
		}
		return matching.Instance{
			Hospitals: table(n, func(_, pos int) int { return pos }),
			Residents: table(n, func(_, pos int) int { return n - 1 - pos }),
		}, nil
	}
}

// Latin returns a Constructor with rotated rankings: hospital h ranks
// residents h, h+1, … and resident r ranks hospitals r+1, r+2, … (mod n).
// Every agent gets its first choice when its side proposes, so for n ≥ 2
// the hospital-optimal matching (h→h) differs from the resident-optimal one
// (h→h-1 mod n).
func Latin(n int) Constructor {
	return func(cfg builderConfig) (matching.Instance, error) {
		if err := validateSize(MethodLatin, n); err != nil {
			return matching.Instance{}, err
		}
		return matching.Instance{
			Hospitals: table(n, func(agent, pos int) int { return (agent + pos) % n }),
			Residents: table(n, func(agent, pos int) int { return (agent + 1 + pos) % n }),
		}, nil
	}
}

// Random returns a Constructor drawing every list as an independent uniform
// permutation from cfg.rng (Fisher–Yates via rand.Perm).
func Random(n int) Constructor {
	return func(cfg builderConfig) (matching.Instance, error) {
		if err := validateSize(MethodRandom, n); err != nil {
			return matching.Instance{}, err
		}
		if cfg.rng == nil {
			return matching.Instance{}, fmt.Errorf("%s: %w", MethodRandom, ErrNeedRandSource)
		}
		return matching.Instance{
			Hospitals: randomTable(n, cfg.rng),
			Residents: randomTable(n, cfg.rng),
		}, nil
	}
}

func validateSize(method string, n int) error {
	if n < MinAgents {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinAgents, ErrTooFewAgents)
	}
	return nil
}

// table builds n lists of length n with entry(agent, pos).
func table(n int, entry func(agent, pos int) int) matching.Preferences {
	p := make(matching.Preferences, n)
	for agent := 0; agent < n; agent++ {
		list := make(matching.PreferenceList, n)
		for pos := range list {
			list[pos] = entry(agent, pos)
		}
		p[agent] = list
	}
	return p
}

func randomTable(n int, rng *rand.Rand) matching.Preferences {
	p := make(matching.Preferences, n)
	for agent := range p {
		p[agent] = rng.Perm(n)
	}
	return p
}
