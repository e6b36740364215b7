// Package builder provides deterministic generators of complete two-sided
// preference markets (matching.Instance) for tests, benchmarks, examples and
// the command-line generator mode.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG used by stochastic constructors.
//   - Constructors (Constructor values consumed by Build):
//     – Aligned(n):     everyone ranks the other side by index.
//     – MasterList(n):  hospitals share one ranking, residents share the
//     reversed one; forces the longest rejection cascade of the
//     round-based loop (n(n+1)/2 proposals).
//     – Latin(n):       rotated rankings whose hospital-optimal and
//     resident-optimal matchings differ for n ≥ 2.
//     – Random(n):      independent uniform permutations (needs an RNG).
//
// Guarantees:
//
//   - Every produced Instance passes matching.Validate.
//   - Same seed ⇒ identical instance.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves only return sentinel errors wrapped with %w.
//
// Usage:
//
//	inst, err := builder.Build(builder.Random(50), builder.WithSeed(7))
package builder
