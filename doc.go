// Package stablematch computes stable matchings between hospitals and
// residents with Gale–Shapley deferred acceptance.
//
// 🚀 What is in the module?
//
//	• matching/  — the Matcher: validation, proposal loop, stability audit
//	• prefio/    — fixed-format text codec for markets and results
//	• builder/   — deterministic market generators (aligned, master list,
//	               latin, seeded random)
//	• cmd/galeshapley — command-line front end
//
// ✨ Guarantees:
//
//   - Complete, equal-sized, strictly ordered preferences only; anything
//     else is rejected with matching.ErrInvalidInput.
//   - The hospital-proposing result is stable and hospital-optimal.
//   - Runs are deterministic: same market, same output.
//
// Quick example (1-based text format):
//
//	$ printf '2\n1 2\n2 1\n1 2\n2 1\n' | galeshapley
//	Yes
//	1
//	2
//
// stderr carries "Total proposals: 2".
package stablematch
