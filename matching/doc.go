// Package matching computes stable matchings between two equal-sized sides
// (hospitals and residents) using Gale–Shapley deferred acceptance.
//
// 🚀 What is a stable matching?
//
//	Each hospital ranks every resident and each resident ranks every
//	hospital. A matching pairs them one-to-one; it is stable when no
//	hospital h and resident r both prefer each other to their assigned
//	partners (such a pair is called a blocking pair).
//
// ✨ Key features:
//   - hospital-proposing deferred acceptance (hospital-optimal result)
//   - optional resident-proposing variant (resident-optimal result)
//   - strict input validation: every list must be a permutation of [0,n)
//   - O(1) rank comparisons through precomputed inverse tables
//   - brute-force stability audit (BlockingPairs, IsStable, ValidateResult)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stablematch/matching"
//
//	inst := matching.Instance{
//	  Hospitals: matching.Preferences{{0, 1}, {1, 0}},
//	  Residents: matching.Preferences{{0, 1}, {1, 0}},
//	}
//	res, err := matching.Match(inst)
//	// res.HospitalToResident == []int{0, 1}
//
// Performance:
//
//   - Time:   O(n²) proposals in the worst case, O(1) work per proposal
//   - Memory: O(n²) for the rank tables, O(n) for cursors and engagements
//
// Errors are sentinels (ErrInvalidInput, ErrEmptyInstance,
// ErrNoStableMatching) wrapped with context; branch with errors.Is.
package matching
