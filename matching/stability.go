package matching

import (
	"cmp"
	"slices"
)

// BlockingPairs returns every hospital–resident pair (h, r) that is not
// matched together while h prefers r to its partner and r prefers h to its
// partner. A nil result means res is stable for inst.
//
// inst must be valid and res must satisfy ValidateResult; otherwise it
// may panic.
//
// Pairs are reported in (hospital, resident) ascending order.
//
// Complexity: O(n²) time, O(n²) memory for the rank tables.
func BlockingPairs(inst Instance, res Result) []Pair {
	hRank := rankTable(inst.Hospitals)
	rRank := rankTable(inst.Residents)

	var out []Pair
	for h, list := range inst.Hospitals {
		cur := res.HospitalToResident[h]
		// Only residents h ranks above its partner can block.
		for _, r := range list[:hRank[h][cur]] {
			if rRank[r][h] < rRank[r][res.ResidentToHospital[r]] {
				out = append(out, Pair{Hospital: h, Resident: r})
			}
		}
	}
	sortPairs(out)
	return out
}

// IsStable reports whether res has no blocking pair under inst.
func IsStable(inst Instance, res Result) bool {
	return len(BlockingPairs(inst, res)) == 0
}

// sortPairs orders pairs by hospital, then resident.
func sortPairs(p []Pair) {
	slices.SortFunc(p, func(a, b Pair) int {
		if c := cmp.Compare(a.Hospital, b.Hospital); c != 0 {
			return c
		}
		return cmp.Compare(a.Resident, b.Resident)
	})
}
