package matching_test

import (
	"testing"

	"github.com/katalvlaran/stablematch/matching"
	"github.com/stretchr/testify/assert"
)

// TestBlockingPairs_Detects reports the pair that both sides would rather form.
//
// Everyone ranks index order, so the only stable matching is h0-r0, h1-r1.
// Crossing them makes (h0, r0) block; (h1, r1) does not, since h1 prefers
// its current partner r0.
func TestBlockingPairs_Detects(t *testing.T) {
	inst := matching.Instance{
		Hospitals: matching.Preferences{{0, 1}, {0, 1}},
		Residents: matching.Preferences{{0, 1}, {0, 1}},
	}
	crossed := matching.Result{
		HospitalToResident: []int{1, 0},
		ResidentToHospital: []int{1, 0},
	}

	assert.Equal(t, []matching.Pair{{Hospital: 0, Resident: 0}}, matching.BlockingPairs(inst, crossed))
	assert.False(t, matching.IsStable(inst, crossed))
}

// TestBlockingPairs_Stable returns nil for the stable assignment.
func TestBlockingPairs_Stable(t *testing.T) {
	inst := matching.Instance{
		Hospitals: matching.Preferences{{0, 1}, {0, 1}},
		Residents: matching.Preferences{{0, 1}, {0, 1}},
	}
	res := matching.Result{
		HospitalToResident: []int{0, 1},
		ResidentToHospital: []int{0, 1},
	}
	assert.Nil(t, matching.BlockingPairs(inst, res))
	assert.True(t, matching.IsStable(inst, res))
}

// TestBlockingPairs_Ordered checks several pairs come back sorted.
func TestBlockingPairs_Ordered(t *testing.T) {
	// Everyone agrees on index order; the reversed matching is maximally unstable.
	inst := matching.Instance{
		Hospitals: matching.Preferences{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}},
		Residents: matching.Preferences{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}},
	}
	reversed := matching.Result{
		HospitalToResident: []int{2, 1, 0},
		ResidentToHospital: []int{2, 1, 0},
	}
	want := []matching.Pair{
		{Hospital: 0, Resident: 0},
		{Hospital: 0, Resident: 1},
		{Hospital: 1, Resident: 0},
	}
	assert.Equal(t, want, matching.BlockingPairs(inst, reversed))
}
