package matching_test

import (
	"testing"

	"github.com/katalvlaran/stablematch/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_Table exercises every rejection class with its message.
func TestValidate_Table(t *testing.T) {
	ok := matching.Preferences{{0, 1}, {1, 0}}
	cases := []struct {
		name string
		inst matching.Instance
		msg  string
	}{
		{
			name: "short resident table",
			inst: matching.Instance{Hospitals: ok, Residents: matching.Preferences{{0, 1}}},
			msg:  "resident table has 1 lists, want 2",
		},
		{
			name: "short list",
			inst: matching.Instance{Hospitals: matching.Preferences{{0, 1}, {1}}, Residents: ok},
			msg:  "hospital 1: list has 1 entries, want 2",
		},
		{
			name: "out of range",
			inst: matching.Instance{Hospitals: ok, Residents: matching.Preferences{{0, 2}, {1, 0}}},
			msg:  "resident 0: position 1: hospital 2 out of range [0,2)",
		},
		{
			name: "negative",
			inst: matching.Instance{Hospitals: matching.Preferences{{-1, 1}, {1, 0}}, Residents: ok},
			msg:  "hospital 0: position 0: resident -1 out of range",
		},
		{
			name: "duplicate",
			inst: matching.Instance{Hospitals: ok, Residents: matching.Preferences{{0, 1}, {1, 1}}},
			msg:  "resident 1: position 1: duplicate hospital 1",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matching.Validate(tc.inst)
			require.ErrorIs(t, err, matching.ErrInvalidInput)
			assert.NotErrorIs(t, err, matching.ErrEmptyInstance)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

// TestValidate_Empty distinguishes the n<1 case.
func TestValidate_Empty(t *testing.T) {
	err := matching.Validate(matching.Instance{Residents: matching.Preferences{{0}}})
	assert.ErrorIs(t, err, matching.ErrEmptyInstance)
	assert.ErrorIs(t, err, matching.ErrInvalidInput)
}

// TestValidate_Accepts passes a well-formed market.
func TestValidate_Accepts(t *testing.T) {
	inst := matching.Instance{
		Hospitals: matching.Preferences{{2, 0, 1}, {0, 1, 2}, {1, 2, 0}},
		Residents: matching.Preferences{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}},
	}
	assert.NoError(t, matching.Validate(inst))
}

// TestValidateResult covers size, range and mirror failures.
func TestValidateResult(t *testing.T) {
	inst := matching.Instance{
		Hospitals: matching.Preferences{{0, 1}, {1, 0}},
		Residents: matching.Preferences{{0, 1}, {1, 0}},
	}

	assert.NoError(t, matching.ValidateResult(inst, matching.Result{
		HospitalToResident: []int{1, 0},
		ResidentToHospital: []int{1, 0},
	}))
	assert.ErrorIs(t, matching.ValidateResult(inst, matching.Result{
		HospitalToResident: []int{0},
		ResidentToHospital: []int{0, 1},
	}), matching.ErrInvalidInput)
	assert.ErrorIs(t, matching.ValidateResult(inst, matching.Result{
		HospitalToResident: []int{0, 5},
		ResidentToHospital: []int{0, 1},
	}), matching.ErrInvalidInput)
	assert.ErrorIs(t, matching.ValidateResult(inst, matching.Result{
		HospitalToResident: []int{0, 0},
		ResidentToHospital: []int{0, 1},
	}), matching.ErrInvalidInput)
}
