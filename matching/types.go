package matching

// Side identifies one of the two agent sets.
//
//   - Hospitals — the default proposing side (hospital-optimal result).
//   - Residents — the opposite side; used as proposer by the resident-optimal
//     variant.
type Side int

const (
	// Hospitals is the hospital side of the market.
	Hospitals Side = iota

	// Residents is the resident side of the market.
	Residents
)

// String returns the lower-case singular name of the side.
func (s Side) String() string {
	switch s {
	case Hospitals:
		return "hospital"
	case Residents:
		return "resident"
	default:
		return "unknown"
	}
}

// other returns the opposite side.
func (s Side) other() Side {
	if s == Hospitals {
		return Residents
	}
	return Hospitals
}

// PreferenceList is an ordered sequence of agent indices from the opposite
// side, most preferred first. A valid list of size n is a permutation of [0,n).
type PreferenceList []int

// Preferences holds one PreferenceList per agent of a side: Preferences[i]
// is the list of agent i.
type Preferences []PreferenceList

// Instance is a complete two-sided market of size n.
//
// Fields:
//   - Hospitals — Hospitals[h] ranks residents for hospital h.
//   - Residents — Residents[r] ranks hospitals for resident r.
//
// An Instance is treated as immutable by this package: Matcher snapshots it
// on construction and never writes to it.
type Instance struct {
	Hospitals Preferences
	Residents Preferences
}

// N returns the size of each side, taken from the hospital table.
func (inst Instance) N() int {
	return len(inst.Hospitals)
}

// side returns the preference table of s.
func (inst Instance) side(s Side) Preferences {
	if s == Hospitals {
		return inst.Hospitals
	}
	return inst.Residents
}

// Clone returns a deep copy of inst.
func (inst Instance) Clone() Instance {
	return Instance{
		Hospitals: clonePreferences(inst.Hospitals),
		Residents: clonePreferences(inst.Residents),
	}
}

func clonePreferences(p Preferences) Preferences {
	if p == nil {
		return nil
	}
	out := make(Preferences, len(p))
	for i, list := range p {
		out[i] = append(PreferenceList(nil), list...)
	}
	return out
}

// Result is the outcome of a matching run.
type Result struct {
	// HospitalToResident[h] is the resident matched to hospital h.
	HospitalToResident []int

	// ResidentToHospital[r] is the hospital matched to resident r.
	ResidentToHospital []int

	// Proposals is the total number of proposals made. Diagnostic only.
	Proposals int

	// Rounds is the number of passes over the free proposers.
	Rounds int

	// Proposer is the side that made the proposals.
	Proposer Side
}

// Pair is a hospital–resident pair, used to report blocking pairs.
type Pair struct {
	Hospital int
	Resident int
}
