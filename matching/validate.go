// Package matching - validation of instances and results.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only ErrInvalidInput wrapped
//     with the side, agent and position that failed.
//   - O(n²) time for an instance, O(n) extra space per list.
package matching

import "fmt"

// Validate reports whether inst is a well-formed complete market:
// both tables hold exactly n lists and every list is a permutation of [0,n).
//
// Errors:
//   - ErrEmptyInstance — n < 1.
//   - ErrInvalidInput  — anything else, wrapped with its location.
//
// Complexity: O(n²) time, O(n) space.
func Validate(inst Instance) error {
	n := inst.N()
	if n < 1 {
		return ErrEmptyInstance
	}
	if err := validateTable(inst.Hospitals, Hospitals, n); err != nil {
		return err
	}
	return validateTable(inst.Residents, Residents, n)
}

// validateTable checks that p holds n permutations of [0,n).
func validateTable(p Preferences, s Side, n int) error {
	if len(p) != n {
		return fmt.Errorf("matching: %s table has %d lists, want %d: %w", s, len(p), n, ErrInvalidInput)
	}
	seen := make([]int, n) // seen[v] == agent+1 when v was seen in agent's list
	for agent, list := range p {
		if len(list) != n {
			return fmt.Errorf("matching: %s %d: list has %d entries, want %d: %w",
				s, agent, len(list), n, ErrInvalidInput)
		}
		for pos, v := range list {
			if v < 0 || v >= n {
				return fmt.Errorf("matching: %s %d: position %d: %s %d out of range [0,%d): %w",
					s, agent, pos, s.other(), v, n, ErrInvalidInput)
			}
			if seen[v] == agent+1 {
				return fmt.Errorf("matching: %s %d: position %d: duplicate %s %d: %w",
					s, agent, pos, s.other(), v, ErrInvalidInput)
			}
			seen[v] = agent + 1
		}
	}
	return nil
}

// ValidateResult checks that res is a bijection consistent with inst:
// both directions have length n, every index is in range, and the two
// slices are inverse to each other.
//
// Complexity: O(n).
func ValidateResult(inst Instance, res Result) error {
	n := inst.N()
	if len(res.HospitalToResident) != n || len(res.ResidentToHospital) != n {
		return fmt.Errorf("matching: result sizes %d/%d, want %d: %w",
			len(res.HospitalToResident), len(res.ResidentToHospital), n, ErrInvalidInput)
	}
	for h, r := range res.HospitalToResident {
		if r < 0 || r >= n {
			return fmt.Errorf("matching: hospital %d matched to resident %d out of range: %w", h, r, ErrInvalidInput)
		}
		if res.ResidentToHospital[r] != h {
			return fmt.Errorf("matching: hospital %d -> resident %d is not mirrored (resident %d -> hospital %d): %w",
				h, r, r, res.ResidentToHospital[r], ErrInvalidInput)
		}
	}
	return nil
}
