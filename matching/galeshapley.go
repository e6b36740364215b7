package matching

import "fmt"

// free marks an acceptor that holds no engagement.
const free = -1

// Matcher runs Gale–Shapley deferred acceptance over a validated Instance.
//
// A Matcher owns an immutable snapshot of the preference tables plus the
// acceptor-side rank table. Every call to Run starts from fresh cursors and
// engagements, so repeated runs return identical results.
//
// A Matcher is not safe for concurrent use of Run.
type Matcher struct {
	inst Instance
	cfg  config
	n    int

	// proposers is the table of the proposing side.
	proposers Preferences
	// rank[a][p] is the position of proposer p in acceptor a's list.
	rank [][]int
}

// New validates inst and prepares a Matcher.
//
// Errors: ErrEmptyInstance, ErrInvalidInput (see Validate).
//
// Complexity: O(n²) time and memory.
func New(inst Instance, opts ...Option) (*Matcher, error) {
	if err := Validate(inst); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	snap := inst.Clone()

	m := &Matcher{
		inst:      snap,
		cfg:       cfg,
		n:         snap.N(),
		proposers: snap.side(cfg.proposer),
	}
	m.rank = rankTable(snap.side(cfg.proposer.other()))

	return m, nil
}

// Match is shorthand for New followed by Run.
func Match(inst Instance, opts ...Option) (Result, error) {
	m, err := New(inst, opts...)
	if err != nil {
		return Result{}, err
	}
	return m.Run()
}

// Instance returns a copy of the snapshot the Matcher works on.
func (m *Matcher) Instance() Instance {
	return m.inst.Clone()
}

// Run executes deferred acceptance until every proposer is engaged.
//
// Algorithm Outline (hospital-proposing; the resident variant swaps roles):
//  1. All hospitals free, cursor[h] = 0, no engagements.
//  2. Repeat rounds while some hospital is free. In each round, visit the
//     hospitals in increasing index order; a hospital h that is free when
//     visited proposes to r = prefs[h][cursor[h]]:
//     a. cursor[h] == n while free ⇒ ErrNoStableMatching.
//     b. r free ⇒ r engages h.
//     c. r engaged to h' ⇒ r keeps whichever of h, h' it ranks first;
//     a jilted h' becomes free.
//     d. proposals++, cursor[h]++ regardless of the outcome.
//  3. Stop when n hospitals are engaged.
//  4. Invert the resident→hospital engagements.
//
// Complexity: at most n² proposals, O(1) each; O(n) extra memory.
func (m *Matcher) Run() (Result, error) {
	n := m.n
	limit := m.cfg.maxProposals
	if limit == 0 {
		limit = n * n
	}

	var (
		cursor    = make([]int, n)  // next position per proposer
		engagedTo = make([]int, n)  // acceptor -> proposer
		isMatched = make([]bool, n) // proposer engaged?
		matched   int
		proposals int
		rounds    int
	)
	for i := range engagedTo {
		engagedTo[i] = free
	}

	for matched < n {
		rounds++
		for p := 0; p < n; p++ {
			if isMatched[p] {
				continue
			}
			if cursor[p] >= n {
				return Result{}, fmt.Errorf("matching: %s %d exhausted its list after %d proposals: %w",
					m.cfg.proposer, p, proposals, ErrNoStableMatching)
			}
			if proposals >= limit {
				return Result{}, fmt.Errorf("matching: proposal limit %d reached with %d of %d %ss engaged: %w",
					limit, matched, n, m.cfg.proposer, ErrNoStableMatching)
			}

			a := m.proposers[p][cursor[p]]
			switch cur := engagedTo[a]; {
			case cur == free:
				engagedTo[a] = p
				isMatched[p] = true
				matched++
			case m.rank[a][p] < m.rank[a][cur]:
				engagedTo[a] = p
				isMatched[p] = true
				isMatched[cur] = false
			}

			proposals++
			cursor[p]++
		}
	}

	return m.result(engagedTo, proposals, rounds), nil
}

// result converts acceptor→proposer engagements into a Result oriented
// hospital→resident regardless of the proposing side.
func (m *Matcher) result(engagedTo []int, proposals, rounds int) Result {
	inverse := make([]int, m.n)
	for a, p := range engagedTo {
		inverse[p] = a
	}

	res := Result{Proposals: proposals, Rounds: rounds, Proposer: m.cfg.proposer}
	if m.cfg.proposer == Hospitals {
		res.ResidentToHospital = engagedTo
		res.HospitalToResident = inverse
	} else {
		res.HospitalToResident = engagedTo
		res.ResidentToHospital = inverse
	}
	return res
}

// rankTable inverts each list: rank[agent][x] = position of x in agent's list.
//
// Complexity: O(n²).
func rankTable(p Preferences) [][]int {
	rank := make([][]int, len(p))
	for agent, list := range p {
		row := make([]int, len(list))
		for pos, x := range list {
			row[x] = pos
		}
		rank[agent] = row
	}
	return rank
}
