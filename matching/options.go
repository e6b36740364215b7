package matching

// Option customizes a Matcher before it runs.
//
// Option constructors validate their arguments and panic on meaningless
// values; Run itself never panics.
type Option func(*config)

// config aggregates Matcher knobs. Defaults: hospitals propose, the
// proposal budget is the classical n² bound.
type config struct {
	proposer     Side
	maxProposals int // 0 means n*n
}

func newConfig(opts ...Option) config {
	cfg := config{proposer: Hospitals}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithProposer selects the proposing side. Hospitals (default) yields the
// hospital-optimal stable matching, Residents the resident-optimal one.
// Panics on an unknown side.
func WithProposer(s Side) Option {
	if s != Hospitals && s != Residents {
		panic("matching: WithProposer(unknown side)")
	}
	return func(c *config) {
		c.proposer = s
	}
}

// WithMaxProposals caps the number of proposals. Zero restores the default
// n² bound. Exceeding the cap makes Run return ErrNoStableMatching.
// Panics on a negative limit.
func WithMaxProposals(limit int) Option {
	if limit < 0 {
		panic("matching: WithMaxProposals(limit<0)")
	}
	return func(c *config) {
		c.maxProposals = limit
	}
}
