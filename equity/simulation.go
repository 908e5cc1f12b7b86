package equity

import (
	"iter"
	rand "math/rand/v2"
)

// Simulation is a lazy Monte Carlo outcome sequence over one matchup.
// Each pull performs one sample and one evaluation. The sequence is
// unbounded; the caller decides how many pulls to request. Any sampling
// or evaluation failure is terminal: the error sticks and every later
// pull returns it unchanged. Whether to rebuild and resume after a
// failure is entirely the caller's policy.
type Simulation struct {
	matchup *Matchup
	ev      Evaluator
	rng     *rand.Rand
	err     error
}

// NewSimulation creates a simulation over the matchup with an explicit
// random source.
func NewSimulation(m *Matchup, ev Evaluator, rng *rand.Rand) *Simulation {
	return &Simulation{matchup: m, ev: ev, rng: rng}
}

// Next produces the next outcome, or the terminal error.
func (s *Simulation) Next() (*Result, error) {
	if s.err != nil {
		return nil, s.err
	}

	deal, err := s.matchup.Sample(s.rng)
	if err != nil {
		s.err = err
		return nil, err
	}

	result, err := s.matchup.Evaluate(deal, s.ev)
	if err != nil {
		s.err = err
		return nil, err
	}
	return result, nil
}

// Err returns the terminal error, if any pull has failed.
func (s *Simulation) Err() error {
	return s.err
}

// Results returns the outcomes as a lazy sequence. Each iteration step
// performs one pull; on failure the terminal error is yielded once and
// the sequence stops.
func (s *Simulation) Results() iter.Seq2[*Result, error] {
	return func(yield func(*Result, error) bool) {
		for {
			result, err := s.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(result, nil) {
				return
			}
		}
	}
}
