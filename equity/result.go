package equity

import (
	"fmt"

	"github.com/lox/rangeodds/poker"
)

// Strength is a totally ordered hand strength where a smaller value is
// the stronger hand. That direction is fixed here once; every producer
// and consumer in this module follows it.
type Strength int32

// Beats reports whether s is strictly stronger than other.
func (s Strength) Beats(other Strength) bool {
	return s < other
}

// Evaluator is the external hand-strength capability: given a set of
// five to seven cards it returns the Strength of the best five-card
// hand obtainable from them.
type Evaluator interface {
	BestHand(cards poker.CardSet) (Strength, error)
}

// Result is one evaluated deal: the final community cards, each
// player's pair and derived strength, and the winner index set.
// Winners holds every player index tying for the best strength, in
// ascending order, so split pots are represented directly.
type Result struct {
	Community poker.CardSet
	Pairs     []poker.CardPair
	Strengths []Strength
	Winners   []int
}

// Win reports whether the player is among the winners.
func (r *Result) Win(player int) bool {
	for _, w := range r.Winners {
		if w == player {
			return true
		}
	}
	return false
}

// Tie reports whether the deal ended in a split pot.
func (r *Result) Tie() bool {
	return len(r.Winners) > 1
}

// Evaluate scores a sampled deal: each player's candidate set is the
// community plus their pair (seven cards), handed to the evaluator.
func (m *Matchup) Evaluate(deal *Deal, ev Evaluator) (*Result, error) {
	result := &Result{
		Community: deal.Community,
		Pairs:     deal.Pairs,
		Strengths: make([]Strength, len(deal.Pairs)),
	}

	for i, pair := range deal.Pairs {
		strength, err := ev.BestHand(deal.Community.AddedAll(pair.Set()))
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		result.Strengths[i] = strength
	}

	best := result.Strengths[0]
	for _, s := range result.Strengths[1:] {
		if s.Beats(best) {
			best = s
		}
	}
	for i, s := range result.Strengths {
		if s == best {
			result.Winners = append(result.Winners, i)
		}
	}

	return result, nil
}
