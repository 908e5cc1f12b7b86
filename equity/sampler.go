package equity

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/rangeodds/poker"
)

// Deal is one complete sampled matchup: exactly five community cards
// and one pair per player, all pairwise disjoint.
type Deal struct {
	Community poker.CardSet
	Pairs     []poker.CardPair
}

// Sample draws one complete, collision-free deal. Players are assigned
// in most-constrained-first order: each draws pairs uniformly without
// replacement from its candidate pool until one fits the working deck,
// then the community is filled to five cards from what remains. The
// random source is caller-supplied so runs are reproducible.
//
// If any player's pool empties before a fitting pair is found the
// whole attempt fails with ErrNoPossibleMatchup.
func (m *Matchup) Sample(rng *rand.Rand) (*Deal, error) {
	deck := poker.FullCardSet().RemovedAll(m.community)
	pairs := make([]poker.CardPair, len(m.domains))

	for _, player := range m.order {
		pair, ok := drawPair(m.domains[player], deck, rng)
		if !ok {
			return nil, fmt.Errorf("player %d: %w", player, ErrNoPossibleMatchup)
		}
		pairs[player] = pair
		deck = deck.RemovedAll(pair.Set())
	}

	community := m.community
	for community.Len() < 5 {
		card, ok := drawCard(deck, rng)
		if !ok {
			return nil, fmt.Errorf("community: %w", ErrNoPossibleMatchup)
		}
		community = community.Added(card)
		deck = deck.Removed(card)
	}

	return &Deal{Community: community, Pairs: pairs}, nil
}

// drawPair samples without replacement from a copy of the candidate
// pool, swap-removing each rejected candidate, and accepts the first
// pair whose both cards are still in the deck.
func drawPair(domain []poker.CardPair, deck poker.CardSet, rng *rand.Rand) (poker.CardPair, bool) {
	pool := append([]poker.CardPair(nil), domain...)
	for len(pool) > 0 {
		i := rng.IntN(len(pool))
		pair := pool[i]
		if deck.ContainsAll(pair.Set()) {
			return pair, true
		}
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return poker.CardPair{}, false
}

// drawCard picks a uniformly random card from the set.
func drawCard(deck poker.CardSet, rng *rand.Rand) (poker.Card, bool) {
	n := deck.Len()
	if n == 0 {
		return poker.Card{}, false
	}

	skip := rng.IntN(n)
	for card := range deck.All() {
		if skip == 0 {
			return card, true
		}
		skip--
	}
	return poker.Card{}, false
}
