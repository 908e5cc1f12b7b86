// Package equity samples range-vs-range matchups and estimates
// showdown equity by repeated randomized deals.
package equity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/rangeodds/analysis"
	"github.com/lox/rangeodds/poker"
)

// ErrNoPossibleMatchup reports a sampling attempt that could not
// assign every player a non-conflicting pair given the community cards
// and the other players' picks. For structurally impossible inputs it
// occurs on every random seed.
var ErrNoPossibleMatchup = errors.New("no possible matchup")

// Matchup is one sampling request: known community cards plus each
// player's candidate-pair domain. It is immutable once constructed and
// is cheap enough to build per evaluation campaign.
type Matchup struct {
	community poker.CardSet
	domains   [][]poker.CardPair
	order     []int
}

// NewMatchup builds a matchup from known community cards (0-5) and one
// combination source per player, in table order.
func NewMatchup(community poker.CardSet, players ...analysis.CombinationSource) (*Matchup, error) {
	if n := community.Len(); n > 5 {
		return nil, fmt.Errorf("community has %d cards, at most 5 allowed", n)
	}
	if len(players) == 0 {
		return nil, errors.New("matchup requires at least one player")
	}

	domains := make([][]poker.CardPair, len(players))
	for i, src := range players {
		combos := src.Combinations()
		if len(combos) == 0 {
			return nil, fmt.Errorf("player %d has an empty candidate domain", i)
		}
		// Own copy: sources may hand out shared cached slices.
		domains[i] = append([]poker.CardPair(nil), combos...)
	}

	return &Matchup{
		community: community,
		domains:   domains,
		order:     samplingOrder(domains),
	}, nil
}

// Players returns the number of players in the matchup.
func (m *Matchup) Players() int {
	return len(m.domains)
}

// Community returns the known community cards.
func (m *Matchup) Community() poker.CardSet {
	return m.community
}

// Domain returns the candidate pairs of one player.
func (m *Matchup) Domain(player int) []poker.CardPair {
	return m.domains[player]
}

// samplingOrder sorts player indices into the three assignment tiers:
// forced single-pair domains first, tightly constrained domains (no
// larger than the player count) next, everyone else last. Resolving
// the narrowest domains first minimizes wasted draws, since a deferred
// narrow domain is the one most likely to be invalidated by other
// players' picks. Order within a tier is original table order.
func samplingOrder(domains [][]poker.CardPair) []int {
	order := make([]int, len(domains))
	for i := range order {
		order[i] = i
	}

	tier := func(i int) int {
		switch n := len(domains[i]); {
		case n == 1:
			return 0
		case n <= len(domains):
			return 1
		default:
			return 2
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		return tier(order[a]) < tier(order[b])
	})
	return order
}
