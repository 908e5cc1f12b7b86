// Package analysis provides hand range tokens, their expansion into
// concrete hole-card combinations, and the textual range grammar.
package analysis

import (
	"sync"

	"github.com/lox/rangeodds/poker"
)

// RangeToken is shorthand range notation in structural form: a high
// rank, a kicker rank and a suitedness flag. "AKs" is {Ace, King, true};
// "QQ" is {Queen, Queen, false}. Equal tokens expand to equal
// combination sets.
type RangeToken struct {
	High   poker.Rank
	Kicker poker.Rank
	Suited bool
}

// comboCache memoizes token expansions for the process lifetime. The
// key space is bounded (13 ranks x 13 ranks x 2 flags) so no eviction
// is needed. Expansion is deterministic and the cached slices are never
// mutated, so racing first-use computations of the same token are
// harmless: whichever result is published is correct.
var comboCache sync.Map

// Combinations returns the concrete CardPairs the token denotes:
// 6 for a pocket pair, 4 for a suited token, 12 for an offsuit token.
// The returned slice is shared and must not be modified; callers that
// need to reorder it must copy first.
func (t RangeToken) Combinations() []poker.CardPair {
	if cached, ok := comboCache.Load(t); ok {
		return cached.([]poker.CardPair)
	}

	combos := t.expand()
	actual, _ := comboCache.LoadOrStore(t, combos)
	return actual.([]poker.CardPair)
}

func (t RangeToken) expand() []poker.CardPair {
	// Pocket pairs first: suitedness is meaningless when the ranks
	// match, and two cards cannot share both rank and suit.
	if t.High == t.Kicker {
		combos := make([]poker.CardPair, 0, 6)
		for s1 := poker.Spades; s1 <= poker.Clubs; s1++ {
			for s2 := s1 + 1; s2 <= poker.Clubs; s2++ {
				combos = append(combos, mustPair(
					poker.NewCard(t.High, s1),
					poker.NewCard(t.High, s2),
				))
			}
		}
		return combos
	}

	if t.Suited {
		combos := make([]poker.CardPair, 0, 4)
		for s := poker.Spades; s <= poker.Clubs; s++ {
			combos = append(combos, mustPair(
				poker.NewCard(t.High, s),
				poker.NewCard(t.Kicker, s),
			))
		}
		return combos
	}

	combos := make([]poker.CardPair, 0, 12)
	for s1 := poker.Spades; s1 <= poker.Clubs; s1++ {
		for s2 := poker.Spades; s2 <= poker.Clubs; s2++ {
			if s1 == s2 {
				continue
			}
			combos = append(combos, mustPair(
				poker.NewCard(t.High, s1),
				poker.NewCard(t.Kicker, s2),
			))
		}
	}
	return combos
}

func mustPair(a, b poker.Card) poker.CardPair {
	p, err := poker.NewCardPair(a, b)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the token in range notation, e.g. "AKs", "QJo", "TT".
func (t RangeToken) String() string {
	if t.High == t.Kicker {
		return t.High.String() + t.Kicker.String()
	}
	suffix := "o"
	if t.Suited {
		suffix = "s"
	}
	return t.High.String() + t.Kicker.String() + suffix
}
