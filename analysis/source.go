package analysis

import "github.com/lox/rangeodds/poker"

// CombinationSource produces the set of concrete hole-card pairs a
// notation element denotes. RangeToken and HoleCards both satisfy it,
// so a player's range can mix shorthand tokens and literal pairs.
type CombinationSource interface {
	Combinations() []poker.CardPair
}

// HoleCards wraps one literal pair as a CombinationSource with a
// single-element domain.
type HoleCards struct {
	pair poker.CardPair
}

// NewHoleCards wraps a concrete pair.
func NewHoleCards(pair poker.CardPair) HoleCards {
	return HoleCards{pair: pair}
}

// ParseHoleCards parses a literal four-character pair such as "AsAh".
func ParseHoleCards(s string) (HoleCards, error) {
	pair, err := poker.ParseCardPair(s)
	if err != nil {
		return HoleCards{}, err
	}
	return HoleCards{pair: pair}, nil
}

// Pair returns the wrapped pair.
func (h HoleCards) Pair() poker.CardPair {
	return h.pair
}

// Combinations returns the single pair.
func (h HoleCards) Combinations() []poker.CardPair {
	return []poker.CardPair{h.pair}
}

func (h HoleCards) String() string {
	return h.pair.String()
}

// Union merges the combinations of all sources into one deduplicated
// slice, preserving first-seen order.
func Union(sources ...CombinationSource) []poker.CardPair {
	seen := make(map[poker.CardPair]struct{})
	var combos []poker.CardPair
	for _, src := range sources {
		for _, pair := range src.Combinations() {
			if _, dup := seen[pair]; dup {
				continue
			}
			seen[pair] = struct{}{}
			combos = append(combos, pair)
		}
	}
	return combos
}
