package poker

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// CardSet is an immutable set of cards represented as a bitmask: bit i
// is set iff the card with Index i is present. Bits 52-63 are always
// zero. All operations return new values; a CardSet is never mutated.
type CardSet uint64

const fullDeckMask CardSet = (1 << 52) - 1

// EmptyCardSet returns the set with no cards.
func EmptyCardSet() CardSet {
	return 0
}

// FullCardSet returns the set of all 52 cards.
func FullCardSet() CardSet {
	return fullDeckMask
}

// NewCardSet builds a set from the given cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs |= 1 << c.Index()
	}
	return cs
}

// ParseError reports a card-set string that could not be parsed. It
// carries the complete original input, not just the offending chunk.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse card set %q: %s", e.Input, e.Reason)
}

// ParseCardSet parses a string of concatenated two-character card
// tokens, e.g. "3c6dAs". Spaces are ignored. Any malformed chunk fails
// the whole parse with a *ParseError naming the original string.
func ParseCardSet(s string) (CardSet, error) {
	compact := strings.ReplaceAll(s, " ", "")
	if len(compact)%2 != 0 {
		return 0, &ParseError{Input: s, Reason: "odd number of characters"}
	}

	var cs CardSet
	for i := 0; i < len(compact); i += 2 {
		card, err := ParseCard(compact[i : i+2])
		if err != nil {
			return 0, &ParseError{Input: s, Reason: err.Error()}
		}
		cs = cs.Added(card)
	}
	return cs, nil
}

// MustParseCardSet parses a card-set string and panics on error (for tests).
func MustParseCardSet(s string) CardSet {
	cs, err := ParseCardSet(s)
	if err != nil {
		panic(err)
	}
	return cs
}

// Contains reports whether the card is in the set.
func (cs CardSet) Contains(c Card) bool {
	return cs&(1<<c.Index()) != 0
}

// ContainsAll reports whether every card in other is in the set.
func (cs CardSet) ContainsAll(other CardSet) bool {
	return cs&other == other
}

// Added returns the set with the card added.
func (cs CardSet) Added(c Card) CardSet {
	return cs | 1<<c.Index()
}

// AddedAll returns the union of the two sets.
func (cs CardSet) AddedAll(other CardSet) CardSet {
	return cs | other
}

// Removed returns the set with the card removed.
func (cs CardSet) Removed(c Card) CardSet {
	return cs &^ (1 << c.Index())
}

// RemovedAll returns the difference cs minus other.
func (cs CardSet) RemovedAll(other CardSet) CardSet {
	return cs &^ other
}

// Intersect returns the intersection of the two sets.
func (cs CardSet) Intersect(other CardSet) CardSet {
	return cs & other
}

// Overlaps reports whether the two sets share any card.
func (cs CardSet) Overlaps(other CardSet) bool {
	return cs&other != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// All returns a lazy, restartable sequence of the cards in ascending
// bit-index order. Each pull extracts the lowest set bit and clears it;
// re-ranging over the same set always starts fresh.
func (cs CardSet) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		mask := uint64(cs)
		for mask != 0 {
			lowest := mask & -mask
			if !yield(CardAt(bits.TrailingZeros64(lowest))) {
				return
			}
			mask &= mask - 1
		}
	}
}

// Cards returns the cards in ascending bit-index order as a slice.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Len())
	for c := range cs.All() {
		cards = append(cards, c)
	}
	return cards
}

// String returns the concatenated card tokens in ascending bit-index order.
func (cs CardSet) String() string {
	var sb strings.Builder
	sb.Grow(cs.Len() * 2)
	for c := range cs.All() {
		sb.WriteString(c.String())
	}
	return sb.String()
}
