package poker

import "fmt"

// CardPair is an exactly-two-card value, typically a player's hole
// cards. It is deliberately not a CardSet: the two-card invariant and
// canonical ordering hold by construction, and Set converts to the
// general set view when set operations are needed.
//
// Canonical order: the higher rank comes first; on equal ranks, the
// lower suit index comes first.
type CardPair struct {
	first, second Card
}

// NewCardPair builds a pair from two distinct cards, normalising them
// into canonical order.
func NewCardPair(a, b Card) (CardPair, error) {
	if a == b {
		return CardPair{}, fmt.Errorf("card pair requires two distinct cards, got %s twice", a)
	}
	if b.Rank > a.Rank || (b.Rank == a.Rank && b.Suit < a.Suit) {
		a, b = b, a
	}
	return CardPair{first: a, second: b}, nil
}

// ParseCardPair parses exactly two concatenated card tokens, e.g. "AsKd".
func ParseCardPair(s string) (CardPair, error) {
	cs, err := ParseCardSet(s)
	if err != nil {
		return CardPair{}, err
	}
	if cs.Len() != 2 {
		return CardPair{}, &ParseError{Input: s, Reason: fmt.Sprintf("card pair requires exactly 2 distinct cards, got %d", cs.Len())}
	}
	cards := cs.Cards()
	return NewCardPair(cards[0], cards[1])
}

// MustParseCardPair parses a pair and panics on error (for tests).
func MustParseCardPair(s string) CardPair {
	p, err := ParseCardPair(s)
	if err != nil {
		panic(err)
	}
	return p
}

// First returns the canonically first card (higher rank, or lower suit
// index on a rank tie).
func (p CardPair) First() Card {
	return p.first
}

// Second returns the canonically second card.
func (p CardPair) Second() Card {
	return p.second
}

// Set returns the pair as a CardSet view.
func (p CardPair) Set() CardSet {
	return NewCardSet(p.first, p.second)
}

// Contains reports whether the pair includes the card.
func (p CardPair) Contains(c Card) bool {
	return p.first == c || p.second == c
}

// Overlaps reports whether either card of the pair is in the set.
func (p CardPair) Overlaps(cs CardSet) bool {
	return p.Set().Overlaps(cs)
}

// Suited reports whether both cards share a suit.
func (p CardPair) Suited() bool {
	return p.first.Suit == p.second.Suit
}

// String returns the two tokens in canonical order, e.g. "AsKd", "5s5h".
func (p CardPair) String() string {
	return p.first.String() + p.second.String()
}
