// Package poker provides the core card, card-set and card-pair values
// used by the range expansion and equity simulation packages.
package poker

import "fmt"

// Suit represents a card suit. The numeric order is the tie-break order
// used when displaying pairs of equal rank.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the single-character suit token ("s", "h", "d", "c").
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Rank represents a card rank, deuce through ace.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank token.
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return string(rune('0' + int(r)))
		}
		return "?"
	}
}

// Card is an immutable playing card identified by rank and suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Index maps the card to its bit position 0-51. The mapping is a
// bijection: consecutive indices walk the suits within a rank.
func (c Card) Index() int {
	return int(c.Rank-Two)*4 + int(c.Suit)
}

// CardAt is the inverse of Index. It panics on indices outside 0-51.
func CardAt(index int) Card {
	if index < 0 || index > 51 {
		panic(fmt.Sprintf("card index out of range: %d", index))
	}
	return Card{Rank: Two + Rank(index/4), Suit: Suit(index % 4)}
}

// String returns the two-character token (e.g., "As", "2c").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a two-character token like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card token %q: must be two characters", s)
	}

	rank, ok := parseRank(s[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid card token %q: unknown rank '%c'", s, s[0])
	}
	suit, ok := parseSuit(s[1])
	if !ok {
		return Card{}, fmt.Errorf("invalid card token %q: unknown suit '%c'", s, s[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card token and panics on error (for tests).
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	case '9':
		return Nine, true
	case '8':
		return Eight, true
	case '7':
		return Seven, true
	case '6':
		return Six, true
	case '5':
		return Five, true
	case '4':
		return Four, true
	case '3':
		return Three, true
	case '2':
		return Two, true
	default:
		return 0, false
	}
}

// ParseRank parses a single rank character ("2"-"9", "T", "J", "Q", "K", "A").
func ParseRank(c byte) (Rank, error) {
	rank, ok := parseRank(c)
	if !ok {
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
	return rank, nil
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	default:
		return 0, false
	}
}
