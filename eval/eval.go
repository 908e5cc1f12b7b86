// Package eval supplies the hand-strength capability consumed by the
// equity package. Ranking itself is delegated to
// github.com/paulhankin/poker; this package only adapts card
// conventions and the comparison direction at the boundary.
package eval

import (
	"fmt"

	hankin "github.com/paulhankin/poker"

	"github.com/lox/rangeodds/equity"
	"github.com/lox/rangeodds/poker"
)

// SevenCard evaluates the best five-card hand from a five or seven
// card candidate set. It satisfies equity.Evaluator.
type SevenCard struct{}

var _ equity.Evaluator = SevenCard{}

// BestHand returns the candidate set's strength. The underlying
// library scores higher-is-stronger; the score is negated here to the
// smaller-is-stronger direction equity.Strength fixes.
func (SevenCard) BestHand(cards poker.CardSet) (equity.Strength, error) {
	switch cards.Len() {
	case 7:
		var hand [7]hankin.Card
		if err := fillHand(hand[:], cards); err != nil {
			return 0, err
		}
		return equity.Strength(-int32(hankin.Eval7(&hand))), nil
	case 5:
		var hand [5]hankin.Card
		if err := fillHand(hand[:], cards); err != nil {
			return 0, err
		}
		return equity.Strength(-int32(hankin.Eval5(&hand))), nil
	default:
		return 0, fmt.Errorf("cannot evaluate %d cards, want 5 or 7", cards.Len())
	}
}

// Describe returns a human-readable description of the best hand in
// the candidate set, e.g. "full house".
func Describe(cards poker.CardSet) (string, error) {
	hand := make([]hankin.Card, 0, cards.Len())
	for c := range cards.All() {
		converted, err := convertCard(c)
		if err != nil {
			return "", err
		}
		hand = append(hand, converted)
	}
	return hankin.Describe(hand)
}

func fillHand(out []hankin.Card, cards poker.CardSet) error {
	i := 0
	for c := range cards.All() {
		converted, err := convertCard(c)
		if err != nil {
			return err
		}
		out[i] = converted
		i++
	}
	return nil
}

// convertCard maps our conventions (Spades=0..Clubs=3, ranks 2-14) to
// the library's (Club..Spade, ace=1).
func convertCard(c poker.Card) (hankin.Card, error) {
	var none hankin.Card

	var suit hankin.Suit
	switch c.Suit {
	case poker.Clubs:
		suit = hankin.Club
	case poker.Diamonds:
		suit = hankin.Diamond
	case poker.Hearts:
		suit = hankin.Heart
	case poker.Spades:
		suit = hankin.Spade
	default:
		return none, fmt.Errorf("invalid suit %d", c.Suit)
	}

	rank := hankin.Rank(c.Rank)
	if c.Rank == poker.Ace {
		rank = 1
	}

	card, err := hankin.MakeCard(suit, rank)
	if err != nil {
		return none, fmt.Errorf("convert %s: %w", c, err)
	}
	return card, nil
}
