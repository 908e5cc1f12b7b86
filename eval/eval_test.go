package eval

import (
	"testing"

	hankin "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rangeodds/equity"
	"github.com/lox/rangeodds/poker"
)

func strength(t *testing.T, cards string) equity.Strength {
	t.Helper()
	s, err := SevenCard{}.BestHand(poker.MustParseCardSet(cards))
	require.NoError(t, err)
	return s
}

func TestBestHandOrdering(t *testing.T) {
	t.Parallel()
	// Shared board, different hole cards. Listed strongest first.
	board := "2c7d9hTsKd"
	hands := []struct {
		name string
		hole string
	}{
		{name: "three of a kind", hole: "9s9d"},
		{name: "two pair", hole: "KsTd"},
		{name: "pair of kings", hole: "Kh3s"},
		{name: "ace high", hole: "AhQs"},
	}

	var prev equity.Strength
	for i, h := range hands {
		s := strength(t, board+h.hole)
		if i > 0 {
			assert.True(t, s > prev, "%s should be weaker than %s", h.name, hands[i-1].name)
		}
		prev = s
	}
}

func TestBestHandFlushBeatsStraight(t *testing.T) {
	t.Parallel()
	flush := strength(t, "2s5s8sJsKs3c7d")
	straight := strength(t, "4c5d6h7s8c2s9d")
	assert.True(t, flush.Beats(straight))
}

func TestBestHandWheelStraight(t *testing.T) {
	t.Parallel()
	// A-2-3-4-5 plays as a straight, not ace-high.
	wheel := strength(t, "Ah2c3d4s5h9cJd")
	pair := strength(t, "AhAc3d5s8h9cJd")
	assert.True(t, wheel.Beats(pair))
}

func TestBestHandTies(t *testing.T) {
	t.Parallel()
	// Board plays for both: identical strengths.
	a := strength(t, "2c7d9hTsKs" + "3s4d")
	b := strength(t, "2c7d9hTsKs" + "3h4c")
	assert.Equal(t, a, b)
}

func TestBestHandFiveCards(t *testing.T) {
	t.Parallel()
	quads := strength(t, "9s9h9d9c2s")
	highCard := strength(t, "As3d7h9cJs")
	assert.True(t, quads.Beats(highCard))
}

func TestBestHandRejectsOtherSizes(t *testing.T) {
	t.Parallel()
	for _, cards := range []string{"", "AsKd", "As2c3c4c5c6c"} {
		cs := poker.MustParseCardSet(cards)
		_, err := SevenCard{}.BestHand(cs)
		require.Error(t, err, "%d cards", cs.Len())
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	desc, err := Describe(poker.MustParseCardSet("9s9h9d9c2s"))
	require.NoError(t, err)
	assert.NotEmpty(t, desc)
}

func TestConvertCardCoversDeck(t *testing.T) {
	t.Parallel()
	seen := map[hankin.Card]bool{}
	for card := range poker.FullCardSet().All() {
		converted, err := convertCard(card)
		require.NoError(t, err, "card %s", card)
		assert.False(t, seen[converted], "duplicate conversion for %s", card)
		seen[converted] = true
	}
	assert.Len(t, seen, 52)
}
