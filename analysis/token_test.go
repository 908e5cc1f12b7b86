package analysis

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rangeodds/poker"
)

func TestRangeTokenCardinalities(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		token RangeToken
		want  int
	}{
		{name: "suited", token: RangeToken{High: poker.Ace, Kicker: poker.King, Suited: true}, want: 4},
		{name: "offsuit", token: RangeToken{High: poker.Ace, Kicker: poker.King}, want: 12},
		{name: "pocket pair", token: RangeToken{High: poker.Queen, Kicker: poker.Queen}, want: 6},
		{name: "pocket pair ignores suited flag", token: RangeToken{High: poker.Queen, Kicker: poker.Queen, Suited: true}, want: 6},
		{name: "low suited", token: RangeToken{High: poker.Three, Kicker: poker.Two, Suited: true}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combos := tt.token.Combinations()
			require.Len(t, combos, tt.want)

			// All combinations are distinct.
			seen := map[poker.CardPair]bool{}
			for _, pair := range combos {
				assert.False(t, seen[pair], "duplicate combination %s", pair)
				seen[pair] = true
			}
		})
	}
}

func TestRangeTokenCombinationContents(t *testing.T) {
	t.Parallel()

	suited := RangeToken{High: poker.Ace, Kicker: poker.King, Suited: true}
	for _, pair := range suited.Combinations() {
		assert.True(t, pair.Suited(), "%s should be suited", pair)
		assert.Equal(t, poker.Ace, pair.First().Rank)
		assert.Equal(t, poker.King, pair.Second().Rank)
	}

	offsuit := RangeToken{High: poker.Ace, Kicker: poker.King}
	for _, pair := range offsuit.Combinations() {
		assert.False(t, pair.Suited(), "%s should be offsuit", pair)
	}

	pocket := RangeToken{High: poker.Eight, Kicker: poker.Eight}
	for _, pair := range pocket.Combinations() {
		assert.Equal(t, poker.Eight, pair.First().Rank)
		assert.Equal(t, poker.Eight, pair.Second().Rank)
	}
}

func TestRangeTokenMemoization(t *testing.T) {
	t.Parallel()
	token := RangeToken{High: poker.Jack, Kicker: poker.Ten, Suited: true}

	first := token.Combinations()
	second := token.Combinations()
	// The cached slice is shared between calls.
	require.Len(t, second, len(first))
	assert.Same(t, &first[0], &second[0])
}

func TestRangeTokenConcurrentFirstUse(t *testing.T) {
	t.Parallel()
	// Distinct per-test token so the cache is actually cold.
	token := RangeToken{High: poker.Nine, Kicker: poker.Four, Suited: true}

	var wg sync.WaitGroup
	results := make([][]poker.CardPair, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = token.Combinations()
		}()
	}
	wg.Wait()

	for _, combos := range results {
		assert.Equal(t, results[0], combos)
	}
}

func TestRangeTokenString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "AKs", RangeToken{High: poker.Ace, Kicker: poker.King, Suited: true}.String())
	assert.Equal(t, "AKo", RangeToken{High: poker.Ace, Kicker: poker.King}.String())
	assert.Equal(t, "TT", RangeToken{High: poker.Ten, Kicker: poker.Ten}.String())
}
