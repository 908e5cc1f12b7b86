package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rangeodds/internal/randutil"
)

func TestSimulationProducesOutcomes(t *testing.T) {
	t.Parallel()
	m := mustMatchup(t, "", "AsAh", "8d8h")
	sim := NewSimulation(m, rankCountEvaluator{}, randutil.New(1))

	for range 100 {
		result, err := sim.Next()
		require.NoError(t, err)
		require.NotEmpty(t, result.Winners)
		assert.Equal(t, 5, result.Community.Len())
	}
	assert.NoError(t, sim.Err())
}

func TestSimulationTerminalError(t *testing.T) {
	t.Parallel()
	m := mustMatchup(t, "3c6dAs", "AA", "AKs", "AJo+")
	sim := NewSimulation(m, rankCountEvaluator{}, randutil.New(1))

	_, err := sim.Next()
	require.ErrorIs(t, err, ErrNoPossibleMatchup)

	// The error sticks: the sequence never recovers.
	_, again := sim.Next()
	assert.Equal(t, err, again)
	assert.Equal(t, err, sim.Err())
}

func TestSimulationEvaluatorErrorIsTerminal(t *testing.T) {
	t.Parallel()
	m := mustMatchup(t, "", "AsAh")
	sim := NewSimulation(m, failingEvaluator{}, randutil.New(1))

	_, err := sim.Next()
	require.Error(t, err)
	_, again := sim.Next()
	assert.Equal(t, err, again)
}

func TestSimulationResultsSequence(t *testing.T) {
	t.Parallel()
	m := mustMatchup(t, "", "AsAh", "8d8h")
	sim := NewSimulation(m, rankCountEvaluator{}, randutil.New(9))

	count := 0
	for result, err := range sim.Results() {
		require.NoError(t, err)
		require.NotNil(t, result)
		count++
		if count == 50 {
			break
		}
	}
	assert.Equal(t, 50, count)
}

func TestSimulationResultsStopsAfterError(t *testing.T) {
	t.Parallel()
	m := mustMatchup(t, "3c6dAs", "AA", "AKs", "AJo+")
	sim := NewSimulation(m, rankCountEvaluator{}, randutil.New(1))

	var seenErr error
	steps := 0
	for result, err := range sim.Results() {
		steps++
		if err != nil {
			seenErr = err
			assert.Nil(t, result)
		}
	}
	assert.Equal(t, 1, steps, "sequence must stop after the terminal error")
	require.ErrorIs(t, seenErr, ErrNoPossibleMatchup)
}

func TestSimulationReproducible(t *testing.T) {
	t.Parallel()
	m := mustMatchup(t, "3c6dTh", "AA,KK", "QQ+,AKs")

	run := func(seed int64) []*Result {
		sim := NewSimulation(m, rankCountEvaluator{}, randutil.New(seed))
		var results []*Result
		for range 20 {
			r, err := sim.Next()
			require.NoError(t, err)
			results = append(results, r)
		}
		return results
	}

	first := run(123)
	second := run(123)
	for i := range first {
		assert.Equal(t, first[i].Community, second[i].Community)
		assert.Equal(t, first[i].Pairs, second[i].Pairs)
		assert.Equal(t, first[i].Winners, second[i].Winners)
	}
}
