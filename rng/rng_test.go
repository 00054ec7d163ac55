package rng_test

import (
	"testing"

	"github.com/evocore/evo/rng"
	"github.com/stretchr/testify/require"
)

func TestNextExceptNeverReturnsExcluded(t *testing.T) {
	s := rng.New(1)
	excluded := []int{2, 5, 7}
	const max = 10
	for i := 0; i < 10000; i++ {
		v := s.NextExcept(max, excluded)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, max)
		for _, e := range excluded {
			require.NotEqual(t, e, v)
		}
	}
}

func TestNextExceptUniform(t *testing.T) {
	s := rng.New(42)
	excluded := []int{1}
	const max = 4
	counts := map[int]int{}
	const trials = 200000
	for i := 0; i < trials; i++ {
		counts[s.NextExcept(max, excluded)]++
	}
	require.Len(t, counts, max-len(excluded))
	for v, c := range counts {
		frac := float64(c) / float64(trials)
		require.InDeltaf(t, 1.0/float64(max-len(excluded)), frac, 0.02, "value %d", v)
	}
}

func TestNextExceptPanicsWhenNothingLeft(t *testing.T) {
	s := rng.New(1)
	require.Panics(t, func() {
		s.NextExcept(2, []int{0, 1})
	})
}

func TestRandomProbBounds(t *testing.T) {
	s := rng.New(7)
	require.Panics(t, func() { s.RandomProb(-0.1) })
	require.Panics(t, func() { s.RandomProb(1.1) })
}

func TestRandomProbDistribution(t *testing.T) {
	s := rng.New(3)
	var hits int
	const trials = 50000
	for i := 0; i < trials; i++ {
		if s.RandomProb(0.3) {
			hits++
		}
	}
	frac := float64(hits) / float64(trials)
	require.InDelta(t, 0.3, frac, 0.02)
}

func TestNextIntRange(t *testing.T) {
	s := rng.New(9)
	for i := 0; i < 1000; i++ {
		v := s.NextIntRange(5, 10)
		require.GreaterOrEqual(t, v, 5)
		require.Less(t, v, 10)
	}
}
