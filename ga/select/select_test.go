package sel_test

import (
	"context"
	"testing"

	"github.com/evocore/evo/chromosome"
	"github.com/evocore/evo/dna"
	"github.com/evocore/evo/entity"
	"github.com/evocore/evo/ga"
	"github.com/evocore/evo/ga/cross"
	sel "github.com/evocore/evo/ga/select"
	"github.com/stretchr/testify/require"
)

type rankBlueprint struct{ rank int }

func (b *rankBlueprint) CreateDNA() (*dna.DNA, error) {
	d := dna.New()
	_ = d.Add("g", chromosome.NewInt(1, 0, 1))
	return d, nil
}
func (b *rankBlueprint) LoadFromDNA(d *dna.DNA) (any, error) { return b.rank, nil }
func (b *rankBlueprint) EvaluateFitness(p any) (float64, error) {
	return float64(p.(int)), nil
}

// newRankedPopulation builds a GenesisUser population with one entity per
// rank, then runs a single no-op generation (crossover gated off) so
// Population.OriginalCount reflects the seeded entities — the only way to
// prime it without reaching into unexported state.
func newRankedPopulation(t *testing.T, ranks []int) *ga.Population {
	t.Helper()
	return newRankedPopulationWithCrossoverRatio(t, ranks, 0)
}

// newRankedPopulationWithCrossoverRatio is newRankedPopulation but lets a
// test configure a nonzero CrossoverRatio, so selectors that read it back
// via Population.CrossoverRatio (RandomTwo's draw budget, RandomRank's
// per-step pairing probability) have something to use. A harmless SinglePoint/EveryTwo
// pairing is wired in so the priming generation never errors if the gate
// happens to fire during the seed pass itself.
func newRankedPopulationWithCrossoverRatio(t *testing.T, ranks []int, crossoverRatio float64) *ga.Population {
	t.Helper()
	settings := ga.DefaultSettings()
	settings.StableSize = len(ranks)
	settings.Genesis = ga.GenesisUser
	settings.CrossoverRatio = crossoverRatio
	settings.MutationRatio = 0
	settings.MaxGenerations = 1
	settings.Crossover = cross.SinglePoint{}
	settings.SelectTwo = sel.NewEveryTwo()

	pop, err := ga.NewPopulation(&rankBlueprint{}, settings)
	require.NoError(t, err)

	for _, r := range ranks {
		e := entity.New(&rankBlueprint{rank: r})
		require.NoError(t, e.InitEntity())
		require.NoError(t, e.LoadEntity())
		_, err := e.EnsureFitness()
		require.NoError(t, err)
		pop.AddEntity(e)
	}

	require.NoError(t, pop.Evolve(context.Background()))
	return pop
}

func TestEveryVisitsEachOriginalOnce(t *testing.T) {
	pop := newRankedPopulation(t, []int{1, 2, 3, 4})

	every := sel.NewEvery()
	every.Init(pop)
	seen := 0
	for {
		_, done := every.Next()
		if done {
			break
		}
		seen++
	}
	require.Equal(t, 4, seen)
}

func TestRandomRankStaysWithinOriginalCount(t *testing.T) {
	pop := newRankedPopulationWithCrossoverRatio(t, []int{5, 4, 3, 2, 1}, 1)

	rr := sel.NewRandomRank()
	rr.Init(pop)
	for i := 0; i < 50; i++ {
		mother, father, done := rr.Next()
		if done {
			break
		}
		require.NotNil(t, mother)
		require.NotNil(t, father)
	}
}

// S2 — selector iteration count: a population of 10 with CrossoverRatio=0.5
// must draw exactly 5 pairs via RandomTwo before reporting done.
func TestRandomTwoDrawCountMatchesOriginalCountTimesRatio(t *testing.T) {
	pop := newRankedPopulationWithCrossoverRatio(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.5)

	rt := sel.NewRandomTwo()
	rt.Init(pop)
	pairs := 0
	for {
		_, _, done := rt.NextTwo()
		if done {
			break
		}
		pairs++
	}
	require.Equal(t, 5, pairs)
}

func TestBestOfTwoReturnsFitterCandidate(t *testing.T) {
	pop := newRankedPopulation(t, []int{0, 100})

	b := sel.NewBestOfTwo(20)
	b.Init(pop)
	for i := 0; i < 20; i++ {
		e, done := b.Next()
		if done {
			break
		}
		require.Equal(t, 100.0, e.Fitness())
	}
}

func TestRouletteAlwaysDrawsAnEntity(t *testing.T) {
	pop := newRankedPopulation(t, []int{0, 0, 0, 100})

	r := sel.NewRoulette(50)
	r.Init(pop)
	for i := 0; i < 50; i++ {
		e, done := r.Next()
		if done {
			break
		}
		require.NotNil(t, e)
	}
}

func TestRandomTwoNeverPairsEntityWithItself(t *testing.T) {
	pop := newRankedPopulationWithCrossoverRatio(t, []int{1, 2, 3, 4, 5}, 1)

	rt := sel.NewRandomTwo()
	rt.Init(pop)
	for i := 0; i < 50; i++ {
		mother, father, done := rt.NextTwo()
		if done {
			break
		}
		require.NotEqual(t, mother.ID(), father.ID())
	}
}
