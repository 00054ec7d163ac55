package ga_test

import (
	"context"
	"testing"

	"github.com/evocore/evo/chromosome"
	"github.com/evocore/evo/dna"
	"github.com/evocore/evo/entity"
	"github.com/evocore/evo/ga"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// sumBlueprint scores an entity by the sum of its single int chromosome's
// genes; deterministic and cheap, so tests can reason about exact fitness
// ordering after survival.
type sumBlueprint struct {
	length, min, max int
}

func (b *sumBlueprint) CreateDNA() (*dna.DNA, error) {
	d := dna.New()
	if err := d.Add("genes", chromosome.NewInt(b.length, b.min, b.max)); err != nil {
		return nil, err
	}
	return d, nil
}

func (b *sumBlueprint) LoadFromDNA(d *dna.DNA) (any, error) {
	return d, nil
}

func (b *sumBlueprint) EvaluateFitness(phenotype any) (float64, error) {
	d := phenotype.(*dna.DNA)
	c, _ := d.Get("genes")
	ic := c.(*chromosome.IntChromosome)
	sum := 0.0
	for i := 0; i < ic.Len(); i++ {
		g, _ := ic.Get(i)
		sum += float64(g)
	}
	return sum, nil
}

// everyPairSelectTwo pairs the original entities in disjoint consecutive
// pairs (0,1), (2,3), ..., once each generation — enough determinism for assertions without needing a real
// selection strategy from ga/select.
type everyPairSelectTwo struct {
	pop *ga.Population
	i   int
}

func (s *everyPairSelectTwo) Init(p *ga.Population) { s.pop = p; s.i = 0 }
func (s *everyPairSelectTwo) Next() (mother, father *entity.Entity, done bool) {
	if s.i+1 >= s.pop.OriginalCount() {
		return nil, nil, true
	}
	mother = s.pop.At(s.i)
	father = s.pop.At(s.i + 1)
	s.i += 2
	return mother, father, false
}

type noopCrossover struct{}

func (noopCrossover) Cross(mother, father, son, daughter *dna.DNA) error { return nil }

func TestEvolveRunsToMaxGenerations(t *testing.T) {
	settings := ga.DefaultSettings()
	settings.StableSize = 6
	settings.MaxGenerations = 5
	settings.CrossoverRatio = 1
	settings.MutationRatio = 0
	settings.SelectTwo = &everyPairSelectTwo{}
	settings.Crossover = noopCrossover{}

	pop, err := ga.NewPopulation(&sumBlueprint{length: 4, min: -5, max: 5}, settings)
	require.NoError(t, err)

	require.NoError(t, pop.Evolve(context.Background()))
	require.Equal(t, 5, pop.Generation())
	require.Equal(t, settings.StableSize, pop.Len())
}

func TestSurvivalCullsToStableSizeByFitness(t *testing.T) {
	settings := ga.DefaultSettings()
	settings.StableSize = 3
	settings.MaxGenerations = 1
	settings.CrossoverRatio = 0
	settings.MutationRatio = 0

	pop, err := ga.NewPopulation(&sumBlueprint{length: 2, min: 0, max: 10}, settings)
	require.NoError(t, err)
	require.NoError(t, pop.Evolve(context.Background()))

	require.Equal(t, 3, pop.Len())
	prev := pop.At(0).Fitness()
	for i := 1; i < pop.Len(); i++ {
		require.LessOrEqual(t, pop.At(i).Fitness(), prev)
		prev = pop.At(i).Fitness()
	}
}

func TestEvolveRespectsCancellation(t *testing.T) {
	settings := ga.DefaultSettings()
	settings.StableSize = 4
	settings.SteadyState = true
	settings.CrossoverRatio = 0
	settings.MutationRatio = 0

	pop, err := ga.NewPopulation(&sumBlueprint{length: 2, min: 0, max: 3}, settings)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = pop.Evolve(ctx)
	require.Error(t, err)
}

func TestMigrationPhaseDropsSelfLoop(t *testing.T) {
	settings := ga.DefaultSettings()
	settings.StableSize = 2
	settings.MaxGenerations = 1
	settings.CrossoverRatio = 0
	settings.MutationRatio = 0

	pop, err := ga.NewPopulation(&sumBlueprint{length: 1, min: 0, max: 1}, settings)
	require.NoError(t, err)

	pop.Receive(ga.Migrant{From: pop.IslandID(), Entity: entity.New(&sumBlueprint{})})
	require.NoError(t, pop.Evolve(context.Background()))
	require.Equal(t, settings.StableSize, pop.Len())
}

func TestMigrationPhaseAcceptsForeignEntity(t *testing.T) {
	settings := ga.DefaultSettings()
	settings.StableSize = 2
	settings.MaxGenerations = 1
	settings.CrossoverRatio = 0
	settings.MutationRatio = 0

	pop, err := ga.NewPopulation(&sumBlueprint{length: 1, min: 0, max: 1}, settings)
	require.NoError(t, err)

	immigrant := entity.New(&sumBlueprint{length: 1, min: 0, max: 1})
	require.NoError(t, immigrant.InitEntity())
	require.NoError(t, immigrant.LoadEntity())
	_, err = immigrant.EnsureFitness()
	require.NoError(t, err)

	pop.Receive(ga.Migrant{From: uuid.New(), Entity: immigrant})
	require.NoError(t, pop.Evolve(context.Background()))
	// migration runs after the survival cull, so the accepted immigrant sits
	// in the live slice on top of the StableSize survivors until the next
	// generation's cull trims the population back.
	require.Equal(t, settings.StableSize+1, pop.Len())
	require.NoError(t, pop.Evolve(context.Background()))
	require.LessOrEqual(t, pop.Len(), settings.StableSize)
}

func TestNewParallelPopulationMatchesSequential(t *testing.T) {
	makeSettings := func() ga.Settings {
		s := ga.DefaultSettings()
		s.StableSize = 6
		s.MaxGenerations = 3
		s.CrossoverRatio = 1
		s.MutationRatio = 0
		s.SelectTwo = &everyPairSelectTwo{}
		s.Crossover = noopCrossover{}
		return s
	}

	seq, err := ga.NewPopulation(&sumBlueprint{length: 3, min: 0, max: 9}, makeSettings())
	require.NoError(t, err)
	require.NoError(t, seq.Evolve(context.Background()))

	par, err := ga.NewParallelPopulation(&sumBlueprint{length: 3, min: 0, max: 9}, ga.ParallelSettings{Settings: makeSettings(), ThreadCount: 2})
	require.NoError(t, err)
	require.NoError(t, par.Evolve(context.Background()))

	require.Equal(t, seq.Len(), par.Len())
	require.Equal(t, seq.Generation(), par.Generation())
}
