package ga

// Evolution selects how an adaption result is written back to the
// population (spec.md §4.8): Darwin skips adaption entirely; the Lamarck
// variants overwrite the entity's genotype with the adapted one; the
// Baldwin variants keep the original genotype and only overwrite its
// fitness with the adapted score. Parents/Children/All selects which slice
// of the generation's entities — the ones that existed before this
// generation's crossover, the ones crossover/mutation just produced, or
// both — the adaption operator is run against.
type Evolution int

const (
	Darwin Evolution = iota
	LamarckParents
	LamarckChildren
	LamarckAll
	BaldwinParents
	BaldwinChildren
	BaldwinAll
)

func (e Evolution) lamarck() bool {
	switch e {
	case LamarckParents, LamarckChildren, LamarckAll:
		return true
	default:
		return false
	}
}

func (e Evolution) active() bool { return e != Darwin }

// Elitism selects how a generation's original parents are treated before
// the survival cull (spec.md §4.8).
type Elitism int

const (
	// ElitismNone applies no special treatment; parents compete with
	// children on fitness alone.
	ElitismNone Elitism = iota
	// ParentsSurvive leaves every original parent in the pool alongside the
	// children; survival treats it like ElitismNone, so a parent keeps its
	// place only if its fitness ranks within StableSize.
	ParentsSurvive
	// OneParentSurvives discards every original parent except the one at
	// index 0 (the fittest parent once a previous survival phase has sorted
	// the list) before the cull; that parent still competes with the
	// children on fitness.
	OneParentSurvives
	// ParentsDie discards every original parent before the cull, so only
	// children can survive the generation.
	ParentsDie
	// RescoreParents forces every original parent's fitness to be
	// recomputed (rather than reused from a prior generation) before the
	// cull, in case the fitness function is non-stationary.
	RescoreParents
)

// Genesis selects how a Population seeds its initial entities (spec.md §6).
type Genesis int

const (
	// GenesisRandom initialises each entity's DNA and then seeds every
	// chromosome at random.
	GenesisRandom Genesis = iota
	// GenesisSoup initialises each entity's DNA and uses it as the
	// blueprint supplied it, without an additional random seed pass.
	GenesisSoup
	// GenesisUser expects the caller to populate the population via
	// AddEntity after construction; NewPopulation performs no seeding.
	GenesisUser
)

// Settings configures a Population (spec.md §6's PopulationSettings). The
// zero value is not ready for use — construct with DefaultSettings and
// override individual fields.
type Settings struct {
	// StableSize is the number of entities the population settles back to
	// after every generation's survival cull.
	StableSize int

	// MaxGenerations bounds Evolve when SteadyState is false.
	MaxGenerations int

	// SteadyState, when true, makes Evolve run until cancelled or until
	// the GenerationHandler returns false, ignoring MaxGenerations.
	SteadyState bool

	// EvolutionEventInterval is how many generations elapse between calls
	// to GenerationHandler. Zero means every generation.
	EvolutionEventInterval int

	// CrossoverRatio, MutationRatio, and MigrationRatio gate whether each
	// phase runs at all in a given generation (spec.md §4.5): a
	// rng.RandomProb(ratio) coin flip before the phase's selector loop.
	CrossoverRatio float64
	MutationRatio  float64
	MigrationRatio float64

	// SeedProbability is passed to dna.DNA.Seed during GenesisRandom.
	SeedProbability float64

	Genesis   Genesis
	Evolution Evolution
	Elitism   Elitism

	// MaxAdaptionIterations bounds each Adaption.Optimise call.
	MaxAdaptionIterations int

	// PoolCapacity bounds the free pool's buffered channel; entities
	// released past capacity are disposed instead of pooled.
	PoolCapacity int

	SelectOne         SelectOne
	SelectTwo         SelectTwo
	MigrationSelector MigrationSelector
	Crossover         Crossover
	Mutate            Mutate
	Adaption          Adaption

	// GenerationHandler is called every EvolutionEventInterval
	// generations; returning false stops Evolve cleanly.
	GenerationHandler func(generation int) bool
}

// DefaultSettings returns the spec.md §6 defaults.
func DefaultSettings() Settings {
	return Settings{
		StableSize:             100,
		MaxGenerations:         100,
		SteadyState:            false,
		EvolutionEventInterval: 10,
		CrossoverRatio:         0.75,
		MutationRatio:          0.20,
		MigrationRatio:         0.10,
		SeedProbability:        0.5,
		Genesis:                GenesisRandom,
		Evolution:              Darwin,
		Elitism:                ElitismNone,
		MaxAdaptionIterations:  20,
		PoolCapacity:           5000,
	}
}

// ParallelSettings extends Settings with the worker-pool width a
// ParallelPopulation fans its crossover, mutation, and fitness-evaluation
// phases out across (spec.md §5's TplPopulationSettings).
type ParallelSettings struct {
	Settings
	ThreadCount int
}

// DefaultParallelSettings returns DefaultSettings with a ThreadCount of 4.
func DefaultParallelSettings() ParallelSettings {
	return ParallelSettings{Settings: DefaultSettings(), ThreadCount: 4}
}
