// Package ga implements the island-model genetic algorithm engine of
// spec.md §4.5–§4.9: a self-contained Population that drives entities
// through crossover, mutation, adaption, survival, and migration each
// generation, plus a parallel variant that fans the expensive phases out
// across a worker pool.
package ga

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/evocore/evo"
	"github.com/evocore/evo/entity"
	"github.com/evocore/evo/rng"
	"github.com/google/uuid"
)

// A Population is one island of the genetic algorithm: a settings-driven
// generation loop over a slice of live entities, a free pool of entities
// awaiting reuse, and an inbound queue for entities migrating in from other
// islands.
type Population struct {
	settings  Settings
	blueprint entity.Blueprint
	exec      executor

	islandID uuid.UUID
	entities []*entity.Entity

	originalCount int
	generation    int
	restart       bool

	freePool chan *entity.Entity
	inbound  chan Migrant

	host     MigrationHost
	disposed bool
}

// NewPopulation constructs a sequential Population (spec.md §4.5),
// genesis-seeded per settings.Genesis.
func NewPopulation(blueprint entity.Blueprint, settings Settings) (*Population, error) {
	return newPopulation(blueprint, settings, sequentialExecutor{})
}

// NewParallelPopulation constructs the parallel variant (spec.md §5): the
// same generation engine, with crossover, mutation, and fitness evaluation
// fanned out across settings.ThreadCount workers via errgroup instead of
// run on the calling goroutine.
func NewParallelPopulation(blueprint entity.Blueprint, settings ParallelSettings) (*Population, error) {
	threads := settings.ThreadCount
	if threads <= 0 {
		threads = 4
	}
	return newPopulation(blueprint, settings.Settings, parallelExecutor{threads: threads})
}

func newPopulation(blueprint entity.Blueprint, settings Settings, exec executor) (*Population, error) {
	if settings.StableSize <= 0 {
		return nil, fmt.Errorf("ga: StableSize must be positive: %w", evo.ErrInvalidConfiguration)
	}
	p := &Population{
		settings:  settings,
		blueprint: blueprint,
		exec:      exec,
		islandID:  uuid.New(),
		freePool:  make(chan *entity.Entity, settings.PoolCapacity),
		inbound:   make(chan Migrant, settings.StableSize+1),
	}
	if settings.Genesis != GenesisUser {
		if err := p.genesis(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// genesis populates the population up to StableSize fresh entities.
func (p *Population) genesis() error {
	for len(p.entities) < p.settings.StableSize {
		e, err := p.spawn()
		if err != nil {
			return err
		}
		p.entities = append(p.entities, e)
	}
	return nil
}

// spawn acquires an entity (from the free pool if one is available, per
// spec.md §3's pool-reuse invariant) and carries it through Created ->
// Initialised -> Loaded, seeding its DNA only when Genesis is GenesisRandom.
func (p *Population) spawn() (*entity.Entity, error) {
	e := p.acquire()
	if err := e.InitEntity(); err != nil {
		return nil, err
	}
	if p.settings.Genesis == GenesisRandom {
		if err := e.DNA().Seed(p.settings.SeedProbability); err != nil {
			return nil, err
		}
	}
	if err := e.LoadEntity(); err != nil {
		return nil, err
	}
	return e, nil
}

// acquire dequeues a pooled entity and re-marks it Created, or allocates a
// fresh one if the pool is empty.
func (p *Population) acquire() *entity.Entity {
	select {
	case e := <-p.freePool:
		_ = e.MarkAsCreated()
		return e
	default:
		return entity.New(p.blueprint)
	}
}

// release returns e to the free pool, or disposes it if the pool is full.
func (p *Population) release(e *entity.Entity) {
	_ = e.MarkAsFree()
	select {
	case p.freePool <- e:
	default:
		e.Dispose()
	}
}

// IslandID returns the population's stable identifier, used by a host to
// route migrants.
func (p *Population) IslandID() uuid.UUID { return p.islandID }

// Len returns the number of live entities.
func (p *Population) Len() int { return len(p.entities) }

// At returns the live entity at index i.
func (p *Population) At(i int) *entity.Entity { return p.entities[i] }

// OriginalCount returns the number of entities that existed at the start of
// the generation currently in progress — the boundary selectors like
// sel.RandomRank use to stay within the pre-crossover parent pool.
func (p *Population) OriginalCount() int { return p.originalCount }

// Generation returns the number of completed generations.
func (p *Population) Generation() int { return p.generation }

// CrossoverRatio returns the configured crossover gate/draw-count ratio
// (spec.md §4.6), letting a SelectTwo strategy size its per-generation draw
// budget off OriginalCount without reaching into Settings directly.
func (p *Population) CrossoverRatio() float64 { return p.settings.CrossoverRatio }

// MutationRatio returns the configured mutation gate/draw-count ratio
// (spec.md §4.6), letting a SelectOne strategy size its per-generation draw
// budget off OriginalCount without reaching into Settings directly.
func (p *Population) MutationRatio() float64 { return p.settings.MutationRatio }

// View returns a read-only snapshot of the population's entities for
// statistics (spec.md's View/Iterator supplement, SPEC_FULL.md §12).
func (p *Population) View() evo.View {
	v := make(evo.View, len(p.entities))
	for i, e := range p.entities {
		v[i] = e
	}
	return v
}

// Fitness returns the fitness of the population's best entity, or negative
// infinity if empty. Population satisfies evo.Fitnessed, letting a host
// treat islands the same way Population treats entities.
func (p *Population) Fitness() float64 {
	if len(p.entities) == 0 {
		return math.Inf(-1)
	}
	best := p.entities[0].Fitness()
	for _, e := range p.entities[1:] {
		if f := e.Fitness(); f > best {
			best = f
		}
	}
	return best
}

// RequestRestart marks the population to be reseeded from genesis at the
// end of the current generation, with the generation counter reset to
// zero — used by a GenerationHandler that detects stagnation.
func (p *Population) RequestRestart() { p.restart = true }

// SetHost wires the MigrationHost a population routes emigrants through.
// A population with no host never migrates.
func (p *Population) SetHost(h MigrationHost) { p.host = h }

// Receive enqueues an immigrant for the next migration phase (spec.md
// §4.9). It never blocks: a population whose inbound queue is full drops
// the immigrant, since the source island's own free-pool-or-dispose policy
// already accepts that an entity can be lost rather than stall a host.
func (p *Population) Receive(m Migrant) {
	select {
	case p.inbound <- m:
	default:
	}
}

// AddEntity appends an already-Ready entity, used by GenesisUser to seed a
// population explicitly.
func (p *Population) AddEntity(e *entity.Entity) {
	p.entities = append(p.entities, e)
}

// Dispose releases every live and pooled entity.
func (p *Population) Dispose() {
	for _, e := range p.entities {
		e.Dispose()
	}
	p.entities = nil
	close(p.freePool)
	for e := range p.freePool {
		e.Dispose()
	}
	p.disposed = true
}

// Evolve drives generations until ctx is cancelled, the GenerationHandler
// returns false, or (outside SteadyState) MaxGenerations is reached
// (spec.md §4.5). Each generation runs crossover, mutation, adaption,
// survival, and migration in that order, checking ctx between every phase.
func (p *Population) Evolve(ctx context.Context) error {
	if p.disposed {
		return evo.ErrDisposed
	}
	for {
		interval := p.settings.EvolutionEventInterval
		if interval <= 0 {
			interval = 1
		}
		if p.settings.GenerationHandler != nil && p.generation%interval == 0 {
			if !p.settings.GenerationHandler(p.generation) {
				return nil
			}
		}
		if err := ctxErr(ctx); err != nil {
			return err
		}

		p.originalCount = len(p.entities)
		p.generation++

		phases := []func() error{
			p.crossoverPhase,
			p.mutationPhase,
			p.adaptionPhase,
			p.survivalPhase,
			p.migrationPhase,
		}
		for _, phase := range phases {
			if err := phase(); err != nil {
				return err
			}
			if err := ctxErr(ctx); err != nil {
				return err
			}
		}

		if p.restart {
			if err := p.reseed(); err != nil {
				return err
			}
			p.restart = false
			p.generation = 0
			continue
		}

		if !p.settings.SteadyState && p.generation >= p.settings.MaxGenerations {
			return nil
		}
	}
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ga: %w: %w", evo.ErrCancelled, err)
	}
	return nil
}

func (p *Population) reseed() error {
	for _, e := range p.entities {
		p.release(e)
	}
	p.entities = nil
	return p.genesis()
}

// crossoverPhase draws parent pairs via SelectTwo and runs Crossover over
// each pair, gated by CrossoverRatio (spec.md §4.5, §4.6). Pair gathering
// happens on the calling goroutine (selectors mutate cursor state that
// isn't safe to share); only the crossover operator itself — and the
// fitness evaluation it implies once children exist — runs through the
// executor.
func (p *Population) crossoverPhase() error {
	if !rng.RandomProb(p.settings.CrossoverRatio) {
		return nil
	}
	if p.settings.Crossover == nil || p.settings.SelectTwo == nil {
		return fmt.Errorf("ga: crossover phase gated on but SelectTwo/Crossover not set: %w", evo.ErrInvalidConfiguration)
	}

	type pair struct{ mother, father *entity.Entity }
	var pairs []pair
	p.settings.SelectTwo.Init(p)
	for {
		mother, father, done := p.settings.SelectTwo.Next()
		if done {
			break
		}
		pairs = append(pairs, pair{mother, father})
	}

	sons := make([]*entity.Entity, len(pairs))
	daughters := make([]*entity.Entity, len(pairs))
	tasks := make([]func() error, len(pairs))
	for i, pr := range pairs {
		i, pr := i, pr
		tasks[i] = func() error {
			if pr.mother.DNA().Len() != pr.father.DNA().Len() {
				return evo.ErrShapeMismatch
			}
			son := entity.New(p.blueprint)
			if err := son.CopyFrom(pr.mother); err != nil {
				return err
			}
			daughter := entity.New(p.blueprint)
			if err := daughter.CopyFrom(pr.father); err != nil {
				return err
			}
			if err := p.settings.Crossover.Cross(pr.mother.DNA(), pr.father.DNA(), son.DNA(), daughter.DNA()); err != nil {
				return err
			}
			son.Reinitialise()
			if err := son.LoadEntity(); err != nil {
				return err
			}
			daughter.Reinitialise()
			if err := daughter.LoadEntity(); err != nil {
				return err
			}
			sons[i] = son
			daughters[i] = daughter
			return nil
		}
	}
	if err := p.exec.run(tasks); err != nil {
		return err
	}
	for i := range pairs {
		p.entities = append(p.entities, sons[i], daughters[i])
	}
	return nil
}

// mutationPhase draws single entities via SelectOne and clones-then-mutates
// each into a new child, gated by MutationRatio (spec.md §4.5, §4.7).
func (p *Population) mutationPhase() error {
	if !rng.RandomProb(p.settings.MutationRatio) {
		return nil
	}
	if p.settings.Mutate == nil || p.settings.SelectOne == nil {
		return fmt.Errorf("ga: mutation phase gated on but SelectOne/Mutate not set: %w", evo.ErrInvalidConfiguration)
	}

	var parents []*entity.Entity
	p.settings.SelectOne.Init(p)
	for {
		parent, done := p.settings.SelectOne.Next()
		if done {
			break
		}
		parents = append(parents, parent)
	}

	children := make([]*entity.Entity, len(parents))
	tasks := make([]func() error, len(parents))
	for i, parent := range parents {
		i, parent := i, parent
		tasks[i] = func() error {
			child := entity.New(p.blueprint)
			if err := child.CopyFrom(parent); err != nil {
				return err
			}
			if err := p.settings.Mutate.Mutate(parent.DNA(), child.DNA()); err != nil {
				return err
			}
			child.Reinitialise()
			if err := child.LoadEntity(); err != nil {
				return err
			}
			children[i] = child
			return nil
		}
	}
	if err := p.exec.run(tasks); err != nil {
		return err
	}
	p.entities = append(p.entities, children...)
	return nil
}

// adaptionRange returns the [lo, hi) slice of p.entities an Evolution
// variant's Parents/Children/All scope selects, against the boundary
// recorded at the start of this generation.
func (p *Population) adaptionRange() (lo, hi int) {
	switch p.settings.Evolution {
	case LamarckParents, BaldwinParents:
		return 0, p.originalCount
	case LamarckChildren, BaldwinChildren:
		return p.originalCount, len(p.entities)
	case LamarckAll, BaldwinAll:
		return 0, len(p.entities)
	default:
		return 0, 0
	}
}

// adaptionPhase runs local-search refinement over the Evolution-selected
// entity range, writing the result back per spec.md §4.8: Lamarck variants
// replace the genotype outright; Baldwin variants keep the original
// genotype and only adopt the adapted fitness.
func (p *Population) adaptionPhase() error {
	if !p.settings.Evolution.active() || p.settings.Adaption == nil {
		return nil
	}
	lo, hi := p.adaptionRange()
	lamarck := p.settings.Evolution.lamarck()
	for i := lo; i < hi; i++ {
		e := p.entities[i]
		if e.State() != entity.Ready {
			if _, err := e.EnsureFitness(); err != nil {
				return err
			}
		}
		adapted, _, err := p.settings.Adaption.Optimise(p, e, p.settings.MaxAdaptionIterations)
		if err != nil {
			return err
		}
		if adapted == nil {
			continue
		}
		if lamarck {
			p.entities[i] = adapted
		} else if err := e.SetFitness(adapted.Fitness()); err != nil {
			return err
		}
	}
	return nil
}

// survivalPhase applies Elitism, scores every entity, sorts by descending
// fitness, and culls to StableSize (spec.md §4.8), returning excess
// entities to the free pool.
func (p *Population) survivalPhase() error {
	switch p.settings.Elitism {
	case ParentsDie:
		p.dropRange(0, p.originalCount)
	case OneParentSurvives:
		p.dropRange(1, p.originalCount)
	}

	tasks := make([]func() error, 0, len(p.entities))
	for i, e := range p.entities {
		e := e
		rescore := p.settings.Elitism == RescoreParents && i < p.originalCount && e.State() == entity.Ready
		if e.State() != entity.Ready || rescore {
			tasks = append(tasks, func() error {
				if rescore {
					e.Reinitialise()
					if err := e.LoadEntity(); err != nil {
						return err
					}
				}
				_, err := e.EnsureFitness()
				return err
			})
		}
	}
	if err := p.exec.run(tasks); err != nil {
		return err
	}

	sort.SliceStable(p.entities, func(i, j int) bool {
		return p.entities[i].Fitness() > p.entities[j].Fitness()
	})

	if len(p.entities) > p.settings.StableSize {
		excess := p.entities[p.settings.StableSize:]
		p.entities = p.entities[:p.settings.StableSize]
		for _, e := range excess {
			p.release(e)
		}
	}
	return nil
}

// dropRange releases p.entities[lo:hi] to the free pool and removes them
// from the live slice, shifting later entities down.
func (p *Population) dropRange(lo, hi int) {
	if lo < 0 {
		lo = 0
	}
	if hi > len(p.entities) {
		hi = len(p.entities)
	}
	if lo >= hi {
		return
	}
	for _, e := range p.entities[lo:hi] {
		p.release(e)
	}
	p.entities = append(p.entities[:lo], p.entities[hi:]...)
}

// removeEntity detaches e from the live slice without pooling it — used
// when e is emigrating and now belongs to another island.
func (p *Population) removeEntity(target *entity.Entity) {
	for i, e := range p.entities {
		if e == target {
			p.entities = append(p.entities[:i], p.entities[i+1:]...)
			return
		}
	}
}

// migrationPhase offers up at most one emigrant via MigrationSelector,
// gated by MigrationRatio, and drains every immigrant queued since the last
// generation (spec.md §4.9).
func (p *Population) migrationPhase() error {
	if p.host != nil && p.settings.MigrationSelector != nil && rng.RandomProb(p.settings.MigrationRatio) {
		if p.host.CanMigrate() {
			p.settings.MigrationSelector.Init(p)
			if e, ok := p.settings.MigrationSelector.Next(); ok {
				if p.host.MigrateEntity(p.islandID, e) {
					p.removeEntity(e)
				}
			}
		}
	}

	for {
		select {
		case m := <-p.inbound:
			if m.From == p.islandID {
				continue
			}
			p.entities = append(p.entities, m.Entity)
		default:
			return nil
		}
	}
}
