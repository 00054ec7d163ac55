package ga

import (
	"github.com/evocore/evo/dna"
	"github.com/evocore/evo/entity"
	"github.com/google/uuid"
)

// A SelectOne draws single entities from a population, one at a time, for
// operations — mutation, migration candidate search — that need exactly one
// parent per call (spec.md §4.6). Init resets any internal cursor or
// exclusion set at the start of a generation; Next returns done=true once
// the strategy has nothing left to offer this generation.
type SelectOne interface {
	Init(p *Population)
	Next() (e *entity.Entity, done bool)
}

// A SelectTwo draws entity pairs for crossover (spec.md §4.6).
type SelectTwo interface {
	Init(p *Population)
	Next() (mother, father *entity.Entity, done bool)
}

// A MigrationSelector picks the entity (if any) a population offers up for
// emigration this generation (spec.md §4.9).
type MigrationSelector interface {
	Init(p *Population)
	Next() (e *entity.Entity, ok bool)
}

// A Crossover combines two parents' DNA into two children's DNA (spec.md
// §4.6). son and daughter arrive as clones of mother and father respectively
// — Cross overwrites them in place; it must not mutate mother or father.
type Crossover interface {
	Cross(mother, father, son, daughter *dna.DNA) error
}

// A Mutate perturbs a child's DNA, optionally referencing the parent it was
// cloned from (spec.md §4.7).
type Mutate interface {
	Mutate(parent, child *dna.DNA) error
}

// An Adaption performs local-search refinement against a single entity
// (spec.md §4.8's Lamarck/Baldwin adaption step). It returns the best
// genotype found (which may be a clone of best, mutated in place over
// iterations) and how many iterations it actually ran before converging or
// exhausting maxIterations. A nil adapted return means no improvement was
// found and the caller should leave best untouched.
type Adaption interface {
	Optimise(p *Population, best *entity.Entity, maxIterations int) (adapted *entity.Entity, iterations int, err error)
}

// A MigrationHost is the subset of host.Host a Population needs to route
// emigrants and check whether migration is currently possible. Defined here,
// not in package host, so host can depend on ga without ga depending back on
// host.
type MigrationHost interface {
	CanMigrate() bool
	MigrateEntity(from uuid.UUID, e *entity.Entity) bool
}

// A Migrant is an entity in flight between islands, tagged with its island
// of origin so the receiving population can reject a self-loop (spec.md
// §4.9).
type Migrant struct {
	From   uuid.UUID
	Entity *entity.Entity
}
