// Package entity implements the candidate-solution lifecycle of spec.md
// §4.4: a DNA bundle, a cached fitness, a monotonic state machine, and a
// stable identifier.
package entity

import (
	"fmt"

	"github.com/evocore/evo"
	"github.com/evocore/evo/dna"
	"github.com/google/uuid"
)

// State is a point in an Entity's lifecycle.
type State int

const (
	Created State = iota
	Initialised
	Loaded
	Ready
	Free
)

func (s State) String() string {
	switch s {
	case Created:
		return "Created"
	case Initialised:
		return "Initialised"
	case Loaded:
		return "Loaded"
	case Ready:
		return "Ready"
	case Free:
		return "Free"
	default:
		return "Unknown"
	}
}

// A Blueprint supplies the hooks an Entity calls into at each lifecycle
// transition: allocating DNA, rebuilding a phenotype from DNA, and scoring
// fitness. It plays the role of the virtual CreateDna/LoadFromDna/
// EvaluateFitness methods of spec.md §4.4, generalized into an explicit,
// user-supplied strategy object per spec.md §9's redesign note on dynamic
// strategy wiring.
type Blueprint interface {
	// CreateDNA allocates the DNA for a freshly Created entity.
	CreateDNA() (*dna.DNA, error)

	// LoadFromDNA rebuilds the phenotype from an Initialised entity's DNA.
	LoadFromDNA(d *dna.DNA) (phenotype any, err error)

	// EvaluateFitness scores a Loaded entity's phenotype.
	EvaluateFitness(phenotype any) (float64, error)
}

// ClonablePhenotype is implemented by phenotypes that need an explicit deep
// copy on Entity.Clone/CopyFrom; phenotypes that don't implement it are
// copied by reference.
type ClonablePhenotype interface {
	ClonePhenotype() any
}

// An Entity is one candidate solution.
type Entity struct {
	id        uuid.UUID
	blueprint Blueprint
	state     State
	disposed  bool

	dna       *dna.DNA
	phenotype any
	fitness   float64

	onInit func(*Entity)
	onLoad func(*Entity)
}

// New returns a freshly Created entity driven by the given blueprint.
func New(b Blueprint) *Entity {
	return &Entity{id: uuid.New(), blueprint: b, state: Created}
}

// OnInit registers a callback fired once per transition into Initialised.
func (e *Entity) OnInit(fn func(*Entity)) { e.onInit = fn }

// OnLoad registers a callback fired once per transition into Loaded.
func (e *Entity) OnLoad(fn func(*Entity)) { e.onLoad = fn }

// ID returns the entity's stable identifier. Reusing an entity from a
// population's free pool (MarkAsCreated) assigns a fresh id, since the pool
// slot represents a new logical candidate from that point on.
func (e *Entity) ID() uuid.UUID { return e.id }

// State returns the entity's current lifecycle state.
func (e *Entity) State() State { return e.state }

// DNA returns the entity's DNA, or nil before InitEntity.
func (e *Entity) DNA() *dna.DNA { return e.dna }

// Phenotype returns the entity's rebuilt phenotype, or nil before
// LoadEntity.
func (e *Entity) Phenotype() any { return e.phenotype }

// Fitness returns the cached fitness score. It is meaningful only once State
// is Ready; earlier it is the zero value. Entity satisfies evo.Fitnessed.
func (e *Entity) Fitness() float64 { return e.fitness }

func (e *Entity) checkAlive() error {
	if e.disposed {
		return fmt.Errorf("entity: %s: %w", e.id, evo.ErrDisposed)
	}
	return nil
}

func (e *Entity) wrongState(op string, want State) error {
	return fmt.Errorf("entity: %s: %s requires state %s, have %s: %w",
		e.id, op, want, e.state, evo.ErrInvalidConfiguration)
}

// InitEntity transitions Created -> Initialised, allocating DNA via the
// blueprint's CreateDNA hook.
func (e *Entity) InitEntity() error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if e.state != Created {
		return e.wrongState("InitEntity", Created)
	}
	d, err := e.blueprint.CreateDNA()
	if err != nil {
		return err
	}
	e.dna = d
	e.state = Initialised
	if e.onInit != nil {
		e.onInit(e)
	}
	return nil
}

// LoadEntity transitions Initialised -> Loaded, rebuilding the phenotype via
// the blueprint's LoadFromDNA hook.
func (e *Entity) LoadEntity() error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if e.state != Initialised {
		return e.wrongState("LoadEntity", Initialised)
	}
	p, err := e.blueprint.LoadFromDNA(e.dna)
	if err != nil {
		return err
	}
	e.phenotype = p
	e.state = Loaded
	if e.onLoad != nil {
		e.onLoad(e)
	}
	return nil
}

// EnsureFitness transitions Loaded -> Ready, scoring fitness via the
// blueprint's EvaluateFitness hook. It is a pure upgrade path: once Ready,
// further calls return the cached score without re-invoking EvaluateFitness
// (spec.md §4.4, §8 property 5).
func (e *Entity) EnsureFitness() (float64, error) {
	if err := e.checkAlive(); err != nil {
		return 0, err
	}
	if e.state == Ready {
		return e.fitness, nil
	}
	if e.state != Loaded {
		return 0, e.wrongState("EnsureFitness", Loaded)
	}
	f, err := e.blueprint.EvaluateFitness(e.phenotype)
	if err != nil {
		return 0, err
	}
	e.fitness = f
	e.state = Ready
	return f, nil
}

// SetFitness forces the entity to Ready with the given score. Idempotent:
// calling it again while already Ready simply overwrites the cached score.
func (e *Entity) SetFitness(f float64) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	e.fitness = f
	e.state = Ready
	return nil
}

// MarkAsFree discards the DNA and phenotype and transitions to Free,
// returning the entity to a population's free pool.
func (e *Entity) MarkAsFree() error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	e.dna = nil
	e.phenotype = nil
	e.fitness = 0
	e.state = Free
	return nil
}

// MarkAsCreated transitions Free -> Created, reusing the entity from a pool
// under a fresh id.
func (e *Entity) MarkAsCreated() error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if e.state != Free {
		return e.wrongState("MarkAsCreated", Free)
	}
	e.id = uuid.New()
	e.state = Created
	return nil
}

// CopyFrom deep-copies other's DNA, fitness, state, and phenotype into e,
// leaving e's own id and blueprint untouched.
func (e *Entity) CopyFrom(other *Entity) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := other.checkAlive(); err != nil {
		return err
	}
	if other.dna != nil {
		e.dna = other.dna.Clone()
	} else {
		e.dna = nil
	}
	e.phenotype = clonePhenotype(other.phenotype)
	e.fitness = other.fitness
	e.state = other.state
	return nil
}

// Clone returns a deep copy of e with a fresh id.
func (e *Entity) Clone() *Entity {
	dup := &Entity{
		id:        uuid.New(),
		blueprint: e.blueprint,
		state:     e.state,
		fitness:   e.fitness,
		onInit:    e.onInit,
		onLoad:    e.onLoad,
	}
	if e.dna != nil {
		dup.dna = e.dna.Clone()
	}
	dup.phenotype = clonePhenotype(e.phenotype)
	return dup
}

// Reinitialise forces the entity back to Initialised without touching its
// DNA, discarding any stale phenotype and fitness. Crossover and mutation
// build children by cloning a parent (which copies the parent's Ready state
// and fitness) and then call Reinitialise once the child's DNA has been
// altered, since the parent's cached fitness no longer applies to it.
func (e *Entity) Reinitialise() {
	e.phenotype = nil
	e.fitness = 0
	e.state = Initialised
}

// Dispose permanently releases the entity; any further call against it
// returns evo.ErrDisposed.
func (e *Entity) Dispose() {
	if e.dna != nil {
		e.dna.Dispose()
	}
	e.dna = nil
	e.phenotype = nil
	e.disposed = true
}

func clonePhenotype(p any) any {
	if p == nil {
		return nil
	}
	if c, ok := p.(ClonablePhenotype); ok {
		return c.ClonePhenotype()
	}
	return p
}
