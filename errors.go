package evo

import "errors"

// Sentinel error kinds shared across the module. Callers distinguish them
// with errors.Is; most wrap additional context with fmt.Errorf("...: %w", ...).
var (
	// ErrArgumentOutOfRange is returned for an index, probability, or
	// dimension outside its declared domain.
	ErrArgumentOutOfRange = errors.New("evo: argument out of range")

	// ErrShapeMismatch is returned when two entities being crossed have a
	// different number of chromosomes, or chromosomes of different length.
	ErrShapeMismatch = errors.New("evo: shape mismatch")

	// ErrDuplicateName is returned when adding a chromosome under a name
	// already present in a DNA.
	ErrDuplicateName = errors.New("evo: duplicate name")

	// ErrInvalidConfiguration is returned when an operation is attempted
	// without the strategy it needs wired in, or against mismatched inputs
	// (e.g. a learner given a network with the wrong number of layers).
	ErrInvalidConfiguration = errors.New("evo: invalid configuration")

	// ErrDisposed is returned by any call against an entity, population, or
	// host after its lifecycle has been released.
	ErrDisposed = errors.New("evo: disposed")

	// ErrUnresolvedNeighbor is returned when a topology lookup follows a
	// non-empty neighbor key that is absent from the location map.
	ErrUnresolvedNeighbor = errors.New("evo: unresolved neighbor")

	// ErrCancelled is returned when a cancellation token trips during
	// Population.Evolve.
	ErrCancelled = errors.New("evo: cancelled")
)
