// Package chromosome implements the fixed-length, typed gene sequences of
// spec.md §4.2: Bool, Char, Short, Int, and Double variants sharing a common
// Chromosome surface, plus a Locking wrapper that makes any variant's genes
// immutable past a given index set. This follows spec.md §9's redesign note
// — a tagged variant behind a shared interface, with locking expressed as an
// orthogonal wrapper rather than baked into each variant.
package chromosome

import (
	"fmt"

	"github.com/evocore/evo"
)

// Direction is the sign of a drift mutation.
type Direction int

const (
	Down Direction = iota
	Up
)

// A Chromosome is an ordered, fixed-length sequence of genes of some
// primitive type. Every variant in this package implements this interface;
// type-specific indexed access (Get/Set) is exposed on the concrete types
// themselves, since their element type varies (bool, rune, int16, int,
// float64).
type Chromosome interface {
	// Len returns the number of genes.
	Len() int

	// Clone returns a deep copy of the chromosome.
	Clone() Chromosome

	// Seed randomizes every gene. p is only meaningful for BoolChromosome
	// (spec.md §4.2); other variants ignore it and seed uniformly over
	// their domain.
	Seed(p float64) error

	// MutateDrift nudges gene i by one step in the given direction,
	// wrapping or clamping at the variant's bounds. A no-op if the gene is
	// locked.
	MutateDrift(i int, dir Direction) error

	// MutateRandom replaces gene i with a fresh random value from the
	// variant's domain. A no-op if the gene is locked.
	MutateRandom(i int) error

	// Equal reports whether other has the same concrete type, length, and
	// gene values as this chromosome.
	Equal(other Chromosome) bool

	// CopyRange overwrites genes [lo, hi) of this chromosome with the
	// corresponding genes of src, which must have the same concrete type
	// and length. It is the primitive crossover operators build on
	// (spec.md §4.6): slicing happens above this call, never by reaching
	// into a variant's internal gene array. Locked genes within the range
	// are left untouched.
	CopyRange(src Chromosome, lo, hi int) error

	// SetLength reallocates the gene array to n, copying min(old,new)
	// entries and zero/seed-filling the rest per spec.md §4.2.
	SetLength(n int)
}

// checkIndex returns evo.ErrArgumentOutOfRange wrapped with context if i is
// outside [0, length).
func checkIndex(i, length int) error {
	if i < 0 || i >= length {
		return fmt.Errorf("chromosome: index %d out of range [0,%d): %w", i, length, evo.ErrArgumentOutOfRange)
	}
	return nil
}

// checkProb returns evo.ErrArgumentOutOfRange wrapped with context if p is
// outside [0,1].
func checkProb(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("chromosome: probability %v out of [0,1]: %w", p, evo.ErrArgumentOutOfRange)
	}
	return nil
}
