// Package cross implements the crossover operators of spec.md §4.6:
// SinglePoint, DoublePoint, and Mixing, each built on
// chromosome.Chromosome.CopyRange — slicing always happens above that call,
// never by reaching into a variant's internal gene array. Grounded on the
// teacher's root cross.go (PMX-style cut-point swap) generalized to the
// tagged-variant chromosome contract, plus integer/cross.go's PointX shape.
package cross

import (
	"fmt"

	"github.com/evocore/evo"
	"github.com/evocore/evo/dna"
	"github.com/evocore/evo/rng"
)

// namesMatch reports whether mother and father carry the same chromosome
// names in the same order — the shape precondition every operator in this
// package requires before cutting.
func namesMatch(mother, father *dna.DNA) bool {
	mn, fn := mother.Names(), father.Names()
	if len(mn) != len(fn) {
		return false
	}
	for i := range mn {
		if mn[i] != fn[i] {
			return false
		}
	}
	return true
}

// SinglePoint cuts every named chromosome at one shared random point c and
// swaps the suffix [c, length): son gets father's suffix, daughter gets
// mother's. son and daughter must already be clones of mother and father
// respectively (ga.Population.crossoverPhase sets this up).
type SinglePoint struct{}

func (SinglePoint) Cross(mother, father, son, daughter *dna.DNA) error {
	if !namesMatch(mother, father) {
		return fmt.Errorf("cross: SinglePoint: %w", evo.ErrShapeMismatch)
	}
	for _, name := range mother.Names() {
		m, _ := mother.Get(name)
		f, _ := father.Get(name)
		if m.Len() != f.Len() {
			return fmt.Errorf("cross: SinglePoint: chromosome %q: %w", name, evo.ErrShapeMismatch)
		}
		length := m.Len()
		if length < 2 {
			continue
		}
		cut := rng.NextIntRange(1, length)

		s, _ := son.Get(name)
		d, _ := daughter.Get(name)
		if err := s.CopyRange(f, cut, length); err != nil {
			return err
		}
		if err := d.CopyRange(m, cut, length); err != nil {
			return err
		}
	}
	return nil
}

// DoublePoint cuts every named chromosome at two shared random points and
// swaps the middle segment [lo, hi) — son's middle becomes father's,
// daughter's middle becomes mother's, with the flanking segments
// untouched.
type DoublePoint struct{}

func (DoublePoint) Cross(mother, father, son, daughter *dna.DNA) error {
	if !namesMatch(mother, father) {
		return fmt.Errorf("cross: DoublePoint: %w", evo.ErrShapeMismatch)
	}
	for _, name := range mother.Names() {
		m, _ := mother.Get(name)
		f, _ := father.Get(name)
		if m.Len() != f.Len() {
			return fmt.Errorf("cross: DoublePoint: chromosome %q: %w", name, evo.ErrShapeMismatch)
		}
		length := m.Len()
		if length < 2 {
			continue
		}
		a := rng.NextIntn(length)
		b := rng.NextExcept(length, []int{a})
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}

		s, _ := son.Get(name)
		d, _ := daughter.Get(name)
		if err := s.CopyRange(f, lo, hi); err != nil {
			return err
		}
		if err := d.CopyRange(m, lo, hi); err != nil {
			return err
		}
	}
	return nil
}

// Mixing decides, per chromosome, whether the two children swap it whole:
// with probability ~1/4 (drawn as NextIntn(4) > 2) son takes father's
// chromosome and daughter takes mother's; otherwise each child keeps the
// chromosome it already inherited from its own clone source (spec.md §4.6).
type Mixing struct{}

func (Mixing) Cross(mother, father, son, daughter *dna.DNA) error {
	if !namesMatch(mother, father) {
		return fmt.Errorf("cross: Mixing: %w", evo.ErrShapeMismatch)
	}
	for _, name := range mother.Names() {
		m, _ := mother.Get(name)
		f, _ := father.Get(name)
		if m.Len() != f.Len() {
			return fmt.Errorf("cross: Mixing: chromosome %q: %w", name, evo.ErrShapeMismatch)
		}
		if rng.NextIntn(4) <= 2 {
			continue
		}
		length := m.Len()
		s, _ := son.Get(name)
		d, _ := daughter.Get(name)
		if err := s.CopyRange(f, 0, length); err != nil {
			return err
		}
		if err := d.CopyRange(m, 0, length); err != nil {
			return err
		}
	}
	return nil
}
