// Package mutate implements the mutation operators of spec.md §4.7:
// SingleDrift, MultiDrift, SingleRandom, MultiRandom, each driven by
// chromosome.Chromosome's MutateDrift/MutateRandom primitives. Grounded on
// those primitives plus the teacher's integer/cross.go mutation-rate loop
// shape (iterate genes, roll a probability per gene).
package mutate

import (
	"github.com/evocore/evo/chromosome"
	"github.com/evocore/evo/dna"
	"github.com/evocore/evo/rng"
)

// SingleDrift mutates exactly one randomly chosen gene of one randomly
// chosen chromosome, nudging it one step in a random direction.
type SingleDrift struct{}

func (SingleDrift) Mutate(parent, child *dna.DNA) error {
	names := child.Names()
	if len(names) == 0 {
		return nil
	}
	name := names[rng.NextIntn(len(names))]
	c, _ := child.Get(name)
	if c.Len() == 0 {
		return nil
	}
	return c.MutateDrift(rng.NextIntn(c.Len()), randomDirection())
}

// MultiDrift picks one direction for the whole mutation, then visits every
// gene of every chromosome and drifts it in that direction with probability
// 0.47 (spec.md §4.7), so on average slightly fewer than half of the genes
// move.
type MultiDrift struct{}

const multiDriftProbability = 0.47

func (MultiDrift) Mutate(parent, child *dna.DNA) error {
	dir := randomDirection()
	for _, name := range child.Names() {
		c, _ := child.Get(name)
		for i := 0; i < c.Len(); i++ {
			if !rng.RandomProb(multiDriftProbability) {
				continue
			}
			if err := c.MutateDrift(i, dir); err != nil {
				return err
			}
		}
	}
	return nil
}

// SingleRandom replaces exactly one randomly chosen gene of one randomly
// chosen chromosome with a fresh random value.
type SingleRandom struct{}

func (SingleRandom) Mutate(parent, child *dna.DNA) error {
	names := child.Names()
	if len(names) == 0 {
		return nil
	}
	name := names[rng.NextIntn(len(names))]
	c, _ := child.Get(name)
	if c.Len() == 0 {
		return nil
	}
	return c.MutateRandom(rng.NextIntn(c.Len()))
}

// MultiRandom visits every gene of every chromosome and, with equal 1/3
// odds, drifts up, drifts down, or leaves it alone (spec.md §4.7's
// three-way per-gene roll).
type MultiRandom struct{}

func (MultiRandom) Mutate(parent, child *dna.DNA) error {
	for _, name := range child.Names() {
		c, _ := child.Get(name)
		for i := 0; i < c.Len(); i++ {
			switch rng.NextIntn(3) {
			case 0:
				if err := c.MutateDrift(i, chromosome.Up); err != nil {
					return err
				}
			case 1:
				if err := c.MutateDrift(i, chromosome.Down); err != nil {
					return err
				}
			case 2:
				// leave gene i unchanged.
			}
		}
	}
	return nil
}

func randomDirection() chromosome.Direction {
	if rng.RandomProb(0.5) {
		return chromosome.Up
	}
	return chromosome.Down
}
