package chromosome

import (
	"github.com/evocore/evo"
	"github.com/evocore/evo/rng"
)

// A BoolChromosome is a fixed-length sequence of boolean genes.
type BoolChromosome struct {
	genes []bool
}

// NewBool returns a BoolChromosome of the given length, all genes false.
func NewBool(length int) *BoolChromosome {
	return &BoolChromosome{genes: make([]bool, length)}
}

// Len returns the number of genes.
func (c *BoolChromosome) Len() int { return len(c.genes) }

// Get returns gene i.
func (c *BoolChromosome) Get(i int) (bool, error) {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return false, err
	}
	return c.genes[i], nil
}

// Set assigns gene i.
func (c *BoolChromosome) Set(i int, v bool) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	c.genes[i] = v
	return nil
}

// Clone returns a deep copy.
func (c *BoolChromosome) Clone() Chromosome {
	dup := make([]bool, len(c.genes))
	copy(dup, c.genes)
	return &BoolChromosome{genes: dup}
}

// Seed sets each gene true with probability p (spec.md §4.2).
func (c *BoolChromosome) Seed(p float64) error {
	if err := checkProb(p); err != nil {
		return err
	}
	for i := range c.genes {
		c.genes[i] = rng.RandomProb(p)
	}
	return nil
}

// MutateDrift flips gene i, regardless of direction.
func (c *BoolChromosome) MutateDrift(i int, _ Direction) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	c.genes[i] = !c.genes[i]
	return nil
}

// MutateRandom sets gene i to a fresh coin flip.
func (c *BoolChromosome) MutateRandom(i int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	c.genes[i] = rng.RandomProb(0.5)
	return nil
}

// Equal reports gene-wise equality.
func (c *BoolChromosome) Equal(other Chromosome) bool {
	o, ok := other.(*BoolChromosome)
	if !ok || len(o.genes) != len(c.genes) {
		return false
	}
	for i := range c.genes {
		if c.genes[i] != o.genes[i] {
			return false
		}
	}
	return true
}

// CopyRange overwrites genes [lo,hi) with src's.
func (c *BoolChromosome) CopyRange(src Chromosome, lo, hi int) error {
	o, ok := src.(*BoolChromosome)
	if !ok || len(o.genes) != len(c.genes) {
		return evo.ErrShapeMismatch
	}
	copy(c.genes[lo:hi], o.genes[lo:hi])
	return nil
}

// SetLength reallocates the gene array, copying min(old,new) entries.
func (c *BoolChromosome) SetLength(n int) {
	next := make([]bool, n)
	copy(next, c.genes)
	c.genes = next
}
