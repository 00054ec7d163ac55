package chromosome

import (
	"github.com/evocore/evo"
	"github.com/evocore/evo/rng"
)

// An IntChromosome is a fixed-length sequence of genes bounded to
// [MinValue, MaxValue] (spec.md §4.2).
type IntChromosome struct {
	MinValue, MaxValue int
	genes              []int
}

// NewInt returns an IntChromosome of the given length and bounds, all genes
// set to min.
func NewInt(length, min, max int) *IntChromosome {
	genes := make([]int, length)
	for i := range genes {
		genes[i] = min
	}
	return &IntChromosome{MinValue: min, MaxValue: max, genes: genes}
}

func (c *IntChromosome) bound(v int) int {
	if v < c.MinValue {
		return c.MinValue
	}
	if v > c.MaxValue {
		return c.MaxValue
	}
	return v
}

// Len returns the number of genes.
func (c *IntChromosome) Len() int { return len(c.genes) }

// Get returns gene i.
func (c *IntChromosome) Get(i int) (int, error) {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return 0, err
	}
	return c.genes[i], nil
}

// Set assigns gene i, clamping into [MinValue, MaxValue].
func (c *IntChromosome) Set(i, v int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	c.genes[i] = c.bound(v)
	return nil
}

// Clone returns a deep copy.
func (c *IntChromosome) Clone() Chromosome {
	dup := make([]int, len(c.genes))
	copy(dup, c.genes)
	return &IntChromosome{MinValue: c.MinValue, MaxValue: c.MaxValue, genes: dup}
}

// Seed picks each gene uniformly from [MinValue, MaxValue].
func (c *IntChromosome) Seed(_ float64) error {
	span := c.MaxValue - c.MinValue + 1
	for i := range c.genes {
		c.genes[i] = c.MinValue + rng.NextIntn(span)
	}
	return nil
}

// MutateDrift adjusts gene i by ±1, wrapping at the bounds (spec.md's S1:
// from MaxValue, Up wraps to MinValue; from MinValue, Down wraps to
// MaxValue).
func (c *IntChromosome) MutateDrift(i int, dir Direction) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	g := c.genes[i]
	if dir == Up {
		if g >= c.MaxValue {
			g = c.MinValue
		} else {
			g++
		}
	} else {
		if g <= c.MinValue {
			g = c.MaxValue
		} else {
			g--
		}
	}
	c.genes[i] = g
	return nil
}

// MutateRandom replaces gene i with a fresh uniform draw.
func (c *IntChromosome) MutateRandom(i int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	span := c.MaxValue - c.MinValue + 1
	c.genes[i] = c.MinValue + rng.NextIntn(span)
	return nil
}

// Equal reports gene-wise equality (bounds are not compared).
func (c *IntChromosome) Equal(other Chromosome) bool {
	o, ok := other.(*IntChromosome)
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
func (c *IntChromosome) CopyRange(src Chromosome, lo, hi int) error {
	o, ok := src.(*IntChromosome)
	if !ok || len(o.genes) != len(c.genes) {
		return evo.ErrShapeMismatch
	}
	copy(c.genes[lo:hi], o.genes[lo:hi])
	return nil
}

// SetLength reallocates the gene array, copying min(old,new) entries and
// filling any growth with MinValue.
func (c *IntChromosome) SetLength(n int) {
	next := make([]int, n)
	for i := range next {
		next[i] = c.MinValue
	}
	copy(next, c.genes)
	c.genes = next
}
