package chromosome

import (
	"github.com/evocore/evo"
	"github.com/evocore/evo/rng"
)

// A ShortChromosome is a fixed-length sequence of int16 genes bounded to
// [MinValue, MaxValue] (spec.md §4.2).
type ShortChromosome struct {
	MinValue, MaxValue int16
	genes              []int16
}

// NewShort returns a ShortChromosome of the given length and bounds, all
// genes set to min.
func NewShort(length int, min, max int16) *ShortChromosome {
	genes := make([]int16, length)
	for i := range genes {
		genes[i] = min
	}
	return &ShortChromosome{MinValue: min, MaxValue: max, genes: genes}
}

func (c *ShortChromosome) bound(v int16) int16 {
	if v < c.MinValue {
		return c.MinValue
	}
	if v > c.MaxValue {
		return c.MaxValue
	}
	return v
}

// Len returns the number of genes.
func (c *ShortChromosome) Len() int { return len(c.genes) }

// Get returns gene i.
func (c *ShortChromosome) Get(i int) (int16, error) {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return 0, err
	}
	return c.genes[i], nil
}

// Set assigns gene i, clamping into [MinValue, MaxValue].
func (c *ShortChromosome) Set(i int, v int16) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	c.genes[i] = c.bound(v)
	return nil
}

// Clone returns a deep copy.
func (c *ShortChromosome) Clone() Chromosome {
	dup := make([]int16, len(c.genes))
	copy(dup, c.genes)
	return &ShortChromosome{MinValue: c.MinValue, MaxValue: c.MaxValue, genes: dup}
}

// Seed picks each gene uniformly from [MinValue, MaxValue].
func (c *ShortChromosome) Seed(_ float64) error {
	span := int(c.MaxValue) - int(c.MinValue) + 1
	for i := range c.genes {
		c.genes[i] = c.MinValue + int16(rng.NextIntn(span))
	}
	return nil
}

// MutateDrift adjusts gene i by ±1, wrapping at the bounds.
func (c *ShortChromosome) MutateDrift(i int, dir Direction) error {
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
func (c *ShortChromosome) MutateRandom(i int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	span := int(c.MaxValue) - int(c.MinValue) + 1
	c.genes[i] = c.MinValue + int16(rng.NextIntn(span))
	return nil
}

// Equal reports gene-wise equality (bounds are not compared).
func (c *ShortChromosome) Equal(other Chromosome) bool {
	o, ok := other.(*ShortChromosome)
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
func (c *ShortChromosome) CopyRange(src Chromosome, lo, hi int) error {
	o, ok := src.(*ShortChromosome)
	if !ok || len(o.genes) != len(c.genes) {
		return evo.ErrShapeMismatch
	}
	copy(c.genes[lo:hi], o.genes[lo:hi])
	return nil
}

// SetLength reallocates the gene array, copying min(old,new) entries and
// filling any growth with MinValue.
func (c *ShortChromosome) SetLength(n int) {
	next := make([]int16, n)
	for i := range next {
		next[i] = c.MinValue
	}
	copy(next, c.genes)
	c.genes = next
}
