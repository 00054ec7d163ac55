package chromosome

import (
	"github.com/evocore/evo"
	"github.com/evocore/evo/rng"
)

// The closed universe of printable ASCII characters genes are drawn from
// (spec.md §4.2).
const (
	charMin = ' '
	charMax = '~'
)

// A CharChromosome is a fixed-length sequence of printable-ASCII genes.
type CharChromosome struct {
	genes []rune
}

// NewChar returns a CharChromosome of the given length, all genes charMin.
func NewChar(length int) *CharChromosome {
	genes := make([]rune, length)
	for i := range genes {
		genes[i] = charMin
	}
	return &CharChromosome{genes: genes}
}

func (c *CharChromosome) bound(v rune) rune {
	if v < charMin {
		return charMin
	}
	if v > charMax {
		return charMax
	}
	return v
}

// Len returns the number of genes.
func (c *CharChromosome) Len() int { return len(c.genes) }

// Get returns gene i.
func (c *CharChromosome) Get(i int) (rune, error) {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return 0, err
	}
	return c.genes[i], nil
}

// Set assigns gene i, clamping into the char universe.
func (c *CharChromosome) Set(i int, v rune) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	c.genes[i] = c.bound(v)
	return nil
}

// Clone returns a deep copy.
func (c *CharChromosome) Clone() Chromosome {
	dup := make([]rune, len(c.genes))
	copy(dup, c.genes)
	return &CharChromosome{genes: dup}
}

// Seed picks each gene uniformly from the char universe.
func (c *CharChromosome) Seed(_ float64) error {
	for i := range c.genes {
		c.genes[i] = charMin + rune(rng.NextIntn(charMax-charMin+1))
	}
	return nil
}

// MutateDrift increments (Up) or decrements (Down) gene i, wrapping at the
// universe's extremes.
func (c *CharChromosome) MutateDrift(i int, dir Direction) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	g := c.genes[i]
	if dir == Up {
		if g >= charMax {
			g = charMin
		} else {
			g++
		}
	} else {
		if g <= charMin {
			g = charMax
		} else {
			g--
		}
	}
	c.genes[i] = g
	return nil
}

// MutateRandom replaces gene i with a fresh uniform draw.
func (c *CharChromosome) MutateRandom(i int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	c.genes[i] = charMin + rune(rng.NextIntn(charMax-charMin+1))
	return nil
}

// Equal reports gene-wise equality.
func (c *CharChromosome) Equal(other Chromosome) bool {
	o, ok := other.(*CharChromosome)
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
func (c *CharChromosome) CopyRange(src Chromosome, lo, hi int) error {
	o, ok := src.(*CharChromosome)
	if !ok || len(o.genes) != len(c.genes) {
		return evo.ErrShapeMismatch
	}
	copy(c.genes[lo:hi], o.genes[lo:hi])
	return nil
}

// SetLength reallocates the gene array, copying min(old,new) entries and
// filling any growth with charMin.
func (c *CharChromosome) SetLength(n int) {
	next := make([]rune, n)
	for i := range next {
		next[i] = charMin
	}
	copy(next, c.genes)
	c.genes = next
}
