package chromosome

import (
	"github.com/evocore/evo"
	"github.com/evocore/evo/rng"
)

// A DoubleChromosome is a fixed-length sequence of float64 genes bounded to
// [MinValue, MaxValue], drifting by a fixed per-chromosome Drift step
// (spec.md §4.2).
type DoubleChromosome struct {
	MinValue, MaxValue float64
	Drift              float64
	genes              []float64
}

// NewDouble returns a DoubleChromosome of the given length, bounds, and
// drift step, all genes set to min.
func NewDouble(length int, min, max, drift float64) *DoubleChromosome {
	genes := make([]float64, length)
	for i := range genes {
		genes[i] = min
	}
	return &DoubleChromosome{MinValue: min, MaxValue: max, Drift: drift, genes: genes}
}

func (c *DoubleChromosome) bound(v float64) float64 {
	if v < c.MinValue {
		return c.MinValue
	}
	if v > c.MaxValue {
		return c.MaxValue
	}
	return v
}

// Len returns the number of genes.
func (c *DoubleChromosome) Len() int { return len(c.genes) }

// Get returns gene i.
func (c *DoubleChromosome) Get(i int) (float64, error) {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return 0, err
	}
	return c.genes[i], nil
}

// Set assigns gene i, clamping into [MinValue, MaxValue].
func (c *DoubleChromosome) Set(i int, v float64) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	c.genes[i] = c.bound(v)
	return nil
}

// AsVector exposes the genes as an evo.Vector for the SOM learner and
// evolution-strategy style adaption operators; mutations through Vector
// bypass bounds and locking and are the caller's responsibility.
func (c *DoubleChromosome) AsVector() evo.Vector {
	return evo.Vector(c.genes)
}

// Clone returns a deep copy.
func (c *DoubleChromosome) Clone() Chromosome {
	dup := make([]float64, len(c.genes))
	copy(dup, c.genes)
	return &DoubleChromosome{MinValue: c.MinValue, MaxValue: c.MaxValue, Drift: c.Drift, genes: dup}
}

// Seed picks each gene uniformly from [MinValue, MaxValue].
func (c *DoubleChromosome) Seed(_ float64) error {
	span := c.MaxValue - c.MinValue
	for i := range c.genes {
		c.genes[i] = c.MinValue + rng.NextFloat64()*span
	}
	return nil
}

// MutateDrift adds (Up) or subtracts (Down) the chromosome's Drift step from
// gene i, then clamps to bounds.
func (c *DoubleChromosome) MutateDrift(i int, dir Direction) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	if dir == Up {
		c.genes[i] = c.bound(c.genes[i] + c.Drift)
	} else {
		c.genes[i] = c.bound(c.genes[i] - c.Drift)
	}
	return nil
}

// MutateRandom replaces gene i with a fresh uniform draw.
func (c *DoubleChromosome) MutateRandom(i int) error {
	if err := checkIndex(i, len(c.genes)); err != nil {
		return err
	}
	span := c.MaxValue - c.MinValue
	c.genes[i] = c.MinValue + rng.NextFloat64()*span
	return nil
}

// Equal reports gene-wise equality (bounds and drift are not compared).
func (c *DoubleChromosome) Equal(other Chromosome) bool {
	o, ok := other.(*DoubleChromosome)
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
func (c *DoubleChromosome) CopyRange(src Chromosome, lo, hi int) error {
	o, ok := src.(*DoubleChromosome)
	if !ok || len(o.genes) != len(c.genes) {
		return evo.ErrShapeMismatch
	}
	copy(c.genes[lo:hi], o.genes[lo:hi])
	return nil
}

// SetLength reallocates the gene array, copying min(old,new) entries and
// filling any growth with MinValue.
func (c *DoubleChromosome) SetLength(n int) {
	next := make([]float64, n)
	for i := range next {
		next[i] = c.MinValue
	}
	copy(next, c.genes)
	c.genes = next
}
