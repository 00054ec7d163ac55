package chromosome

// A Locking chromosome wraps another Chromosome and adds a per-gene lock
// bit. A locked gene is immune to MutateDrift, MutateRandom, and CopyRange
// (spec.md §4.2: "locked genes never change after a set-lock call").
type Locking struct {
	Chromosome
	locked []bool
}

// NewLocking wraps inner in a Locking chromosome with every gene unlocked.
func NewLocking(inner Chromosome) *Locking {
	return &Locking{Chromosome: inner, locked: make([]bool, inner.Len())}
}

// Lock sets or clears the lock bit of gene i.
func (l *Locking) Lock(i int, locked bool) error {
	if err := checkIndex(i, len(l.locked)); err != nil {
		return err
	}
	l.locked[i] = locked
	return nil
}

// Locked reports whether gene i is locked.
func (l *Locking) Locked(i int) (bool, error) {
	if err := checkIndex(i, len(l.locked)); err != nil {
		return false, err
	}
	return l.locked[i], nil
}

// Clone deep-copies the inner chromosome and the lock bits.
func (l *Locking) Clone() Chromosome {
	dup := make([]bool, len(l.locked))
	copy(dup, l.locked)
	return &Locking{Chromosome: l.Chromosome.Clone(), locked: dup}
}

// MutateDrift is a no-op on a locked gene, otherwise delegates.
func (l *Locking) MutateDrift(i int, dir Direction) error {
	locked, err := l.Locked(i)
	if err != nil {
		return err
	}
	if locked {
		return nil
	}
	return l.Chromosome.MutateDrift(i, dir)
}

// MutateRandom is a no-op on a locked gene, otherwise delegates.
func (l *Locking) MutateRandom(i int) error {
	locked, err := l.Locked(i)
	if err != nil {
		return err
	}
	if locked {
		return nil
	}
	return l.Chromosome.MutateRandom(i)
}

// CopyRange delegates gene-by-gene so locked positions within [lo,hi) are
// preserved instead of overwritten.
func (l *Locking) CopyRange(src Chromosome, lo, hi int) error {
	o, ok := src.(*Locking)
	if !ok {
		o = nil
	}
	for i := lo; i < hi; i++ {
		if l.locked[i] {
			continue
		}
		if o != nil {
			if err := l.Chromosome.CopyRange(o.Chromosome, i, i+1); err != nil {
				return err
			}
		} else {
			if err := l.Chromosome.CopyRange(src, i, i+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetLength reallocates the inner chromosome and the lock bits, copying
// min(old,new) lock bits and leaving growth unlocked.
func (l *Locking) SetLength(n int) {
	l.Chromosome.SetLength(n)
	next := make([]bool, n)
	copy(next, l.locked)
	l.locked = next
}
