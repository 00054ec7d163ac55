// Package sel implements the entity-selection strategies of spec.md §4.6:
// ways to draw one or two parents (or a migration candidate) from a
// population's live entities each generation. Grounded on the teacher's
// sel package (Random, Every, RandomRank, BestOfTwo, Roulette in
// sel/sel.go), regeneralized from the teacher's Genome interface to
// entity.Entity and ga.Population.
package sel

import (
	"github.com/evocore/evo"
	"github.com/evocore/evo/entity"
	"github.com/evocore/evo/ga"
	"github.com/evocore/evo/rng"
)

// Random draws entities uniformly at random, with replacement, terminating
// after OriginalCount × ratio successful draws (spec.md §4.6). Used bare as
// a SelectOne it sizes off MutationRatio; wrapped in RandomTwo as a
// SelectTwo it sizes off CrossoverRatio instead.
type Random struct {
	pop   *ga.Population
	i     int
	limit int
	ratio func(*ga.Population) float64
}

// NewRandom returns a Random SelectOne strategy.
func NewRandom() *Random { return &Random{ratio: (*ga.Population).MutationRatio} }

func (r *Random) Init(p *ga.Population) {
	r.pop = p
	r.i = 0
	ratio := r.ratio
	if ratio == nil {
		ratio = (*ga.Population).MutationRatio
	}
	r.limit = int(float64(p.OriginalCount()) * ratio(p))
}

func (r *Random) Next() (e *entity.Entity, done bool) {
	if r.i >= r.limit || r.pop.OriginalCount() == 0 {
		return nil, true
	}
	r.i++
	return r.pop.At(rng.NextIntn(r.pop.OriginalCount())), false
}

// NextTwo draws two distinct entities per call, using rng.NextExcept so the
// second draw can never repeat the first (spec.md §4.1).
func (r *Random) NextTwo() (mother, father *entity.Entity, done bool) {
	if r.i >= r.limit || r.pop.OriginalCount() < 2 {
		return nil, nil, true
	}
	r.i++
	a := rng.NextIntn(r.pop.OriginalCount())
	b := rng.NextExcept(r.pop.OriginalCount(), []int{a})
	return r.pop.At(a), r.pop.At(b), false
}

// RandomTwo adapts Random to ga.SelectTwo by delegating to NextTwo and
// sizing its draw budget off CrossoverRatio instead of MutationRatio.
type RandomTwo struct{ Random }

// NewRandomTwo returns a SelectTwo strategy offering OriginalCount ×
// CrossoverRatio pair-draws per generation (spec.md §4.6, scenario S2).
func NewRandomTwo() *RandomTwo {
	return &RandomTwo{Random{ratio: (*ga.Population).CrossoverRatio}}
}

func (r *RandomTwo) Next() (mother, father *entity.Entity, done bool) { return r.NextTwo() }

// Every offers every original-generation entity exactly once, in slice
// order — the selector behind a full generational replacement policy.
type Every struct {
	pop *ga.Population
	i   int
}

func NewEvery() *Every { return &Every{} }

func (e *Every) Init(p *ga.Population) { e.pop = p; e.i = 0 }

func (e *Every) Next() (*entity.Entity, bool) {
	if e.i >= e.pop.OriginalCount() {
		return nil, true
	}
	v := e.pop.At(e.i)
	e.i++
	return v, false
}

// EveryTwo pairs up consecutive original entities: (0,1), (2,3), ...
type EveryTwo struct {
	pop *ga.Population
	i   int
}

func NewEveryTwo() *EveryTwo { return &EveryTwo{} }

func (e *EveryTwo) Init(p *ga.Population) { e.pop = p; e.i = 0 }

func (e *EveryTwo) Next() (mother, father *entity.Entity, done bool) {
	if e.i+1 >= e.pop.OriginalCount() {
		return nil, nil, true
	}
	mother, father = e.pop.At(e.i), e.pop.At(e.i+1)
	e.i += 2
	return mother, father, false
}

// RandomRank iterates state from 1 upward; with probability CrossoverRatio
// it pairs the entity at index state with a uniformly drawn earlier one
// (index < state), biasing toward higher-ranked (earlier, since Population
// keeps entities sorted by descending fitness after survival) entities
// without an explicit fitness-proportional weighting pass (spec.md §4.6).
// Restricted to state < OriginalCount — the strict "state < OriginalCount"
// termination spec.md's body prescribes "for clarity" (DESIGN.md's Open
// Question decision).
type RandomRank struct {
	pop   *ga.Population
	state int
}

func NewRandomRank() *RandomRank { return &RandomRank{} }

func (r *RandomRank) Init(p *ga.Population) { r.pop = p; r.state = 1 }

func (r *RandomRank) Next() (mother, father *entity.Entity, done bool) {
	for r.state < r.pop.OriginalCount() {
		state := r.state
		r.state++
		if !rng.RandomProb(r.pop.CrossoverRatio()) {
			continue
		}
		earlier := rng.NextIntn(state)
		return r.pop.At(state), r.pop.At(earlier), false
	}
	return nil, nil, true
}

// BestOfTwo draws two random candidates and returns the fitter one — a
// single-entity tournament of size two.
type BestOfTwo struct {
	N   int
	pop *ga.Population
	i   int
}

func NewBestOfTwo(n int) *BestOfTwo { return &BestOfTwo{N: n} }

func (b *BestOfTwo) Init(p *ga.Population) { b.pop = p; b.i = 0 }

func (b *BestOfTwo) Next() (*entity.Entity, bool) {
	if b.i >= b.N || b.pop.OriginalCount() == 0 {
		return nil, true
	}
	b.i++
	oc := b.pop.OriginalCount()
	idx := rng.NextIntn(oc)
	x := b.pop.At(idx)
	if oc == 1 {
		return x, false
	}
	y := b.pop.At(rng.NextExcept(oc, []int{idx}))
	if y.Fitness() > x.Fitness() {
		return y, false
	}
	return x, false
}

// Roulette draws a random original entity and accepts it with probability
// z/(z+1), where z is how many standard deviations its fitness sits above
// the population mean, using evo.Stats's streaming mean/stddev instead of a
// hand-rolled two-pass computation (SPEC_FULL.md §12). Candidates at or
// below the mean are rejected, with two exceptions: when every fitness is
// equal the first candidate is returned, and after 4 × OriginalCount
// rejected candidates a uniformly drawn entity is returned whatever its
// fitness.
type Roulette struct {
	N     int
	pop   *ga.Population
	i     int
	stats evo.Stats
}

func NewRoulette(n int) *Roulette { return &Roulette{N: n} }

func (r *Roulette) Init(p *ga.Population) {
	r.pop = p
	r.i = 0
	r.stats = p.View().Stats()
}

func (r *Roulette) Next() (*entity.Entity, bool) {
	if r.i >= r.N || r.pop.OriginalCount() == 0 {
		return nil, true
	}
	r.i++
	mean := r.stats.Mean()
	sd := r.stats.SD()
	oc := r.pop.OriginalCount()
	for attempt := 0; attempt < oc*4; attempt++ {
		cand := r.pop.At(rng.NextIntn(oc))
		if sd == 0 {
			return cand, false
		}
		z := (cand.Fitness() - mean) / sd
		if z <= 0 {
			continue
		}
		p := z / (z + 1)
		if rng.RandomProb(clamp01(p)) {
			return cand, false
		}
	}
	return r.pop.At(rng.NextIntn(oc)), false
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
