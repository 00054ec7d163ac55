// Package rng provides the single, thread-safe pseudorandom source shared by
// the genetic-algorithm and SOM engines (spec.md §4.1, §9). A process-wide
// singleton is exposed through the package-level functions; Source also be
// instantiated directly so tests can substitute a deterministic stream.
package rng

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

// A Source is a mutually-serialized pseudorandom source. The zero value is
// not ready for use; construct one with New.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Source seeded from the given value.
func New(seed int64) *Source {
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// NewSeeded returns a Source seeded from the current time, suitable for
// production use where determinism isn't required.
func NewSeeded() *Source {
	return New(time.Now().UnixNano())
}

var global = NewSeeded()

// Global returns the process-wide shared Source.
func Global() *Source {
	return global
}

// NextInt returns a nonnegative pseudorandom int.
func (s *Source) NextInt() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Int()
}

// NextIntn returns a pseudorandom int in [0, max).
func (s *Source) NextIntn(max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(max)
}

// NextIntRange returns a pseudorandom int in [min, max).
func (s *Source) NextIntRange(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rnd.Intn(max-min)
}

// NextFloat64 returns a pseudorandom float64 in [0.0, 1.0).
func (s *Source) NextFloat64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// NextNormFloat64 returns a pseudorandom float64 from the standard normal
// distribution, used by adaption's steepest-ascent operator.
func (s *Source) NextNormFloat64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.NormFloat64()
}

// NextBytes fills buf with pseudorandom bytes.
func (s *Source) NextBytes(buf []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Read(buf)
}

// RandomProb returns true with probability p. p must be in [0,1]; panics
// otherwise per spec.md §4.1's precondition (a misused probability is a
// programmer error, not a recoverable one, consistent with the rest of this
// package's argument contracts).
func (s *Source) RandomProb(p float64) bool {
	if p < 0 || p > 1 {
		panic("rng: RandomProb: probability out of range")
	}
	return s.NextFloat64() < p
}

// NextExcept draws a value uniformly from [0, max) \ excluded. excluded must
// contain distinct values, all within [0, max). The algorithm samples
// v in [0, max-len(excluded)) and then, for each sorted excluded value e<=v,
// increments v by one — spec.md §4.1's exact prescription, which guarantees
// uniformity over the allowed values without rejection sampling.
func (s *Source) NextExcept(max int, excluded []int) int {
	n := max - len(excluded)
	if n <= 0 {
		panic("rng: NextExcept: no values left to draw")
	}

	sorted := make([]int, len(excluded))
	copy(sorted, excluded)
	sort.Ints(sorted)

	v := s.NextIntn(n)
	for _, e := range sorted {
		if e <= v {
			v++
		}
	}
	return v
}

// Package-level convenience functions operating on the global Source.

// NextInt returns a nonnegative pseudorandom int from the global source.
func NextInt() int { return global.NextInt() }

// NextIntn returns a pseudorandom int in [0, max) from the global source.
func NextIntn(max int) int { return global.NextIntn(max) }

// NextIntRange returns a pseudorandom int in [min, max) from the global source.
func NextIntRange(min, max int) int { return global.NextIntRange(min, max) }

// NextFloat64 returns a pseudorandom float64 in [0,1) from the global source.
func NextFloat64() float64 { return global.NextFloat64() }

// NextNormFloat64 returns a standard-normal pseudorandom float64 from the
// global source.
func NextNormFloat64() float64 { return global.NextNormFloat64() }

// NextBytes fills buf using the global source.
func NextBytes(buf []byte) { global.NextBytes(buf) }

// RandomProb reports true with probability p, using the global source.
func RandomProb(p float64) bool { return global.RandomProb(p) }

// NextExcept draws from [0, max) \ excluded, using the global source.
func NextExcept(max int, excluded []int) int { return global.NextExcept(max, excluded) }
