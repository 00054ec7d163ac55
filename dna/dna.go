// Package dna implements the ordered, name-keyed collection of chromosomes
// owned by an entity (spec.md §4.3).
package dna

import (
	"fmt"
	"strings"

	"github.com/evocore/evo"
	"github.com/evocore/evo/chromosome"
)

// A DNA is an insertion-ordered, case-insensitive mapping from name to
// chromosome. Every name appears at most once.
type DNA struct {
	names  []string // insertion order, original case
	lookup map[string]chromosome.Chromosome
}

// New returns an empty DNA.
func New() *DNA {
	return &DNA{lookup: make(map[string]chromosome.Chromosome)}
}

func key(name string) string {
	return strings.ToLower(name)
}

// Add inserts a chromosome under name. It returns evo.ErrDuplicateName if
// name is already present (case-insensitively).
func (d *DNA) Add(name string, c chromosome.Chromosome) error {
	k := key(name)
	if _, ok := d.lookup[k]; ok {
		return fmt.Errorf("dna: name %q already present: %w", name, evo.ErrDuplicateName)
	}
	d.lookup[k] = c
	d.names = append(d.names, name)
	return nil
}

// Get returns the chromosome stored under name, and whether it was found.
func (d *DNA) Get(name string) (chromosome.Chromosome, bool) {
	c, ok := d.lookup[key(name)]
	return c, ok
}

// Names returns the chromosome names in insertion order.
func (d *DNA) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len returns the number of chromosomes.
func (d *DNA) Len() int {
	return len(d.names)
}

// Clone deep-copies every chromosome into a new DNA with the same name
// order.
func (d *DNA) Clone() *DNA {
	dup := New()
	for _, name := range d.names {
		c := d.lookup[key(name)]
		dup.names = append(dup.names, name)
		dup.lookup[key(name)] = c.Clone()
	}
	return dup
}

// Seed broadcasts Seed(p) to every chromosome.
func (d *DNA) Seed(p float64) error {
	for _, name := range d.names {
		if err := d.lookup[key(name)].Seed(p); err != nil {
			return fmt.Errorf("dna: seeding %q: %w", name, err)
		}
	}
	return nil
}

// Dispose clears the collection. Chromosomes carry no external resources to
// release beyond garbage collection, so Dispose is equivalent to dropping
// every reference.
func (d *DNA) Dispose() {
	d.names = nil
	d.lookup = make(map[string]chromosome.Chromosome)
}
