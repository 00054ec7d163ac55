// Package host implements the population host of spec.md §4.9: the shared
// migration dispatcher a set of islands register with, plus the optional
// adjacency topology (SPEC_FULL.md §12) that restricts which islands may
// exchange migrants beyond the spec's minimal "any island whose id
// differs" default routing.
package host

import "github.com/google/uuid"

// A Topology restricts migration to a fixed adjacency list between island
// ids. A nil *Topology imposes no restriction (spec.md §4.9's default).
// Grounded on the teacher's pop/graph.go Hypercube/Grid/Ring/Custom
// layout constructors, regeneralized from slice-position adjacency to
// uuid-keyed adjacency since islands join a Host dynamically rather than
// being laid out from one fixed values slice (SPEC_FULL.md §12).
type Topology struct {
	adjacency map[uuid.UUID]map[uuid.UUID]struct{}
}

// NewTopology returns an empty topology with no edges.
func NewTopology() *Topology {
	return &Topology{adjacency: make(map[uuid.UUID]map[uuid.UUID]struct{})}
}

// Connect adds a symmetric edge between a and b.
func (t *Topology) Connect(a, b uuid.UUID) {
	t.link(a, b)
	t.link(b, a)
}

func (t *Topology) link(from, to uuid.UUID) {
	if t.adjacency[from] == nil {
		t.adjacency[from] = make(map[uuid.UUID]struct{})
	}
	t.adjacency[from][to] = struct{}{}
}

// Neighbors returns the island ids id may migrate to.
func (t *Topology) Neighbors(id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(t.adjacency[id]))
	for n := range t.adjacency[id] {
		out = append(out, n)
	}
	return out
}

// Allows reports whether a migration from -> to is permitted. A nil
// receiver allows every pair of distinct ids.
func (t *Topology) Allows(from, to uuid.UUID) bool {
	if t == nil {
		return from != to
	}
	_, ok := t.adjacency[from][to]
	return ok
}

// Hypercube connects ids as an n-dimensional hypercube, following the
// teacher's Hypercube: id i connects to every id whose position differs by
// one bit, for the smallest dimension covering len(ids).
func Hypercube(ids []uuid.UUID) *Topology {
	n := len(ids)
	var dimension uint
	for dimension = 0; n > (1 << dimension); dimension++ {
	}
	layout := make([][]int, n)
	for i := range ids {
		layout[i] = make([]int, dimension)
		for j := range layout[i] {
			layout[i][j] = (i ^ (1 << uint(j))) % n
		}
	}
	return Custom(ids, layout)
}

// Grid connects ids as a 2D torus: each id connects to its horizontal and
// vertical neighbors, wrapping at the edges (teacher's Grid). Rows are the
// smallest width w with w*w >= len(ids).
func Grid(ids []uuid.UUID) *Topology {
	n := len(ids)
	offset := 1
	for offset*offset < n {
		offset++
	}
	layout := make([][]int, n)
	for i := range ids {
		layout[i] = []int{
			((i + 1) + n) % n,
			((i - 1) + n) % n,
			((i + offset) + n) % n,
			((i - offset) + n) % n,
		}
	}
	return Custom(ids, layout)
}

// Ring connects each id to its immediate predecessor and successor
// (teacher's Ring).
func Ring(ids []uuid.UUID) *Topology {
	n := len(ids)
	layout := make([][]int, n)
	for i := range ids {
		layout[i] = []int{(i - 1 + n) % n, (i + 1) % n}
	}
	return Custom(ids, layout)
}

// Custom builds a topology from an adjacency list given in terms of
// position within ids: layout[i] lists the indices id i connects to
// (teacher's Custom).
func Custom(ids []uuid.UUID, layout [][]int) *Topology {
	t := NewTopology()
	for i, neighbors := range layout {
		for _, j := range neighbors {
			t.Connect(ids[i], ids[j])
		}
	}
	return t
}
