// Package topology builds the fixed-shape lattices the SOM engine learns
// over (spec.md §4.10): rectangular, hexagonal, octagonal, cube, and
// octagonal-prism grids, each exposing a canonical string key per cell and
// an ordered neighbor list consumers address by semantic name (Up, Left,
// LeftUp, In, ...). New relative to the teacher, which has no lattice
// concept; grounded on other_examples/438c059d_voievodin-self-organizing-
// map's 2-D Neuron{X,Y} grid, generalized to the five lattice kinds and
// fixed neighbor orders spec.md §4.10's table prescribes.
package topology

import (
	"fmt"

	"github.com/evocore/evo"
	"github.com/evocore/evo/rng"
)

// NeuronLocation is what createNode builds for one lattice cell: its
// canonical key and the ordered list of neighbor keys. A neighbor entry is
// the empty string when the lattice is bounded (non-toroidal) and that
// direction falls outside it; resolving a non-empty key against the network
// map is the caller's job (som.Network), which raises UnresolvedNeighbor on
// a miss.
type NeuronLocation struct {
	Key       string
	Neighbors []string
}

// Builder owns a lattice's dimensions and produces locations and initial
// weight vectors for it (spec.md §4.10).
type Builder interface {
	// TotalNodes is the product of the lattice's dimensions.
	TotalNodes() int

	// LocationFromIndex returns the canonical key of the i'th node in
	// index order.
	LocationFromIndex(i int) string

	// LocationFromCoord returns the canonical key at the given
	// coordinates, or "" if any coordinate is out of range and the
	// lattice is not toroidal.
	LocationFromCoord(coord ...int) string

	// WeightsAtIndex returns the initial weight vector for the i'th node:
	// every element equals min + i*(max-min)/TotalNodes() when randomised
	// is false (so values run from min up to, but not including, max), or
	// is drawn uniformly from [min,max) when true.
	WeightsAtIndex(i int, min, max float64, randomised bool) evo.Vector

	// CreateNode builds the i'th node's location, including its ordered
	// neighbor list.
	CreateNode(i int) NeuronLocation
}

func checkDimension(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("topology: %s must be positive, got %d: %w", name, v, evo.ErrArgumentOutOfRange)
	}
	return nil
}

// wrapOrBound resolves one axis coordinate: wraps modulo n if toroidal,
// otherwise reports false once v falls outside [0,n).
func wrapOrBound(v, n int, toroidal bool) (int, bool) {
	if toroidal {
		return ((v % n) + n) % n, true
	}
	if v < 0 || v >= n {
		return 0, false
	}
	return v, true
}

// weightsAtIndex is the shared linear/randomised weight-vector rule used by
// every lattice kind (spec.md §4.10).
func weightsAtIndex(i, total, size int, min, max float64, randomised bool) evo.Vector {
	v := evo.NewVector(size)
	if randomised {
		for k := range v {
			v[k] = min + rng.NextFloat64()*(max-min)
		}
		return v
	}
	value := min + float64(i)*(max-min)/float64(total)
	for k := range v {
		v[k] = value
	}
	return v
}
