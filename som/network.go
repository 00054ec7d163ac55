package som

import (
	"fmt"

	"github.com/evocore/evo"
	"github.com/evocore/evo/som/topology"
)

// A Network lays a DistanceLayer out over a topology.Builder's lattice: it
// holds each neuron's location (in index order) and a key->index map so a
// location's neighbor keys resolve back to neuron indices (spec.md §4.10's
// "map stores key -> holder(location, lazy-resolved neighbor holders)").
// Resolution happens lazily, inside the learner's ring-walk, not at
// construction.
type Network struct {
	Layer *DistanceLayer

	width, height, depth int
	locations            []topology.NeuronLocation
	keyIndex             map[string]int
}

// NewNetwork builds a Network from builder, assigning each of its
// TotalNodes() cells a DistanceNeuron seeded via WeightsAtIndex. width,
// height and depth are the same dimensions builder was constructed with;
// the learner's BFS ring-walk needs them to bound how many rings to try
// (spec.md §4.11: "up to max(width, height, depth) rings"). depth is 1 for
// a 2-D lattice.
func NewNetwork(builder topology.Builder, width, height, depth int, min, max float64, randomised bool) *Network {
	total := builder.TotalNodes()
	locations := make([]topology.NeuronLocation, total)
	neurons := make([]*DistanceNeuron, total)
	keyIndex := make(map[string]int, total)

	for i := 0; i < total; i++ {
		loc := builder.CreateNode(i)
		locations[i] = loc
		keyIndex[loc.Key] = i
		neurons[i] = NewDistanceNeuron(builder.WeightsAtIndex(i, min, max, randomised))
	}

	return &Network{
		Layer:     &DistanceLayer{Neurons: neurons},
		width:     width,
		height:    height,
		depth:     depth,
		locations: locations,
		keyIndex:  keyIndex,
	}
}

// Len returns the number of neurons in the network.
func (n *Network) Len() int { return len(n.locations) }

// Location returns the i'th neuron's location record.
func (n *Network) Location(i int) topology.NeuronLocation { return n.locations[i] }

// resolve maps a neighbor key to its neuron index. The empty key (a bounded
// lattice's missing edge neighbor) resolves to -1 with no error; any other
// key absent from the map is a builder/toroidal mismatch and raises
// evo.ErrUnresolvedNeighbor (spec.md §4.10, §7).
func (n *Network) resolve(key string) (int, error) {
	if key == "" {
		return -1, nil
	}
	idx, ok := n.keyIndex[key]
	if !ok {
		return -1, fmt.Errorf("som: neighbor key %q not found in network: %w", key, evo.ErrUnresolvedNeighbor)
	}
	return idx, nil
}

func maxDim(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
