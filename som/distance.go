// Package som implements the self-organizing-map engine of spec.md §4.11-
// §4.12: distance neurons computing Euclidean distance to an input vector,
// a network of them laid out over a som/topology lattice, and a learner
// that drives the winner-take-most Gaussian-neighborhood update rule.
// Grounded on other_examples/438c059d_voievodin-self-organizing-map's
// Neuron/SOM/DistanceFunc/InfluenceFunc shape, generalized to the
// topology-aware BFS ring-walk spec.md §4.11 prescribes in place of that
// reference's fixed 2-D grid.
package som

import (
	"github.com/evocore/evo"
	"github.com/evocore/evo/rng"
)

// A DistanceNeuron computes the Euclidean distance between its weight
// vector and an input (spec.md §4.12).
type DistanceNeuron struct {
	Weights evo.Vector
}

// NewDistanceNeuron wraps an initial weight vector.
func NewDistanceNeuron(weights evo.Vector) *DistanceNeuron {
	return &DistanceNeuron{Weights: weights}
}

// Distance returns ||input - Weights||2.
func (n *DistanceNeuron) Distance(input evo.Vector) float64 {
	return n.Weights.Distance(input)
}

// A DistanceLayer computes an output vector of per-neuron distances.
type DistanceLayer struct {
	Neurons []*DistanceNeuron
}

// Compute returns the distance of input to each neuron's weights, in
// neuron order.
func (l *DistanceLayer) Compute(input evo.Vector) []float64 {
	out := make([]float64, len(l.Neurons))
	for i, n := range l.Neurons {
		out[i] = n.Distance(input)
	}
	return out
}

// GetWinner returns the argmin of outputs, the index of the best-matching
// unit. Ties are broken by a uniform random choice among the minimal
// candidates (the reference SOM's findBMU behavior).
func GetWinner(outputs []float64) int {
	best := 0
	bestVal := outputs[0]
	ties := []int{0}
	for i := 1; i < len(outputs); i++ {
		switch {
		case outputs[i] < bestVal:
			bestVal = outputs[i]
			ties = ties[:0]
			ties = append(ties, i)
			best = i
		case outputs[i] == bestVal:
			ties = append(ties, i)
		}
	}
	if len(ties) > 1 {
		best = ties[rng.NextIntn(len(ties))]
	}
	return best
}
