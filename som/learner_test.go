package som_test

import (
	"math"
	"testing"

	"github.com/evocore/evo"
	"github.com/evocore/evo/som"
	"github.com/evocore/evo/som/topology"
	"github.com/stretchr/testify/require"
)

func TestWinnerOnlyUpdateMovesOnlyClosestNeuron(t *testing.T) {
	builder, err := topology.NewRectangular(2, 3, 3, false)
	require.NoError(t, err)
	net := som.NewNetwork(builder, 3, 3, 1, 0, 1, false)

	// Force neuron 4 (the center, "1,1") to start exactly on the input so
	// it is guaranteed the winner.
	net.Layer.Neurons[4].Weights = evo.Vector{0.5, 0.5}

	learner, err := som.NewLearner(net, 0.5, 0)
	require.NoError(t, err)

	before := make([]evo.Vector, len(net.Layer.Neurons))
	for i, n := range net.Layer.Neurons {
		before[i] = n.Weights.Copy()
	}

	_, err = learner.Run(evo.Vector{0.5, 0.5})
	require.NoError(t, err)

	for i, n := range net.Layer.Neurons {
		if i == 4 {
			continue
		}
		require.Equal(t, before[i], n.Weights, "neuron %d moved under radius 0", i)
	}
}

func TestGaussianFalloffMatchesRingDistance(t *testing.T) {
	builder, err := topology.NewRectangular(1, 5, 1, false)
	require.NoError(t, err)
	net := som.NewNetwork(builder, 5, 1, 1, 0, 0, false) // all weights start at 0

	learner, err := som.NewLearner(net, 1.0, 2)
	require.NoError(t, err)

	_, err = learner.Run(evo.Vector{1})
	require.NoError(t, err)

	// Every neuron starts at weight 0, the same distance (1) from the input,
	// so the winner is a random pick among the tied neurons; instead assert
	// the *shape* of the
	// update: it strictly decreases with BFS ring distance from the
	// winner, matching exp(-k^2/(2*r^2)).
	winnerIdx := -1
	for i, n := range net.Layer.Neurons {
		if n.Weights[0] > 0 {
			if winnerIdx == -1 || n.Weights[0] > net.Layer.Neurons[winnerIdx].Weights[0] {
				winnerIdx = i
			}
		}
	}
	require.GreaterOrEqual(t, winnerIdx, 0)

	for i := 0; i < len(net.Layer.Neurons); i++ {
		if i == winnerIdx {
			continue
		}
		k := i - winnerIdx
		if k < 0 {
			k = -k
		}
		expected := 1.0 * math.Exp(-float64(k*k)/(2*2*2))
		require.InDelta(t, expected, net.Layer.Neurons[i].Weights[0], 1e-9)
	}
}

func TestUnresolvedNeighborSurfacesFromBrokenTopology(t *testing.T) {
	builder, err := topology.NewRectangular(1, 2, 1, false)
	require.NoError(t, err)
	net := som.NewNetwork(builder, 2, 1, 1, 0, 1, false)

	// Corrupt the network's location for neuron 0 so it claims a neighbor
	// key that was never registered, simulating a builder/toroidal
	// mismatch.
	net.Location(0).Neighbors[2] = "9,9"

	learner, err := som.NewLearner(net, 0.5, 1)
	require.NoError(t, err)
	_, err = learner.Run(evo.Vector{1})
	require.ErrorIs(t, err, evo.ErrUnresolvedNeighbor)
}

// TestRectangularLearnerMatchesTopologyLearnerOnBoundedGrid checks
// spec.md §4.11's equivalence claim on a single row, where the
// topology-aware BFS ring (hop count) and the simpler learner's straight
// dx (row distance from the winner) coincide exactly — the case the two
// formulas are built to agree on.
func TestRectangularLearnerMatchesTopologyLearnerOnBoundedGrid(t *testing.T) {
	builder, err := topology.NewRectangular(1, 5, 1, false)
	require.NoError(t, err)
	topoNet := som.NewNetwork(builder, 5, 1, 1, 0, 0, false)
	topoNet.Layer.Neurons[2].Weights = evo.Vector{1} // force neuron 2 as the unique winner
	topoLearner, err := som.NewLearner(topoNet, 0.5, 2)
	require.NoError(t, err)

	rectLayer := &som.RectangularLayer{Width: 5}
	for i := range topoNet.Layer.Neurons {
		w := 0.0
		if i == 2 {
			w = 1
		}
		rectLayer.Neurons = append(rectLayer.Neurons, som.NewDistanceNeuron(evo.Vector{w}))
	}
	rectLearner, err := som.NewRectangularLearner(rectLayer, 0.5, 2)
	require.NoError(t, err)

	input := evo.Vector{1}
	_, err = topoLearner.Run(input)
	require.NoError(t, err)
	rectLearner.Run(input)

	for i := range topoNet.Layer.Neurons {
		require.InDelta(t, topoNet.Layer.Neurons[i].Weights[0], rectLayer.Neurons[i].Weights[0], 1e-9)
	}
}
