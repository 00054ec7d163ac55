package activation_test

import (
	"testing"

	"github.com/evocore/evo"
	"github.com/evocore/evo/activation"
	"github.com/stretchr/testify/require"
)

func TestActivationNeuronComputesWeightedSum(t *testing.T) {
	n := activation.NewActivationNeuron(3, activation.Identity)
	n.Weights = evo.Vector{1, 2, 3}
	n.Bias = 1

	got := n.Compute(evo.Vector{1, 1, 1})
	require.Equal(t, 1.0+2.0+3.0+1.0, got)
}

func TestSigmoidBoundedBetweenZeroAndOne(t *testing.T) {
	require.InDelta(t, 0.5, activation.Sigmoid(0), 1e-9)
	require.Greater(t, activation.Sigmoid(10), 0.9)
	require.Less(t, activation.Sigmoid(-10), 0.1)
}

func TestLayerComputesOneOutputPerNeuron(t *testing.T) {
	l := &activation.Layer{Neurons: []activation.Neuron{
		activation.NewActivationNeuron(2, activation.Identity),
		activation.NewActivationNeuron(2, activation.Identity),
	}}
	out := l.Compute(evo.Vector{1, 1})
	require.Len(t, out, 2)
}

func TestRandomizeStaysWithinRange(t *testing.T) {
	n := activation.NewActivationNeuron(5, activation.Identity)
	n.Randomize(-1, 1)
	for _, w := range n.Weights {
		require.GreaterOrEqual(t, w, -1.0)
		require.LessOrEqual(t, w, 1.0)
	}
}
