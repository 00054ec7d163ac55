// Package activation supplies the minimal feed-forward scaffold spec.md §1
// describes only at interface level: layers of activation neurons behind a
// small Neuron surface (compute/randomize), without back-propagation, delta
// rule, RPROP, or pipeline fan-out — those are explicitly out of scope
// (spec.md §1). ActivationNeuron is the only Neuron implementation in this
// module; the SOM engine's som.DistanceNeuron exposes Distance rather than
// Compute and has no Randomize method, so it does not satisfy Neuron.
package activation

import (
	"math"

	"github.com/evocore/evo"
	"github.com/evocore/evo/rng"
)

// Neuron is the surface a Layer computes over: compute a scalar output from
// an input vector, and randomize internal state. ActivationNeuron implements
// it; som.DistanceNeuron does not.
type Neuron interface {
	Compute(input evo.Vector) float64
	Randomize(min, max float64)
}

// Func is an activation function applied to a neuron's weighted sum.
type Func func(float64) float64

// Sigmoid is the standard logistic activation function.
func Sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Tanh is the hyperbolic-tangent activation function.
func Tanh(x float64) float64 { return math.Tanh(x) }

// Identity passes its input through unchanged.
func Identity(x float64) float64 { return x }

// An ActivationNeuron computes Func(dot(Weights, input) + Bias).
type ActivationNeuron struct {
	Weights evo.Vector
	Bias    float64
	Func    Func
}

// NewActivationNeuron returns a neuron with n weights (zero-valued) using
// fn as its activation function.
func NewActivationNeuron(n int, fn Func) *ActivationNeuron {
	return &ActivationNeuron{Weights: evo.NewVector(n), Func: fn}
}

// Compute implements Neuron.
func (n *ActivationNeuron) Compute(input evo.Vector) float64 {
	return n.Func(n.Weights.Dot(input) + n.Bias)
}

// Randomize implements Neuron, drawing each weight and the bias uniformly
// from [min, max].
func (n *ActivationNeuron) Randomize(min, max float64) {
	for i := range n.Weights {
		n.Weights[i] = min + rng.NextFloat64()*(max-min)
	}
	n.Bias = min + rng.NextFloat64()*(max-min)
}

// A Layer is an ordered set of neurons sharing an input vector.
type Layer struct {
	Neurons []Neuron
}

// Compute returns each neuron's output, in neuron order.
func (l *Layer) Compute(input evo.Vector) evo.Vector {
	out := evo.NewVector(len(l.Neurons))
	for i, n := range l.Neurons {
		out[i] = n.Compute(input)
	}
	return out
}

// Randomize randomizes every neuron in the layer.
func (l *Layer) Randomize(min, max float64) {
	for _, n := range l.Neurons {
		n.Randomize(min, max)
	}
}
