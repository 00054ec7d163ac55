package som

import (
	"fmt"
	"math"

	"github.com/evocore/evo"
)

// A Learner trains a Network with the topology-aware Gaussian-neighborhood
// rule of spec.md §4.11.
type Learner struct {
	network        *Network
	learningRate   float64
	learningRadius int
	squaredRadius2 float64
}

// NewLearner validates learningRate ∈ [0,1] and learningRadius >= 0 and
// returns a Learner caching squaredRadius2 = 2*learningRadius^2.
func NewLearner(network *Network, learningRate float64, learningRadius int) (*Learner, error) {
	if learningRate < 0 || learningRate > 1 {
		return nil, fmt.Errorf("som: learning rate %v out of [0,1]: %w", learningRate, evo.ErrArgumentOutOfRange)
	}
	if learningRadius < 0 {
		return nil, fmt.Errorf("som: learning radius %d must be >= 0: %w", learningRadius, evo.ErrArgumentOutOfRange)
	}
	r := float64(learningRadius)
	return &Learner{
		network:        network,
		learningRate:   learningRate,
		learningRadius: learningRadius,
		squaredRadius2: 2 * r * r,
	}, nil
}

// DefaultLearner returns a Learner at spec.md §4.11's defaults:
// learningRate 0.1, learningRadius 7.
func DefaultLearner(network *Network) (*Learner, error) {
	return NewLearner(network, 0.1, 7)
}

// Run forward-computes the distance layer, finds the winner, and applies
// the update rule: winner-only if learningRadius is 0, otherwise a
// topology-aware BFS expansion with Gaussian falloff by ring distance. It
// returns the sum of absolute weight deltas applied (spec.md §4.11).
func (l *Learner) Run(input evo.Vector) (float64, error) {
	outputs := l.network.Layer.Compute(input)
	winner := GetWinner(outputs)

	if l.learningRadius == 0 {
		return l.applyUpdate(winner, input, l.learningRate), nil
	}
	return l.bfsUpdate(winner, input)
}

// RunEpoch runs Run over every input and returns the total error.
func (l *Learner) RunEpoch(inputs []evo.Vector) (float64, error) {
	total := 0.0
	for _, in := range inputs {
		e, err := l.Run(in)
		if err != nil {
			return total, err
		}
		total += e
	}
	return total, nil
}

// applyUpdate moves neuron idx's weights toward input by step and returns
// the sum of absolute deltas applied.
func (l *Learner) applyUpdate(idx int, input evo.Vector, step float64) float64 {
	neuron := l.network.Layer.Neurons[idx]
	before := neuron.Weights.Copy()
	neuron.Weights.Update(input, step)

	errSum := 0.0
	for i := range before {
		errSum += math.Abs(step * (input[i] - before[i]))
	}
	return errSum
}

// bfsUpdate walks rings outward from winner along the network's topology,
// scaling each ring's update by exp(-k^2/squaredRadius2), until a ring
// resolves empty or max(width,height,depth) rings have been visited
// (spec.md §4.11).
func (l *Learner) bfsUpdate(winner int, input evo.Vector) (float64, error) {
	maxRings := maxDim(l.network.width, l.network.height, l.network.depth)

	visited := map[int]bool{winner: true}
	currentRing := []int{winner}
	errSum := 0.0

	for k := 0; k <= maxRings && len(currentRing) > 0; k++ {
		factor := math.Exp(-float64(k*k) / l.squaredRadius2)
		nextRing := make([]int, 0)
		seenNext := map[int]bool{}

		for _, idx := range currentRing {
			errSum += l.applyUpdate(idx, input, l.learningRate*factor)

			for _, key := range l.network.locations[idx].Neighbors {
				nidx, err := l.network.resolve(key)
				if err != nil {
					return errSum, err
				}
				if nidx < 0 || visited[nidx] || seenNext[nidx] {
					continue
				}
				seenNext[nidx] = true
				nextRing = append(nextRing, nidx)
			}
		}

		for idx := range seenNext {
			visited[idx] = true
		}
		currentRing = nextRing
	}
	return errSum, nil
}

// RectangularLayer is the simpler rectangular-lattice neuron layout of
// spec.md §4.11's closing paragraph: neurons in row-major order, addressed
// by width alone rather than a topology map.
type RectangularLayer struct {
	Neurons []*DistanceNeuron
	Width   int
}

// RectangularLearner applies Learner's Gaussian update rule (spec.md §4.11)
// with the squared planar distance dx²+dy² from the winner where Learner
// uses the squared ring (hop) count k². On a single row or column of a
// bounded rectangular lattice the two coincide and both learners update
// weights identically; elsewhere the hop count is |dx|+|dy| and the two
// updates differ.
type RectangularLearner struct {
	layer          *RectangularLayer
	learningRate   float64
	squaredRadius2 float64
}

// NewRectangularLearner validates its parameters the same way NewLearner
// does.
func NewRectangularLearner(layer *RectangularLayer, learningRate float64, learningRadius int) (*RectangularLearner, error) {
	if learningRate < 0 || learningRate > 1 {
		return nil, fmt.Errorf("som: learning rate %v out of [0,1]: %w", learningRate, evo.ErrArgumentOutOfRange)
	}
	if learningRadius < 0 {
		return nil, fmt.Errorf("som: learning radius %d must be >= 0: %w", learningRadius, evo.ErrArgumentOutOfRange)
	}
	r := float64(learningRadius)
	return &RectangularLearner{layer: layer, learningRate: learningRate, squaredRadius2: 2 * r * r}, nil
}

// Run finds the winner and updates every neuron with Gaussian falloff by
// planar (dx,dy) distance from the winner.
func (l *RectangularLearner) Run(input evo.Vector) float64 {
	outputs := make([]float64, len(l.layer.Neurons))
	for i, n := range l.layer.Neurons {
		outputs[i] = n.Distance(input)
	}
	winner := GetWinner(outputs)
	wx, wy := winner%l.layer.Width, winner/l.layer.Width

	errSum := 0.0
	for j, n := range l.layer.Neurons {
		var factor float64
		if l.squaredRadius2 == 0 {
			if j != winner {
				continue
			}
			factor = 1
		} else {
			dx := float64(j%l.layer.Width - wx)
			dy := float64(j/l.layer.Width - wy)
			factor = math.Exp(-(dx*dx + dy*dy) / l.squaredRadius2)
		}

		step := l.learningRate * factor
		before := n.Weights.Copy()
		n.Weights.Update(input, step)
		for i := range before {
			errSum += math.Abs(step * (input[i] - before[i]))
		}
	}
	return errSum
}

// RunEpoch runs Run over every input and returns the total error.
func (l *RectangularLearner) RunEpoch(inputs []evo.Vector) float64 {
	total := 0.0
	for _, in := range inputs {
		total += l.Run(in)
	}
	return total
}
