// Package adapt implements the local-search refinement operators of spec.md
// §4.8: hill-climbing (next-ascent and random-ascent), simulated annealing,
// and a steepest-ascent gradient walk over an entity's Double chromosomes.
// New relative to the teacher, which has no local-search pass; grounded on
// real/evostrat.go's step/adapt shape (lognormal step-size scaling, the
// model this package's SteepestAscent α/β scaling follows) and spec.md
// §4.7's literal formulas.
package adapt

import (
	"math"

	"github.com/evocore/evo/chromosome"
	"github.com/evocore/evo/dna"
	"github.com/evocore/evo/entity"
	"github.com/evocore/evo/ga"
	"github.com/evocore/evo/rng"
)

// totalGenes counts every gene across every chromosome in d, the search
// space HillClimbing and SimulatedAnnealing walk over.
func totalGenes(d *dna.DNA) int {
	total := 0
	for _, name := range d.Names() {
		c, _ := d.Get(name)
		total += c.Len()
	}
	return total
}

// geneAt maps a flat index over totalGenes(d) back to a (chromosome name,
// gene index) pair.
func geneAt(d *dna.DNA, flat int) (name string, idx int) {
	for _, n := range d.Names() {
		c, _ := d.Get(n)
		if flat < c.Len() {
			return n, flat
		}
		flat -= c.Len()
	}
	return "", 0
}

func doubleNames(d *dna.DNA) []string {
	var names []string
	for _, n := range d.Names() {
		if c, _ := d.Get(n); c != nil {
			if _, ok := c.(*chromosome.DoubleChromosome); ok {
				names = append(names, n)
			}
		}
	}
	return names
}

// rescoreClone rebuilds candidate's phenotype and fitness after its DNA was
// mutated directly (bypassing the normal crossover/mutation phases), via
// entity.Reinitialise + LoadEntity + EnsureFitness.
func rescoreClone(candidate *entity.Entity) error {
	candidate.Reinitialise()
	if err := candidate.LoadEntity(); err != nil {
		return err
	}
	_, err := candidate.EnsureFitness()
	return err
}

func randomDirection() chromosome.Direction {
	if rng.RandomProb(0.5) {
		return chromosome.Up
	}
	return chromosome.Down
}

// AscentMode selects how HillClimbing picks the next gene to perturb.
type AscentMode int

const (
	// NextAscent walks the flattened gene space in a fixed round-robin
	// order, one gene per iteration.
	NextAscent AscentMode = iota
	// RandomAscent picks a uniformly random gene each iteration.
	RandomAscent
)

// HillClimbing perturbs one gene at a time by a single MutateDrift step,
// keeping the perturbation only if it improves fitness (spec.md §4.8).
type HillClimbing struct {
	Mode AscentMode
}

func (h HillClimbing) Optimise(p *ga.Population, best *entity.Entity, maxIterations int) (*entity.Entity, int, error) {
	current := best
	var improved *entity.Entity
	total := totalGenes(current.DNA())
	if total == 0 {
		return nil, 0, nil
	}

	cursor := 0
	iterations := 0
	for iterations < maxIterations {
		var flat int
		if h.Mode == NextAscent {
			flat = cursor % total
			cursor++
		} else {
			flat = rng.NextIntn(total)
		}

		candidate := current.Clone()
		name, idx := geneAt(candidate.DNA(), flat)
		c, _ := candidate.DNA().Get(name)
		if err := c.MutateDrift(idx, randomDirection()); err != nil {
			return nil, iterations, err
		}
		if err := rescoreClone(candidate); err != nil {
			return nil, iterations, err
		}
		iterations++

		if candidate.Fitness() > current.Fitness() {
			current = candidate
			improved = candidate
		}
	}
	return improved, iterations, nil
}

// AnnealingSchedule selects how SimulatedAnnealing cools its temperature
// between iterations — independent of the AcceptanceRule it pairs with
// (spec.md §4.7 specifies schedule and acceptance as two separate axes).
type AnnealingSchedule int

const (
	// LinearSchedule cools linearly in the iteration count:
	// T = T0 + (i/maxIterations)·(TFinal - T0).
	LinearSchedule AnnealingSchedule = iota
	// StepSchedule subtracts StepSize from the temperature every
	// StepFrequency iterations, floored at TFinal.
	StepSchedule
)

// AcceptanceRule selects how SimulatedAnnealing decides whether to accept a
// putative move that does not improve fitness.
type AcceptanceRule int

const (
	// BoltzmannAcceptance accepts with probability
	// exp((putative.f - best.f) / (k * T)).
	BoltzmannAcceptance AcceptanceRule = iota
	// LinearAcceptance accepts whenever best.f < putative.f + T.
	LinearAcceptance
)

// boltzmannConstant is the physical constant k in BoltzmannAcceptance's
// exp(delta / (k * temperature)). At this value a move that loses fitness is
// accepted only at astronomically high temperatures (around 1e23 per unit of
// fitness lost), so in practice the Boltzmann rule takes improving and
// equal-fitness moves and rejects worsening ones.
const boltzmannConstant = 1.38066e-23

// SimulatedAnnealing perturbs a random gene each iteration, cools its
// temperature per Schedule, and accepts worsening moves per Acceptance
// (spec.md §4.7).
type SimulatedAnnealing struct {
	InitialTemperature float64
	FinalTemperature   float64
	Schedule           AnnealingSchedule
	Acceptance         AcceptanceRule

	// StepSize and StepFrequency configure StepSchedule; ignored otherwise.
	StepSize      float64
	StepFrequency int
}

func (s SimulatedAnnealing) Optimise(p *ga.Population, best *entity.Entity, maxIterations int) (*entity.Entity, int, error) {
	current := best
	var improvedOverall *entity.Entity
	total := totalGenes(current.DNA())
	if total == 0 || maxIterations <= 0 {
		return nil, 0, nil
	}

	temp := s.InitialTemperature
	if temp <= 0 {
		temp = 1
	}
	stepFrequency := s.StepFrequency
	if stepFrequency <= 0 {
		stepFrequency = 1
	}

	iter := 0
	for ; iter < maxIterations; iter++ {
		flat := rng.NextIntn(total)
		candidate := current.Clone()
		name, idx := geneAt(candidate.DNA(), flat)
		c, _ := candidate.DNA().Get(name)
		if err := c.MutateDrift(idx, randomDirection()); err != nil {
			return nil, iter, err
		}
		if err := rescoreClone(candidate); err != nil {
			return nil, iter, err
		}

		delta := candidate.Fitness() - current.Fitness()
		var accept bool
		switch s.Acceptance {
		case LinearAcceptance:
			accept = current.Fitness() < candidate.Fitness()+temp
		default:
			accept = delta > 0
			if !accept && temp > 0 {
				prob := math.Exp(delta / (boltzmannConstant * temp))
				accept = rng.RandomProb(clampProb(prob))
			}
		}
		if accept {
			current = candidate
			if delta > 0 {
				improvedOverall = candidate
			}
		}

		switch s.Schedule {
		case StepSchedule:
			if (iter+1)%stepFrequency == 0 && temp > s.FinalTemperature {
				temp -= s.StepSize
			}
		default:
			temp = s.InitialTemperature + (float64(iter+1)/float64(maxIterations))*(s.FinalTemperature-s.InitialTemperature)
		}
		if temp < s.FinalTemperature {
			temp = s.FinalTemperature
		}
		if temp < 1e-9 {
			temp = 1e-9
		}
	}
	return improvedOverall, iter, nil
}

func clampProb(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// SteepestAscent perturbs every gene of every Double chromosome by a
// Gaussian step scaled by StepSize, accepting the move if it improves
// fitness. StepSize grows by GrowthFactor on a success and shrinks by
// ShrinkFactor on a failure — a (1+1)-style step-size adaptation, the
// α/β scale-up/down shape evostrat.go's lognormal step rule follows, applied
// multiplicatively to the step itself.
type SteepestAscent struct {
	StepSize     float64
	GrowthFactor float64
	ShrinkFactor float64
}

func (s SteepestAscent) Optimise(p *ga.Population, best *entity.Entity, maxIterations int) (*entity.Entity, int, error) {
	step := s.StepSize
	if step <= 0 {
		step = 0.1
	}
	growth := s.GrowthFactor
	if growth <= 1 {
		growth = 1.1
	}
	shrink := s.ShrinkFactor
	if shrink <= 0 || shrink >= 1 {
		shrink = 0.9
	}

	current := best
	var improvedOverall *entity.Entity
	names := doubleNames(current.DNA())
	if len(names) == 0 {
		return nil, 0, nil
	}

	iterations := 0
	for iterations < maxIterations {
		candidate := current.Clone()
		for _, name := range names {
			c, _ := candidate.DNA().Get(name)
			dc := c.(*chromosome.DoubleChromosome)
			for i := 0; i < dc.Len(); i++ {
				v, _ := dc.Get(i)
				_ = dc.Set(i, v+step*rng.NextNormFloat64())
			}
		}
		if err := rescoreClone(candidate); err != nil {
			return nil, iterations, err
		}
		iterations++

		if candidate.Fitness() > current.Fitness() {
			current = candidate
			improvedOverall = candidate
			step *= growth
		} else {
			step *= shrink
		}
	}
	return improvedOverall, iterations, nil
}
