package topology

import (
	"fmt"

	"github.com/evocore/evo"
)

// Rectangular is a bounded or toroidal 2-D grid with 4-neighbor adjacency
// (spec.md §4.10, §6 "rectangular(in, w, h, toroidal)").
type Rectangular struct {
	inputSize     int
	width, height int
	toroidal      bool
}

// NewRectangular validates dimensions and returns a Rectangular builder.
func NewRectangular(inputSize, width, height int, toroidal bool) (*Rectangular, error) {
	for name, v := range map[string]int{"inputSize": inputSize, "width": width, "height": height} {
		if err := checkDimension(name, v); err != nil {
			return nil, err
		}
	}
	return &Rectangular{inputSize: inputSize, width: width, height: height, toroidal: toroidal}, nil
}

func (r *Rectangular) TotalNodes() int { return r.width * r.height }

func (r *Rectangular) xy(i int) (int, int) { return i % r.width, i / r.width }

func (r *Rectangular) LocationFromIndex(i int) string {
	x, y := r.xy(i)
	return fmt.Sprintf("%d,%d", x, y)
}

func (r *Rectangular) LocationFromCoord(coord ...int) string {
	x, okx := wrapOrBound(coord[0], r.width, r.toroidal)
	y, oky := wrapOrBound(coord[1], r.height, r.toroidal)
	if !okx || !oky {
		return ""
	}
	return fmt.Sprintf("%d,%d", x, y)
}

func (r *Rectangular) WeightsAtIndex(i int, min, max float64, randomised bool) evo.Vector {
	return weightsAtIndex(i, r.TotalNodes(), r.inputSize, min, max, randomised)
}

// CreateNode orders neighbors Up, Down, Left, Right per spec.md §4.10's table.
func (r *Rectangular) CreateNode(i int) NeuronLocation {
	x, y := r.xy(i)
	return NeuronLocation{
		Key: r.LocationFromIndex(i),
		Neighbors: []string{
			r.LocationFromCoord(x, y-1),
			r.LocationFromCoord(x, y+1),
			r.LocationFromCoord(x-1, y),
			r.LocationFromCoord(x+1, y),
		},
	}
}
