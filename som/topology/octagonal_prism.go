package topology

import (
	"fmt"

	"github.com/evocore/evo"
)

// OctagonalPrism extrudes Octagonal along a third axis: the same (x,y)
// parity split into octagonal/rhombus sublattices, with every cell also
// gaining In/Out neighbors along z (spec.md §4.10, §6 "octagonalPrism(in,
// w, h, d, toroidal)").
type OctagonalPrism struct {
	inputSize            int
	width, height, depth int
	toroidal             bool
}

// NewOctagonalPrism validates dimensions — toroidal requires all three axes
// even — and returns an OctagonalPrism builder.
func NewOctagonalPrism(inputSize, width, height, depth int, toroidal bool) (*OctagonalPrism, error) {
	for name, v := range map[string]int{"inputSize": inputSize, "width": width, "height": height, "depth": depth} {
		if err := checkDimension(name, v); err != nil {
			return nil, err
		}
	}
	if toroidal && (width%2 != 0 || height%2 != 0 || depth%2 != 0) {
		return nil, fmt.Errorf("topology: toroidal octagonal prism requires even width, height and depth, got %d,%d,%d: %w", width, height, depth, evo.ErrArgumentOutOfRange)
	}
	return &OctagonalPrism{inputSize: inputSize, width: width, height: height, depth: depth, toroidal: toroidal}, nil
}

func (o *OctagonalPrism) TotalNodes() int { return o.width * o.height * o.depth }

func (o *OctagonalPrism) xyz(i int) (int, int, int) {
	x := i % o.width
	y := (i / o.width) % o.height
	z := i / (o.width * o.height)
	return x, y, z
}

func (o *OctagonalPrism) LocationFromIndex(i int) string {
	x, y, z := o.xyz(i)
	return fmt.Sprintf("%d,%d,%d:%s", x, y, z, octagonalSuffix(x, y))
}

func (o *OctagonalPrism) LocationFromCoord(coord ...int) string {
	x, okx := wrapOrBound(coord[0], o.width, o.toroidal)
	y, oky := wrapOrBound(coord[1], o.height, o.toroidal)
	z, okz := wrapOrBound(coord[2], o.depth, o.toroidal)
	if !okx || !oky || !okz {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d:%s", x, y, z, octagonalSuffix(x, y))
}

func (o *OctagonalPrism) WeightsAtIndex(i int, min, max float64, randomised bool) evo.Vector {
	return weightsAtIndex(i, o.TotalNodes(), o.inputSize, min, max, randomised)
}

// CreateNode gives every cell the same planar neighbor count Octagonal
// would at (x,y) — 8 for an octagonal cell, 4 for a rhombus cell — then
// appends In(z-1), Out(z+1) (spec.md §4.10's table).
func (o *OctagonalPrism) CreateNode(i int) NeuronLocation {
	x, y, z := o.xyz(i)
	key := o.LocationFromIndex(i)
	var neighbors []string
	if octagonalSuffix(x, y) == "O" {
		neighbors = []string{
			o.LocationFromCoord(x-1, y-1, z),
			o.LocationFromCoord(x, y-1, z),
			o.LocationFromCoord(x+1, y-1, z),
			o.LocationFromCoord(x-1, y, z),
			o.LocationFromCoord(x+1, y, z),
			o.LocationFromCoord(x-1, y+1, z),
			o.LocationFromCoord(x, y+1, z),
			o.LocationFromCoord(x+1, y+1, z),
		}
	} else {
		neighbors = []string{
			o.LocationFromCoord(x, y-1, z),
			o.LocationFromCoord(x, y+1, z),
			o.LocationFromCoord(x-1, y, z),
			o.LocationFromCoord(x+1, y, z),
		}
	}
	neighbors = append(neighbors,
		o.LocationFromCoord(x, y, z-1),
		o.LocationFromCoord(x, y, z+1),
	)
	return NeuronLocation{Key: key, Neighbors: neighbors}
}
