package topology

import (
	"fmt"

	"github.com/evocore/evo"
)

// Cube is a bounded or toroidal 3-D grid with 6-neighbor adjacency
// (spec.md §4.10, §6 "cube(in, w, h, d, toroidal)").
type Cube struct {
	inputSize            int
	width, height, depth int
	toroidal             bool
}

// NewCube validates dimensions and returns a Cube builder.
func NewCube(inputSize, width, height, depth int, toroidal bool) (*Cube, error) {
	for name, v := range map[string]int{"inputSize": inputSize, "width": width, "height": height, "depth": depth} {
		if err := checkDimension(name, v); err != nil {
			return nil, err
		}
	}
	return &Cube{inputSize: inputSize, width: width, height: height, depth: depth, toroidal: toroidal}, nil
}

func (c *Cube) TotalNodes() int { return c.width * c.height * c.depth }

func (c *Cube) xyz(i int) (int, int, int) {
	x := i % c.width
	y := (i / c.width) % c.height
	z := i / (c.width * c.height)
	return x, y, z
}

func (c *Cube) LocationFromIndex(i int) string {
	x, y, z := c.xyz(i)
	return fmt.Sprintf("%d,%d,%d", x, y, z)
}

func (c *Cube) LocationFromCoord(coord ...int) string {
	x, okx := wrapOrBound(coord[0], c.width, c.toroidal)
	y, oky := wrapOrBound(coord[1], c.height, c.toroidal)
	z, okz := wrapOrBound(coord[2], c.depth, c.toroidal)
	if !okx || !oky || !okz {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d", x, y, z)
}

func (c *Cube) WeightsAtIndex(i int, min, max float64, randomised bool) evo.Vector {
	return weightsAtIndex(i, c.TotalNodes(), c.inputSize, min, max, randomised)
}

// CreateNode orders neighbors Up(y-1), Down(y+1), Left(x-1), Right(x+1),
// In(z+1), Out(z-1) per spec.md §4.10's table.
func (c *Cube) CreateNode(i int) NeuronLocation {
	x, y, z := c.xyz(i)
	return NeuronLocation{
		Key: c.LocationFromIndex(i),
		Neighbors: []string{
			c.LocationFromCoord(x, y-1, z),
			c.LocationFromCoord(x, y+1, z),
			c.LocationFromCoord(x-1, y, z),
			c.LocationFromCoord(x+1, y, z),
			c.LocationFromCoord(x, y, z+1),
			c.LocationFromCoord(x, y, z-1),
		},
	}
}
