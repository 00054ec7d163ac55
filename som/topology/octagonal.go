package topology

import (
	"fmt"

	"github.com/evocore/evo"
)

// Octagonal is a 2-D grid split into two interleaved sublattices by (x,y)
// coordinate parity: cells where x and y share parity are "octagonal"
// cells with 8 neighbors; the gap-filling cells are "rhombus" cells with 4
// (spec.md §4.10). A node's key carries its sublattice as a suffix, `:O`
// or `:R`, canonicalized uniformly across the 2-D and 3-D variants.
type Octagonal struct {
	inputSize     int
	width, height int
	toroidal      bool
}

// NewOctagonal validates dimensions — a toroidal lattice additionally
// requires both axes even, since an odd-length wrap would land a cell on
// the wrong sublattice on one side and not the other — and returns an
// Octagonal builder.
func NewOctagonal(inputSize, width, height int, toroidal bool) (*Octagonal, error) {
	for name, v := range map[string]int{"inputSize": inputSize, "width": width, "height": height} {
		if err := checkDimension(name, v); err != nil {
			return nil, err
		}
	}
	if toroidal && (width%2 != 0 || height%2 != 0) {
		return nil, fmt.Errorf("topology: toroidal octagonal lattice requires even width and height, got %d,%d: %w", width, height, evo.ErrArgumentOutOfRange)
	}
	return &Octagonal{inputSize: inputSize, width: width, height: height, toroidal: toroidal}, nil
}

func (o *Octagonal) TotalNodes() int { return o.width * o.height }

func (o *Octagonal) xy(i int) (int, int) { return i % o.width, i / o.width }

// octagonalSuffix reports which sublattice (x,y) belongs to.
func octagonalSuffix(x, y int) string {
	if (((x % 2) + 2) % 2) == (((y % 2) + 2) % 2) {
		return "O"
	}
	return "R"
}

func (o *Octagonal) LocationFromIndex(i int) string {
	x, y := o.xy(i)
	return fmt.Sprintf("%d,%d:%s", x, y, octagonalSuffix(x, y))
}

func (o *Octagonal) LocationFromCoord(coord ...int) string {
	x, okx := wrapOrBound(coord[0], o.width, o.toroidal)
	y, oky := wrapOrBound(coord[1], o.height, o.toroidal)
	if !okx || !oky {
		return ""
	}
	return fmt.Sprintf("%d,%d:%s", x, y, octagonalSuffix(x, y))
}

func (o *Octagonal) WeightsAtIndex(i int, min, max float64, randomised bool) evo.Vector {
	return weightsAtIndex(i, o.TotalNodes(), o.inputSize, min, max, randomised)
}

// CreateNode gives octagonal cells the 8-neighbor order LeftUp, Up, RightUp,
// Left, Right, LeftDown, Down, RightDown and rhombus cells the 4-neighbor
// order Up, Down, Left, Right (spec.md §4.10's table).
func (o *Octagonal) CreateNode(i int) NeuronLocation {
	x, y := o.xy(i)
	key := o.LocationFromIndex(i)
	var neighbors []string
	if octagonalSuffix(x, y) == "O" {
		neighbors = []string{
			o.LocationFromCoord(x-1, y-1),
			o.LocationFromCoord(x, y-1),
			o.LocationFromCoord(x+1, y-1),
			o.LocationFromCoord(x-1, y),
			o.LocationFromCoord(x+1, y),
			o.LocationFromCoord(x-1, y+1),
			o.LocationFromCoord(x, y+1),
			o.LocationFromCoord(x+1, y+1),
		}
	} else {
		neighbors = []string{
			o.LocationFromCoord(x, y-1),
			o.LocationFromCoord(x, y+1),
			o.LocationFromCoord(x-1, y),
			o.LocationFromCoord(x+1, y),
		}
	}
	return NeuronLocation{Key: key, Neighbors: neighbors}
}
