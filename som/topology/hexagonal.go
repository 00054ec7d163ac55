package topology

import (
	"fmt"

	"github.com/evocore/evo"
)

// Hexagonal is a 2-D grid whose neighbor offsets alternate by row parity
// (spec.md §4.10, §6 "hexagonal(in, w, h, toroidal)").
type Hexagonal struct {
	inputSize     int
	width, height int
	toroidal      bool
}

// NewHexagonal validates dimensions and returns a Hexagonal builder.
func NewHexagonal(inputSize, width, height int, toroidal bool) (*Hexagonal, error) {
	for name, v := range map[string]int{"inputSize": inputSize, "width": width, "height": height} {
		if err := checkDimension(name, v); err != nil {
			return nil, err
		}
	}
	return &Hexagonal{inputSize: inputSize, width: width, height: height, toroidal: toroidal}, nil
}

func (h *Hexagonal) TotalNodes() int { return h.width * h.height }

func (h *Hexagonal) xy(i int) (int, int) { return i % h.width, i / h.width }

func (h *Hexagonal) LocationFromIndex(i int) string {
	x, y := h.xy(i)
	return fmt.Sprintf("%d,%d", x, y)
}

func (h *Hexagonal) LocationFromCoord(coord ...int) string {
	x, okx := wrapOrBound(coord[0], h.width, h.toroidal)
	y, oky := wrapOrBound(coord[1], h.height, h.toroidal)
	if !okx || !oky {
		return ""
	}
	return fmt.Sprintf("%d,%d", x, y)
}

func (h *Hexagonal) WeightsAtIndex(i int, min, max float64, randomised bool) evo.Vector {
	return weightsAtIndex(i, h.TotalNodes(), h.inputSize, min, max, randomised)
}

// CreateNode orders neighbors per spec.md §4.10's even/odd row table: even
// rows get LeftUp, Up, RightUp, Right, Down, Left; odd rows get Left, Up,
// Right, RightDown, Down, LeftDown.
func (h *Hexagonal) CreateNode(i int) NeuronLocation {
	x, y := h.xy(i)
	var neighbors []string
	if y%2 == 0 {
		neighbors = []string{
			h.LocationFromCoord(x-1, y-1),
			h.LocationFromCoord(x, y-1),
			h.LocationFromCoord(x+1, y-1),
			h.LocationFromCoord(x+1, y),
			h.LocationFromCoord(x, y+1),
			h.LocationFromCoord(x-1, y),
		}
	} else {
		neighbors = []string{
			h.LocationFromCoord(x-1, y),
			h.LocationFromCoord(x, y-1),
			h.LocationFromCoord(x+1, y),
			h.LocationFromCoord(x+1, y+1),
			h.LocationFromCoord(x, y+1),
			h.LocationFromCoord(x-1, y+1),
		}
	}
	return NeuronLocation{Key: h.LocationFromIndex(i), Neighbors: neighbors}
}
