package topology_test

import (
	"testing"

	"github.com/evocore/evo/som/topology"
	"github.com/stretchr/testify/require"
)

func countNonEmpty(neighbors []string) int {
	n := 0
	for _, k := range neighbors {
		if k != "" {
			n++
		}
	}
	return n
}

func TestRectangularCornerHasTwoBoundaryNeighbors(t *testing.T) {
	r, err := topology.NewRectangular(3, 4, 4, false)
	require.NoError(t, err)

	node := r.CreateNode(0) // (0,0)
	require.Equal(t, "0,0", node.Key)
	require.Len(t, node.Neighbors, 4)
	require.Equal(t, 2, countNonEmpty(node.Neighbors))
	require.Contains(t, node.Neighbors, "0,1")
	require.Contains(t, node.Neighbors, "1,0")
}

func TestRectangularToroidalEveryNodeHasFourNeighbors(t *testing.T) {
	r, err := topology.NewRectangular(2, 4, 4, true)
	require.NoError(t, err)

	for i := 0; i < r.TotalNodes(); i++ {
		node := r.CreateNode(i)
		require.Equal(t, 4, countNonEmpty(node.Neighbors))
	}
}

func TestOctagonalToroidalRequiresEvenDimensions(t *testing.T) {
	_, err := topology.NewOctagonal(2, 3, 4, true)
	require.Error(t, err)

	_, err = topology.NewOctagonal(2, 4, 4, true)
	require.NoError(t, err)
}

func TestOctagonalPrismToroidalRequiresAllEvenDimensions(t *testing.T) {
	_, err := topology.NewOctagonalPrism(2, 4, 4, 3, true)
	require.Error(t, err)

	_, err = topology.NewOctagonalPrism(2, 4, 4, 4, true)
	require.NoError(t, err)
}

func TestOctagonalSplitsTwoSublattices(t *testing.T) {
	o, err := topology.NewOctagonal(2, 4, 4, false)
	require.NoError(t, err)

	same := o.CreateNode(0) // (0,0), same parity -> "O"
	require.Equal(t, "0,0:O", same.Key)
	require.Len(t, same.Neighbors, 8)

	gap := o.CreateNode(1) // (1,0), differing parity -> "R"
	require.Equal(t, "1,0:R", gap.Key)
	require.Len(t, gap.Neighbors, 4)
}

func TestOctagonalPrismKeyCarriesZAndSublattice(t *testing.T) {
	op, err := topology.NewOctagonalPrism(2, 4, 4, 4, false)
	require.NoError(t, err)

	node := op.CreateNode(0) // (0,0,0)
	require.Equal(t, "0,0,0:O", node.Key)
	require.Len(t, node.Neighbors, 10) // 8 planar + In + Out

	x1 := op.CreateNode(1) // (1,0,0)
	require.Equal(t, "1,0,0:R", x1.Key)
	require.Len(t, x1.Neighbors, 6) // 4 planar + In + Out
}

func TestCubeNeighborOrderMatchesAxisSigns(t *testing.T) {
	c, err := topology.NewCube(2, 3, 3, 3, false)
	require.NoError(t, err)

	node := c.CreateNode(13) // (1,1,1), the cube's interior cell
	require.Equal(t, "1,1,1", node.Key)
	require.Equal(t, []string{"1,0,1", "1,2,1", "0,1,1", "2,1,1", "1,1,2", "1,1,0"}, node.Neighbors)
}

func TestHexagonalEvenOddRowsUseDifferentOffsets(t *testing.T) {
	h, err := topology.NewHexagonal(2, 4, 4, false)
	require.NoError(t, err)

	evenRow := h.CreateNode(1) // (1,0): even row, LeftUp/Up/RightUp fall off the top edge
	require.Equal(t, []string{"", "", "", "2,0", "1,1", "0,0"}, evenRow.Neighbors)

	oddRow := h.CreateNode(4 + 1) // (1,1): odd row, Up falls off no edge here
	require.Equal(t, []string{"0,1", "1,0", "2,1", "2,2", "1,2", "0,2"}, oddRow.Neighbors)
}
