package cellgeom_test

import (
	"testing"

	"github.com/katalvlaran/digeo/cellgeom"
	"github.com/katalvlaran/digeo/lattice"
	"github.com/stretchr/testify/require"
)

func TestPointToPointel_RoundTrip(t *testing.T) {
	c := cellgeom.PointToPointel(lattice.Pt2(3, -2))
	require.Equal(t, cellgeom.NewCell(6, -4), c)
	require.Equal(t, 0, c.Dim())
	require.Equal(t, 2, c.SpaceDim())

	p, err := c.PointelToPoint()
	require.NoError(t, err)
	require.Equal(t, lattice.Pt2(3, -2), p)

	_, err = cellgeom.NewCell(1, 0).PointelToPoint()
	require.ErrorIs(t, err, cellgeom.ErrNotPointel)
}

func TestCell_Dim(t *testing.T) {
	require.Equal(t, 0, cellgeom.NewCell(0, 4).Dim())
	require.Equal(t, 1, cellgeom.NewCell(3, 4).Dim())
	require.Equal(t, 2, cellgeom.NewCell(3, 5).Dim())
	require.Equal(t, 3, cellgeom.NewCell(1, -1, 7).Dim())

	linel := cellgeom.NewCell(3, 4)
	require.True(t, linel.IsOpen(0))
	require.False(t, linel.IsOpen(1))
}

// TestCell_Faces checks the closure of a pixel: four pointels and four
// linels, 3^2 - 1 proper faces in all.
func TestCell_Faces(t *testing.T) {
	faces := cellgeom.NewCell(1, 1).Faces()
	require.Len(t, faces, 8)

	byDim := map[int]int{}
	for _, f := range faces {
		byDim[f.Dim()]++
	}
	require.Equal(t, map[int]int{0: 4, 1: 4}, byDim)
	require.Contains(t, faces, cellgeom.NewCell(0, 0))
	require.Contains(t, faces, cellgeom.NewCell(2, 2))
	require.Contains(t, faces, cellgeom.NewCell(1, 0))

	// Pointels are already closed.
	require.Empty(t, cellgeom.NewCell(0, 0).Faces())
}

func TestCell_CoFaces(t *testing.T) {
	co := cellgeom.NewCell(0, 0).CoFaces()
	require.Len(t, co, 8)

	byDim := map[int]int{}
	for _, c := range co {
		byDim[c.Dim()]++
	}
	require.Equal(t, map[int]int{1: 4, 2: 4}, byDim)

	// A linel in 2D is bordered by exactly its two pixels.
	require.ElementsMatch(t,
		[]cellgeom.Cell{{1, -1}, {1, 1}},
		cellgeom.NewCell(1, 0).CoFaces(),
	)

	// Spels are already open.
	require.Empty(t, cellgeom.NewCell(1, 1, 1).CoFaces())
}

func TestCell_Order(t *testing.T) {
	a := cellgeom.NewCell(0, 1)
	b := cellgeom.NewCell(0, 2)
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.False(t, a.Less(a))
	require.True(t, a.Equal(a.Clone()))
	require.False(t, a.Equal(b))
	require.Equal(t, "K(0,1)", a.String())
}
