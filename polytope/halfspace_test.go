package polytope_test

import (
	"testing"

	"github.com/katalvlaran/digeo/lattice"
	"github.com/katalvlaran/digeo/polytope"
	"github.com/stretchr/testify/require"
)

func TestNewHalfSpace_ZeroNormal(t *testing.T) {
	_, err := polytope.NewHalfSpace(lattice.Pt2(0, 0), 5)
	require.ErrorIs(t, err, polytope.ErrZeroNormal)

	_, err = polytope.NewHalfSpace(lattice.Pt3(0, 0, 0), -1)
	require.ErrorIs(t, err, polytope.ErrZeroNormal)
}

// TestNewHalfSpace_Canonical verifies gcd reduction with floored offset
// division: 2x+4y <= 7 holds exactly the same lattice points as x+2y <= 3.
func TestNewHalfSpace_Canonical(t *testing.T) {
	h, err := polytope.NewHalfSpace(lattice.Pt2(2, 4), 7)
	require.NoError(t, err)
	require.Equal(t, lattice.Pt2(1, 2), h.Normal())
	require.Equal(t, int64(3), h.Offset())

	// Negative offsets floor toward minus infinity.
	g, err := polytope.NewHalfSpace(lattice.Pt2(0, -3), -7)
	require.NoError(t, err)
	require.Equal(t, lattice.Pt2(0, -1), g.Normal())
	require.Equal(t, int64(-3), g.Offset())
}

func TestHalfSpace_Equal(t *testing.T) {
	a, _ := polytope.NewHalfSpace(lattice.Pt2(2, 4), 6)
	b, _ := polytope.NewHalfSpace(lattice.Pt2(1, 2), 3)
	c, _ := polytope.NewHalfSpace(lattice.Pt2(1, 2), 4)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestHalfSpace_Side(t *testing.T) {
	h, err := polytope.NewHalfSpace(lattice.Pt2(7, 5), 35)
	require.NoError(t, err)

	s, err := h.Side(lattice.Pt2(0, 0))
	require.NoError(t, err)
	require.Equal(t, -1, s)

	s, err = h.Side(lattice.Pt2(5, 0))
	require.NoError(t, err)
	require.Equal(t, 0, s)

	s, err = h.Side(lattice.Pt2(5, 1))
	require.NoError(t, err)
	require.Equal(t, 1, s)
}

// TestHalfSpace_AxisFastPath checks that the axis-aligned scalar compare
// agrees with the general evaluation on all three outcomes.
func TestHalfSpace_AxisFastPath(t *testing.T) {
	ax, err := polytope.AxisHalfSpace(2, 0, true, 3)
	require.NoError(t, err)
	gen, err := polytope.NewHalfSpace(lattice.Pt2(1, 0), 3)
	require.NoError(t, err)
	require.True(t, ax.Equal(gen))

	for _, tc := range []struct {
		p    lattice.Point
		want int
	}{
		{lattice.Pt2(2, 9), -1},
		{lattice.Pt2(3, -9), 0},
		{lattice.Pt2(4, 0), 1},
	} {
		sa, err := ax.Side(tc.p)
		require.NoError(t, err)
		sg, err := gen.Side(tc.p)
		require.NoError(t, err)
		require.Equal(t, tc.want, sa)
		require.Equal(t, tc.want, sg)
	}

	// Negative direction: -y <= 2 means y >= -2.
	ny, err := polytope.AxisHalfSpace(2, 1, false, 2)
	require.NoError(t, err)
	ok, err := ny.Satisfies(lattice.Pt2(0, -2))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = ny.Satisfies(lattice.Pt2(0, -3))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHalfSpace_Eval(t *testing.T) {
	h, err := polytope.NewHalfSpace(lattice.Pt2(7, 5), 35)
	require.NoError(t, err)

	for _, tc := range []struct {
		p    lattice.Point
		want int64
	}{
		{lattice.Pt2(0, 0), -35},
		{lattice.Pt2(5, 0), 0},
		{lattice.Pt2(5, 1), 5},
	} {
		v, err := h.Eval(tc.p)
		require.NoError(t, err)
		require.Equal(t, tc.want, v)
	}

	_, err = h.Eval(lattice.Pt3(0, 0, 0))
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
}

func TestHalfSpace_DimensionMismatch(t *testing.T) {
	h, _ := polytope.NewHalfSpace(lattice.Pt2(1, 1), 0)
	_, err := h.Side(lattice.Pt3(0, 0, 0))
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
}
