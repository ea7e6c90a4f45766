package lattice_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/digeo/lattice"
	"github.com/stretchr/testify/require"
)

func TestNewDomain_Errors(t *testing.T) {
	_, err := lattice.NewDomain(lattice.Pt2(0, 0), lattice.Pt3(1, 1, 1))
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)

	_, err = lattice.NewDomain(lattice.Pt2(2, 0), lattice.Pt2(1, 5))
	require.ErrorIs(t, err, lattice.ErrEmptyDomain)
}

func TestNewDomain_Immutable(t *testing.T) {
	lo := lattice.Pt2(0, 0)
	hi := lattice.Pt2(3, 3)
	d, err := lattice.NewDomain(lo, hi)
	require.NoError(t, err)

	// Mutating the inputs must not affect the domain.
	lo[0] = 42
	hi[1] = -42
	require.True(t, d.Contains(lattice.Pt2(0, 3)))
	require.Equal(t, lattice.Pt2(0, 0), d.Lower())
	require.Equal(t, lattice.Pt2(3, 3), d.Upper())
}

func TestBoundingBox(t *testing.T) {
	pts := []lattice.Point{
		lattice.Pt2(0, 7),
		lattice.Pt2(5, 0),
		lattice.Pt2(0, 0),
	}
	d, err := lattice.BoundingBox(pts)
	require.NoError(t, err)
	require.Equal(t, lattice.Pt2(0, 0), d.Lower())
	require.Equal(t, lattice.Pt2(5, 7), d.Upper())

	_, err = lattice.BoundingBox(nil)
	require.ErrorIs(t, err, lattice.ErrEmptyDomain)
}

func TestDomain_ContainsAndExtend(t *testing.T) {
	d, err := lattice.NewDomain(lattice.Pt2(-1, -1), lattice.Pt2(1, 1))
	require.NoError(t, err)

	require.True(t, d.Contains(lattice.Pt2(0, 0)))
	require.True(t, d.Contains(lattice.Pt2(-1, 1)))
	require.False(t, d.Contains(lattice.Pt2(2, 0)))
	require.False(t, d.Contains(lattice.Pt3(0, 0, 0)))

	e, err := d.Extend(lattice.Pt2(4, -3))
	require.NoError(t, err)
	require.Equal(t, lattice.Pt2(-1, -3), e.Lower())
	require.Equal(t, lattice.Pt2(4, 1), e.Upper())
}

func TestDomain_Size(t *testing.T) {
	d, err := lattice.NewDomain(lattice.Pt3(0, 0, 0), lattice.Pt3(9, 9, 9))
	require.NoError(t, err)
	require.Zero(t, d.Size().Cmp(big.NewInt(1000)))
}

// TestDomain_ScanOrder verifies the lexicographic enumeration contract
// that polytope point collection depends on.
func TestDomain_ScanOrder(t *testing.T) {
	d, err := lattice.NewDomain(lattice.Pt2(0, 0), lattice.Pt2(1, 1))
	require.NoError(t, err)

	got := d.Points()
	want := []lattice.Point{
		lattice.Pt2(0, 0),
		lattice.Pt2(0, 1),
		lattice.Pt2(1, 0),
		lattice.Pt2(1, 1),
	}
	require.Equal(t, want, got)

	// Early stop.
	var n int
	d.ForEachPoint(func(lattice.Point) bool {
		n++

		return n < 2
	})
	require.Equal(t, 2, n)
}
