package lattice_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/digeo/lattice"
	"github.com/stretchr/testify/require"
)

func TestPoint_ComponentwiseArithmetic(t *testing.T) {
	p := lattice.Pt3(1, -2, 3)
	q := lattice.Pt3(4, 5, -6)

	sum, err := p.Add(q)
	require.NoError(t, err)
	require.Equal(t, lattice.Pt3(5, 3, -3), sum)

	diff, err := p.Sub(q)
	require.NoError(t, err)
	require.Equal(t, lattice.Pt3(-3, -7, 9), diff)

	require.Equal(t, lattice.Pt3(-1, 2, -3), p.Neg())

	scaled, err := p.ScalarMul(-2)
	require.NoError(t, err)
	require.Equal(t, lattice.Pt3(-2, 4, -6), scaled)
}

func TestPoint_DimensionMismatch(t *testing.T) {
	p := lattice.Pt2(1, 2)
	q := lattice.Pt3(1, 2, 3)

	_, err := p.Add(q)
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	_, err = p.Dot(q)
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
}

func TestPoint_DotExact(t *testing.T) {
	p := lattice.Pt2(3, -4)
	q := lattice.Pt2(2, 5)
	v, err := p.Dot(q)
	require.NoError(t, err)
	require.Equal(t, int64(-14), v)
}

// TestPoint_DotOverflowFallback checks that products overflowing int64
// are recomputed exactly instead of wrapping around.
func TestPoint_DotOverflowFallback(t *testing.T) {
	big1 := int64(math.MaxInt64 / 2)
	p := lattice.Pt2(big1, -big1)
	q := lattice.Pt2(4, 4)

	// Exact value is 0: the two huge products cancel.
	v, err := p.Dot(q)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	// A genuinely huge result must surface ErrOverflow on the int64 API...
	r := lattice.Pt2(big1, big1)
	_, err = r.Dot(q)
	require.ErrorIs(t, err, lattice.ErrOverflow)

	// ...while the big.Int API stays exact.
	b, err := r.DotBig(q)
	require.NoError(t, err)
	want := new(big.Int).Mul(big.NewInt(big1), big.NewInt(8))
	require.Zero(t, b.Cmp(want))
}

func TestPoint_DotSign(t *testing.T) {
	p := lattice.Pt2(math.MaxInt64/2, math.MaxInt64/2)
	s, err := p.DotSign(lattice.Pt2(3, 3))
	require.NoError(t, err)
	require.Equal(t, 1, s)

	s, err = p.DotSign(lattice.Pt2(3, -3))
	require.NoError(t, err)
	require.Equal(t, 0, s)

	s, err = p.DotSign(lattice.Pt2(-3, -3))
	require.NoError(t, err)
	require.Equal(t, -1, s)
}

func TestPoint_Norms(t *testing.T) {
	p := lattice.Pt3(-3, 4, -5)
	l1, err := p.NormL1()
	require.NoError(t, err)
	require.Equal(t, int64(12), l1)

	li, err := p.NormInf()
	require.NoError(t, err)
	require.Equal(t, int64(5), li)
}

func TestPoint_LexicographicOrder(t *testing.T) {
	require.True(t, lattice.Pt2(0, 5).Less(lattice.Pt2(1, 0)))
	require.True(t, lattice.Pt2(1, 0).Less(lattice.Pt2(1, 2)))
	require.False(t, lattice.Pt2(1, 2).Less(lattice.Pt2(1, 2)))
	require.False(t, lattice.Pt2(2, 0).Less(lattice.Pt2(1, 9)))
}

func TestGCD_And_Reduce(t *testing.T) {
	require.Equal(t, int64(6), lattice.GCD(54, -24))
	require.Equal(t, int64(7), lattice.GCD(0, 7))
	require.Equal(t, int64(0), lattice.GCD(0, 0))

	v := lattice.Pt3(6, -9, 12)
	require.Equal(t, int64(3), v.Content())
	require.Equal(t, lattice.Pt3(2, -3, 4), v.Reduce())

	// Reducing must not alias the receiver.
	r := v.Reduce()
	r[0] = 99
	require.Equal(t, lattice.Pt3(6, -9, 12), v)
}

func TestFloorCeilDiv(t *testing.T) {
	require.Equal(t, int64(2), lattice.FloorDiv(7, 3))
	require.Equal(t, int64(-3), lattice.FloorDiv(-7, 3))
	require.Equal(t, int64(3), lattice.CeilDiv(7, 3))
	require.Equal(t, int64(-2), lattice.CeilDiv(-7, 3))
	require.Equal(t, int64(2), lattice.FloorDiv(6, 3))
	require.Equal(t, int64(2), lattice.CeilDiv(6, 3))
}
