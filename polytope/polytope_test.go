package polytope_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/digeo/lattice"
	"github.com/katalvlaran/digeo/polytope"
	"github.com/stretchr/testify/require"
)

// triangle057 builds the canonical test triangle (0,0), (5,0), (0,7).
func triangle057(t *testing.T) *polytope.Polytope {
	t.Helper()
	p, err := polytope.NewPolytopeFromVertices(
		lattice.Pt2(0, 0), lattice.Pt2(5, 0), lattice.Pt2(0, 7),
	)
	require.NoError(t, err)
	require.True(t, p.IsValid())

	return p
}

//----------------------------------------------------------------------------//
// 2D triangle scenarios
//----------------------------------------------------------------------------//

func TestTriangle_DomainContainsVertices(t *testing.T) {
	p := triangle057(t)
	for _, v := range []lattice.Point{
		lattice.Pt2(0, 0), lattice.Pt2(5, 0), lattice.Pt2(0, 7),
	} {
		in, err := p.IsDomainPointInside(v)
		require.NoError(t, err)
		require.True(t, in, "vertex %s must be inside", v)
	}
}

func TestTriangle_VerticesAreBoundaryNotInterior(t *testing.T) {
	p := triangle057(t)
	for _, v := range []lattice.Point{
		lattice.Pt2(0, 0), lattice.Pt2(5, 0), lattice.Pt2(0, 7),
	} {
		bd, err := p.IsBoundary(v)
		require.NoError(t, err)
		require.True(t, bd, "vertex %s must be boundary", v)

		in, err := p.IsInterior(v)
		require.NoError(t, err)
		require.False(t, in, "vertex %s must not be interior", v)
	}
}

func TestTriangle_CountExceedsVertexAndAreaBaselines(t *testing.T) {
	p := triangle057(t)
	n, err := p.Count()
	require.NoError(t, err)
	require.Greater(t, n, int64(3))
	require.Greater(t, n, int64(5*7/2)) // truncated-area Pick baseline
	require.Equal(t, int64(25), n)
}

func TestTriangle_CountPartition(t *testing.T) {
	p := triangle057(t)
	n, err := p.Count()
	require.NoError(t, err)
	in, err := p.CountInterior()
	require.NoError(t, err)
	bd, err := p.CountBoundary()
	require.NoError(t, err)
	require.Equal(t, n, in+bd)
	require.Equal(t, int64(12), in)
	require.Equal(t, int64(13), bd)
}

func TestTriangle_PickViaInteriorPolytope(t *testing.T) {
	p := triangle057(t)
	intP, err := p.InteriorPolytope()
	require.NoError(t, err)

	nbInt, err := intP.Count()
	require.NoError(t, err)
	n, err := p.Count()
	require.NoError(t, err)
	nbBd := n - nbInt

	// 2*Area(P) = 2*#Int(P) + #Bd(P) - 2, with Area = 5*7/2.
	require.Equal(t, int64(5*7), 2*nbInt+nbBd-2)

	ok, err := p.VerifyPick()
	require.NoError(t, err)
	require.True(t, ok)
}

// TestArea2_Overflow drives the doubled area past the int64 range; the
// failure must surface as the shared overflow sentinel.
func TestArea2_Overflow(t *testing.T) {
	const m = int64(2_200_000_000) // 2*m*m exceeds 64 bits, m*m does not
	p, err := polytope.NewPolytopeFromVertices(
		lattice.Pt2(0, 0), lattice.Pt2(m, 0), lattice.Pt2(m, m), lattice.Pt2(0, m),
	)
	require.NoError(t, err)

	_, err = p.Area2()
	require.ErrorIs(t, err, lattice.ErrOverflow)
}

func TestTriangle_CutShrinksCount(t *testing.T) {
	p := triangle057(t)
	before, err := p.Count()
	require.NoError(t, err)

	q := p.Clone()
	require.NoError(t, q.CutDir(lattice.Pt2(-1, 1), 3))
	after, err := q.Count()
	require.NoError(t, err)
	require.Less(t, after, before)

	// The original is untouched: Clone is a deep value copy.
	again, err := p.Count()
	require.NoError(t, err)
	require.Equal(t, before, again)
}

func TestTriangle_CutMonotone(t *testing.T) {
	p := triangle057(t)
	cuts := []struct {
		n lattice.Vector
		c int64
	}{
		{lattice.Pt2(1, 0), 4},
		{lattice.Pt2(1, 1), 6},
		{lattice.Pt2(0, -1), 0},
	}
	prev, err := p.Count()
	require.NoError(t, err)
	for _, cut := range cuts {
		require.NoError(t, p.CutDir(cut.n, cut.c))
		n, err := p.Count()
		require.NoError(t, err)
		require.LessOrEqual(t, n, prev)
		prev = n
	}
}

func TestTriangle_CutIdempotent(t *testing.T) {
	p := triangle057(t)
	before, err := p.Count()
	require.NoError(t, err)

	// x <= 5 is already implied by the hull facets; count must not change.
	require.NoError(t, p.CutAxis(0, true, 5))
	after, err := p.Count()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestTriangle_UnionLaw(t *testing.T) {
	p := triangle057(t)
	inside, err := p.Points()
	require.NoError(t, err)
	interior, err := p.InteriorPoints()
	require.NoError(t, err)
	boundary, err := p.BoundaryPoints()
	require.NoError(t, err)

	require.Len(t, inside, 25)
	require.Len(t, interior, 12)
	require.Len(t, boundary, 13)

	all := append(append([]lattice.Point{}, interior...), boundary...)
	sortPoints(all)
	sorted := append([]lattice.Point{}, inside...)
	sortPoints(sorted)
	require.Equal(t, sorted, all)

	// Disjointness: no interior point may appear among boundary points.
	for _, ip := range interior {
		for _, bp := range boundary {
			require.False(t, ip.Equal(bp))
		}
	}
}

func TestPoints_LexicographicScanOrder(t *testing.T) {
	p, err := polytope.NewPolytopeFromVertices(
		lattice.Pt2(0, 0), lattice.Pt2(2, 0), lattice.Pt2(0, 2),
	)
	require.NoError(t, err)
	pts, err := p.Points()
	require.NoError(t, err)
	want := []lattice.Point{
		lattice.Pt2(0, 0), lattice.Pt2(0, 1), lattice.Pt2(0, 2),
		lattice.Pt2(1, 0), lattice.Pt2(1, 1),
		lattice.Pt2(2, 0),
	}
	require.Equal(t, want, pts)
}

//----------------------------------------------------------------------------//
// 3D simplex scenarios
//----------------------------------------------------------------------------//

func TestTwistedSimplex_OnlyVerticesInside(t *testing.T) {
	verts := []lattice.Point{
		lattice.Pt3(0, 0, 0), lattice.Pt3(1, 0, 0),
		lattice.Pt3(0, 1, 0), lattice.Pt3(1, 1, 8),
	}
	p, err := polytope.NewPolytopeFromVertices(verts...)
	require.NoError(t, err)

	for _, v := range verts {
		in, err := p.IsDomainPointInside(v)
		require.NoError(t, err)
		require.True(t, in)
		bd, err := p.IsBoundary(v)
		require.NoError(t, err)
		require.True(t, bd)
		itr, err := p.IsInterior(v)
		require.NoError(t, err)
		require.False(t, itr)
	}

	n, err := p.Count()
	require.NoError(t, err)
	require.Equal(t, int64(4), n)

	in, err := p.CountInterior()
	require.NoError(t, err)
	bd, err := p.CountBoundary()
	require.NoError(t, err)
	require.Equal(t, n, in+bd)
}

func TestArbitrarySimplex_PartitionAndUnionLaw(t *testing.T) {
	p, err := polytope.NewPolytopeFromVertices(
		lattice.Pt3(0, 0, 0), lattice.Pt3(6, 3, 0),
		lattice.Pt3(0, 5, 10), lattice.Pt3(6, 4, 8),
	)
	require.NoError(t, err)

	n, err := p.Count()
	require.NoError(t, err)
	in, err := p.CountInterior()
	require.NoError(t, err)
	bd, err := p.CountBoundary()
	require.NoError(t, err)
	require.Equal(t, n, in+bd)

	inside, err := p.Points()
	require.NoError(t, err)
	interior, err := p.InteriorPoints()
	require.NoError(t, err)
	boundary, err := p.BoundaryPoints()
	require.NoError(t, err)
	require.Equal(t, int(n), len(inside))

	all := append(append([]lattice.Point{}, interior...), boundary...)
	sortPoints(all)
	sorted := append([]lattice.Point{}, inside...)
	sortPoints(sorted)
	require.Equal(t, sorted, all)
}

func TestArbitrarySimplex_AxisCutShrinks(t *testing.T) {
	p, err := polytope.NewPolytopeFromVertices(
		lattice.Pt3(0, 0, 0), lattice.Pt3(6, 3, 0),
		lattice.Pt3(0, 5, 10), lattice.Pt3(6, 4, 8),
	)
	require.NoError(t, err)
	before, err := p.Count()
	require.NoError(t, err)

	q := p.Clone()
	require.NoError(t, q.CutAxis(0, true, 3))
	after, err := q.Count()
	require.NoError(t, err)
	require.Less(t, after, before)
}

//----------------------------------------------------------------------------//
// Construction from raw half-spaces, degeneracy, invalid states
//----------------------------------------------------------------------------//

func TestFromHalfSpaces_TriangleMatchesVertexForm(t *testing.T) {
	hx, err := polytope.AxisHalfSpace(2, 0, false, 0) // x >= 0
	require.NoError(t, err)
	hy, err := polytope.AxisHalfSpace(2, 1, false, 0) // y >= 0
	require.NoError(t, err)
	hd, err := polytope.NewHalfSpace(lattice.Pt2(7, 5), 35)
	require.NoError(t, err)

	p, err := polytope.NewPolytopeFromHalfSpaces(hx, hy, hd)
	require.NoError(t, err)
	require.True(t, p.IsValid())
	require.Equal(t, lattice.Pt2(0, 0), p.Domain().Lower())
	require.Equal(t, lattice.Pt2(5, 7), p.Domain().Upper())

	n, err := p.Count()
	require.NoError(t, err)
	require.Equal(t, int64(25), n)
}

func TestFromHalfSpaces_Unbounded(t *testing.T) {
	hx, err := polytope.AxisHalfSpace(2, 0, false, 0)
	require.NoError(t, err)
	hy, err := polytope.AxisHalfSpace(2, 1, false, 0)
	require.NoError(t, err)

	// Quadrant x >= 0, y >= 0 recedes along +x: no finite extent.
	p, err := polytope.NewPolytopeFromHalfSpaces(hx, hy)
	require.ErrorIs(t, err, polytope.ErrUnboundedPolytope)
	require.False(t, p.IsValid())

	_, err = p.Count()
	require.ErrorIs(t, err, polytope.ErrUnboundedPolytope)
	_, err = p.Points()
	require.ErrorIs(t, err, polytope.ErrUnboundedPolytope)

	// Cut on an invalid polytope is fatal.
	require.ErrorIs(t, p.CutAxis(0, true, 3), polytope.ErrInvalidPolytope)
}

func TestFromHalfSpaces_EmptyIntersection(t *testing.T) {
	// x <= -1 and x >= 1 with a bounded y band: bounded but empty.
	a, err := polytope.AxisHalfSpace(2, 0, true, -1)
	require.NoError(t, err)
	b, err := polytope.AxisHalfSpace(2, 0, false, -1) // x >= 1
	require.NoError(t, err)
	c, err := polytope.AxisHalfSpace(2, 1, true, 1)
	require.NoError(t, err)
	d, err := polytope.AxisHalfSpace(2, 1, false, 1) // y >= -1
	require.NoError(t, err)

	p, err := polytope.NewPolytopeFromHalfSpaces(a, b, c, d)
	require.NoError(t, err)
	n, err := p.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestDegenerateVertices(t *testing.T) {
	// Collinear 2D points span no area.
	_, err := polytope.NewPolytopeFromVertices(
		lattice.Pt2(0, 0), lattice.Pt2(2, 2), lattice.Pt2(5, 5),
	)
	require.ErrorIs(t, err, polytope.ErrDegenerate)

	// Coplanar 3D points span no volume.
	_, err = polytope.NewPolytopeFromVertices(
		lattice.Pt3(0, 0, 0), lattice.Pt3(1, 0, 0),
		lattice.Pt3(0, 1, 0), lattice.Pt3(1, 1, 0),
	)
	require.ErrorIs(t, err, polytope.ErrDegenerate)

	// 1D input is out of supported range.
	_, err = polytope.NewPolytopeFromVertices(lattice.Point{0}, lattice.Point{4})
	require.ErrorIs(t, err, polytope.ErrUnsupportedDimension)
}

func TestZeroValuePolytopeIsInvalid(t *testing.T) {
	var p polytope.Polytope
	require.False(t, p.IsValid())
	_, err := p.Count()
	require.ErrorIs(t, err, polytope.ErrInvalidPolytope)
	_, err = p.IsInterior(lattice.Pt2(0, 0))
	require.ErrorIs(t, err, polytope.ErrInvalidPolytope)
}

func TestCutEmptiesPolytope(t *testing.T) {
	p := triangle057(t)
	require.NoError(t, p.CutAxis(0, true, -1)) // x <= -1 kills everything
	n, err := p.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

// sortPoints sorts in place by lexicographic coordinate order.
func sortPoints(pts []lattice.Point) {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
}
