package polytope

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/digeo/lattice"
)

// cross2 returns the exact sign of the 2D cross product (a-o)×(b-o).
// Differences are taken in big.Int so extreme coordinates cannot wrap.
func cross2(o, a, b lattice.Point) int {
	ax := bigDiff(a[0], o[0])
	ay := bigDiff(a[1], o[1])
	bx := bigDiff(b[0], o[0])
	by := bigDiff(b[1], o[1])
	ax.Mul(ax, by)
	ay.Mul(ay, bx)

	return ax.Cmp(ay)
}

// bigDiff returns a-b as a big.Int without intermediate overflow.
func bigDiff(a, b int64) *big.Int {
	return new(big.Int).Sub(big.NewInt(a), big.NewInt(b))
}

// convexHull2 returns the convex hull of pts in counter-clockwise order
// with collinear points dropped (Andrew's monotone chain).
// Complexity: O(v log v).
func convexHull2(pts []lattice.Point) []lattice.Point {
	uniq := dedupPoints(pts)
	if len(uniq) < 3 {
		return uniq
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i].Less(uniq[j]) })

	build := func(seq []lattice.Point) []lattice.Point {
		var chain []lattice.Point
		for _, p := range seq {
			for len(chain) >= 2 && cross2(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}

		return chain
	}

	lower := build(uniq)
	upper := build(reversed(uniq))
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)

	return hull
}

// facets2 derives one supporting half-space per edge of a CCW hull:
// the outward normal of edge v→w is (dy, -dx) for d = w - v.
func facets2(hull []lattice.Point) ([]HalfSpace, error) {
	hs := make([]HalfSpace, 0, len(hull))
	for i, v := range hull {
		w := hull[(i+1)%len(hull)]
		d, err := w.Sub(v)
		if err != nil {
			return nil, fmt.Errorf("polytope: facet edge: %w", err)
		}
		n := lattice.Pt2(d[1], -d[0])
		c, err := n.Dot(v)
		if err != nil {
			return nil, fmt.Errorf("polytope: facet offset: %w", err)
		}
		h, err := NewHalfSpace(n, c)
		if err != nil {
			return nil, err
		}
		hs = append(hs, h)
	}

	return hs, nil
}

// cross3 returns the exact cross product (b-a)×(c-a) as big.Int coordinates.
func cross3(a, b, c lattice.Point) [3]*big.Int {
	var u, v [3]*big.Int
	for i := 0; i < 3; i++ {
		u[i] = bigDiff(b[i], a[i])
		v[i] = bigDiff(c[i], a[i])
	}
	var n [3]*big.Int
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		l := new(big.Int).Mul(u[j], v[k])
		r := new(big.Int).Mul(u[k], v[j])
		n[i] = l.Sub(l, r)
	}

	return n
}

// facets3 enumerates the supporting half-spaces of the convex hull of a
// 3D vertex set by keeping every triangle plane that has all vertices
// on one closed side. Returns ErrDegenerate when the set is coplanar.
// Complexity: O(v⁴); vertex sets are expected to be small.
func facets3(pts []lattice.Point) ([]HalfSpace, error) {
	uniq := dedupPoints(pts)
	if len(uniq) < 4 {
		return nil, ErrDegenerate
	}
	var hs []HalfSpace
	fullDim := false
	for i := 0; i < len(uniq); i++ {
		for j := i + 1; j < len(uniq); j++ {
			for k := j + 1; k < len(uniq); k++ {
				n := cross3(uniq[i], uniq[j], uniq[k])
				if n[0].Sign() == 0 && n[1].Sign() == 0 && n[2].Sign() == 0 {
					continue // collinear triple
				}
				c := planeOffset(n, uniq[i])
				neg, pos := sideSplit(n, c, uniq)
				if neg && pos {
					fullDim = true

					continue // cuts through the set: not a supporting plane
				}
				h, err := supportingHalfSpace(n, c, pos)
				if err != nil {
					return nil, err
				}
				if neg || pos {
					fullDim = true
				}
				hs = appendUnique(hs, h)
			}
		}
	}
	if !fullDim || len(hs) < 4 {
		return nil, ErrDegenerate
	}

	return hs, nil
}

// planeOffset returns n·p for a big.Int normal.
func planeOffset(n [3]*big.Int, p lattice.Point) *big.Int {
	c := new(big.Int)
	t := new(big.Int)
	for i := 0; i < 3; i++ {
		t.Mul(n[i], big.NewInt(p[i]))
		c.Add(c, t)
	}

	return c
}

// sideSplit reports whether any point lies strictly below (neg) or
// strictly above (pos) the plane n·x = c.
func sideSplit(n [3]*big.Int, c *big.Int, pts []lattice.Point) (neg, pos bool) {
	for _, p := range pts {
		v := planeOffset(n, p)
		switch v.Cmp(c) {
		case -1:
			neg = true
		case 1:
			pos = true
		}
		if neg && pos {
			return neg, pos
		}
	}

	return neg, pos
}

// supportingHalfSpace orients the plane so every vertex satisfies it and
// converts the big.Int normal back to canonical int64 form.
func supportingHalfSpace(n [3]*big.Int, c *big.Int, flip bool) (HalfSpace, error) {
	normal := make(lattice.Vector, 3)
	offset := new(big.Int).Set(c)
	for i := 0; i < 3; i++ {
		v := new(big.Int).Set(n[i])
		if flip {
			v.Neg(v)
		}
		if !v.IsInt64() {
			return HalfSpace{}, fmt.Errorf("polytope: facet normal: %w", lattice.ErrOverflow)
		}
		normal[i] = v.Int64()
	}
	if flip {
		offset.Neg(offset)
	}
	// Canonical reduction happens in NewHalfSpace; divide the offset by
	// the normal content first so it is guaranteed to fit in 64 bits.
	g := normal.Content()
	if g > 1 {
		normal = normal.Reduce()
		q := new(big.Int)
		m := new(big.Int)
		q.DivMod(offset, big.NewInt(g), m) // Euclidean: floor for positive divisor
		offset = q
	}
	if !offset.IsInt64() {
		return HalfSpace{}, fmt.Errorf("polytope: facet offset: %w", lattice.ErrOverflow)
	}

	return NewHalfSpace(normal, offset.Int64())
}

// appendUnique appends h unless an equal half-space is already present.
func appendUnique(hs []HalfSpace, h HalfSpace) []HalfSpace {
	for _, e := range hs {
		if e.Equal(h) {
			return hs
		}
	}

	return append(hs, h)
}

// dedupPoints removes duplicates while preserving first-seen order.
func dedupPoints(pts []lattice.Point) []lattice.Point {
	var out []lattice.Point
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Equal(q) {
				dup = true

				break
			}
		}
		if !dup {
			out = append(out, p.Clone())
		}
	}

	return out
}

// reversed returns a reversed copy of pts.
func reversed(pts []lattice.Point) []lattice.Point {
	out := make([]lattice.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}

	return out
}
