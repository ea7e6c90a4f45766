package polytope

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/digeo/lattice"
)

// deriveDomain computes an exact bounding box for the intersection of
// the given half-spaces, in the manner of per-axis linear-programming
// extent queries: every vertex of a bounded polyhedron is the solution
// of dim tight constraints, so enumerating feasible constraint
// intersections and taking per-axis rational min/max bounds the region
// exactly. Boundedness itself is checked first via the recession cone.
// Returns ErrUnboundedPolytope when no finite extent exists.
// Complexity: O(m^(dim+1)) with exact rational arithmetic.
func deriveDomain(dim int, hs []HalfSpace) (lattice.Domain, error) {
	if dim < 2 || dim > 3 {
		return lattice.Domain{}, ErrUnsupportedDimension
	}
	if len(hs) < dim+1 {
		return lattice.Domain{}, ErrUnboundedPolytope
	}
	if hasRecessionDirection(dim, hs) {
		return lattice.Domain{}, ErrUnboundedPolytope
	}

	lo, hi, feasible := vertexExtents(dim, hs)
	if !feasible {
		// Bounded but empty intersection: any one-point box is a valid
		// (trivially complete) enumeration domain.
		zero := make(lattice.Point, dim)

		return mustDomain(zero, zero)
	}

	lower := make(lattice.Point, dim)
	upper := make(lattice.Point, dim)
	for i := 0; i < dim; i++ {
		l, err := ratFloor(lo[i])
		if err != nil {
			return lattice.Domain{}, err
		}
		u, err := ratCeil(hi[i])
		if err != nil {
			return lattice.Domain{}, err
		}
		lower[i], upper[i] = l, u
	}

	return mustDomain(lower, upper)
}

// hasRecessionDirection reports whether some direction d ≠ 0 satisfies
// n·d ≤ 0 for every half-space normal n. Every extreme ray of the
// recession cone is tight on dim-1 independent constraints, so testing
// the constraint-boundary candidate directions is exhaustive.
func hasRecessionDirection(dim int, hs []HalfSpace) bool {
	var candidates [][]*big.Int
	if dim == 2 {
		for _, h := range hs {
			d := []*big.Int{big.NewInt(-h.normal[1]), big.NewInt(h.normal[0])}
			candidates = append(candidates, d, negDir(d))
		}
	} else {
		for i := 0; i < len(hs); i++ {
			for j := i + 1; j < len(hs); j++ {
				d := crossNormals(hs[i].normal, hs[j].normal)
				if dirIsZero(d) {
					continue
				}
				candidates = append(candidates, d, negDir(d))
			}
		}
		if len(candidates) == 0 {
			return true // all normals parallel: a whole plane recedes
		}
	}
	for _, d := range candidates {
		if dirIsZero(d) {
			continue
		}
		recedes := true
		for _, h := range hs {
			if dotDir(h.normal, d).Sign() > 0 {
				recedes = false

				break
			}
		}
		if recedes {
			return true
		}
	}

	return false
}

// vertexExtents enumerates all feasible intersections of dim constraint
// hyperplanes and returns per-axis rational min/max coordinates.
func vertexExtents(dim int, hs []HalfSpace) (lo, hi []*big.Rat, feasible bool) {
	lo = make([]*big.Rat, dim)
	hi = make([]*big.Rat, dim)

	visit := func(v []*big.Rat) {
		for i := 0; i < dim; i++ {
			if lo[i] == nil || v[i].Cmp(lo[i]) < 0 {
				lo[i] = new(big.Rat).Set(v[i])
			}
			if hi[i] == nil || v[i].Cmp(hi[i]) > 0 {
				hi[i] = new(big.Rat).Set(v[i])
			}
		}
		feasible = true
	}

	if dim == 2 {
		for i := 0; i < len(hs); i++ {
			for j := i + 1; j < len(hs); j++ {
				if v, ok := solve2(hs[i], hs[j]); ok && isFeasible(v, hs) {
					visit(v)
				}
			}
		}
	} else {
		for i := 0; i < len(hs); i++ {
			for j := i + 1; j < len(hs); j++ {
				for k := j + 1; k < len(hs); k++ {
					if v, ok := solve3(hs[i], hs[j], hs[k]); ok && isFeasible(v, hs) {
						visit(v)
					}
				}
			}
		}
	}

	return lo, hi, feasible
}

// solve2 intersects two constraint hyperplanes in 2D (Cramer's rule).
func solve2(a, b HalfSpace) ([]*big.Rat, bool) {
	det := det2(a.normal[0], a.normal[1], b.normal[0], b.normal[1])
	if det.Sign() == 0 {
		return nil, false
	}
	dx := det2(a.offset, a.normal[1], b.offset, b.normal[1])
	dy := det2(a.normal[0], a.offset, b.normal[0], b.offset)

	return []*big.Rat{
		new(big.Rat).SetFrac(dx, new(big.Int).Set(det)),
		new(big.Rat).SetFrac(dy, new(big.Int).Set(det)),
	}, true
}

// solve3 intersects three constraint hyperplanes in 3D (Cramer's rule).
func solve3(a, b, c HalfSpace) ([]*big.Rat, bool) {
	m := [3][4]int64{}
	for r, h := range []HalfSpace{a, b, c} {
		m[r] = [4]int64{h.normal[0], h.normal[1], h.normal[2], h.offset}
	}
	det := det3(m, 0, 1, 2)
	if det.Sign() == 0 {
		return nil, false
	}
	v := make([]*big.Rat, 3)
	cols := [3][3]int{{3, 1, 2}, {0, 3, 2}, {0, 1, 3}}
	for i := 0; i < 3; i++ {
		num := det3(m, cols[i][0], cols[i][1], cols[i][2])
		v[i] = new(big.Rat).SetFrac(num, new(big.Int).Set(det))
	}

	return v, true
}

// isFeasible reports whether the rational point v satisfies every
// half-space (n·v ≤ c compared exactly).
func isFeasible(v []*big.Rat, hs []HalfSpace) bool {
	lhs := new(big.Rat)
	term := new(big.Rat)
	for _, h := range hs {
		lhs.SetInt64(0)
		for i, n := range h.normal {
			term.SetInt64(n)
			lhs.Add(lhs, term.Mul(term, v[i]))
		}
		if lhs.Cmp(new(big.Rat).SetInt64(h.offset)) > 0 {
			return false
		}
	}

	return true
}

// det2 returns the exact determinant |a b; c d|.
func det2(a, b, c, d int64) *big.Int {
	l := new(big.Int).Mul(big.NewInt(a), big.NewInt(d))
	r := new(big.Int).Mul(big.NewInt(b), big.NewInt(c))

	return l.Sub(l, r)
}

// det3 returns the exact 3×3 determinant of the chosen columns of m.
func det3(m [3][4]int64, c0, c1, c2 int) *big.Int {
	cof := func(r1, r2, cA, cB int) *big.Int {
		return det2(m[r1][cA], m[r1][cB], m[r2][cA], m[r2][cB])
	}
	d := new(big.Int).Mul(big.NewInt(m[0][c0]), cof(1, 2, c1, c2))
	t := new(big.Int).Mul(big.NewInt(m[0][c1]), cof(1, 2, c0, c2))
	d.Sub(d, t)
	t = new(big.Int).Mul(big.NewInt(m[0][c2]), cof(1, 2, c0, c1))

	return d.Add(d, t)
}

// crossNormals returns n1×n2 as big.Int coordinates.
func crossNormals(n1, n2 lattice.Vector) []*big.Int {
	d := make([]*big.Int, 3)
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		l := new(big.Int).Mul(big.NewInt(n1[j]), big.NewInt(n2[k]))
		r := new(big.Int).Mul(big.NewInt(n1[k]), big.NewInt(n2[j]))
		d[i] = l.Sub(l, r)
	}

	return d
}

// dotDir returns n·d for an int64 normal and a big.Int direction.
func dotDir(n lattice.Vector, d []*big.Int) *big.Int {
	sum := new(big.Int)
	t := new(big.Int)
	for i, c := range n {
		t.Mul(big.NewInt(c), d[i])
		sum.Add(sum, t)
	}

	return sum
}

func negDir(d []*big.Int) []*big.Int {
	out := make([]*big.Int, len(d))
	for i, v := range d {
		out[i] = new(big.Int).Neg(v)
	}

	return out
}

func dirIsZero(d []*big.Int) bool {
	for _, v := range d {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// ratFloor returns ⌊r⌋ as an int64.
func ratFloor(r *big.Rat) (int64, error) {
	q := new(big.Int).Div(r.Num(), r.Denom()) // Euclidean: floor for positive denom
	if !q.IsInt64() {
		return 0, fmt.Errorf("polytope: domain bound: %w", lattice.ErrOverflow)
	}

	return q.Int64(), nil
}

// ratCeil returns ⌈r⌉ as an int64.
func ratCeil(r *big.Rat) (int64, error) {
	f, err := ratFloor(r)
	if err != nil {
		return 0, err
	}
	if r.IsInt() {
		return f, nil
	}
	if f == math.MaxInt64 {
		return 0, fmt.Errorf("polytope: domain bound: %w", lattice.ErrOverflow)
	}

	return f + 1, nil
}

// mustDomain wraps lattice.NewDomain for bounds known to be ordered.
func mustDomain(lower, upper lattice.Point) (lattice.Domain, error) {
	d, err := lattice.NewDomain(lower, upper)
	if err != nil {
		return lattice.Domain{}, fmt.Errorf("polytope: derived domain: %w", err)
	}

	return d, nil
}
