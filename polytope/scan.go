package polytope

import (
	"math/big"

	"github.com/katalvlaran/digeo/lattice"
)

// IsDomainPointInside reports whether p lies in the bounding domain and
// satisfies every half-space (closed membership).
// Returns ErrInvalidPolytope on an invalid receiver.
// Complexity: O(m).
func (p *Polytope) IsDomainPointInside(pt lattice.Point) (bool, error) {
	if !p.IsValid() {
		return false, ErrInvalidPolytope
	}
	if p.emptied || !p.domain.Contains(pt) {
		return false, nil
	}
	for _, h := range p.hs {
		ok, err := h.Satisfies(pt)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// IsBoundary reports whether p is inside and at least one half-space is
// tight (p lies on a supporting hyperplane).
// Complexity: O(m).
func (p *Polytope) IsBoundary(pt lattice.Point) (bool, error) {
	if !p.IsValid() {
		return false, ErrInvalidPolytope
	}
	if p.emptied || !p.domain.Contains(pt) {
		return false, nil
	}
	tight := false
	for _, h := range p.hs {
		s, err := h.Side(pt)
		if err != nil {
			return false, err
		}
		if s > 0 {
			return false, nil
		}
		if s == 0 {
			tight = true
		}
	}

	return tight, nil
}

// IsInterior reports whether p is inside with no half-space tight.
// Boundary and interior partition the inside set exactly.
// Complexity: O(m).
func (p *Polytope) IsInterior(pt lattice.Point) (bool, error) {
	if !p.IsValid() {
		return false, ErrInvalidPolytope
	}
	if p.emptied || !p.domain.Contains(pt) {
		return false, nil
	}
	for _, h := range p.hs {
		s, err := h.Side(pt)
		if err != nil {
			return false, err
		}
		if s >= 0 {
			return false, nil
		}
	}

	return true, nil
}

// Count returns the exact number of lattice points satisfying every
// half-space. Counts are computed in a single slice-pruned pass and
// cached until the next Cut, so Count == CountInterior + CountBoundary
// always holds for a valid polytope.
// Complexity: O(s·m), s = number of 1D slices of the domain.
func (p *Polytope) Count() (int64, error) {
	if err := p.ensureCounts(); err != nil {
		return 0, err
	}

	return p.cnt, nil
}

// CountInterior returns the number of strictly interior lattice points.
// Complexity: O(s·m), cached.
func (p *Polytope) CountInterior() (int64, error) {
	if err := p.ensureCounts(); err != nil {
		return 0, err
	}

	return p.cntInt, nil
}

// CountBoundary returns the number of boundary lattice points.
// Complexity: O(s·m), cached.
func (p *Polytope) CountBoundary() (int64, error) {
	if err := p.ensureCounts(); err != nil {
		return 0, err
	}

	return p.cntBd, nil
}

// Points collects every inside lattice point in lexicographic order.
// Complexity: O(s·m + |result|).
func (p *Polytope) Points() ([]lattice.Point, error) {
	return p.collect(classifyAll)
}

// InteriorPoints collects the strictly interior lattice points in
// lexicographic order.
// Complexity: O(s·m + |result|).
func (p *Polytope) InteriorPoints() ([]lattice.Point, error) {
	return p.collect(classifyInterior)
}

// BoundaryPoints collects the boundary lattice points in lexicographic
// order.
// Complexity: O(s·m + |result|).
func (p *Polytope) BoundaryPoints() ([]lattice.Point, error) {
	return p.collect(classifyBoundary)
}

type classifyMode int

const (
	classifyAll classifyMode = iota
	classifyInterior
	classifyBoundary
)

// slice describes the feasible inner-axis interval for one fixed prefix:
// every x in [lo, hi] yields an inside point; tight lists the x values
// where some half-space is exactly satisfied; wholeBoundary marks slices
// lying entirely on a supporting hyperplane.
type slice struct {
	lo, hi        int64
	empty         bool
	wholeBoundary bool
	tight         []int64
}

// ensureCounts runs the counting pass once and caches the three counts.
func (p *Polytope) ensureCounts() error {
	if !p.IsValid() {
		if p != nil && p.unbounded {
			return ErrUnboundedPolytope
		}

		return ErrInvalidPolytope
	}
	if p.counted {
		return nil
	}
	var cnt, cntBd int64
	err := p.forEachSlice(func(s slice) {
		if s.empty {
			return
		}
		n := s.hi - s.lo + 1
		cnt += n
		if s.wholeBoundary {
			cntBd += n
		} else {
			cntBd += int64(len(s.tight))
		}
	})
	if err != nil {
		return err
	}
	p.cnt = cnt
	p.cntBd = cntBd
	p.cntInt = cnt - cntBd
	p.counted = true

	return nil
}

// collect materializes points of the requested class in scan order.
func (p *Polytope) collect(mode classifyMode) ([]lattice.Point, error) {
	if !p.IsValid() {
		if p != nil && p.unbounded {
			return nil, ErrUnboundedPolytope
		}

		return nil, ErrInvalidPolytope
	}
	var out []lattice.Point
	inner := p.dim - 1
	err := p.forEachSliceAt(func(prefix lattice.Point, s slice) {
		if s.empty {
			return
		}
		for x := s.lo; x <= s.hi; x++ {
			isBd := s.wholeBoundary || containsInt64(s.tight, x)
			if mode == classifyInterior && isBd {
				continue
			}
			if mode == classifyBoundary && !isBd {
				continue
			}
			pt := prefix.Clone()
			pt[inner] = x
			out = append(out, pt)
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// forEachSlice visits every 1D slice of the domain in lexicographic
// prefix order.
func (p *Polytope) forEachSlice(fn func(slice)) error {
	return p.forEachSliceAt(func(_ lattice.Point, s slice) { fn(s) })
}

// forEachSliceAt walks prefixes (all axes but the last) with an odometer
// and resolves the inner-axis interval exactly for each prefix.
func (p *Polytope) forEachSliceAt(fn func(lattice.Point, slice)) error {
	if p.emptied {
		return nil
	}
	lo := p.domain.Lower()
	hi := p.domain.Upper()
	inner := p.dim - 1
	cur := lo.Clone()
	for {
		s, err := p.innerRange(cur)
		if err != nil {
			return err
		}
		fn(cur, s)
		axis := inner - 1
		for axis >= 0 {
			cur[axis]++
			if cur[axis] <= hi[axis] {
				break
			}
			cur[axis] = lo[axis]
			axis--
		}
		if axis < 0 {
			return nil
		}
	}
}

// innerRange computes the exact feasible interval of the last axis for
// the fixed prefix coordinates of cur, refining the domain interval with
// every half-space: with r = c - Σ_{j<inner} n_j·x_j and nd = n_inner,
// nd > 0 bounds x ≤ ⌊r/nd⌋, nd < 0 bounds x ≥ ⌈r/nd⌉, and nd == 0 makes
// the whole slice infeasible (r < 0) or boundary (r == 0).
func (p *Polytope) innerRange(cur lattice.Point) (slice, error) {
	inner := p.dim - 1
	s := slice{lo: p.domain.Lower()[inner], hi: p.domain.Upper()[inner]}
	for _, h := range p.hs {
		r, exact := prefixResidual(h, cur, inner)
		if exact {
			refineInt64(&s, h.normal[inner], r)
		} else {
			rBig, err := prefixResidualBig(h, cur, inner)
			if err != nil {
				return slice{}, err
			}
			refineBig(&s, h.normal[inner], rBig)
		}
		if s.empty {
			return s, nil
		}
	}
	if s.lo > s.hi {
		s.empty = true

		return s, nil
	}
	// Keep only tight values that survived in the final interval.
	k := 0
	for _, x := range s.tight {
		if x >= s.lo && x <= s.hi && !containsInt64(s.tight[:k], x) {
			s.tight[k] = x
			k++
		}
	}
	s.tight = s.tight[:k]

	return s, nil
}

// prefixResidual computes r = offset - Σ_{j<inner} n_j·x_j in int64,
// reporting ok=false when the computation would overflow.
func prefixResidual(h HalfSpace, cur lattice.Point, inner int) (int64, bool) {
	r := h.offset
	for j := 0; j < inner; j++ {
		prod, ok := mulChecked64(h.normal[j], cur[j])
		if !ok {
			return 0, false
		}
		r, ok = addChecked64(r, -prod)
		if !ok || prod == minInt64Scan {
			return 0, false
		}
	}

	return r, true
}

// prefixResidualBig is the exact fallback for prefixResidual.
func prefixResidualBig(h HalfSpace, cur lattice.Point, inner int) (*big.Int, error) {
	r := big.NewInt(h.offset)
	t := new(big.Int)
	for j := 0; j < inner; j++ {
		t.Mul(big.NewInt(h.normal[j]), big.NewInt(cur[j]))
		r.Sub(r, t)
	}

	return r, nil
}

// refineInt64 narrows the slice interval with one constraint residual.
func refineInt64(s *slice, nd, r int64) {
	switch {
	case nd == 0:
		if r < 0 {
			s.empty = true
		} else if r == 0 {
			s.wholeBoundary = true
		}
	case nd > 0:
		bound := lattice.FloorDiv(r, nd)
		if bound < s.hi {
			s.hi = bound
		}
		if r%nd == 0 {
			s.tight = append(s.tight, bound)
		}
	default:
		bound := lattice.CeilDiv(r, nd)
		if bound > s.lo {
			s.lo = bound
		}
		if r%nd == 0 {
			s.tight = append(s.tight, r/nd)
		}
	}
	if s.lo > s.hi {
		s.empty = true
	}
}

// refineBig mirrors refineInt64 for residuals beyond 64 bits. Bounds
// outside the int64 window cannot affect the domain-bounded interval.
func refineBig(s *slice, nd int64, r *big.Int) {
	if nd == 0 {
		if r.Sign() < 0 {
			s.empty = true
		} else if r.Sign() == 0 {
			s.wholeBoundary = true
		}

		return
	}
	q, m := new(big.Int).QuoRem(r, big.NewInt(nd), new(big.Int))
	// Convert truncated division to floor/ceil.
	if nd > 0 {
		if m.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		}
		if q.IsInt64() {
			if v := q.Int64(); v < s.hi {
				s.hi = v
			}
		} else if q.Sign() < 0 {
			s.empty = true // upper bound below any int64: interval is empty
		}
	} else {
		if m.Sign() != 0 && (m.Sign() < 0) != (nd < 0) {
			q.Add(q, big.NewInt(1))
		}
		if q.IsInt64() {
			if v := q.Int64(); v > s.lo {
				s.lo = v
			}
		} else if q.Sign() > 0 {
			s.empty = true
		}
	}
	if m.Sign() == 0 && q.IsInt64() {
		s.tight = append(s.tight, q.Int64())
	}
	if s.lo > s.hi {
		s.empty = true
	}
}

func containsInt64(xs []int64, x int64) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}

const minInt64Scan = -1 << 63

// addChecked64 mirrors lattice's internal overflow-checked addition.
func addChecked64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// mulChecked64 mirrors lattice's internal overflow-checked product.
func mulChecked64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == minInt64Scan && b == -1) || (b == minInt64Scan && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
