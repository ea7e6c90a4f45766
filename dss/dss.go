package dss

import (
	"fmt"

	"github.com/katalvlaran/digeo/lattice"
	"github.com/katalvlaran/digeo/sternbrocot"
)

// Segment is a 4-connected digital straight segment under on-line
// recognition. It stores the arithmetical characteristics (a, b, μ),
// the two endpoints and the four leaning points; the visited points
// themselves are not retained.
//
// A Segment is not safe for concurrent mutation.
type Segment struct {
	a, b, mu int64

	back  lattice.Point
	front lattice.Point

	uf, ul lattice.Point // first/last upper leaning, r = μ
	lf, ll lattice.Point // first/last lower leaning, r = μ+ω-1

	n int
}

// NewSegment starts recognition from two 4-adjacent 2D points. The
// initial slope is the step p1 → p2 itself, with band width 1, so both
// points lean on both edges.
func NewSegment(p1, p2 lattice.Point) (*Segment, error) {
	if p1.Dim() != 2 || p2.Dim() != 2 {
		return nil, ErrNotTwoDimensional
	}
	if !adjacent4(p1, p2) {
		return nil, ErrNotAdjacent
	}

	a, b := p2[1]-p1[1], p2[0]-p1[0]
	mu, err := remainderWith(a, b, p1)
	if err != nil {
		return nil, err
	}

	return &Segment{
		a: a, b: b, mu: mu,
		back: p1.Clone(), front: p2.Clone(),
		uf: p1.Clone(), ul: p2.Clone(),
		lf: p1.Clone(), ll: p2.Clone(),
		n: 2,
	}, nil
}

// ExtendFront feeds the next curve point. The point must be 4-adjacent
// to the front; its remainder against the current line decides the
// outcome:
//
//	r = μ         new last upper leaning point
//	r = μ+ω-1     new last lower leaning point
//	μ < r < μ+ω-1 interior, characteristics unchanged
//	r = μ-1       slope pivots on Uf, the point leans above
//	r = μ+ω       slope pivots on Lf, the point leans below
//	otherwise     ErrNotExtendable, the segment is maximal
//
// On any error the segment is left unchanged. Complexity: O(1).
func (s *Segment) ExtendFront(m lattice.Point) error {
	if m.Dim() != 2 {
		return ErrNotTwoDimensional
	}
	if !adjacent4(m, s.front) {
		return ErrNotAdjacent
	}
	r, err := s.Remainder(m)
	if err != nil {
		return err
	}

	omega := abs(s.a) + abs(s.b)
	switch {
	case r >= s.mu && r <= s.mu+omega-1:
		// In the band. With ω = 1 both edges coincide, so a single
		// point can renew the upper and the lower leaning point at once.
		if r == s.mu {
			s.ul = m.Clone()
		}
		if r == s.mu+omega-1 {
			s.ll = m.Clone()
		}

	case r == s.mu-1:
		// Weakly exterior above: the new slope joins Uf to m.
		a, b := m[1]-s.uf[1], m[0]-s.uf[0]
		mu, err := remainderWith(a, b, m)
		if err != nil {
			return err
		}
		s.a, s.b, s.mu = a, b, mu
		s.ul = m.Clone()
		s.lf = s.ll.Clone()

	case r == s.mu+omega:
		// Weakly exterior below: the new slope joins Lf to m.
		a, b := m[1]-s.lf[1], m[0]-s.lf[0]
		mu, err := remainderWith(a, b, m)
		if err != nil {
			return err
		}
		s.a, s.b, s.mu = a, b, mu-(abs(a)+abs(b))+1
		s.ll = m.Clone()
		s.uf = s.ul.Clone()

	default:
		return ErrNotExtendable
	}

	s.front = m.Clone()
	s.n++

	return nil
}

// A returns the slope numerator of the characteristics (a, b, μ).
func (s *Segment) A() int64 { return s.a }

// B returns the slope denominator of the characteristics (a, b, μ).
func (s *Segment) B() int64 { return s.b }

// Mu returns the intercept μ; the upper leaning points satisfy
// a·x - b·y = μ exactly.
func (s *Segment) Mu() int64 { return s.mu }

// Omega returns the band width ω = |a| + |b|.
func (s *Segment) Omega() int64 { return abs(s.a) + abs(s.b) }

// Len returns the number of points recognized so far.
func (s *Segment) Len() int { return s.n }

// Back returns the first point of the segment.
func (s *Segment) Back() lattice.Point { return s.back.Clone() }

// Front returns the most recently accepted point.
func (s *Segment) Front() lattice.Point { return s.front.Clone() }

// Uf returns the first upper leaning point.
func (s *Segment) Uf() lattice.Point { return s.uf.Clone() }

// Ul returns the last upper leaning point.
func (s *Segment) Ul() lattice.Point { return s.ul.Clone() }

// Lf returns the first lower leaning point.
func (s *Segment) Lf() lattice.Point { return s.lf.Clone() }

// Ll returns the last lower leaning point.
func (s *Segment) Ll() lattice.Point { return s.ll.Clone() }

// Remainder returns r(p) = a·x - b·y, evaluated exactly.
func (s *Segment) Remainder(p lattice.Point) (int64, error) {
	return remainderWith(s.a, s.b, p)
}

// IsInDSL reports whether p lies in the band of the underlying digital
// straight line, μ ≤ r(p) ≤ μ+ω-1. Points of the segment always do.
func (s *Segment) IsInDSL(p lattice.Point) (bool, error) {
	r, err := s.Remainder(p)
	if err != nil {
		return false, err
	}

	return r >= s.mu && r <= s.mu+s.Omega()-1, nil
}

// SlopeFraction resolves |a|/|b| in the shared Stern–Brocot tree,
// giving O(1) access to the continued fraction of the slope.
func (s *Segment) SlopeFraction() (sternbrocot.Fraction, error) {
	return sternbrocot.New(abs(s.a), abs(s.b))
}

// String renders the characteristics and endpoints.
func (s *Segment) String() string {
	return fmt.Sprintf("DSS(a=%d, b=%d, mu=%d, %v..%v)", s.a, s.b, s.mu, s.back, s.front)
}

// adjacent4 reports whether p and q differ by one step along one axis.
func adjacent4(p, q lattice.Point) bool {
	dx, dy := p[0]-q[0], p[1]-q[1]

	return abs(dx)+abs(dy) == 1
}

// remainderWith evaluates a·x - b·y through the lattice dot product, so
// coordinates near the int64 range stay exact.
func remainderWith(a, b int64, p lattice.Point) (int64, error) {
	return lattice.Vector{a, -b}.Dot(p)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
