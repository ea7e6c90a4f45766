package polytope

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/digeo/lattice"
)

// NewPolytopeFromVertices builds the convex hull of the given vertices
// as an intersection of supporting half-spaces. Dimension 2 and 3 are
// supported. The bounding domain is the vertex bounding box, so the
// result is bounded by construction.
// Returns ErrDegenerate if the vertices do not span a full-dimensional
// region, ErrUnsupportedDimension for other dimensions.
// Complexity: O(v log v) in 2D, O(v⁴) in 3D.
func NewPolytopeFromVertices(vertices ...lattice.Point) (*Polytope, error) {
	if len(vertices) == 0 {
		return nil, ErrDegenerate
	}
	dim := vertices[0].Dim()
	for _, v := range vertices {
		if v.Dim() != dim {
			return nil, lattice.ErrDimensionMismatch
		}
	}

	var (
		hs    []HalfSpace
		verts []lattice.Point
		err   error
	)
	switch dim {
	case 2:
		hull := convexHull2(vertices)
		if len(hull) < 3 {
			return nil, ErrDegenerate
		}
		hs, err = facets2(hull)
		verts = hull
	case 3:
		hs, err = facets3(vertices)
	default:
		return nil, ErrUnsupportedDimension
	}
	if err != nil {
		return nil, err
	}

	domain, err := lattice.BoundingBox(vertices)
	if err != nil {
		return nil, err
	}

	return &Polytope{dim: dim, hs: hs, domain: domain, valid: true, verts: verts}, nil
}

// NewPolytopeFromHalfSpaces builds a polytope directly from the given
// half-spaces. The caller asserts boundedness; a finite bounding domain
// is derived exactly from the half-space intersection, and failure to
// establish one yields an invalid polytope (IsValid reports false) and
// ErrUnboundedPolytope.
// Complexity: O(m³) extent derivation, m = number of half-spaces.
func NewPolytopeFromHalfSpaces(hs ...HalfSpace) (*Polytope, error) {
	if len(hs) == 0 {
		return nil, ErrUnboundedPolytope
	}
	dim := hs[0].Dim()
	own := make([]HalfSpace, 0, len(hs))
	for _, h := range hs {
		if h.Dim() != dim {
			return nil, lattice.ErrDimensionMismatch
		}
		own = appendUnique(own, h)
	}
	p := &Polytope{dim: dim, hs: own}
	domain, err := deriveDomain(dim, own)
	if err != nil {
		p.unbounded = true

		return p, err
	}
	p.domain = domain
	p.valid = true

	return p, nil
}

// IsValid reports whether the polytope was fully constructed and still
// has a finite bounding domain. The zero value and any half-built
// instance report false.
func (p *Polytope) IsValid() bool { return p != nil && p.valid }

// Dim returns the ambient dimension.
func (p *Polytope) Dim() int { return p.dim }

// Domain returns the bounding domain guaranteed to contain every
// feasible lattice point.
func (p *Polytope) Domain() lattice.Domain { return p.domain }

// HalfSpaces returns a copy of the half-space list in insertion order.
func (p *Polytope) HalfSpaces() []HalfSpace {
	out := make([]HalfSpace, len(p.hs))
	copy(out, p.hs)

	return out
}

// Clone returns a deep, independent copy of the polytope.
// Complexity: O(m).
func (p *Polytope) Clone() *Polytope {
	q := *p
	q.hs = make([]HalfSpace, len(p.hs))
	copy(q.hs, p.hs)
	q.verts = make([]lattice.Point, len(p.verts))
	for i, v := range p.verts {
		q.verts[i] = v.Clone()
	}

	return &q
}

// Cut intersects the polytope with one more half-space. The feasible
// point set can only shrink: Count after Cut is ≤ Count before. Cutting
// by a half-space equal to a stored one is a no-op. Cached counts are
// invalidated synchronously. When the half-space is axis-aligned the
// bounding domain is narrowed as well.
// Returns ErrInvalidPolytope on an invalid receiver.
// Complexity: O(m).
func (p *Polytope) Cut(h HalfSpace) error {
	if !p.IsValid() {
		return ErrInvalidPolytope
	}
	if h.Dim() != p.dim {
		return lattice.ErrDimensionMismatch
	}
	for _, e := range p.hs {
		if e.Equal(h) {
			return nil
		}
	}
	p.hs = append(p.hs, h)
	p.counted = false
	p.verts = nil
	if h.axis >= 0 {
		p.narrowDomain(h)
	}

	return nil
}

// CutAxis cuts by the axis-aligned half-space x_axis ≤ offset (positive)
// or -x_axis ≤ offset (negative direction).
// Complexity: O(m).
func (p *Polytope) CutAxis(axis int, positive bool, offset int64) error {
	if !p.IsValid() {
		return ErrInvalidPolytope
	}
	h, err := AxisHalfSpace(p.dim, axis, positive, offset)
	if err != nil {
		return err
	}

	return p.Cut(h)
}

// CutDir cuts by the general half-space normal·x ≤ offset.
// Complexity: O(m).
func (p *Polytope) CutDir(normal lattice.Vector, offset int64) error {
	if !p.IsValid() {
		return ErrInvalidPolytope
	}
	h, err := NewHalfSpace(normal, offset)
	if err != nil {
		return err
	}

	return p.Cut(h)
}

// narrowDomain tightens the cached bounding box along the axis of an
// axis-aligned half-space. The domain stays a superset of the feasible
// region, so enumeration correctness is preserved.
func (p *Polytope) narrowDomain(h HalfSpace) {
	lo := p.domain.Lower()
	hi := p.domain.Upper()
	if h.sign > 0 && h.offset < hi[h.axis] {
		hi[h.axis] = h.offset
	}
	if h.sign < 0 && -h.offset > lo[h.axis] {
		lo[h.axis] = -h.offset
	}
	d, err := lattice.NewDomain(lo, hi)
	if err != nil {
		// The cut emptied the domain along this axis: collapse to a
		// minimal empty-scan box at the lower bound.
		p.domain, _ = lattice.NewDomain(hi, hi)
		p.emptied = true

		return
	}
	p.domain = d
}

// InteriorPolytope returns a new polytope whose half-spaces are all
// shifted inward by one unit, so its closed point set is exactly the
// strict interior of p. The bounding domain is inherited.
// Returns ErrInvalidPolytope on an invalid receiver.
// Complexity: O(m).
func (p *Polytope) InteriorPolytope() (*Polytope, error) {
	if !p.IsValid() {
		return nil, ErrInvalidPolytope
	}
	q := p.Clone()
	q.verts = nil
	q.counted = false
	for i := range q.hs {
		q.hs[i] = q.hs[i].shrink()
	}

	return q, nil
}

// String renders a human-readable dump: dimension, domain, half-space
// listing and (if already computed) cached counts.
func (p *Polytope) String() string {
	if !p.IsValid() {
		return "Polytope{invalid}"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Polytope{dim=%d, domain=%s, halfspaces=%d", p.dim, p.domain, len(p.hs))
	for i, h := range p.hs {
		fmt.Fprintf(&sb, "\n  [%d] %s", i, h)
	}
	if p.counted {
		fmt.Fprintf(&sb, "\n  count=%d interior=%d boundary=%d", p.cnt, p.cntInt, p.cntBd)
	}
	sb.WriteString("}")

	return sb.String()
}
