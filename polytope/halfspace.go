package polytope

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/digeo/lattice"
)

// HalfSpace is the set of lattice points x satisfying normal·x ≤ offset.
// It is immutable and always stored in canonical form: the normal is
// divided by its content g and the offset replaced by ⌊offset/g⌋, which
// leaves the satisfied lattice-point set unchanged while keeping offsets
// comparable across repeated cuts.
type HalfSpace struct {
	normal lattice.Vector
	offset int64

	// Axis-aligned fast path: axis ≥ 0 and sign ∈ {-1,+1} when the
	// normal is ±e_axis; axis is -1 otherwise.
	axis int
	sign int64
}

// NewHalfSpace builds the half-space normal·x ≤ offset in canonical form.
// Returns ErrZeroNormal if the normal is the zero vector.
// Complexity: O(d·log max|nᵢ|).
func NewHalfSpace(normal lattice.Vector, offset int64) (HalfSpace, error) {
	if normal.IsZero() {
		return HalfSpace{}, ErrZeroNormal
	}
	g := normal.Content()
	n := normal.Reduce()
	c := offset
	if g > 1 {
		c = lattice.FloorDiv(offset, g)
	}
	h := HalfSpace{normal: n, offset: c, axis: -1}
	for i, v := range n {
		if v == 0 {
			continue
		}
		if h.axis >= 0 || (v != 1 && v != -1) {
			h.axis = -1

			break
		}
		h.axis = i
		h.sign = v
	}

	return h, nil
}

// AxisHalfSpace builds the axis-aligned half-space x_axis ≤ offset when
// positive is true, or -x_axis ≤ offset (i.e. x_axis ≥ -offset) otherwise.
// Complexity: O(d).
func AxisHalfSpace(dim, axis int, positive bool, offset int64) (HalfSpace, error) {
	if axis < 0 || axis >= dim {
		return HalfSpace{}, ErrZeroNormal
	}
	n := make(lattice.Vector, dim)
	if positive {
		n[axis] = 1
	} else {
		n[axis] = -1
	}

	return NewHalfSpace(n, offset)
}

// Normal returns a copy of the canonical normal vector.
func (h HalfSpace) Normal() lattice.Vector { return h.normal.Clone() }

// Offset returns the canonical offset.
func (h HalfSpace) Offset() int64 { return h.offset }

// Dim returns the dimension of the half-space.
func (h HalfSpace) Dim() int { return len(h.normal) }

// Equal reports exact equality of canonical normals and offsets.
// Complexity: O(d).
func (h HalfSpace) Equal(o HalfSpace) bool {
	return h.offset == o.offset && h.normal.Equal(o.normal)
}

// Side returns the exact sign of normal·p - offset: negative when p is
// strictly inside, zero when p lies on the supporting hyperplane, and
// positive when p violates the half-space. Axis-aligned half-spaces use
// a scalar compare; the general path falls back to big.Int only when
// int64 would overflow.
// Complexity: O(d); O(1) when axis-aligned.
func (h HalfSpace) Side(p lattice.Point) (int, error) {
	if len(p) != len(h.normal) {
		return 0, lattice.ErrDimensionMismatch
	}
	if h.axis >= 0 {
		v := h.sign * p[h.axis]
		switch {
		case v < h.offset:
			return -1, nil
		case v > h.offset:
			return 1, nil
		default:
			return 0, nil
		}
	}
	dot, err := h.normal.Dot(p)
	if err == nil {
		switch {
		case dot < h.offset:
			return -1, nil
		case dot > h.offset:
			return 1, nil
		default:
			return 0, nil
		}
	}
	b, berr := h.normal.DotBig(p)
	if berr != nil {
		return 0, berr
	}

	return b.Cmp(big.NewInt(h.offset)), nil
}

// Satisfies reports whether p satisfies the inequality (Side ≤ 0).
// Complexity: O(d).
func (h HalfSpace) Satisfies(p lattice.Point) (bool, error) {
	s, err := h.Side(p)

	return s <= 0, err
}

// Eval returns the exact value of normal·p - offset; ErrOverflow only
// if the value itself exceeds int64.
// Complexity: O(d).
func (h HalfSpace) Eval(p lattice.Point) (int64, error) {
	if len(p) != len(h.normal) {
		return 0, lattice.ErrDimensionMismatch
	}
	b, err := h.normal.DotBig(p)
	if err != nil {
		return 0, err
	}
	b.Sub(b, big.NewInt(h.offset))
	if !b.IsInt64() {
		return 0, lattice.ErrOverflow
	}

	return b.Int64(), nil
}

// shrink returns the half-space moved inward by one unit (strict form).
func (h HalfSpace) shrink() HalfSpace {
	s := h
	s.normal = h.normal.Clone()
	s.offset--

	return s
}

// String renders the half-space as "n·x <= c".
func (h HalfSpace) String() string {
	return fmt.Sprintf("%s·x <= %d", h.normal, h.offset)
}
