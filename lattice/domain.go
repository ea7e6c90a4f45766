package lattice

import (
	"fmt"
	"math/big"
)

// Domain is an axis-aligned box of lattice points. It is immutable once
// built; Extend returns a grown copy. The invariant Lower[i] ≤ Upper[i]
// holds for every valid Domain.
type Domain struct {
	lower Point
	upper Point
}

// NewDomain builds the domain [lower, upper] (bounds inclusive).
// Returns ErrDimensionMismatch if bounds differ in dimension,
// ErrEmptyDomain if any lower coordinate exceeds its upper counterpart.
// Bounds are deep-copied to ensure immutability.
// Complexity: O(d).
func NewDomain(lower, upper Point) (Domain, error) {
	if len(lower) != len(upper) {
		return Domain{}, ErrDimensionMismatch
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return Domain{}, ErrEmptyDomain
		}
	}

	return Domain{lower: lower.Clone(), upper: upper.Clone()}, nil
}

// BoundingBox returns the smallest domain containing every given point.
// Returns ErrEmptyDomain for an empty point set and ErrDimensionMismatch
// for mixed dimensions.
// Complexity: O(n·d).
func BoundingBox(points []Point) (Domain, error) {
	if len(points) == 0 {
		return Domain{}, ErrEmptyDomain
	}
	lo := points[0].Clone()
	hi := points[0].Clone()
	for _, p := range points[1:] {
		if len(p) != len(lo) {
			return Domain{}, ErrDimensionMismatch
		}
		for i, c := range p {
			if c < lo[i] {
				lo[i] = c
			}
			if c > hi[i] {
				hi[i] = c
			}
		}
	}

	return Domain{lower: lo, upper: hi}, nil
}

// Dim returns the dimension of the domain.
// Complexity: O(1).
func (d Domain) Dim() int { return len(d.lower) }

// IsValid reports whether the domain was properly constructed.
// The zero value is invalid.
func (d Domain) IsValid() bool { return len(d.lower) > 0 }

// Lower returns a copy of the inclusive lower bound.
func (d Domain) Lower() Point { return d.lower.Clone() }

// Upper returns a copy of the inclusive upper bound.
func (d Domain) Upper() Point { return d.upper.Clone() }

// Contains reports whether p lies inside the box (bounds inclusive).
// Complexity: O(d).
func (d Domain) Contains(p Point) bool {
	if len(p) != len(d.lower) {
		return false
	}
	for i, c := range p {
		if c < d.lower[i] || c > d.upper[i] {
			return false
		}
	}

	return true
}

// Extend returns the smallest domain containing both d and p.
// Complexity: O(d).
func (d Domain) Extend(p Point) (Domain, error) {
	if len(p) != len(d.lower) {
		return Domain{}, ErrDimensionMismatch
	}
	lo, _ := d.lower.Min(p)
	hi, _ := d.upper.Max(p)

	return Domain{lower: lo, upper: hi}, nil
}

// Size returns the exact number of lattice points in the box.
// A big.Int is returned since the volume may exceed 64 bits.
// Complexity: O(d).
func (d Domain) Size() *big.Int {
	n := big.NewInt(1)
	side := new(big.Int)
	for i := range d.lower {
		side.SetInt64(d.upper[i] - d.lower[i])
		side.Add(side, big.NewInt(1))
		n.Mul(n, side)
	}

	return n
}

// ForEachPoint visits every lattice point of the box in lexicographic
// order. Iteration stops early when fn returns false.
// Complexity: O(volume · d).
func (d Domain) ForEachPoint(fn func(Point) bool) {
	if !d.IsValid() {
		return
	}
	cur := d.lower.Clone()
	for {
		if !fn(cur.Clone()) {
			return
		}
		// Odometer increment, last axis fastest.
		axis := len(cur) - 1
		for axis >= 0 {
			cur[axis]++
			if cur[axis] <= d.upper[axis] {
				break
			}
			cur[axis] = d.lower[axis]
			axis--
		}
		if axis < 0 {
			return
		}
	}
}

// Points collects every lattice point of the box in lexicographic order.
// Prefer ForEachPoint for large boxes.
// Complexity: O(volume · d) time and memory.
func (d Domain) Points() []Point {
	var pts []Point
	d.ForEachPoint(func(p Point) bool {
		pts = append(pts, p)

		return true
	})

	return pts
}

// String renders the domain as "[lower..upper]".
func (d Domain) String() string {
	return fmt.Sprintf("[%s..%s]", d.lower, d.upper)
}
