// Package lattice defines core value types and sentinel errors for the
// lattice subpackage of github.com/katalvlaran/digeo.
package lattice

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for lattice operations.
var (
	// ErrDimensionMismatch indicates two operands of different dimensions.
	ErrDimensionMismatch = errors.New("lattice: operands must have the same dimension")
	// ErrEmptyDomain indicates a lower bound strictly above an upper bound.
	ErrEmptyDomain = errors.New("lattice: domain lower bound must not exceed upper bound")
	// ErrOverflow indicates an exact value does not fit in 64 bits.
	ErrOverflow = errors.New("lattice: exact value exceeds 64-bit range")
)

// Point is a lattice point: an integer coordinate tuple of dimension 2 or 3.
// The zero value (nil) has dimension 0 and is only useful as a placeholder.
type Point []int64

// Vector is a direction or normal; representation is identical to Point.
type Vector = Point

// Pt2 returns the 2D point (x, y).
func Pt2(x, y int64) Point { return Point{x, y} }

// Pt3 returns the 3D point (x, y, z).
func Pt3(x, y, z int64) Point { return Point{x, y, z} }

// Dim returns the dimension of p.
// Complexity: O(1).
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
// Complexity: O(d).
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)

	return q
}

// Equal reports whether p and q have identical dimension and coordinates.
// Complexity: O(d).
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Less reports whether p precedes q in lexicographic coordinate order.
// Points of smaller dimension precede longer ones on a shared prefix.
// Complexity: O(d).
func (p Point) Less(q Point) bool {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}

	return len(p) < len(q)
}

// IsZero reports whether every coordinate of p is zero.
// Complexity: O(d).
func (p Point) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}

	return true
}

// String renders p as "(x,y[,z])".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", c)
	}
	sb.WriteByte(')')

	return sb.String()
}
