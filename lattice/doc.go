// Package lattice provides the exact integer primitives every other
// digeo package is built on: points, vectors, overflow-safe arithmetic
// and axis-aligned domains.
//
// What:
//
//   - Point / Vector: fixed-dimension int64 coordinate tuples (2D or 3D)
//     with component-wise arithmetic, equality and lexicographic order.
//   - Exact dot products: an int64 fast path with overflow detection and
//     a big.Int slow path, so no product is ever silently truncated.
//   - GCD helpers: scalar gcd, vector content, and in-place reduction.
//   - Domain: an axis-aligned integer box used to bound enumeration.
//
// Why:
//
//   - Digital geometry predicates must be exact: one wrong sign flips a
//     point from inside to outside and breaks every downstream count.
//   - A shared Point type keeps polytope, DSS and cell-geometry code
//     interoperable without conversions.
//
// Complexity:
//
//   - All component-wise operations: O(d), d = dimension (2 or 3).
//   - Dot / DotBig: O(d) (big.Int path allocates).
//   - Domain.ForEachPoint: O(volume of the box).
//
// Errors:
//
//   - ErrDimensionMismatch: two operands have different dimensions.
//   - ErrEmptyDomain: a domain lower bound exceeds its upper bound.
//   - ErrOverflow: an exact value does not fit in 64 bits where an
//     int64 result is required.
package lattice
