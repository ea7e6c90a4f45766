// Package polytope implements bounded lattice polytopes with exact
// integer arithmetic: construction from vertices or half-spaces,
// half-space cutting, and exact counting and classification of the
// lattice points inside.
//
// What:
//
//   - HalfSpace: one linear inequality n·x ≤ c over lattice points,
//     stored in canonical form (normal reduced by its gcd).
//   - Polytope: a bounded intersection of half-spaces in dimension 2
//     or 3, built from a vertex set (convex-hull facets) or from an
//     explicit half-space list.
//   - Cut narrows the feasible region by one half-space; counts are
//     monotonically non-increasing under cuts.
//   - Count/CountInterior/CountBoundary classify every lattice point
//     of the bounding domain as interior, boundary or outside, in a
//     single slice-pruned scan; Points/InteriorPoints/BoundaryPoints
//     collect them in lexicographic order.
//   - InteriorPolytope shifts every half-space inward by one unit,
//     realizing strict-interior tests (Pick's theorem validation).
//
// Why:
//
//   - Digital convexity, volume estimation and shape analysis all
//     reduce to exact lattice-point counts over convex regions.
//   - Floating-point predicates misclassify near-boundary points;
//     every predicate here is evaluated exactly.
//
// Complexity:
//
//   - Construction from v vertices: O(v log v) in 2D (monotone chain),
//     O(v⁴) in 3D (exhaustive facet check; vertex sets are small).
//   - Pointwise predicates: O(m), m = number of half-spaces.
//   - Counting: O(s·m) where s is the number of 1D slices of the
//     bounding domain — the innermost axis is resolved per slice from
//     exact interval bounds, never enumerated for counting.
//
// Errors:
//
//   - ErrZeroNormal: a half-space was given a zero normal.
//   - ErrDegenerate: a vertex set does not span a full-dimensional region.
//   - ErrUnboundedPolytope: finite extent cannot be established.
//   - ErrInvalidPolytope: an operation was invoked on an invalid polytope.
//   - ErrUnsupportedDimension: vertex construction outside 2D/3D.
package polytope
