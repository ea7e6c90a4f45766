// Package dss implements on-line recognition of 4-connected digital
// straight segments (DSS) by their arithmetical characteristics.
//
// What:
//
//   - Segment: a maximal run of 4-connected lattice points that all lie
//     inside the band μ ≤ a·x − b·y ≤ μ + |a| + |b| − 1 of some digital
//     straight line with slope a/b and intercept μ.
//   - ExtendFront: the incremental recognition step. Feeding the next
//     point of a curve either keeps the characteristics, tightens the
//     slope around a leaning point, or rejects the point.
//   - Leaning points Uf, Ul, Lf, Ll: the first/last points touching the
//     upper (r = μ) and lower (r = μ+|a|+|b|−1) edges of the band; the
//     slope updates pivot exactly on them.
//
// Why:
//
//   - Decomposing a digital curve into maximal segments yields exact
//     tangent and length estimators with no floating point involved.
//
// Complexity:
//
//   - ExtendFront: O(1) per point; recognizing an n-point curve prefix
//     is O(n) total.
//
// Errors:
//
//   - ErrNotAdjacent: the candidate is not 4-adjacent to the front.
//   - ErrNotExtendable: the candidate leaves the line's band, so the
//     segment is maximal.
//
// All remainders are evaluated exactly; coordinates near the int64
// range fall back to big-integer arithmetic.
package dss
