// Package sternbrocot implements the Stern–Brocot tree: the infinite
// binary tree enumerating every irreducible non-negative fraction,
// whose structure encodes the continued-fraction representation.
//
// What:
//
//   - Tree: an arena of nodes grown on demand; every parent/child/
//     inverse relation is a stable index into the arena, so fractions
//     are small copyable values and no dangling links can exist.
//   - Fraction: a handle (tree, index) exposing numerator, denominator,
//     last partial quotient u and depth k, plus O(1) navigation —
//     Left, Right, Father, PreviousPartial, Inverse — and the mediant
//     and splitting formulas used by digital-line algorithms.
//   - Shared(): a lazily-built process-wide tree holding the canonical
//     roots 0/1, 1/0 and 1/1; New(p,q) resolves fractions against it.
//
// Why:
//
//   - Slopes of digital straight segments, pattern splitting and
//     Christoffel words all navigate the Stern–Brocot tree; O(1) moves
//     make those algorithms linear in the continued-fraction length.
//
// Complexity:
//
//   - Left/Right/Father/PreviousPartial/Inverse/Split: O(1) after the
//     target node exists; child creation is O(1) amortized.
//   - New(p, q): O(Σuᵢ), the sum of the partial quotients of p/q.
//   - CFrac: O(k), k = continued-fraction depth.
//
// Errors:
//
//   - ErrNegativeFraction: a negative numerator or denominator.
//
// The null fraction (zero value of Fraction) represents 0/0 and is
// returned by navigation that would leave the tree.
package sternbrocot
