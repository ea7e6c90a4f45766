package sternbrocot

import "errors"

// ErrNegativeFraction is returned when a fraction with a negative
// numerator or denominator is requested; the tree holds only the
// non-negative rationals.
var ErrNegativeFraction = errors.New("sternbrocot: fraction must be non-negative")

// nilIdx marks an absent arena link.
const nilIdx int32 = -1

// Arena slots of the three seed fractions, fixed at construction.
const (
	idxZeroOverOne int32 = 0 // 0/1 = [0], the infimum
	idxOneOverZero int32 = 1 // 1/0 = [], the supremum
	idxOneOverOne  int32 = 2 // 1/1 = [1], the root proper
)

// node is one irreducible fraction of the tree. u is the last partial
// quotient and k the continued-fraction depth; all relations are arena
// indices, so growing the arena never invalidates a link.
type node struct {
	p, q int64
	u    int64
	k    int32

	parent   int32 // [u0,...,uk-1], the tree parent
	prev     int32 // previous partial [u0,...,u(k-1)]
	ascLeft  int32 // nearest smaller ancestor
	ascRight int32 // nearest larger ancestor
	left     int32 // smaller child, lazily created
	right    int32 // larger child, lazily created
	inverse  int32 // q/p, lazily created
}
