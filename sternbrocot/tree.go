package sternbrocot

import (
	"math/big"
	"sync"

	"github.com/katalvlaran/digeo/lattice"
)

// Tree is a growable arena of Stern–Brocot nodes. Fractions are created
// on first access and never removed, so every Fraction handle stays
// valid for the lifetime of the tree. A Tree is safe for concurrent use.
//
// The zero value is not usable; call NewTree or Shared.
type Tree struct {
	mu    sync.Mutex
	nodes []node
}

// NewTree returns a tree seeded with the canonical fractions 0/1, 1/0
// and 1/1. Everything else grows from 1/1 by mediants.
func NewTree() *Tree {
	t := &Tree{nodes: make([]node, 3, 64)}
	t.nodes[idxZeroOverOne] = node{
		p: 0, q: 1, u: 0, k: 0,
		parent: nilIdx, prev: idxOneOverZero,
		ascLeft: nilIdx, ascRight: idxOneOverZero,
		left: nilIdx, right: idxOneOverOne, inverse: idxOneOverZero,
	}
	t.nodes[idxOneOverZero] = node{
		p: 1, q: 0, u: 0, k: -1,
		parent: nilIdx, prev: nilIdx,
		ascLeft: idxZeroOverOne, ascRight: nilIdx,
		left: nilIdx, right: nilIdx, inverse: idxZeroOverOne,
	}
	t.nodes[idxOneOverOne] = node{
		p: 1, q: 1, u: 1, k: 0,
		parent: idxZeroOverOne, prev: idxOneOverZero,
		ascLeft: idxZeroOverOne, ascRight: idxOneOverZero,
		left: nilIdx, right: nilIdx, inverse: idxOneOverOne,
	}

	return t
}

var (
	sharedOnce sync.Once
	sharedTree *Tree
)

// Shared returns the process-wide tree. It is built lazily on first use
// and shared by every caller, so work spent materializing a fraction is
// done once per process.
func Shared() *Tree {
	sharedOnce.Do(func() { sharedTree = NewTree() })

	return sharedTree
}

// New resolves p/q in the shared tree. See Tree.Fraction.
func New(p, q int64) (Fraction, error) {
	return Shared().Fraction(p, q)
}

// ZeroOverOne returns the fraction 0/1.
func (t *Tree) ZeroOverOne() Fraction { return Fraction{t, idxZeroOverOne} }

// OneOverZero returns the fraction 1/0.
func (t *Tree) OneOverZero() Fraction { return Fraction{t, idxOneOverZero} }

// OneOverOne returns the fraction 1/1.
func (t *Tree) OneOverOne() Fraction { return Fraction{t, idxOneOverOne} }

// Size reports the number of fractions materialized so far.
func (t *Tree) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.nodes)
}

// Fraction resolves p/q to its node, reducing to lowest terms first and
// descending from 1/1 by mediant comparisons. Fraction(0, 0) is the
// null fraction; negative inputs yield ErrNegativeFraction.
// Complexity: O(Σuᵢ), the sum of the partial quotients of p/q.
func (t *Tree) Fraction(p, q int64) (Fraction, error) {
	if p < 0 || q < 0 {
		return Fraction{}, ErrNegativeFraction
	}
	if p == 0 && q == 0 {
		return Fraction{}, nil
	}
	if g := lattice.GCD(p, q); g > 1 {
		p, q = p/g, q/g
	}
	if q == 0 {
		return Fraction{t, idxOneOverZero}, nil
	}
	if p == 0 {
		return Fraction{t, idxZeroOverOne}, nil
	}

	// Descend comparing p/q against the current node. Cross products
	// are taken in big.Int so huge quotient pairs cannot wrap.
	bigP, bigQ := big.NewInt(p), big.NewInt(q)
	lhs, rhs := new(big.Int), new(big.Int)
	np, nq := new(big.Int), new(big.Int)

	t.mu.Lock()
	defer t.mu.Unlock()
	i := idxOneOverOne
	for {
		n := t.nodes[i]
		lhs.Mul(bigP, nq.SetInt64(n.q))
		rhs.Mul(bigQ, np.SetInt64(n.p))
		switch lhs.Cmp(rhs) {
		case 0:
			return Fraction{t, i}, nil
		case -1:
			i = t.childLocked(i, true)
		default:
			i = t.childLocked(i, false)
		}
	}
}

// childLocked returns the index of the requested child of i, creating
// it on first access. Callers hold t.mu. The sentinels 0/1 and 1/0 get
// no children beyond the seeded 0/1 → 1/1 edge.
func (t *Tree) childLocked(i int32, leftSide bool) int32 {
	n := t.nodes[i]
	if leftSide && n.left != nilIdx {
		return n.left
	}
	if !leftSide && n.right != nilIdx {
		return n.right
	}
	if i == idxZeroOverOne || i == idxOneOverZero {
		return nilIdx
	}

	// The child is the mediant of i and its matching ascendant.
	c := node{
		parent: i,
		left:   nilIdx, right: nilIdx, inverse: nilIdx,
	}
	if leftSide {
		a := t.nodes[n.ascLeft]
		c.p, c.q = n.p+a.p, n.q+a.q
		c.ascLeft, c.ascRight = n.ascLeft, i
	} else {
		a := t.nodes[n.ascRight]
		c.p, c.q = n.p+a.p, n.q+a.q
		c.ascLeft, c.ascRight = i, n.ascRight
	}

	// One child extends the last quotient, [u0,...,uk+1]; the other
	// opens a new one, [u0,...,uk-1,2]. Growing the last quotient grows
	// the value exactly when k is even, which fixes the directions.
	if extend := (n.k%2 == 0) != leftSide; extend {
		c.u, c.k = n.u+1, n.k
		c.prev = n.prev
	} else {
		c.u, c.k = 2, n.k+1
		c.prev = n.parent
	}

	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, c)
	if leftSide {
		t.nodes[i].left = idx
	} else {
		t.nodes[i].right = idx
	}

	return idx
}

// child is the locked entry point used by Fraction navigation.
func (t *Tree) child(i int32, leftSide bool) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.childLocked(i, leftSide)
}

// read returns a snapshot of node i. Node fields other than the child
// and inverse links are immutable after creation, but the arena slice
// itself may be reallocated by a concurrent append, hence the lock.
func (t *Tree) read(i int32) node {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.nodes[i]
}
