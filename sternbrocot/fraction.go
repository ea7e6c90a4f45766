package sternbrocot

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/digeo/lattice"
)

// Fraction is a handle on one irreducible fraction of a Tree. It is a
// small value type; copying it is free and every copy addresses the
// same node. The zero value is the null fraction 0/0.
type Fraction struct {
	tree *Tree
	idx  int32
}

// IsNull reports whether f is the null fraction 0/0.
func (f Fraction) IsNull() bool { return f.tree == nil }

// P returns the numerator (0 for the null fraction).
func (f Fraction) P() int64 {
	if f.tree == nil {
		return 0
	}

	return f.tree.read(f.idx).p
}

// Q returns the denominator (0 for the null fraction).
func (f Fraction) Q() int64 {
	if f.tree == nil {
		return 0
	}

	return f.tree.read(f.idx).q
}

// U returns the last partial quotient uk of [u0,...,uk].
func (f Fraction) U() int64 {
	if f.tree == nil {
		return 0
	}

	return f.tree.read(f.idx).u
}

// K returns the continued-fraction depth k of [u0,...,uk]; 1/0 has
// depth -1.
func (f Fraction) K() int32 {
	if f.tree == nil {
		return 0
	}

	return f.tree.read(f.idx).k
}

// Even reports whether the depth k is even.
func (f Fraction) Even() bool {
	if f.tree == nil {
		return false
	}

	return f.tree.read(f.idx).k%2 == 0
}

// Odd reports whether the depth k is odd.
func (f Fraction) Odd() bool {
	if f.tree == nil {
		return false
	}

	return f.tree.read(f.idx).k%2 != 0
}

// Equals reports whether f has the value p/q.
func (f Fraction) Equals(p, q int64) bool {
	if f.tree == nil {
		return false
	}
	if g := lattice.GCD(p, q); g > 1 {
		p, q = p/g, q/g
	}
	n := f.tree.read(f.idx)

	return n.p == p && n.q == q
}

// LessThan reports whether f < p/q.
func (f Fraction) LessThan(p, q int64) bool {
	if f.tree == nil {
		return false
	}
	n := f.tree.read(f.idx)

	return cmpCross(n.p, n.q, p, q) < 0
}

// MoreThan reports whether f > p/q.
func (f Fraction) MoreThan(p, q int64) bool {
	if f.tree == nil {
		return false
	}
	n := f.tree.read(f.idx)

	return cmpCross(n.p, n.q, p, q) > 0
}

// cmpCross compares a/b with p/q by exact cross multiplication.
func cmpCross(a, b, p, q int64) int {
	lhs := new(big.Int).Mul(big.NewInt(a), big.NewInt(q))
	rhs := new(big.Int).Mul(big.NewInt(p), big.NewInt(b))

	return lhs.Cmp(rhs)
}

// Left returns the smaller child, the mediant of f and its nearest
// smaller ancestor, materializing the node on first access.
// Complexity: O(1) amortized.
func (f Fraction) Left() Fraction {
	if f.tree == nil {
		return Fraction{}
	}
	i := f.tree.child(f.idx, true)
	if i == nilIdx {
		return Fraction{}
	}

	return Fraction{f.tree, i}
}

// Right returns the larger child, the mediant of f and its nearest
// larger ancestor. Complexity: O(1) amortized.
func (f Fraction) Right() Fraction {
	if f.tree == nil {
		return Fraction{}
	}
	i := f.tree.child(f.idx, false)
	if i == nilIdx {
		return Fraction{}
	}

	return Fraction{f.tree, i}
}

// Father returns [u0,...,uk - 1], the fraction with the last partial
// quotient decremented; this is exactly the tree parent. The father of
// 0/1 and 1/0 is the null fraction. Complexity: O(1).
func (f Fraction) Father() Fraction {
	if f.tree == nil {
		return Fraction{}
	}
	n := f.tree.read(f.idx)
	if n.parent == nilIdx {
		return Fraction{}
	}

	return Fraction{f.tree, n.parent}
}

// FatherAt returns [u0,...,m] for 1 <= m <= uk, walking fathers until
// the last quotient reaches m. For m >= uk it returns f unchanged.
// Complexity: O(uk - m).
func (f Fraction) FatherAt(m int64) Fraction {
	if f.tree == nil {
		return Fraction{}
	}
	g := f
	for steps := f.tree.read(f.idx).u - m; steps > 0 && !g.IsNull(); steps-- {
		g = g.Father()
	}

	return g
}

// PreviousPartial returns [u0,...,u(k-1)], the previous convergent of
// the continued fraction. Complexity: O(1).
func (f Fraction) PreviousPartial() Fraction {
	if f.tree == nil {
		return Fraction{}
	}
	n := f.tree.read(f.idx)
	if n.prev == nilIdx {
		return Fraction{}
	}

	return Fraction{f.tree, n.prev}
}

// Partial returns the convergent [u0,...,ukp] of f; Partial(-1) is 1/0
// and Partial(K()) is f itself. The convergent is rebuilt from the
// quotients, because the previous-partial chain skips convergents whose
// canonical form is shallower than their position. Complexity: O(k),
// plus a descent when the convergent is not materialized yet.
func (f Fraction) Partial(kp int32) Fraction {
	if f.tree == nil {
		return Fraction{}
	}
	if kp >= f.tree.read(f.idx).k {
		return f
	}
	if kp < -1 {
		return Fraction{}
	}
	if kp == -1 {
		return f.tree.OneOverZero()
	}

	qs := f.CFrac()
	pp, qp := int64(1), int64(0)
	pc, qc := qs[0], int64(1)
	for j := int32(1); j <= kp; j++ {
		pc, pp = qs[j]*pc+pp, pc
		qc, qp = qs[j]*qc+qp, qc
	}
	g, _ := f.tree.Fraction(pc, qc)

	return g
}

// Reduced returns the partial of depth k-i, i.e. the fraction obtained
// by dropping the last i quotients. Complexity: O(i).
func (f Fraction) Reduced(i int32) Fraction {
	if f.tree == nil {
		return Fraction{}
	}

	return f.Partial(f.tree.read(f.idx).k - i)
}

// Inverse returns q/p. The two nodes cross-link on first computation,
// so subsequent calls in either direction are O(1).
func (f Fraction) Inverse() Fraction {
	if f.tree == nil {
		return Fraction{}
	}
	t := f.tree
	t.mu.Lock()
	n := t.nodes[f.idx]
	if n.inverse != nilIdx {
		i := n.inverse
		t.mu.Unlock()

		return Fraction{t, i}
	}
	t.mu.Unlock()

	g, _ := t.Fraction(n.q, n.p) // inputs are non-negative, cannot fail
	t.mu.Lock()
	t.nodes[f.idx].inverse = g.idx
	t.nodes[g.idx].inverse = f.idx
	t.mu.Unlock()

	return g
}

// Mediant returns (p+p')/(q+q') resolved in the same tree; the null
// fraction if either operand is null.
func (f Fraction) Mediant(o Fraction) Fraction {
	if f.tree == nil || o.tree == nil {
		return Fraction{}
	}
	a, b := f.tree.read(f.idx), o.tree.read(o.idx)
	g, _ := f.tree.Fraction(a.p+b.p, a.q+b.q)

	return g
}

// Split returns the two fractions whose mediant is f: its nearest
// smaller and larger ancestors. Complexity: O(1).
func (f Fraction) Split() (left, right Fraction) {
	if f.tree == nil {
		return Fraction{}, Fraction{}
	}
	n := f.tree.read(f.idx)
	if n.ascLeft != nilIdx {
		left = Fraction{f.tree, n.ascLeft}
	}
	if n.ascRight != nilIdx {
		right = Fraction{f.tree, n.ascRight}
	}

	return left, right
}

// SplitBerstel returns the Berstel decomposition of f,
//
//	f = nb1·left ⊕ nb2·right,
//
// where ⊕ is the mediant and exactly one multiplicity exceeds 1: the
// previous partial repeats uk-1 times and the complementary fraction
// appears once. For 1/1 both multiplicities are 1; for 0/1 and 1/0 the
// split is undefined and all results are null.
func (f Fraction) SplitBerstel() (left Fraction, nb1 int64, right Fraction, nb2 int64) {
	if f.tree == nil {
		return Fraction{}, 0, Fraction{}, 0
	}
	n := f.tree.read(f.idx)
	if n.k < 0 || (n.k == 0 && n.u <= 1) {
		if n.p == 1 && n.q == 1 {
			l, r := f.Split()

			return l, 1, r, 1
		}

		return Fraction{}, 0, Fraction{}, 0
	}

	prev := f.PreviousPartial()
	pn := f.tree.read(prev.idx)
	m := n.u - 1
	single, _ := f.tree.Fraction(n.p-m*pn.p, n.q-m*pn.q)
	if n.k%2 == 0 {
		return single, 1, prev, m
	}

	return prev, m, single, 1
}

// CFrac returns the partial quotients [u0,...,uk] of the canonical
// continued fraction; [0] for 0/1, empty for 1/0 and nil for the null
// fraction. Complexity: O(k).
func (f Fraction) CFrac() []int64 {
	if f.tree == nil {
		return nil
	}
	n := f.tree.read(f.idx)
	if n.k < 0 {
		return []int64{}
	}

	// Walk the previous-partial chain from the deepest quotient down.
	// A chain node one level shallower than its position stands for a
	// prefix ending in quotient 1: [u0,...,uj,1] and [u0,...,uj+1] are
	// the same fraction, and the node stores the collapsed form. Such a
	// node settles two quotients at once.
	qs := make([]int64, n.k+1)
	g := f
	for j := n.k; j >= 0; {
		gn := g.tree.read(g.idx)
		if gn.k == j {
			qs[j] = gn.u
			j--
		} else {
			qs[j] = 1
			qs[j-1] = gn.u - 1
			j -= 2
		}
		g = g.PreviousPartial()
	}

	return qs
}

// String renders the fraction as "p/q"; the null fraction as "0/0".
func (f Fraction) String() string {
	if f.tree == nil {
		return "0/0"
	}
	n := f.tree.read(f.idx)

	return fmt.Sprintf("%d/%d", n.p, n.q)
}
