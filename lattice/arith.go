package lattice

import "math/big"

// Add returns p + q component-wise.
// Complexity: O(d).
func (p Point) Add(q Point) (Point, error) {
	if len(p) != len(q) {
		return nil, ErrDimensionMismatch
	}
	r := make(Point, len(p))
	for i := range p {
		v, ok := addChecked(p[i], q[i])
		if !ok {
			return nil, ErrOverflow
		}
		r[i] = v
	}

	return r, nil
}

// Sub returns p - q component-wise.
// Complexity: O(d).
func (p Point) Sub(q Point) (Point, error) {
	if len(p) != len(q) {
		return nil, ErrDimensionMismatch
	}
	r := make(Point, len(p))
	for i := range p {
		v, ok := addChecked(p[i], -q[i])
		if !ok || q[i] == minInt64 {
			return nil, ErrOverflow
		}
		r[i] = v
	}

	return r, nil
}

// Neg returns -p.
// Complexity: O(d).
func (p Point) Neg() Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = -p[i]
	}

	return r
}

// ScalarMul returns k·p.
// Complexity: O(d).
func (p Point) ScalarMul(k int64) (Point, error) {
	r := make(Point, len(p))
	for i := range p {
		v, ok := mulChecked(k, p[i])
		if !ok {
			return nil, ErrOverflow
		}
		r[i] = v
	}

	return r, nil
}

// Dot returns the exact dot product p·q as an int64.
// When any intermediate product or sum overflows 64 bits the value is
// recomputed exactly via big.Int; ErrOverflow is returned only if the
// final exact value itself does not fit in an int64.
// Complexity: O(d).
func (p Point) Dot(q Point) (int64, error) {
	if len(p) != len(q) {
		return 0, ErrDimensionMismatch
	}
	var sum int64
	exact := true
	for i := range p {
		prod, ok := mulChecked(p[i], q[i])
		if !ok {
			exact = false
			break
		}
		sum, ok = addChecked(sum, prod)
		if !ok {
			exact = false
			break
		}
	}
	if exact {
		return sum, nil
	}
	b, err := p.DotBig(q)
	if err != nil {
		return 0, err
	}
	if !b.IsInt64() {
		return 0, ErrOverflow
	}

	return b.Int64(), nil
}

// DotBig returns the exact dot product p·q as a big.Int.
// Complexity: O(d), allocates.
func (p Point) DotBig(q Point) (*big.Int, error) {
	if len(p) != len(q) {
		return nil, ErrDimensionMismatch
	}
	sum := new(big.Int)
	t := new(big.Int)
	for i := range p {
		t.SetInt64(p[i])
		sum.Add(sum, t.Mul(t, big.NewInt(q[i])))
	}

	return sum, nil
}

// DotSign returns the exact sign (-1, 0, +1) of p·q.
// Complexity: O(d).
func (p Point) DotSign(q Point) (int, error) {
	v, err := p.Dot(q)
	if err == nil {
		switch {
		case v < 0:
			return -1, nil
		case v > 0:
			return 1, nil
		default:
			return 0, nil
		}
	}
	b, berr := p.DotBig(q)
	if berr != nil {
		return 0, berr
	}

	return b.Sign(), nil
}

// NormL1 returns |p|₁ = Σ|pᵢ|, or ErrOverflow if the sum exceeds int64.
// Complexity: O(d).
func (p Point) NormL1() (int64, error) {
	var sum int64
	for _, c := range p {
		a, ok := absChecked(c)
		if !ok {
			return 0, ErrOverflow
		}
		sum, ok = addChecked(sum, a)
		if !ok {
			return 0, ErrOverflow
		}
	}

	return sum, nil
}

// NormInf returns |p|∞ = max|pᵢ|, or ErrOverflow for MinInt64 coordinates.
// Complexity: O(d).
func (p Point) NormInf() (int64, error) {
	var best int64
	for _, c := range p {
		a, ok := absChecked(c)
		if !ok {
			return 0, ErrOverflow
		}
		if a > best {
			best = a
		}
	}

	return best, nil
}

// Min returns the component-wise minimum of p and q.
// Complexity: O(d).
func (p Point) Min(q Point) (Point, error) {
	if len(p) != len(q) {
		return nil, ErrDimensionMismatch
	}
	r := make(Point, len(p))
	for i := range p {
		if p[i] < q[i] {
			r[i] = p[i]
		} else {
			r[i] = q[i]
		}
	}

	return r, nil
}

// Max returns the component-wise maximum of p and q.
// Complexity: O(d).
func (p Point) Max(q Point) (Point, error) {
	if len(p) != len(q) {
		return nil, ErrDimensionMismatch
	}
	r := make(Point, len(p))
	for i := range p {
		if p[i] > q[i] {
			r[i] = p[i]
		} else {
			r[i] = q[i]
		}
	}

	return r, nil
}

const minInt64 = -1 << 63

// addChecked returns a+b and reports whether the sum fits in an int64.
func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// mulChecked returns a*b and reports whether the product fits in an int64.
func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == minInt64 && b == -1) || (b == minInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

// absChecked returns |a| and reports false for MinInt64.
func absChecked(a int64) (int64, bool) {
	if a == minInt64 {
		return 0, false
	}
	if a < 0 {
		return -a, true
	}

	return a, true
}
