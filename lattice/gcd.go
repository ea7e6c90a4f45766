package lattice

// GCD returns the greatest common divisor of |a| and |b|; GCD(0,0) = 0.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Content returns the gcd of all coordinates of v; zero for a zero vector.
// Complexity: O(d·log max|vᵢ|).
func (p Point) Content() int64 {
	var g int64
	for _, c := range p {
		g = GCD(g, c)
	}

	return g
}

// Reduce returns v divided by its content, i.e. the shortest integer
// vector with the same direction. A zero vector is returned unchanged.
// Complexity: O(d).
func (p Point) Reduce() Point {
	g := p.Content()
	if g <= 1 {
		return p.Clone()
	}
	r := make(Point, len(p))
	for i, c := range p {
		r[i] = c / g
	}

	return r
}

// FloorDiv returns ⌊a/b⌋ for b ≠ 0 (exact floored division).
// Complexity: O(1).
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

// CeilDiv returns ⌈a/b⌉ for b ≠ 0 (exact ceiled division).
// Complexity: O(1).
func CeilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}

	return q
}
