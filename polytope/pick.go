package polytope

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/digeo/lattice"
)

// ErrNoVertexForm indicates an area query on a polytope without stored
// hull vertices (built from raw half-spaces or already cut).
var ErrNoVertexForm = errors.New("polytope: area requires a 2D polytope built from vertices")

// Area2 returns twice the area of a 2D polytope built from vertices,
// computed exactly with the shoelace formula over the hull. Twice the
// area is always an integer for lattice polygons, which keeps the
// arithmetic exact.
// Returns ErrNoVertexForm when hull vertices are unavailable.
// Complexity: O(v).
func (p *Polytope) Area2() (int64, error) {
	if !p.IsValid() {
		return 0, ErrInvalidPolytope
	}
	if p.dim != 2 || len(p.verts) < 3 {
		return 0, ErrNoVertexForm
	}
	sum := new(big.Int)
	t := new(big.Int)
	u := new(big.Int)
	for i, v := range p.verts {
		w := p.verts[(i+1)%len(p.verts)]
		t.Mul(big.NewInt(v[0]), big.NewInt(w[1]))
		u.Mul(big.NewInt(w[0]), big.NewInt(v[1]))
		sum.Add(sum, t.Sub(t, u))
	}
	sum.Abs(sum)
	if !sum.IsInt64() {
		return 0, fmt.Errorf("polytope: doubled area: %w", lattice.ErrOverflow)
	}

	return sum.Int64(), nil
}

// VerifyPick checks Pick's theorem for a 2D lattice polygon:
// 2·Area == 2·#interior + #boundary - 2. It is a validation helper for
// tests and example programs, not part of the counting fast path.
// Complexity: O(s·m) for the counts plus O(v) for the area.
func (p *Polytope) VerifyPick() (bool, error) {
	area2, err := p.Area2()
	if err != nil {
		return false, err
	}
	in, err := p.CountInterior()
	if err != nil {
		return false, err
	}
	bd, err := p.CountBoundary()
	if err != nil {
		return false, err
	}

	return area2 == 2*in+bd-2, nil
}
