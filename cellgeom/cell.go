package cellgeom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/digeo/lattice"
)

var (
	// ErrUnsupportedSpace is returned for space dimensions other than 2 or 3.
	ErrUnsupportedSpace = errors.New("cellgeom: only 2D and 3D spaces are supported")

	// ErrCellDimension is returned when a cell dimension is out of range
	// or does not match the cover it is added to.
	ErrCellDimension = errors.New("cellgeom: cell dimension out of range")

	// ErrNotPointel is returned when a cell with an odd coordinate is
	// used where a pointel is required.
	ErrNotPointel = errors.New("cellgeom: cell is not a pointel")
)

// Cell is a cubical cell in Khalimsky coordinates: coordinate 2x is
// closed along its axis, 2x+1 open. The zero-length cell is invalid.
type Cell []int64

// NewCell builds a cell from Khalimsky coordinates.
func NewCell(coords ...int64) Cell {
	c := make(Cell, len(coords))
	copy(c, coords)

	return c
}

// PointToPointel returns the closed 0-cell of a lattice point, i.e. the
// cell with every Khalimsky coordinate doubled.
func PointToPointel(p lattice.Point) Cell {
	c := make(Cell, len(p))
	for i, v := range p {
		c[i] = 2 * v
	}

	return c
}

// PointelToPoint inverts PointToPointel; ErrNotPointel if any
// coordinate is odd.
func (c Cell) PointelToPoint() (lattice.Point, error) {
	p := make(lattice.Point, len(c))
	for i, v := range c {
		if v&1 != 0 {
			return nil, ErrNotPointel
		}
		p[i] = v >> 1
	}

	return p, nil
}

// SpaceDim returns the dimension of the embedding space.
func (c Cell) SpaceDim() int { return len(c) }

// Dim returns the cell dimension, the number of open (odd) axes:
// 0 for pointels, 1 for linels, SpaceDim for spels.
func (c Cell) Dim() int {
	d := 0
	for _, v := range c {
		if v&1 != 0 {
			d++
		}
	}

	return d
}

// IsOpen reports whether the cell is open along the given axis.
func (c Cell) IsOpen(axis int) bool { return c[axis]&1 != 0 }

// Clone returns an independent copy.
func (c Cell) Clone() Cell {
	r := make(Cell, len(c))
	copy(r, c)

	return r
}

// Equal reports coordinate-wise equality.
func (c Cell) Equal(o Cell) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

// Less orders cells lexicographically; cells of lower space dimension
// sort first.
func (c Cell) Less(o Cell) bool {
	if len(c) != len(o) {
		return len(c) < len(o)
	}
	for i := range c {
		if c[i] != o[i] {
			return c[i] < o[i]
		}
	}

	return false
}

// Faces returns every proper face of c: the cells obtained by rounding
// a nonempty subset of open axes to an adjacent even coordinate. A cell
// of dimension k has 3^k - 1 proper faces.
func (c Cell) Faces() []Cell {
	return c.vary(func(v int64) bool { return v&1 != 0 })
}

// CoFaces returns every proper co-face of c: the cells whose closure
// contains c, obtained by nudging a nonempty subset of closed axes to
// an adjacent odd coordinate.
func (c Cell) CoFaces() []Cell {
	return c.vary(func(v int64) bool { return v&1 == 0 })
}

// vary enumerates all cells obtained by moving any nonempty subset of
// the selected axes by ±1, in lexicographic axis order.
func (c Cell) vary(pick func(int64) bool) []Cell {
	var axes []int
	for i, v := range c {
		if pick(v) {
			axes = append(axes, i)
		}
	}
	if len(axes) == 0 {
		return nil
	}

	out := make([]Cell, 0, pow3(len(axes))-1)
	cur := c.Clone()
	var rec func(i int, changed bool)
	rec = func(i int, changed bool) {
		if i == len(axes) {
			if changed {
				out = append(out, cur.Clone())
			}

			return
		}
		ax := axes[i]
		rec(i+1, changed)
		cur[ax] = c[ax] - 1
		rec(i+1, true)
		cur[ax] = c[ax] + 1
		rec(i+1, true)
		cur[ax] = c[ax]
	}
	rec(0, false)

	return out
}

// String renders the cell as K(c0,...,cd-1).
func (c Cell) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "K(" + strings.Join(parts, ",") + ")"
}

func pow3(k int) int {
	n := 1
	for ; k > 0; k-- {
		n *= 3
	}

	return n
}
