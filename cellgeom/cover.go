package cellgeom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/digeo/lattice"
)

// Cover is a deduplicated set of cells touched by a digital point set,
// restricted to cell dimensions within [minDim, maxDim]: the linels of
// a contour, the surfels of a surface, or a whole closure at once.
// A Cover is not safe for concurrent mutation.
type Cover struct {
	spaceDim int
	minDim   int
	maxDim   int
	cells    map[cellKey]Cell
}

// cellKey keys up to three Khalimsky coordinates; the space dimension
// is fixed per cover, so unused slots cannot collide.
type cellKey [3]int64

func keyOf(c Cell) cellKey {
	var k cellKey
	copy(k[:], c)

	return k
}

// NewCover creates an empty cover of cells with dimension in
// [minCellDim, maxCellDim] inside a spaceDim-dimensional space.
func NewCover(spaceDim, minCellDim, maxCellDim int) (*Cover, error) {
	if spaceDim < 2 || spaceDim > 3 {
		return nil, ErrUnsupportedSpace
	}
	if minCellDim < 0 || maxCellDim > spaceDim || minCellDim > maxCellDim {
		return nil, ErrCellDimension
	}

	return &Cover{
		spaceDim: spaceDim,
		minDim:   minCellDim,
		maxDim:   maxCellDim,
		cells:    make(map[cellKey]Cell),
	}, nil
}

// SpaceDim returns the dimension of the embedding space.
func (cv *Cover) SpaceDim() int { return cv.spaceDim }

// MinCellDim returns the smallest covered cell dimension.
func (cv *Cover) MinCellDim() int { return cv.minDim }

// MaxCellDim returns the largest covered cell dimension.
func (cv *Cover) MaxCellDim() int { return cv.maxDim }

// Add inserts cells directly. Every cell must live in the cover's space
// and have a dimension within the cover's range.
func (cv *Cover) Add(cells ...Cell) error {
	for _, c := range cells {
		if c.SpaceDim() != cv.spaceDim {
			return lattice.ErrDimensionMismatch
		}
		if d := c.Dim(); d < cv.minDim || d > cv.maxDim {
			return ErrCellDimension
		}
		cv.cells[keyOf(c)] = c.Clone()
	}

	return nil
}

// AddPoints inserts, for each lattice point, every cell of a covered
// dimension incident to its pointel. Complexity: O(1) incident cells
// per point and dimension for the unrolled (1,2), (1,3), (2,3) cases.
func (cv *Cover) AddPoints(pts ...lattice.Point) error {
	for _, p := range pts {
		if p.Dim() != cv.spaceDim {
			return lattice.ErrDimensionMismatch
		}
		cv.addIncident(PointToPointel(p))
	}

	return nil
}

// AddPointels behaves like AddPoints but starts from pointels.
func (cv *Cover) AddPointels(pointels ...Cell) error {
	for _, c := range pointels {
		if c.SpaceDim() != cv.spaceDim {
			return lattice.ErrDimensionMismatch
		}
		if c.Dim() != 0 {
			return ErrNotPointel
		}
		cv.addIncident(c)
	}

	return nil
}

func (cv *Cover) addIncident(pointel Cell) {
	for dim := cv.minDim; dim <= cv.maxDim; dim++ {
		for _, c := range incidentCells(pointel, dim) {
			cv.cells[keyOf(c)] = c
		}
	}
}

// Contains reports membership.
func (cv *Cover) Contains(c Cell) bool {
	if c.SpaceDim() != cv.spaceDim {
		return false
	}
	_, ok := cv.cells[keyOf(c)]

	return ok
}

// Nb returns the number of distinct cells of the given dimension.
func (cv *Cover) Nb(dim int) int {
	n := 0
	for _, c := range cv.cells {
		if c.Dim() == dim {
			n++
		}
	}

	return n
}

// Total returns the number of distinct cells over all dimensions.
func (cv *Cover) Total() int { return len(cv.cells) }

// Subset reports whether every cell of cv belongs to o. Covers over
// different spaces are never subsets.
func (cv *Cover) Subset(o *Cover) bool {
	if cv.spaceDim != o.spaceDim {
		return false
	}
	for k := range cv.cells {
		if _, ok := o.cells[k]; !ok {
			return false
		}
	}

	return true
}

// SubsetAt restricts the Subset test to cells of one dimension.
func (cv *Cover) SubsetAt(dim int, o *Cover) bool {
	if cv.spaceDim != o.spaceDim {
		return false
	}
	for k, c := range cv.cells {
		if c.Dim() != dim {
			continue
		}
		if _, ok := o.cells[k]; !ok {
			return false
		}
	}

	return true
}

// Cells returns the cells of the given dimension in lexicographic order.
func (cv *Cover) Cells(dim int) []Cell {
	var out []Cell
	for _, c := range cv.cells {
		if c.Dim() == dim {
			out = append(out, c.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// String renders per-dimension cell counts.
func (cv *Cover) String() string {
	var b strings.Builder
	b.WriteString("Cover{")
	for dim := cv.minDim; dim <= cv.maxDim; dim++ {
		if dim > cv.minDim {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d-cells=%d", dim, cv.Nb(dim))
	}
	b.WriteString("}")

	return b.String()
}

// strategyKey selects an incidence enumeration per (cell dimension,
// space dimension) pair.
type strategyKey struct {
	cellDim  int
	spaceDim int
}

// incidentStrategies holds unrolled enumerations for the cases hit in
// inner loops: contour linels in 2D/3D and surface surfels in 3D.
var incidentStrategies = map[strategyKey]func(Cell) []Cell{
	{cellDim: 1, spaceDim: 2}: linels2,
	{cellDim: 1, spaceDim: 3}: linels3,
	{cellDim: 2, spaceDim: 3}: surfels3,
}

// incidentCells returns the cellDim-cells incident to a pointel,
// dispatching through the strategy table and falling back to a
// dimension-filtered co-face walk.
func incidentCells(pointel Cell, cellDim int) []Cell {
	if cellDim == 0 {
		return []Cell{pointel.Clone()}
	}
	if fn, ok := incidentStrategies[strategyKey{cellDim, pointel.SpaceDim()}]; ok {
		return fn(pointel)
	}

	var out []Cell
	for _, c := range pointel.CoFaces() {
		if c.Dim() == cellDim {
			out = append(out, c)
		}
	}

	return out
}

func linels2(p Cell) []Cell {
	x, y := p[0], p[1]

	return []Cell{
		{x - 1, y}, {x + 1, y},
		{x, y - 1}, {x, y + 1},
	}
}

func linels3(p Cell) []Cell {
	x, y, z := p[0], p[1], p[2]

	return []Cell{
		{x - 1, y, z}, {x + 1, y, z},
		{x, y - 1, z}, {x, y + 1, z},
		{x, y, z - 1}, {x, y, z + 1},
	}
}

func surfels3(p Cell) []Cell {
	x, y, z := p[0], p[1], p[2]

	return []Cell{
		{x - 1, y - 1, z}, {x - 1, y + 1, z}, {x + 1, y - 1, z}, {x + 1, y + 1, z},
		{x - 1, y, z - 1}, {x - 1, y, z + 1}, {x + 1, y, z - 1}, {x + 1, y, z + 1},
		{x, y - 1, z - 1}, {x, y - 1, z + 1}, {x, y + 1, z - 1}, {x, y + 1, z + 1},
	}
}
