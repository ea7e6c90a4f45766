// Package cellgeom models cellular (cubical) topology over the integer
// lattice using the Khalimsky coding.
//
// What:
//
//   - Cell: a cubical cell addressed by Khalimsky coordinates, one
//     integer per axis: coordinate 2x is closed along the axis and
//     2x+1 is open. A cell's dimension is its number of odd
//     coordinates, so 2D pointels/linels/pixels and 3D voxels all share
//     one representation.
//   - Faces and CoFaces: the proper lower- and higher-dimensional
//     incident cells, enumerated by rounding odd (resp. nudging even)
//     coordinates.
//   - Cover: a set of cells of one fixed dimension, grown from lattice
//     points via the cells incident to their pointels. The incidence
//     enumeration dispatches through a table keyed by (cell dimension,
//     space dimension) with unrolled fast paths for the common
//     curve/surface cases.
//
// Why:
//
//   - Counting linels of a digital contour or surfels of a digital
//     surface is the cellular counterpart of boundary point counting,
//     and the first step of perimeter and area estimators.
//
// Complexity:
//
//   - Faces/CoFaces: O(3^k) cells for a cell with k odd (resp. even)
//     coordinates.
//   - Cover.AddPoints: O(1) incident cells per point for the unrolled
//     cases, O(3^d) for the generic fallback.
//
// Errors:
//
//   - ErrUnsupportedSpace: a space dimension other than 2 or 3.
//   - ErrCellDimension: a cell dimension outside [0, spaceDim], or a
//     cell whose dimension does not match its Cover.
package cellgeom
