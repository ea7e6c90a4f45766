// Package polytope defines core types and sentinel errors for the
// polytope subpackage of github.com/katalvlaran/digeo.
package polytope

import (
	"errors"

	"github.com/katalvlaran/digeo/lattice"
)

// Sentinel errors for polytope operations.
var (
	// ErrZeroNormal indicates a half-space with a degenerate zero normal.
	ErrZeroNormal = errors.New("polytope: half-space normal must be non-zero")
	// ErrDegenerate indicates vertices that do not span a full-dimensional region.
	ErrDegenerate = errors.New("polytope: vertex set does not bound a full-dimensional region")
	// ErrUnboundedPolytope indicates that no finite extent could be established.
	ErrUnboundedPolytope = errors.New("polytope: polytope is unbounded")
	// ErrInvalidPolytope indicates an operation on an invalid polytope.
	ErrInvalidPolytope = errors.New("polytope: operation on invalid polytope")
	// ErrUnsupportedDimension indicates vertex construction outside dimension 2 or 3.
	ErrUnsupportedDimension = errors.New("polytope: only 2D and 3D vertex sets are supported")
)

// Polytope is a bounded intersection of half-spaces over the integer
// lattice. The zero value is invalid; use NewPolytopeFromVertices or
// NewPolytopeFromHalfSpaces. A Polytope is safe for concurrent reads;
// Cut requires external synchronization.
type Polytope struct {
	dim    int
	hs     []HalfSpace
	domain lattice.Domain
	valid  bool

	// Set when an axis cut provably emptied the feasible region.
	emptied bool

	// Set when half-space construction failed to establish finite extent.
	unbounded bool

	// Hull vertices in CCW order, 2D vertex construction only.
	// Used by Area2 for Pick's-theorem validation.
	verts []lattice.Point

	// Cached counts, invalidated by Cut.
	counted bool
	cnt     int64
	cntInt  int64
	cntBd   int64
}
