package dss

import "errors"

var (
	// ErrNotAdjacent is returned when the candidate point is not
	// 4-adjacent to the current front of the segment.
	ErrNotAdjacent = errors.New("dss: point is not 4-adjacent to the front")

	// ErrNotExtendable is returned when the candidate point leaves the
	// band of every digital line containing the segment; the segment is
	// maximal and a new one should be started.
	ErrNotExtendable = errors.New("dss: point leaves the segment band")

	// ErrNotTwoDimensional is returned when a point of dimension other
	// than two is supplied.
	ErrNotTwoDimensional = errors.New("dss: points must be 2D")
)
