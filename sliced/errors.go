package sliced

import "github.com/pkg/errors"

// Errors reported by the slicing stages. They are usually wrapped with
// context about the elements that triggered them, so compare with errors.Is.
var (
	// ErrDegenerateSegment is returned when a clip would produce a
	// zero-length boundary segment.
	ErrDegenerateSegment = errors.New("degenerate segment")

	// ErrBranchingBoundary is returned when a boundary point is shared by
	// more than two segments.
	ErrBranchingBoundary = errors.New("branching boundary")

	// ErrOpenLoop is returned when loops are required to be closed but a
	// chain of segments does not return to its start.
	ErrOpenLoop = errors.New("open loop")

	// ErrCrossingEdge is returned when the sweep finds an edge touching or
	// crossing the boundary of a strip without extending it.
	ErrCrossingEdge = errors.New("crossing edge")

	// ErrUnmatchedEdge is returned when an edge can neither extend a strip
	// nor be paired with another edge to open one.
	ErrUnmatchedEdge = errors.New("unmatched edge")

	// ErrDanglingEdge is returned when a strip boundary ends without
	// meeting another boundary.
	ErrDanglingEdge = errors.New("dangling edge")
)
