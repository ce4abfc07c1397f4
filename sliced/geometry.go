package sliced

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// A Point2 is a vertex projected into the cutting plane.
//
// Points are compared with exact floating-point equality.
type Point2 = model2d.Coord

// A Vertex3 is a full mesh vertex.
type Vertex3 = model3d.Coord3D

// A Triangle3 is an output mesh triangle. Its normal is implied by the
// winding order.
type Triangle3 = model3d.Triangle

// pointLess orders points lexicographically by X, then Y.
func pointLess(p1, p2 Point2) bool {
	if p1.X == p2.X {
		return p1.Y < p2.Y
	}
	return p1.X < p2.X
}

// orientation is positive when c lies to the left of the ray a->b, negative
// when it lies to the right, and zero when the three points are collinear.
func orientation(a, b, c Point2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// A Segment is a directed pair of distinct points produced by clipping one
// triangle against the cutting plane.
type Segment struct {
	A Point2
	B Point2
}

// NewSegment creates a segment between two points, failing with
// ErrDegenerateSegment if they coincide.
func NewSegment(a, b Point2) (Segment, error) {
	if a == b {
		return Segment{}, errors.Wrapf(ErrDegenerateSegment, "segment at %v", a)
	}
	return Segment{A: a, B: b}, nil
}

// Other gets the endpoint of s which is not p.
func (s Segment) Other(p Point2) Point2 {
	if s.A == p {
		return s.B
	}
	return s.A
}

// Edge normalizes s into an undirected edge.
func (s Segment) Edge() Edge {
	return NewEdge(s.A, s.B)
}

// An Edge is an undirected segment whose endpoints are sorted so that A comes
// lexicographically before B.
//
// Edges are ordered by their first point, then by slope, which is the order
// in which the sweep visits them.
type Edge struct {
	A Point2
	B Point2

	slope float64
}

// NewEdge creates a normalized edge between two points.
func NewEdge(a, b Point2) Edge {
	if pointLess(b, a) {
		a, b = b, a
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	var slope float64
	if dx == 0 {
		if dy > 0 {
			slope = math.Inf(1)
		} else if dy < 0 {
			slope = math.Inf(-1)
		}
	} else {
		slope = dy / dx
	}
	return Edge{A: a, B: b, slope: slope}
}

// Slope gets the cached slope of the edge. Vertical edges have a slope of
// positive infinity, and zero-length edges have a slope of 0.
func (e Edge) Slope() float64 {
	return e.slope
}

// Less compares edges by their first point, then by slope.
func (e Edge) Less(other Edge) bool {
	if e.A != other.A {
		return pointLess(e.A, other.A)
	}
	return e.slope < other.slope
}

// side gets the orientation of p relative to the directed edge A->B.
//
// In the sweep's lexicographic frame, a positive value means p is above the
// edge and a negative value means it is below.
func (e Edge) side(p Point2) float64 {
	return orientation(e.A, e.B, p)
}
