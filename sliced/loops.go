package sliced

import "github.com/pkg/errors"

// A Loop is an ordered walk of boundary points.
//
// For a closed loop, the first point is repeated at the end.
type Loop struct {
	Points []Point2
	Closed bool
}

// Degenerate checks if the loop has fewer than three distinct points, in
// which case it encloses no area.
func (l *Loop) Degenerate() bool {
	distinct := map[Point2]struct{}{}
	for _, p := range l.Points {
		distinct[p] = struct{}{}
		if len(distinct) >= 3 {
			return false
		}
	}
	return true
}

// Vertices gets the points of the loop without the repeated closing point.
func (l *Loop) Vertices() []Point2 {
	if l.Closed && len(l.Points) > 1 {
		return l.Points[:len(l.Points)-1]
	}
	return l.Points
}

// Segments gets the segments between consecutive loop points.
func (l *Loop) Segments() []Segment {
	var res []Segment
	for i := 1; i < len(l.Points); i++ {
		res = append(res, Segment{A: l.Points[i-1], B: l.Points[i]})
	}
	return res
}

type segmentEnd struct {
	Segment int
	End     int
}

// BuildLoops reconstructs loops from an unordered set of boundary segments.
//
// Every segment is used exactly once. Chains which do not return to their
// starting point are returned as open loops.
//
// If a point is shared by more than two segments, ErrBranchingBoundary is
// returned.
func BuildLoops(segs []Segment) ([]*Loop, error) {
	points := make([]Point2, 0, len(segs)*2)
	values := make([]segmentEnd, 0, len(segs)*2)
	for i, s := range segs {
		points = append(points, s.A, s.B)
		values = append(values, segmentEnd{Segment: i, End: 0}, segmentEnd{Segment: i, End: 1})
	}
	index := newPointIndex(points, values)

	var loops []*Loop
	for index.Len() > 0 {
		id, _ := index.Nearest(Point2{})
		index.Remove(id)
		start := index.Point(id)
		loop := &Loop{Points: []Point2{start}}
		cur := index.Value(id)
		for {
			otherID := cur.Segment*2 + 1 - cur.End
			next := index.Point(otherID)
			index.Remove(otherID)
			loop.Points = append(loop.Points, next)

			matches := index.At(next)
			if len(matches) == 0 {
				break
			} else if len(matches) > 1 {
				segIDs := []int{cur.Segment}
				for _, m := range matches {
					segIDs = append(segIDs, index.Value(m).Segment)
				}
				return nil, errors.Wrapf(ErrBranchingBoundary, "point %v shared by segments %v",
					next, segIDs)
			}
			index.Remove(matches[0])
			cur = index.Value(matches[0])
		}
		loop.Closed = loop.Points[0] == loop.Points[len(loop.Points)-1]
		loops = append(loops, loop)
	}
	return loops, nil
}

// RequireClosed returns ErrOpenLoop if any loop is open.
func RequireClosed(loops []*Loop) error {
	for i, l := range loops {
		if !l.Closed {
			return errors.Wrapf(ErrOpenLoop, "loop %d with %d points from %v to %v", i,
				len(l.Points), l.Points[0], l.Points[len(l.Points)-1])
		}
	}
	return nil
}
