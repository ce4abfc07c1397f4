package sliced

import (
	"math"

	"golang.org/x/exp/slices"
)

// A pointIndex is a 2D k-d tree over a fixed set of points which supports
// removing points after construction.
//
// Every point is identified by its position in the slice passed to
// newPointIndex.
type pointIndex[T any] struct {
	root  *indexNode[T]
	nodes []*indexNode[T]
}

type indexNode[T any] struct {
	ID    int
	Point Point2
	Value T

	// Axis is 0 for a split on X and 1 for a split on Y.
	// Points in Left are <= Point on the axis, and points in Right are >=.
	Axis   int
	Left   *indexNode[T]
	Right  *indexNode[T]
	Parent *indexNode[T]

	Removed bool
	Live    int
}

func newPointIndex[T any](points []Point2, values []T) *pointIndex[T] {
	res := &pointIndex[T]{nodes: make([]*indexNode[T], len(points))}
	ids := make([]int, len(points))
	for i := range ids {
		ids[i] = i
	}
	res.root = res.build(points, values, ids, 0, nil)
	return res
}

func (p *pointIndex[T]) build(points []Point2, values []T, ids []int, axis int,
	parent *indexNode[T]) *indexNode[T] {
	if len(ids) == 0 {
		return nil
	}
	slices.SortFunc(ids, func(i, j int) bool {
		return axisValue(points[i], axis) < axisValue(points[j], axis)
	})
	mid := len(ids) / 2
	id := ids[mid]
	node := &indexNode[T]{
		ID:     id,
		Point:  points[id],
		Value:  values[id],
		Axis:   axis,
		Parent: parent,
		Live:   len(ids),
	}
	p.nodes[id] = node
	node.Left = p.build(points, values, ids[:mid], 1-axis, node)
	node.Right = p.build(points, values, ids[mid+1:], 1-axis, node)
	return node
}

// Len gets the number of points which have not been removed.
func (p *pointIndex[T]) Len() int {
	if p.root == nil {
		return 0
	}
	return p.root.Live
}

// Value gets the value stored for a point.
func (p *pointIndex[T]) Value(id int) T {
	return p.nodes[id].Value
}

// Point gets the coordinate of a point.
func (p *pointIndex[T]) Point(id int) Point2 {
	return p.nodes[id].Point
}

// Remove deletes a point from the index. Removing a point twice is a no-op.
func (p *pointIndex[T]) Remove(id int) {
	node := p.nodes[id]
	if node.Removed {
		return
	}
	node.Removed = true
	for n := node; n != nil; n = n.Parent {
		n.Live--
	}
}

// At finds the remaining points exactly equal to c, in ascending ID order.
func (p *pointIndex[T]) At(c Point2) []int {
	var res []int
	var search func(n *indexNode[T])
	search = func(n *indexNode[T]) {
		if n == nil || n.Live == 0 {
			return
		}
		if !n.Removed && n.Point == c {
			res = append(res, n.ID)
		}
		value := axisValue(c, n.Axis)
		split := axisValue(n.Point, n.Axis)
		if value <= split {
			search(n.Left)
		}
		if value >= split {
			search(n.Right)
		}
	}
	search(p.root)
	slices.Sort(res)
	return res
}

// Nearest finds the remaining point closest to c, breaking ties by the
// lowest ID. It returns false if the index is empty.
func (p *pointIndex[T]) Nearest(c Point2) (int, bool) {
	bestID := -1
	bestDist := math.Inf(1)
	var search func(n *indexNode[T])
	search = func(n *indexNode[T]) {
		if n == nil || n.Live == 0 {
			return
		}
		if !n.Removed {
			d := squaredDist(n.Point, c)
			if d < bestDist || (d == bestDist && n.ID < bestID) {
				bestDist = d
				bestID = n.ID
			}
		}
		diff := axisValue(c, n.Axis) - axisValue(n.Point, n.Axis)
		near, far := n.Left, n.Right
		if diff > 0 {
			near, far = far, near
		}
		search(near)
		if diff*diff <= bestDist {
			search(far)
		}
	}
	search(p.root)
	return bestID, bestID != -1
}

func axisValue(c Point2, axis int) float64 {
	if axis == 0 {
		return c.X
	}
	return c.Y
}

func squaredDist(p1, p2 Point2) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}
