package sliced

import (
	"github.com/unixpickle/model3d/model3d"
)

// A funnel is the untriangulated part of a monotone strip to the left of the
// sweep line.
//
// The stack holds a reflex chain: every point after the first lies on the
// same boundary chain (upper or lower), and no diagonal can yet be drawn
// between them and the newest vertex.
type funnel struct {
	stack []Point2
	upper bool
}

func newFunnel(p Point2) *funnel {
	return &funnel{stack: []Point2{p}}
}

func (f *funnel) top() Point2 {
	return f.stack[len(f.stack)-1]
}

// chainUpper checks if the reflex chain is on the upper boundary. It is only
// meaningful when the stack has at least two points.
func (f *funnel) chainUpper() bool {
	return len(f.stack) > 1 && f.upper
}

// add inserts the next swept vertex v of the strip, emitting every triangle
// that becomes possible.
func (f *funnel) add(v Point2, onUpper bool, c *capBuilder) {
	if len(f.stack) == 1 {
		f.stack = append(f.stack, v)
		f.upper = onUpper
		return
	}
	if f.upper != onUpper {
		// The whole chain is visible from the opposite boundary.
		for i := 0; i+1 < len(f.stack); i++ {
			c.Add(v, f.stack[i], f.stack[i+1])
		}
		last := f.top()
		f.stack = append(f.stack[:0], last, v)
		f.upper = onUpper
		return
	}

	last := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	for len(f.stack) > 0 {
		next := f.top()
		o := orientation(next, v, last)
		if (onUpper && o <= 0) || (!onUpper && o >= 0) {
			break
		}
		c.Add(next, last, v)
		last = next
		f.stack = f.stack[:len(f.stack)-1]
	}
	f.stack = append(f.stack, last, v)
}

// close finishes the funnel at a vertex where its two boundaries meet.
func (f *funnel) close(v Point2, c *capBuilder) {
	for i := 0; i+1 < len(f.stack); i++ {
		c.Add(v, f.stack[i], f.stack[i+1])
	}
	f.stack = nil
}

// A capBuilder collects flat triangles at a fixed height, oriented so that
// their normals point down the z-axis.
type capBuilder struct {
	Height    float64
	Triangles []*model3d.Triangle
}

func (c *capBuilder) Add(p1, p2, p3 Point2) {
	if orientation(p1, p2, p3) > 0 {
		p2, p3 = p3, p2
	}
	c.Triangles = append(c.Triangles, &model3d.Triangle{
		model3d.XYZ(p1.X, p1.Y, c.Height),
		model3d.XYZ(p2.X, p2.Y, c.Height),
		model3d.XYZ(p3.X, p3.Y, c.Height),
	})
}
