package sliced

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

// An EdgeDisposition describes where the start of a new edge lies relative to
// a MonoPoly.
type EdgeDisposition int

const (
	// Outside means the point is strictly above the upper chain or strictly
	// below the lower chain.
	Outside EdgeDisposition = iota

	// Inside means the point is strictly between the two chains.
	Inside

	// Crossing means the point touches a chain without continuing it.
	Crossing

	// ExtendsUpper means the point is the end of the upper chain.
	ExtendsUpper

	// ExtendsLower means the point is the end of the lower chain.
	ExtendsLower
)

func (e EdgeDisposition) String() string {
	switch e {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case Crossing:
		return "Crossing"
	case ExtendsUpper:
		return "ExtendsUpper"
	case ExtendsLower:
		return "ExtendsLower"
	}
	return "EdgeDisposition(?)"
}

// A SweepDisposition describes what happens to a MonoPoly once the sweep
// passes a point.
type SweepDisposition int

const (
	// Unchanged means the strip stays active.
	Unchanged SweepDisposition = iota

	// Discard means both chains of the strip have ended at the same point,
	// so the strip can be closed and removed.
	Discard
)

// A MonoPoly is a region of the polygon being swept, bounded by the current
// edge of its upper chain and the current edge of its lower chain.
//
// The upper edge never passes below the lower edge.
type MonoPoly struct {
	Upper Edge
	Lower Edge

	// funnels has one entry, or two while a merge vertex is waiting
	// for the next vertex of the strip. In the latter case the first
	// funnel touches the upper chain and the second the lower chain.
	funnels []*funnel
}

// Locate classifies a point at the sweep position against the strip.
func (m *MonoPoly) Locate(p Point2) EdgeDisposition {
	upperEnd := m.Upper.B == p
	lowerEnd := m.Lower.B == p
	if upperEnd && lowerEnd {
		return Crossing
	} else if upperEnd {
		return ExtendsUpper
	} else if lowerEnd {
		return ExtendsLower
	}
	upperSide := m.Upper.side(p)
	lowerSide := m.Lower.side(p)
	if upperSide > 0 || lowerSide < 0 {
		return Outside
	} else if upperSide == 0 || lowerSide == 0 {
		return Crossing
	}
	return Inside
}

// Sweep checks if the strip is complete once the sweep has moved past p.
func (m *MonoPoly) Sweep(p Point2) SweepDisposition {
	if m.Upper.B == m.Lower.B && pointLess(m.Upper.B, p) {
		return Discard
	}
	return Unchanged
}

func (m *MonoPoly) addVertex(v Point2, onUpper bool, c *capBuilder) {
	if len(m.funnels) == 2 {
		if onUpper {
			m.funnels[0].close(v, c)
			m.funnels = m.funnels[1:]
		} else {
			m.funnels[1].close(v, c)
			m.funnels = m.funnels[:1]
		}
	}
	m.funnels[0].add(v, onUpper, c)
}

func (m *MonoPoly) close(v Point2, c *capBuilder) {
	for _, f := range m.funnels {
		f.close(v, c)
	}
	m.funnels = nil
}

// split divides the strip at a vertex v lying strictly inside it, where two
// new edges begin. The region between lower and upper is outside the
// polygon.
func (m *MonoPoly) split(v Point2, lower, upper Edge, c *capBuilder) (top, bottom *MonoPoly) {
	top = &MonoPoly{Upper: m.Upper, Lower: upper}
	bottom = &MonoPoly{Upper: lower, Lower: m.Lower}
	if len(m.funnels) == 2 {
		m.funnels[0].add(v, false, c)
		m.funnels[1].add(v, true, c)
		top.funnels = []*funnel{m.funnels[0]}
		bottom.funnels = []*funnel{m.funnels[1]}
		return
	}

	// v is connected to the newest vertex of the strip, and the existing
	// reflex chain stays on its own side of that diagonal.
	f := m.funnels[0]
	fresh := newFunnel(f.top())
	if f.chainUpper() {
		fresh.add(v, false, c)
		f.add(v, true, c)
		top.funnels = []*funnel{fresh}
		bottom.funnels = []*funnel{f}
	} else {
		f.add(v, false, c)
		fresh.add(v, true, c)
		top.funnels = []*funnel{f}
		bottom.funnels = []*funnel{fresh}
	}
	return
}

// inverted checks if the upper edge dips below the lower edge before one of
// them ends.
func (m *MonoPoly) inverted() bool {
	if pointLess(m.Upper.B, m.Lower.B) {
		return m.Lower.side(m.Upper.B) < 0
	} else if pointLess(m.Lower.B, m.Upper.B) {
		return m.Upper.side(m.Lower.B) > 0
	}
	return false
}

// Triangulate fills the polygons bounded by a set of edges with flat
// triangles at the given height.
//
// The edges must form disjoint simple cycles. Outer boundaries and holes are
// distinguished by the sweep itself, so cycle orientation does not matter.
// The resulting triangles face down the z-axis.
func Triangulate(edges []Edge, height float64) ([]*model3d.Triangle, error) {
	sorted := append([]Edge{}, edges...)
	slices.SortFunc(sorted, func(e1, e2 Edge) bool {
		return e1.Less(e2)
	})
	for i, e := range sorted {
		if e.A == e.B {
			return nil, errors.Wrapf(ErrDegenerateSegment, "edge %d", i)
		}
	}

	s := &sweeper{caps: &capBuilder{Height: height}}
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].A == sorted[i].A {
			j++
		}
		if err := s.advance(sorted[i].A); err != nil {
			return nil, err
		}
		if err := s.startEdges(sorted[i:j], j == len(sorted)); err != nil {
			return nil, err
		}
		i = j
	}
	if err := s.advance(model2d.XY(math.Inf(1), math.Inf(1))); err != nil {
		return nil, err
	}
	if len(s.strips) > 0 {
		return nil, errors.Wrapf(ErrDanglingEdge, "%d unclosed strips", len(s.strips))
	}
	return s.caps.Triangles, nil
}

// LoopEdges converts the closed, non-degenerate loops into edges for
// Triangulate.
func LoopEdges(loops []*Loop) []Edge {
	var res []Edge
	for _, l := range loops {
		if !l.Closed || l.Degenerate() {
			continue
		}
		for _, s := range l.Segments() {
			if s.A != s.B {
				res = append(res, s.Edge())
			}
		}
	}
	return res
}

type sweeper struct {
	strips []*MonoPoly
	caps   *capBuilder
}

// advance closes and merges strips at every chain end before the sweep
// position p.
func (s *sweeper) advance(p Point2) error {
	for {
		var q Point2
		var found bool
		for _, m := range s.strips {
			for _, end := range [2]Point2{m.Upper.B, m.Lower.B} {
				if pointLess(end, p) && (!found || pointLess(end, q)) {
					q = end
					found = true
				}
			}
		}
		if !found {
			return nil
		}

		var ended, above, below []int
		for i, m := range s.strips {
			if m.Sweep(p) == Discard && m.Upper.B == q {
				ended = append(ended, i)
			} else if m.Lower.B == q {
				above = append(above, i)
			} else if m.Upper.B == q {
				below = append(below, i)
			}
		}
		if len(ended)+len(above)+len(below) > 2 || len(above) > 1 || len(below) > 1 {
			return errors.Wrapf(ErrCrossingEdge, "more than two edges end at %v", q)
		}
		if len(ended) == 1 && len(above)+len(below) == 0 {
			s.strips[ended[0]].close(q, s.caps)
			s.removeStrip(ended[0])
		} else if len(above) == 1 && len(below) == 1 {
			s.merge(above[0], below[0], q)
		} else {
			return errors.Wrapf(ErrDanglingEdge, "boundary ends at %v", q)
		}
	}
}

func (s *sweeper) merge(aboveIdx, belowIdx int, v Point2) {
	above := s.strips[aboveIdx]
	below := s.strips[belowIdx]
	above.addVertex(v, false, s.caps)
	below.addVertex(v, true, s.caps)
	s.strips[aboveIdx] = &MonoPoly{
		Upper:   above.Upper,
		Lower:   below.Lower,
		funnels: []*funnel{above.funnels[0], below.funnels[0]},
	}
	s.removeStrip(belowIdx)
}

func (s *sweeper) removeStrip(idx int) {
	s.strips = append(s.strips[:idx], s.strips[idx+1:]...)
}

// startEdges handles a group of edges sharing a start point, sorted by
// slope.
func (s *sweeper) startEdges(group []Edge, last bool) error {
	p := group[0].A
	if len(group) > 2 {
		return errors.Wrapf(ErrCrossingEdge, "%d edges start at %v", len(group), p)
	}

	inside := -1
	extends := -1
	var disp EdgeDisposition
	for i, m := range s.strips {
		switch d := m.Locate(p); d {
		case Outside:
		case Crossing:
			return errors.Wrapf(ErrCrossingEdge, "edge from %v touches strip %v-%v",
				p, m.Upper, m.Lower)
		case Inside:
			inside = i
		case ExtendsUpper, ExtendsLower:
			if extends != -1 {
				return errors.Wrapf(ErrCrossingEdge, "more than two edges meet at %v", p)
			}
			extends = i
			disp = d
		}
	}

	if len(group) == 1 {
		e := group[0]
		if extends == -1 {
			if last {
				return errors.Wrapf(ErrDanglingEdge, "edge %v-%v has no neighbors", e.A, e.B)
			}
			return errors.Wrapf(ErrUnmatchedEdge, "edge %v-%v does not continue a boundary",
				e.A, e.B)
		}
		m := s.strips[extends]
		if disp == ExtendsUpper {
			m.addVertex(p, true, s.caps)
			m.Upper = e
		} else {
			m.addVertex(p, false, s.caps)
			m.Lower = e
		}
		if m.inverted() {
			return errors.Wrapf(ErrCrossingEdge, "edge %v-%v crosses its strip", e.A, e.B)
		}
		return nil
	}

	if extends != -1 {
		return errors.Wrapf(ErrCrossingEdge, "more than two edges meet at %v", p)
	}
	lower, upper := group[0], group[1]
	if lower.Slope() == upper.Slope() {
		return errors.Wrapf(ErrCrossingEdge, "overlapping edges start at %v", p)
	}
	if inside != -1 {
		top, bottom := s.strips[inside].split(p, lower, upper, s.caps)
		if top.inverted() || bottom.inverted() {
			return errors.Wrapf(ErrCrossingEdge, "edges from %v cross their strip", p)
		}
		s.strips[inside] = top
		s.strips = append(s.strips, bottom)
		return nil
	}
	s.strips = append(s.strips, &MonoPoly{
		Upper:   upper,
		Lower:   lower,
		funnels: []*funnel{newFunnel(p)},
	})
	return nil
}
