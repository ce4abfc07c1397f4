package sliced

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"golang.org/x/exp/slices"
)

func TestNewSegmentDegenerate(t *testing.T) {
	_, err := NewSegment(model2d.XY(1, 2), model2d.XY(1, 2))
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := NewSegment(model2d.XY(1, 2), model2d.XY(3, 2))
	if err != nil {
		t.Fatal(err)
	}
	if s.Other(s.A) != s.B || s.Other(s.B) != s.A {
		t.Error("unexpected other endpoint")
	}
}

func TestNewEdgeNormalized(t *testing.T) {
	e := NewEdge(model2d.XY(3, 1), model2d.XY(1, 2))
	if e.A != model2d.XY(1, 2) || e.B != model2d.XY(3, 1) {
		t.Fatalf("unexpected endpoints: %v %v", e.A, e.B)
	}
	if e.Slope() != -0.5 {
		t.Errorf("unexpected slope: %f", e.Slope())
	}
	if NewEdge(e.B, e.A) != e {
		t.Error("edge should not depend on direction")
	}

	vertical := NewEdge(model2d.XY(1, 3), model2d.XY(1, 2))
	if vertical.A != model2d.XY(1, 2) || !math.IsInf(vertical.Slope(), 1) {
		t.Errorf("unexpected vertical edge: %v %v %f", vertical.A, vertical.B, vertical.Slope())
	}

	empty := NewEdge(model2d.XY(1, 3), model2d.XY(1, 3))
	if empty.Slope() != 0 {
		t.Errorf("unexpected slope for empty edge: %f", empty.Slope())
	}
}

func TestEdgeOrder(t *testing.T) {
	edges := []Edge{
		NewEdge(model2d.XY(1, 0), model2d.XY(2, 0)),
		NewEdge(model2d.XY(0, 0), model2d.XY(0, 1)),
		NewEdge(model2d.XY(0, 0), model2d.XY(1, -1)),
		NewEdge(model2d.XY(0, 0), model2d.XY(1, 1)),
		NewEdge(model2d.XY(0, -1), model2d.XY(5, 5)),
	}
	slices.SortFunc(edges, func(e1, e2 Edge) bool {
		return e1.Less(e2)
	})
	expected := []Point2{
		model2d.XY(5, 5),
		model2d.XY(1, -1),
		model2d.XY(1, 1),
		model2d.XY(0, 1),
		model2d.XY(2, 0),
	}
	for i, e := range edges {
		if e.B != expected[i] {
			t.Errorf("edge %d: expected end %v but got %v", i, expected[i], e.B)
		}
	}
}

func TestEdgeSide(t *testing.T) {
	e := NewEdge(model2d.XY(2, 2), model2d.XY(0, 0))
	if e.side(model2d.XY(1, 3)) <= 0 {
		t.Error("point should be above edge")
	}
	if e.side(model2d.XY(1, -3)) >= 0 {
		t.Error("point should be below edge")
	}
	if e.side(model2d.XY(3, 3)) != 0 {
		t.Error("point should be on edge")
	}

	// Points directly above a vertical edge's top are treated as above it.
	vertical := NewEdge(model2d.XY(0, 0), model2d.XY(0, 1))
	if vertical.side(model2d.XY(-1, 0.5)) <= 0 {
		t.Error("point left of vertical edge should be above it")
	}
}
