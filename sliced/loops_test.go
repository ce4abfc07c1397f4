package sliced

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model2d"
)

func TestBuildLoopsSquare(t *testing.T) {
	corners := []Point2{
		model2d.XY(0, 0), model2d.XY(1, 0), model2d.XY(1, 1), model2d.XY(0, 1),
	}
	var segs []Segment
	for i, c := range corners {
		segs = append(segs, Segment{A: c, B: corners[(i+1)%4]})
	}
	// Order and direction of segments should not matter.
	rand.Seed(0)
	rand.Shuffle(len(segs), func(i, j int) {
		segs[i], segs[j] = segs[j], segs[i]
	})
	segs[1].A, segs[1].B = segs[1].B, segs[1].A

	loops, err := BuildLoops(segs)
	require.NoError(t, err)
	require.Len(t, loops, 1)
	loop := loops[0]
	assert.True(t, loop.Closed)
	assert.False(t, loop.Degenerate())
	assert.Len(t, loop.Points, 5)
	assert.Equal(t, model2d.XY(0, 0), loop.Points[0])
	assert.Equal(t, loop.Points[0], loop.Points[4])
	assert.ElementsMatch(t, corners, loop.Vertices())
	assert.Len(t, loop.Segments(), 4)
	assert.NoError(t, RequireClosed(loops))
}

func TestBuildLoopsMultiple(t *testing.T) {
	var segs []Segment
	for _, l := range LoadFixture("hole") {
		segs = append(segs, l.Segments()...)
	}
	segs = append(segs, Segment{A: model2d.XY(10, 10), B: model2d.XY(11, 10)})

	loops, err := BuildLoops(segs)
	require.NoError(t, err)
	require.Len(t, loops, 3)

	// Seeds are taken nearest to the origin first.
	assert.Equal(t, model2d.XY(0, 0), loops[0].Points[0])
	assert.Equal(t, model2d.XY(1, 1), loops[1].Points[0])
	assert.True(t, loops[0].Closed)
	assert.True(t, loops[1].Closed)
	assert.False(t, loops[2].Closed)
	assert.Len(t, loops[2].Points, 2)
	assert.ErrorIs(t, RequireClosed(loops), ErrOpenLoop)
}

func TestBuildLoopsOpenChain(t *testing.T) {
	segs := []Segment{
		{A: model2d.XY(2, 0), B: model2d.XY(3, 0)},
		{A: model2d.XY(1, 0), B: model2d.XY(2, 0)},
		{A: model2d.XY(3, 0), B: model2d.XY(3, 1)},
	}
	loops, err := BuildLoops(segs)
	require.NoError(t, err)
	require.Len(t, loops, 1)
	assert.False(t, loops[0].Closed)
	assert.Len(t, loops[0].Points, 4)
	assert.Len(t, loops[0].Vertices(), 4)
}

func TestBuildLoopsBranching(t *testing.T) {
	segs := []Segment{
		{A: model2d.XY(1, 0), B: model2d.XY(2, 0)},
		{A: model2d.XY(2, 0), B: model2d.XY(3, 0)},
		{A: model2d.XY(2, 0), B: model2d.XY(2, 1)},
	}
	_, err := BuildLoops(segs)
	assert.ErrorIs(t, err, ErrBranchingBoundary)
}

func TestBuildLoopsDegenerate(t *testing.T) {
	// Two segments traversing the same edge in opposite directions.
	segs := []Segment{
		{A: model2d.XY(1, 1), B: model2d.XY(2, 1)},
		{A: model2d.XY(2, 1), B: model2d.XY(1, 1)},
	}
	loops, err := BuildLoops(segs)
	require.NoError(t, err)
	require.Len(t, loops, 1)
	assert.True(t, loops[0].Closed)
	assert.True(t, loops[0].Degenerate())
	assert.Empty(t, LoopEdges(loops))
}

func TestBuildLoopsEmpty(t *testing.T) {
	loops, err := BuildLoops(nil)
	require.NoError(t, err)
	assert.Empty(t, loops)
}

func TestBuildLoopsCube(t *testing.T) {
	res, err := SplitMesh(testCube(), 0.5, 0)
	require.NoError(t, err)
	loops, err := BuildLoops(res.Edges)
	require.NoError(t, err)
	require.Len(t, loops, 1)
	assert.True(t, loops[0].Closed)
	assert.Len(t, loops[0].Vertices(), 8)
	assert.InDelta(t, 1.0, abs(loops[0].Area()), 1e-8)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
