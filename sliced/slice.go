package sliced

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// SliceOptions configures Slice.
type SliceOptions struct {
	// Concurrency is the maximum number of Goroutines used to split
	// triangles. If it is 0, GOMAXPROCS is used.
	Concurrency int

	// RequireClosed makes Slice fail with ErrOpenLoop if any boundary
	// chain is left open. Otherwise, open chains are kept in the output
	// loops but are not capped.
	RequireClosed bool
}

// SliceOutput is the result of cutting a solid with a plane.
type SliceOutput struct {
	// Above is the solid on or above the plane, closed by Cap.
	Above *model3d.Mesh

	// Below is the solid on or below the plane, closed by a flipped Cap.
	Below *model3d.Mesh

	// Loops are the boundary loops in the cutting plane.
	Loops []*Loop

	// Senses holds Sense() for each loop, or false for loops which are
	// open or degenerate. It is informational only, since the cap
	// triangulation does not depend on loop orientation.
	Senses []bool

	// Cap is the triangulated cross section, facing down the z-axis.
	Cap []*model3d.Triangle
}

// Slice cuts a closed mesh with the plane z = height, producing two closed
// meshes.
//
// If opts is nil, default options are used.
func Slice(m *model3d.Mesh, height float64, opts *SliceOptions) (*SliceOutput, error) {
	if opts == nil {
		opts = &SliceOptions{}
	}
	split, err := SplitMesh(m, height, opts.Concurrency)
	if err != nil {
		return nil, errors.Wrap(err, "slice mesh")
	}
	loops, err := BuildLoops(split.Edges)
	if err != nil {
		return nil, errors.Wrap(err, "slice mesh")
	}
	if opts.RequireClosed {
		if err := RequireClosed(loops); err != nil {
			return nil, errors.Wrap(err, "slice mesh")
		}
	}
	senses := make([]bool, len(loops))
	for i, l := range loops {
		if l.Closed && !l.Degenerate() {
			senses[i] = Sense(l)
		}
	}

	capTris, err := Triangulate(LoopEdges(loops), height)
	if err != nil {
		return nil, errors.Wrap(err, "slice mesh")
	}

	above := model3d.NewMeshTriangles(split.Above)
	below := model3d.NewMeshTriangles(split.Below)
	for _, t := range capTris {
		above.Add(t)
		below.Add(&model3d.Triangle{t[0], t[2], t[1]})
	}

	return &SliceOutput{
		Above:  above,
		Below:  below,
		Loops:  loops,
		Senses: senses,
		Cap:    capTris,
	}, nil
}
