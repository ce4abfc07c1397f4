package sliced

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// A SplitResult accumulates the output of splitting triangles against a
// plane z = c.
type SplitResult struct {
	// Above contains triangles on or above the plane.
	Above []*model3d.Triangle

	// Below contains triangles on or below the plane.
	Below []*model3d.Triangle

	// Edges contains the boundary segments where triangles meet the plane.
	Edges []Segment
}

// NewSplitResult creates an empty result.
func NewSplitResult() *SplitResult {
	return &SplitResult{}
}

// Merge appends the contents of other to s.
func (s *SplitResult) Merge(other *SplitResult) {
	s.Above = append(s.Above, other.Above...)
	s.Below = append(s.Below, other.Below...)
	s.Edges = append(s.Edges, other.Edges...)
}

// SplitMesh splits every triangle of a mesh across the plane z = height.
//
// The concurrency argument specifies the maximum number of Goroutines to use.
// If concurrency is 0, GOMAXPROCS is used.
func SplitMesh(m *model3d.Mesh, height float64, concurrency int) (*SplitResult, error) {
	return SplitTriangles(m.TriangleSlice(), height, concurrency)
}

// SplitTriangles is like SplitMesh, but for a triangle slice.
//
// The result is the same as calling Split on every triangle in order. If a
// triangle fails to split, the error of the first such triangle is returned.
func SplitTriangles(tris []*model3d.Triangle, height float64,
	concurrency int) (*SplitResult, error) {
	if concurrency == 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	numShards := essentials.MinInt(concurrency, len(tris))
	if numShards <= 1 {
		res := NewSplitResult()
		for i, t := range tris {
			if err := res.Split(t, height); err != nil {
				return nil, errors.Wrapf(err, "split triangle %d", i)
			}
		}
		return res, nil
	}

	shards := make([]*SplitResult, numShards)
	shardErrs := make([]error, numShards)
	essentials.ConcurrentMap(concurrency, numShards, func(i int) {
		start := i * len(tris) / numShards
		end := (i + 1) * len(tris) / numShards
		res := NewSplitResult()
		for j := start; j < end; j++ {
			if err := res.Split(tris[j], height); err != nil {
				shardErrs[i] = errors.Wrapf(err, "split triangle %d", j)
				return
			}
		}
		shards[i] = res
	})

	result := NewSplitResult()
	for i, shard := range shards {
		if shardErrs[i] != nil {
			return nil, shardErrs[i]
		}
		result.Merge(shard)
	}
	return result, nil
}

// Split classifies t against the plane z = height and appends the resulting
// triangles and boundary segment to s.
//
// Triangles that do not cross the plane are appended unchanged. Triangles
// that are cut are replaced by sub-triangles with the same orientation as t.
//
// If the boundary segment would have zero length, ErrDegenerateSegment is
// returned and s is left unmodified.
func (s *SplitResult) Split(t *model3d.Triangle, height float64) error {
	v := *t
	var sense bool
	if v[0].Z > v[1].Z {
		v[0], v[1] = v[1], v[0]
		sense = !sense
	}
	if v[0].Z > v[2].Z {
		v[0], v[2] = v[2], v[0]
		sense = !sense
	}
	if v[1].Z > v[2].Z {
		v[1], v[2] = v[2], v[1]
		sense = !sense
	}

	z := height
	tri := func(p1, p2, p3 model3d.Coord3D) *model3d.Triangle {
		if sense {
			p2, p3 = p3, p2
		}
		return &model3d.Triangle{p1, p2, p3}
	}

	switch {
	case v[0].Z == z && v[1].Z == z && v[2].Z == z:
		// Coplanar triangles belong to the lower solid and leave the
		// boundary to their neighbors.
		s.Below = append(s.Below, t)
	case v[2].Z <= z:
		if v[1].Z == z {
			seg, err := planeSegment(v[1], v[2])
			if err != nil {
				return err
			}
			s.Edges = append(s.Edges, seg)
		}
		s.Below = append(s.Below, t)
	case v[0].Z >= z:
		if v[1].Z == z {
			seg, err := planeSegment(v[0], v[1])
			if err != nil {
				return err
			}
			s.Edges = append(s.Edges, seg)
		}
		s.Above = append(s.Above, t)
	case v[1].Z < z:
		x := planeIntersection(v[1], v[2], z)
		y := planeIntersection(v[0], v[2], z)
		if x == y {
			s.Below = append(s.Below, t)
			return nil
		}
		seg, err := planeSegment(x, y)
		if err != nil {
			return err
		}
		s.Below = append(s.Below, tri(v[0], v[1], x), tri(v[0], x, y))
		s.Above = append(s.Above, tri(x, v[2], y))
		s.Edges = append(s.Edges, seg)
	case v[1].Z == z:
		x := planeIntersection(v[0], v[2], z)
		seg, err := planeSegment(x, v[1])
		if err != nil {
			return err
		}
		s.Below = append(s.Below, tri(v[0], v[1], x))
		s.Above = append(s.Above, tri(v[1], v[2], x))
		s.Edges = append(s.Edges, seg)
	default:
		// v[0] < z < v[1]
		x := planeIntersection(v[0], v[1], z)
		y := planeIntersection(v[0], v[2], z)
		if x == y {
			s.Above = append(s.Above, t)
			return nil
		}
		seg, err := planeSegment(x, y)
		if err != nil {
			return err
		}
		s.Below = append(s.Below, tri(v[0], x, y))
		s.Above = append(s.Above, tri(y, x, v[2]), tri(x, v[1], v[2]))
		s.Edges = append(s.Edges, seg)
	}
	return nil
}

// planeIntersection finds where the segment a-b crosses z = height.
// The result lies exactly on the plane.
func planeIntersection(a, b model3d.Coord3D, height float64) model3d.Coord3D {
	t := (height - a.Z) / (b.Z - a.Z)
	res := a.Add(b.Sub(a).Scale(t))
	res.Z = height
	return res
}

func planeSegment(a, b model3d.Coord3D) (Segment, error) {
	return NewSegment(model2d.XY(a.X, a.Y), model2d.XY(b.X, b.Y))
}
