package sliced

import "math"

// Sense computes the orientation of a loop from its total turning angle.
//
// It returns true for a counter-clockwise loop, where the turning angle sums
// to roughly 2*pi, and false for a clockwise one.
func Sense(l *Loop) bool {
	return TurningAngle(l) > 0
}

// TurningAngle sums the signed exterior angles at every vertex of the loop,
// treating it as cyclic. For a simple polygon the result is about +/-2*pi.
//
// Vertices where the path exactly reverses have no signed turn and are
// skipped.
func TurningAngle(l *Loop) float64 {
	pts := l.Vertices()
	n := len(pts)
	if n < 3 {
		return 0
	}
	var total float64
	for i, p := range pts {
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		if prev == p || next == p {
			continue
		}
		in := p.Sub(prev)
		out := next.Sub(p)
		if in.X*out.Y-in.Y*out.X == 0 && in.Dot(out) < 0 {
			continue
		}
		turn := math.Atan2(out.Y, out.X) - math.Atan2(in.Y, in.X)
		if turn > math.Pi {
			turn -= 2 * math.Pi
		} else if turn <= -math.Pi {
			turn += 2 * math.Pi
		}
		total += turn
	}
	return total
}

// Area computes the signed area of the loop, which is positive for
// counter-clockwise loops.
func (l *Loop) Area() float64 {
	pts := l.Vertices()
	var sum float64
	for i, p := range pts {
		next := pts[(i+1)%len(pts)]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}
