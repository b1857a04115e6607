// Geometric utilities for diagram edges.
// Provides point arithmetic and point-to-segment hit testing.

package diagram

import "math"

// HitTolerance is the distance, in diagram units, within which a point is
// considered to lie on a waypoint or an edge segment.
const HitTolerance = 5.0

// Point represents a 2D coordinate in diagram space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Distance returns the distance from p to the closest point of the segment.
// The projection of p is clamped to the segment, so points beyond either end
// measure to that end.
func (s Segment) Distance(p Point) float64 {
	ab := s.B.Sub(s.A)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		// Degenerate segment
		return p.Distance(s.A)
	}

	t := p.Sub(s.A).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Point{s.A.X + t*ab.X, s.A.Y + t*ab.Y}
	return p.Distance(closest)
}

// Segments returns the consecutive segments of a polyline.
func Segments(path []Point) []Segment {
	if len(path) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		segs = append(segs, Segment{path[i-1], path[i]})
	}
	return segs
}

// NearAny reports whether p lies within tol of any of the given points.
func NearAny(p Point, points []Point, tol float64) bool {
	for _, q := range points {
		if q.Distance(p) <= tol {
			return true
		}
	}
	return false
}

// PathBounds returns the bounding box of a polyline.
func PathBounds(points []Point) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = points[0].X, points[0].Y
	maxX, maxY = points[0].X, points[0].Y

	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}
