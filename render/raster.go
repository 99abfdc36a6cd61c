package render

import (
	"math"

	"ebiten-actors/vmath"
)

// Bounds returns the axis-aligned bounding box of points
func Bounds(points []vmath.Vec2) (min, max vmath.Vec2) {
	if len(points) == 0 {
		return vmath.Vec2{}, vmath.Vec2{}
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// PointInPolygon reports whether p lies inside the polygon (even-odd rule)
func PointInPolygon(p vmath.Vec2, poly []vmath.Vec2) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// FanIndices returns triangle-fan indices for a convex polygon of n points
func FanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	indices := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	return indices
}
