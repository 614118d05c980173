package actor

import (
	"math"

	"github.com/akmonengine/sprite3d/vertex"
	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box in screen space
type AABB struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// ComputeAABB returns the box enclosing the four corners of a projected quad.
// A corner with a NaN coordinate yields a box that overlaps nothing.
func ComputeAABB(q *vertex.Quad) AABB {
	min := q.Corner(0)
	max := min

	for i := 1; i < 4; i++ {
		corner := q.Corner(i)

		min[0] = math.Min(min[0], corner[0])
		min[1] = math.Min(min[1], corner[1])

		max[0] = math.Max(max[0], corner[0])
		max[1] = math.Max(max[1], corner[1])
	}

	return AABB{Min: min, Max: max}
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on both axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}
