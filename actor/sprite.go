package actor

import (
	"github.com/akmonengine/sprite3d/vertex"
)

// Sprite is a flat quad drawn in 3D space
type Sprite struct {
	Id any

	Transform Transform

	// Corners in local space, centered on the sprite origin
	Local vertex.Quad

	// Results of the last projection
	Projected vertex.Quad
	Depth     vertex.Depths
	aabb      AABB

	// Hidden sprites are skipped by the scene
	Hidden bool
	// IsVisible is set by the scene once the projected quad is known to
	// overlap the screen
	IsVisible bool
}

// NewQuad returns the corners of a width x height rectangle centered on the
// origin, counter-clockwise starting from (-w/2, -h/2)
func NewQuad(width, height float64) vertex.Quad {
	hw, hh := width/2, height/2
	return vertex.Quad{
		-hw, -hh,
		+hw, -hh,
		+hw, +hh,
		-hw, +hh,
	}
}

// NewSprite creates a sprite of the given size
func NewSprite(transform Transform, width, height float64) *Sprite {
	return &Sprite{
		Transform: transform,
		Local:     NewQuad(width, height),
	}
}

// Project runs the vertex pipeline on the sprite with the frame settings of
// params, and updates its projected corners, depths and bounding box.
//
// params is taken by value: the sprite transform is written into the copy, so
// the same frame settings can be shared by concurrent callers.
func (s *Sprite) Project(params vertex.Params) {
	params.Angles = s.Transform.Angles
	params.Skew = s.Transform.Skew
	params.Scale = s.Transform.Scale
	params.Position = s.Transform.Position

	vertex.TransformQuad(&s.Projected, &s.Depth, &s.Local, &params)
	s.aabb = ComputeAABB(&s.Projected)
}

func (s *Sprite) GetAABB() AABB {
	return s.aabb
}

// MinDepth returns the smallest depth of the last projection
func (s *Sprite) MinDepth() float64 {
	return min(s.Depth[0], s.Depth[1], s.Depth[2], s.Depth[3])
}
