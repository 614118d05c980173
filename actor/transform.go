package actor

import (
	"github.com/akmonengine/sprite3d/rotation"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform places a sprite in 3D space.
// Angles and Skew are in degrees.
type Transform struct {
	Position mgl64.Vec3
	Angles   mgl64.Vec3
	Skew     mgl64.Vec2
	Scale    mgl64.Vec2
}

// NewTransform creates an identity transform one unit in front of the screen
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 1},
		Angles:   mgl64.Vec3{0, 0, 0},
		Scale:    mgl64.Vec2{1, 1},
	}
}

// Rotation returns the composed rotation of the transform for the given order
func (t Transform) Rotation(order rotation.Order) mgl64.Quat {
	return rotation.Compose(t.Angles, order)
}
