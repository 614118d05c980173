package vertex

import (
	"github.com/akmonengine/sprite3d/rotation"
	"github.com/go-gl/mathgl/mgl64"
)

// DepthFloor is the smallest depth ever written. It keeps downstream
// perspective divisions away from zero.
const DepthFloor = 0.0001

// Quad holds the four corners of a quad as consecutive (x, y) pairs
type Quad [8]float64

// Corner returns the i-th (x, y) pair
func (q *Quad) Corner(i int) mgl64.Vec2 {
	return mgl64.Vec2{q[2*i], q[2*i+1]}
}

// Depths holds one projected depth per corner
type Depths [4]float64

// Camera is a read-only snapshot of the camera for one call
type Camera struct {
	Eye mgl64.Vec3
	// View is column-major; only its upper-left 3x3 block is used
	View mgl64.Mat4
	// Half of the screen dimensions, added to Eye to get the point the
	// camera transform is centered on
	HalfWidth  float64
	HalfHeight float64
}

// Reference returns the point the camera transform is centered on
func (c *Camera) Reference() mgl64.Vec3 {
	return mgl64.Vec3{c.Eye[0] + c.HalfWidth, c.Eye[1] + c.HalfHeight, c.Eye[2]}
}

// Projection holds the scalars derived from the field of view and near plane
type Projection struct {
	DepthScale  float64
	DepthOffset float64
	TanHalfFov  float64
}

// Params gathers everything TransformQuad needs for one quad.
// Angles and Skew are in degrees.
type Params struct {
	Angles   mgl64.Vec3
	Order    rotation.Order
	Skew     mgl64.Vec2
	Scale    mgl64.Vec2
	Position mgl64.Vec3

	CameraEnabled bool
	Camera        *Camera

	Projection Projection
	// Origin is the screen point perspective scaling is centered on
	Origin mgl64.Vec2
	ZScale float64
}

func (p *Params) cameraActive() bool {
	return p.CameraEnabled && p.Camera != nil
}
