// Package vertex maps the four corners of a flat quad through the sprite
// transform and the perspective projection.
//
// For every corner, in this order:
//  1. rotate the (x, y) point into 3D with the composed rotation matrix
//  2. skew, only when one of the skew angles is not zero
//  3. scale, divided by the sprite depth
//  4. translate
//  5. apply the camera, only when it is enabled and provided
//  6. project around the screen origin
//  7. clamp the depth to DepthFloor
//
// The steps do not commute and must not be reordered.
//
// TransformQuad runs the four corners side by side in 4-wide lanes. A scalar
// version walking the corners one at a time is kept next to it, and both must
// agree within 1e-4 for the same input. Neither allocates.
package vertex

import (
	"math"

	"github.com/akmonengine/sprite3d/internal/lanes"
	"github.com/akmonengine/sprite3d/rotation"
	"github.com/go-gl/mathgl/mgl64"
)

// uniforms are the values shared by the four corners of one call
type uniforms struct {
	// first two columns of the rotation matrix
	m00, m01 float64
	m10, m11 float64
	m20, m21 float64

	skew       bool
	tanX, tanY float64

	// scale already divided by the sprite depth
	scaleX, scaleY float64
	position       mgl64.Vec3

	camera    bool
	reference mgl64.Vec3
	view      mgl64.Mat3

	zScale     float64
	origin     mgl64.Vec2
	projection Projection
}

func prepare(u *uniforms, p *Params) {
	m := rotation.Matrix(rotation.Compose(p.Angles, p.Order))
	u.m00, u.m01 = m.At(0, 0), m.At(0, 1)
	u.m10, u.m11 = m.At(1, 0), m.At(1, 1)
	u.m20, u.m21 = m.At(2, 0), m.At(2, 1)

	u.skew = p.Skew[0] != 0 || p.Skew[1] != 0
	if u.skew {
		u.tanX = math.Tan(mgl64.DegToRad(p.Skew[0]))
		u.tanY = math.Tan(mgl64.DegToRad(p.Skew[1]))
	}

	depthFactor := 1 / p.Position[2]
	u.scaleX = depthFactor * p.Scale[0]
	u.scaleY = depthFactor * p.Scale[1]
	u.position = p.Position

	u.camera = p.cameraActive()
	if u.camera {
		u.reference = p.Camera.Reference()
		u.view = p.Camera.View.Mat3()
	}

	u.zScale = p.ZScale
	u.origin = p.Origin
	u.projection = p.Projection
}

// TransformQuad writes into dst and depth the projection of the four corners
// of src. dst may be src.
//
// p.Position.Z() must not be zero: the scale step divides by it.
func TransformQuad(dst *Quad, depth *Depths, src *Quad, p *Params) {
	var u uniforms
	prepare(&u, p)

	xs := lanes.F64x4{src[0], src[2], src[4], src[6]}
	ys := lanes.F64x4{src[1], src[3], src[5], src[7]}

	// Rotate
	rx := xs.MulScalar(u.m00).Add(ys.MulScalar(u.m01))
	ry := xs.MulScalar(u.m10).Add(ys.MulScalar(u.m11))
	rz := xs.MulScalar(u.m20).Add(ys.MulScalar(u.m21))

	// Skew
	if u.skew {
		rx, ry = rx.Add(ry.MulScalar(u.tanY)), rx.MulScalar(u.tanX).Add(ry)
	}

	// Scale
	rx = rx.MulScalar(u.scaleX)
	ry = ry.MulScalar(u.scaleY)

	// Translate
	rx = rx.AddScalar(u.position[0])
	ry = ry.AddScalar(u.position[1])
	rz = rz.AddScalar(u.position[2])

	// Camera
	if u.camera {
		cx := rx.AddScalar(-u.reference[0])
		cy := ry.AddScalar(-u.reference[1])
		cz := rz.AddScalar(-u.reference[2])

		rx = cx.MulScalar(u.view[0]).Add(cy.MulScalar(u.view[1])).Add(cz.MulScalar(u.view[2])).AddScalar(u.reference[0])
		ry = cx.MulScalar(u.view[3]).Add(cy.MulScalar(u.view[4])).Add(cz.MulScalar(u.view[5])).AddScalar(u.reference[1])
		rz = cx.MulScalar(u.view[6]).Add(cy.MulScalar(u.view[7])).Add(cz.MulScalar(u.view[8])).AddScalar(u.reference[2])
	}

	// Projection
	rz = rz.MulScalar(u.zScale)
	rx = rx.AddScalar(-u.origin[0])
	ry = ry.AddScalar(-u.origin[1])
	minZ := rz.AddScalar(-1).MinScalar(0)
	projZ := minZ.MulScalar(u.projection.DepthScale).AddScalar(u.projection.DepthOffset)
	projFov := projZ.DivInto(u.projection.TanHalfFov)
	rx = rx.Mul(projFov).AddScalar(u.origin[0])
	ry = ry.Mul(projFov).AddScalar(u.origin[1])

	// Depth floor
	projZ = projZ.Floor(DepthFloor)

	for i := 0; i < 4; i++ {
		dst[2*i] = rx[i]
		dst[2*i+1] = ry[i]
	}
	*depth = Depths(projZ)
}
