// Package rotation builds the rotation of a sprite from three Euler angles.
//
// Each angle (in degrees) produces one axis quaternion around the unit X, Y or
// Z axis. The three are then combined with the Hamilton product in one of the
// twelve composition orders. The product is not commutative, so every order
// yields a different rotation for the same angles.
//
// Everything in this package works on values and never allocates, so it can be
// called from the per-vertex hot path of the renderer.
package rotation

import (
	"github.com/go-gl/mathgl/mgl64"
)

type axis uint8

const (
	axisX axis = iota
	axisY
	axisZ
)

var (
	unitX = mgl64.Vec3{1, 0, 0}
	unitY = mgl64.Vec3{0, 1, 0}
	unitZ = mgl64.Vec3{0, 0, 1}
)

// recipe describes one composition order: the accumulator is multiplied on the
// right by first, then by second. When second is the accumulator itself, the
// accumulated value is squared.
type recipe struct {
	acc    axis
	first  axis
	second axis
}

var recipes = [...]recipe{
	ZXY: {axisY, axisX, axisZ},
	XYZ: {axisZ, axisY, axisX},
	XZY: {axisY, axisZ, axisX},
	YXZ: {axisZ, axisX, axisY},
	YZX: {axisX, axisZ, axisY},
	ZYX: {axisX, axisY, axisZ},
	XYX: {axisX, axisY, axisX},
	XZX: {axisX, axisZ, axisX},
	YXY: {axisY, axisX, axisY},
	YZY: {axisY, axisZ, axisY},
	ZXZ: {axisZ, axisX, axisZ},
	ZYZ: {axisZ, axisY, axisZ},
}

// every Order must have a recipe, and nothing more
var _ = [1]struct{}{}[int(orderCount)-len(recipes)]

// axisQuat returns the quaternion of a rotation of angle degrees around one of
// the unit axes
func axisQuat(a axis, degrees float64) mgl64.Quat {
	var unit mgl64.Vec3
	switch a {
	case axisX:
		unit = unitX
	case axisY:
		unit = unitY
	default:
		unit = unitZ
	}

	return mgl64.QuatRotate(mgl64.DegToRad(degrees), unit)
}

// Compose builds the rotation quaternion for angles (degrees around X, Y, Z)
// combined in the given order.
//
// Compose panics if order is not one of the declared orders.
func Compose(angles mgl64.Vec3, order Order) mgl64.Quat {
	r := recipes[order]

	quats := [3]mgl64.Quat{
		axisQuat(axisX, angles[0]),
		axisQuat(axisY, angles[1]),
		axisQuat(axisZ, angles[2]),
	}

	q := quats[r.acc].Mul(quats[r.first])
	if r.second == r.acc {
		return q.Mul(q)
	}

	return q.Mul(quats[r.second])
}

// Matrix converts a unit quaternion into its 3x3 rotation matrix (column-major)
func Matrix(q mgl64.Quat) mgl64.Mat3 {
	return q.Mat4().Mat3()
}
