package vertex

// transformQuadScalar is the corner-by-corner version of TransformQuad. It is
// the reference the lane version is checked against.
func transformQuadScalar(dst *Quad, depth *Depths, src *Quad, p *Params) {
	var u uniforms
	prepare(&u, p)

	for i := 0; i < 4; i++ {
		dst[2*i], dst[2*i+1], depth[i] = transformCorner(&u, src[2*i], src[2*i+1])
	}
}

func transformCorner(u *uniforms, x, y float64) (float64, float64, float64) {
	// Rotate
	rx := x*u.m00 + y*u.m01
	ry := x*u.m10 + y*u.m11
	rz := x*u.m20 + y*u.m21

	// Skew
	if u.skew {
		rx, ry = rx+ry*u.tanY, rx*u.tanX+ry
	}

	// Scale
	rx *= u.scaleX
	ry *= u.scaleY

	// Translate
	rx += u.position[0]
	ry += u.position[1]
	rz += u.position[2]

	// Camera
	if u.camera {
		cx := rx - u.reference[0]
		cy := ry - u.reference[1]
		cz := rz - u.reference[2]

		rx = cx*u.view[0] + cy*u.view[1] + cz*u.view[2] + u.reference[0]
		ry = cx*u.view[3] + cy*u.view[4] + cz*u.view[5] + u.reference[1]
		rz = cx*u.view[6] + cy*u.view[7] + cz*u.view[8] + u.reference[2]
	}

	// Projection
	rz *= u.zScale
	rx -= u.origin[0]
	ry -= u.origin[1]
	minZ := 0.0
	if rz-1 < 0 {
		minZ = rz - 1
	}
	projZ := minZ*u.projection.DepthScale + u.projection.DepthOffset
	projFov := u.projection.TanHalfFov / projZ
	rx = rx*projFov + u.origin[0]
	ry = ry*projFov + u.origin[1]

	// Depth floor
	if !(projZ > DepthFloor) {
		projZ = DepthFloor
	}

	return rx, ry, projZ
}
