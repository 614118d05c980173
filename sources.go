package sprite3d

import "github.com/go-gl/mathgl/mgl64"

// CameraSource provides the camera state. The scene reads it once per frame.
type CameraSource interface {
	EyePosition() mgl64.Vec3
	// ViewMatrix is column-major; only its upper-left 3x3 block is used
	ViewMatrix() mgl64.Mat4
}

// ProjectionSource provides the scalars derived from the field of view and
// the near plane
type ProjectionSource interface {
	DepthScale() float64
	DepthOffset() float64
	TanHalfFov() float64
}

// Screen provides the screen dimensions in pixels
type Screen interface {
	Width() float64
	Height() float64
}

// FixedCamera is a CameraSource that never moves
type FixedCamera struct {
	Eye  mgl64.Vec3
	View mgl64.Mat4
}

func (c FixedCamera) EyePosition() mgl64.Vec3 { return c.Eye }
func (c FixedCamera) ViewMatrix() mgl64.Mat4  { return c.View }

// FixedProjection is a ProjectionSource with constant values
type FixedProjection struct {
	Scale  float64
	Offset float64
	TanFov float64
}

func (p FixedProjection) DepthScale() float64  { return p.Scale }
func (p FixedProjection) DepthOffset() float64 { return p.Offset }
func (p FixedProjection) TanHalfFov() float64  { return p.TanFov }

// FixedScreen is a Screen of constant size
type FixedScreen struct {
	W, H float64
}

func (s FixedScreen) Width() float64  { return s.W }
func (s FixedScreen) Height() float64 { return s.H }
