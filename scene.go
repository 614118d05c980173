// Package sprite3d projects flat sprites through a 3D transform and a
// perspective camera, many sprites per frame.
//
// A Scene holds the sprites and the external collaborators (camera,
// projection, screen). Scene.Project snapshots the collaborators once, then
// runs the vertex pipeline for every sprite on a pool of goroutines. Each
// sprite owns its output buffers, so sprites can be projected in parallel
// without locks.
package sprite3d

import (
	"cmp"
	"slices"
	"sync/atomic"

	"github.com/akmonengine/sprite3d/actor"
	"github.com/akmonengine/sprite3d/config"
	"github.com/akmonengine/sprite3d/vertex"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

type Scene struct {
	// List of all sprites in the scene
	Sprites []*actor.Sprite

	Camera     CameraSource
	Projection ProjectionSource
	Screen     Screen

	Config  config.Config
	Workers int

	Events Events
}

// NewScene creates an empty scene using the given settings
func NewScene(cfg config.Config, screen Screen, projection ProjectionSource) *Scene {
	return &Scene{
		Screen:     screen,
		Projection: projection,
		Config:     cfg,
		Workers:    cfg.Workers,
		Events:     NewEvents(),
	}
}

// AddSprite adds a sprite to the scene
func (s *Scene) AddSprite(sprite *actor.Sprite) {
	s.Sprites = append(s.Sprites, sprite)
}

// RemoveSprite removes a sprite from the scene
func (s *Scene) RemoveSprite(sprite *actor.Sprite) {
	k := -1
	for i, sp := range s.Sprites {
		if sp == sprite {
			k = i
			break
		}
	}

	if k != -1 {
		s.Sprites = append(s.Sprites[:k], s.Sprites[k+1:]...)
	}

	s.Events.forget(sprite)
}

// FrameParams returns the per-frame settings shared by every sprite: the
// collaborators are read once here, never from the workers.
func (s *Scene) FrameParams() vertex.Params {
	halfWidth, halfHeight := s.Screen.Width()/2, s.Screen.Height()/2

	params := vertex.Params{
		Order:         s.Config.RotationOrder,
		Scale:         mgl64.Vec2{1, 1},
		CameraEnabled: s.Config.CameraEnabled,
		Origin:        mgl64.Vec2{halfWidth, halfHeight},
		ZScale:        s.Config.ZScale,
	}

	if s.Projection != nil {
		params.Projection = vertex.Projection{
			DepthScale:  s.Projection.DepthScale(),
			DepthOffset: s.Projection.DepthOffset(),
			TanHalfFov:  s.Projection.TanHalfFov(),
		}
	}

	if s.Config.CameraEnabled && s.Camera != nil {
		params.Camera = &vertex.Camera{
			Eye:        s.Camera.EyePosition(),
			View:       s.Camera.ViewMatrix(),
			HalfWidth:  halfWidth,
			HalfHeight: halfHeight,
		}
	}

	return params
}

// ScreenAABB returns the screen rectangle sprites are culled against
func (s *Scene) ScreenAABB() actor.AABB {
	return actor.AABB{
		Min: mgl64.Vec2{0, 0},
		Max: mgl64.Vec2{s.Screen.Width(), s.Screen.Height()},
	}
}

// Project projects every sprite, updates their visibility, then sends the
// visibility events
func (s *Scene) Project() {
	s.Workers = max(DEFAULT_WORKERS, s.Workers)

	frame := s.FrameParams()
	screen := s.ScreenAABB()

	var skipped, visible atomic.Int64
	task(s.Workers, s.Sprites, func(sprite *actor.Sprite) {
		if sprite.Hidden {
			sprite.IsVisible = false
			return
		}
		// the pipeline divides by the depth and does not check it
		if sprite.Transform.Position.Z() == 0 {
			skipped.Add(1)
			sprite.IsVisible = false
			return
		}

		sprite.Project(frame)
		sprite.IsVisible = sprite.GetAABB().Overlaps(screen)
		if sprite.IsVisible {
			visible.Add(1)
		}
	})

	if n := skipped.Load(); n > 0 {
		Logger().Warn("sprites skipped: position z is zero", "count", n)
	}
	Logger().Debug("frame projected",
		"sprites", len(s.Sprites),
		"visible", visible.Load(),
		"workers", s.Workers,
	)

	s.Events.processVisibilityEvents(s.Sprites)
	s.Events.flush()
}

// VisibleSprites appends the visible sprites to dst, farthest first, so they
// can be drawn in order
func (s *Scene) VisibleSprites(dst []*actor.Sprite) []*actor.Sprite {
	start := len(dst)
	for _, sprite := range s.Sprites {
		if sprite.IsVisible {
			dst = append(dst, sprite)
		}
	}

	slices.SortStableFunc(dst[start:], func(a, b *actor.Sprite) int {
		return cmp.Compare(b.MinDepth(), a.MinDepth())
	})

	return dst
}
