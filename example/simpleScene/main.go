package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/akmonengine/sprite3d"
	"github.com/akmonengine/sprite3d/actor"
	"github.com/akmonengine/sprite3d/config"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene creates a scene with a row of cards receding into the screen
func SetupScene(cfg config.Config) *sprite3d.Scene {
	scene := sprite3d.NewScene(cfg,
		sprite3d.FixedScreen{W: 800, H: 600},
		sprite3d.FixedProjection{Scale: 1, Offset: 1, TanFov: 1},
	)
	scene.Camera = sprite3d.FixedCamera{
		Eye:  mgl64.Vec3{0, 0, 0},
		View: mgl64.HomogRotate3DY(mgl64.DegToRad(10)),
	}

	for i := 0; i < 4; i++ {
		transform := actor.NewTransform()
		transform.Position = mgl64.Vec3{250 + float64(i)*100, 300, 1 + float64(i)*0.5}
		transform.Skew = mgl64.Vec2{0, float64(i) * 5}

		sprite := actor.NewSprite(transform, 64, 96)
		sprite.Id = fmt.Sprintf("card-%d", i)
		scene.AddSprite(sprite)
	}

	scene.Events.Subscribe(sprite3d.ON_SHOW, func(event sprite3d.Event) {
		fmt.Printf("👀 %v entered the screen\n", event.(sprite3d.ShowEvent).Sprite.Id)
	})
	scene.Events.Subscribe(sprite3d.ON_HIDE, func(event sprite3d.Event) {
		fmt.Printf("🙈 %v left the screen\n", event.(sprite3d.HideEvent).Sprite.Id)
	})

	return scene
}

func printSprite(sprite *actor.Sprite) {
	fmt.Printf("   %v visible=%v\n", sprite.Id, sprite.IsVisible)
	for i := 0; i < 4; i++ {
		corner := sprite.Projected.Corner(i)
		fmt.Printf("      corner %d: (%8.3f, %8.3f) depth=%.4f\n", i, corner.X(), corner.Y(), sprite.Depth[i])
	}
}

func main() {
	configPath := flag.String("config", "", "YAML settings file (camera_enabled, z_scale, rotation_order, workers)")
	frames := flag.Int("frames", 3, "number of frames to project")
	verbose := flag.Bool("v", false, "log frame summaries to stderr")
	flag.Parse()

	if *verbose {
		sprite3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("loading config", "error", err)
			os.Exit(1)
		}
	}

	scene := SetupScene(cfg)

	for frame := 0; frame < *frames; frame++ {
		for i, sprite := range scene.Sprites {
			sprite.Transform.Angles = mgl64.Vec3{0, float64(frame) * 30, float64(i) * 15}
		}
		// the last card slides off to the right
		last := scene.Sprites[len(scene.Sprites)-1]
		last.Transform.Position[0] += float64(frame) * 300

		scene.Project()

		fmt.Printf("🎬 Frame %d (order %v, camera %v)\n", frame, cfg.RotationOrder, cfg.CameraEnabled)
		for _, sprite := range scene.VisibleSprites(nil) {
			printSprite(sprite)
		}
	}
}
