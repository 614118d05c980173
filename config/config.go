// Package config loads the renderer settings shared by every quad of a frame.
//
// The settings are plain values. They are read once, then handed to the scene,
// which passes them explicitly to every projection: nothing here is global.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/akmonengine/sprite3d/rotation"
	"gopkg.in/yaml.v3"
)

// MaxFileSize bounds the size of a configuration file
const MaxFileSize = 1024 * 1024

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid configuration")

// Config holds the renderer settings
type Config struct {
	// CameraEnabled turns on the camera-relative step of the pipeline
	CameraEnabled bool
	// ZScale multiplies the depth before the perspective division
	ZScale float64
	// RotationOrder is the composition order of the Euler angles
	RotationOrder rotation.Order
	// Workers is the number of goroutines projecting sprites
	Workers int
}

// document is the YAML layout. Pointers tell unset keys apart from zero values.
type document struct {
	CameraEnabled *bool    `yaml:"camera_enabled"`
	ZScale        *float64 `yaml:"z_scale"`
	RotationOrder *string  `yaml:"rotation_order"`
	Workers       *int     `yaml:"workers"`
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		CameraEnabled: false,
		ZScale:        1,
		RotationOrder: rotation.ZXY,
		Workers:       1,
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.ZScale == 0 {
		return fmt.Errorf("%w: z_scale must not be zero", ErrInvalid)
	}
	if !c.RotationOrder.Valid() {
		return fmt.Errorf("%w: rotation order %v", ErrInvalid, c.RotationOrder)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}

	return nil
}

// Parse decodes a YAML document on top of the defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if doc.CameraEnabled != nil {
		cfg.CameraEnabled = *doc.CameraEnabled
	}
	if doc.ZScale != nil {
		cfg.ZScale = *doc.ZScale
	}
	if doc.RotationOrder != nil {
		order, err := rotation.ParseOrder(*doc.RotationOrder)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		cfg.RotationOrder = order
	}
	if doc.Workers != nil {
		cfg.Workers = *doc.Workers
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the configuration file at path
func Load(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if info.Size() > MaxFileSize {
		return Config{}, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrInvalid, path, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
