package rig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every configuration rejection so callers can test
// for the class with errors.Is.
var ErrInvalidConfig = errors.New("rig: invalid config")

// Config is the rig's full tuning surface. It is read once at construction;
// a running rig never sees it change. Angles are degrees, distances are
// world units, the edge-scroll threshold is pixels.
type Config struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`

	ZoomSpeed        float32 `yaml:"zoom_speed"`
	ZoomInvert       bool    `yaml:"zoom_invert"`
	ZoomInitDistance float32 `yaml:"zoom_init_distance"`
	ZoomMaxIn        float32 `yaml:"zoom_max_in"`
	ZoomMaxOut       float32 `yaml:"zoom_max_out"`
	ZoomScrollFactor float32 `yaml:"zoom_scroll_factor"`

	MoveSpeed           float32 `yaml:"move_speed"`
	MoveInvert          bool    `yaml:"move_invert"`
	EdgeScrollEnabled   bool    `yaml:"edge_scroll_enabled"`
	EdgeScrollThreshold float32 `yaml:"edge_scroll_threshold"`

	PanSpeed  float32 `yaml:"pan_speed"`
	PanInvert bool    `yaml:"pan_invert"`

	TiltSpeed     float32 `yaml:"tilt_speed"`
	TiltInvert    bool    `yaml:"tilt_invert"`
	TiltInitAngle float32 `yaml:"tilt_init_angle"`
	TiltMinAngle  float32 `yaml:"tilt_min_angle"`
	TiltMaxAngle  float32 `yaml:"tilt_max_angle"`

	ShowDebugInfo bool `yaml:"show_debug_info"`
}

// DefaultConfig returns tunings that feel reasonable over a medium-sized map.
func DefaultConfig() Config {
	return Config{
		MouseSensitivity: 1,

		ZoomSpeed:        1,
		ZoomInitDistance: 20,
		ZoomMaxIn:        5,
		ZoomMaxOut:       100,
		ZoomScrollFactor: 4,

		MoveSpeed:           1,
		EdgeScrollEnabled:   true,
		EdgeScrollThreshold: 20,

		PanSpeed: 1,

		TiltSpeed:     0.5,
		TiltInitAngle: 25,
		TiltMinAngle:  10,
		TiltMaxAngle:  80,

		ShowDebugInfo: true,
	}
}

// Validate rejects configurations the per-frame math cannot tolerate.
// Everything here is checked once so Tick never has to.
func (c Config) Validate() error {
	if c.MouseSensitivity <= 0 {
		return fmt.Errorf("%w: mouse_sensitivity %v must be > 0", ErrInvalidConfig, c.MouseSensitivity)
	}
	for _, s := range []struct {
		name string
		v    float32
	}{
		{"zoom_speed", c.ZoomSpeed},
		{"move_speed", c.MoveSpeed},
		{"pan_speed", c.PanSpeed},
		{"tilt_speed", c.TiltSpeed},
		{"zoom_scroll_factor", c.ZoomScrollFactor},
	} {
		if s.v <= 0 {
			return fmt.Errorf("%w: %s %v must be > 0", ErrInvalidConfig, s.name, s.v)
		}
	}
	// Zoom speed divides by ZoomMaxIn, so zero/negative is rejected outright.
	if c.ZoomMaxIn <= 0 {
		return fmt.Errorf("%w: zoom_max_in %v must be > 0", ErrInvalidConfig, c.ZoomMaxIn)
	}
	if c.ZoomMaxIn > c.ZoomMaxOut {
		return fmt.Errorf("%w: zoom_max_in %v > zoom_max_out %v", ErrInvalidConfig, c.ZoomMaxIn, c.ZoomMaxOut)
	}
	if c.ZoomInitDistance < c.ZoomMaxIn || c.ZoomInitDistance > c.ZoomMaxOut {
		return fmt.Errorf("%w: zoom_init_distance %v outside [%v, %v]", ErrInvalidConfig, c.ZoomInitDistance, c.ZoomMaxIn, c.ZoomMaxOut)
	}
	if c.TiltMinAngle > c.TiltMaxAngle {
		return fmt.Errorf("%w: tilt_min_angle %v > tilt_max_angle %v", ErrInvalidConfig, c.TiltMinAngle, c.TiltMaxAngle)
	}
	if c.TiltInitAngle < c.TiltMinAngle || c.TiltInitAngle > c.TiltMaxAngle {
		return fmt.Errorf("%w: tilt_init_angle %v outside [%v, %v]", ErrInvalidConfig, c.TiltInitAngle, c.TiltMinAngle, c.TiltMaxAngle)
	}
	if c.EdgeScrollThreshold < 0 {
		return fmt.Errorf("%w: edge_scroll_threshold %v must be >= 0", ErrInvalidConfig, c.EdgeScrollThreshold)
	}
	return nil
}

// LoadConfig reads and validates a YAML config file. Keys not present keep
// their DefaultConfig value, so partial files are fine.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("rig: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("rig: parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
