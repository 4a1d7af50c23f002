// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Lighting   LightingConfig   `yaml:"lighting"`
	Camera     CameraConfig     `yaml:"camera"`
	Simulation SimulationConfig `yaml:"simulation"`
	Assets     AssetsConfig     `yaml:"assets"`
	Debug      DebugConfig      `yaml:"debug"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// LightingConfig places the sun lighting the animated meshes.
type LightingConfig struct {
	SunAzimuth   float32 `yaml:"sun_azimuth"`
	SunElevation float32 `yaml:"sun_elevation"`
	Ambient      float32 `yaml:"ambient"`
}

// CameraConfig holds the fly camera's starting state.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Zoom        float32    `yaml:"zoom"`
}

// SimulationConfig holds the orbit/spin animation parameters.
type SimulationConfig struct {
	DeltaTime   float32    `yaml:"delta_time"`
	Origin      [3]float32 `yaml:"origin"`
	OrbitSpeed  float32    `yaml:"orbit_speed"`
	Radius      float32    `yaml:"radius"`
	SpinSpeed   float32    `yaml:"spin_speed"`
	PlaneHeight float32    `yaml:"plane_height"`
}

// AssetsConfig holds asset paths, relative to Root.
// Empty shader paths select the built-in shaders.
type AssetsConfig struct {
	Root           string  `yaml:"root"`
	BodyMesh       string  `yaml:"body_mesh"`
	SphereMesh     string  `yaml:"sphere_mesh"`
	SphereOffset   float32 `yaml:"sphere_offset"`
	BodyTexture    string  `yaml:"body_texture"`
	GroundTexture  string  `yaml:"ground_texture"`
	GroundSize     float32 `yaml:"ground_size"`
	GroundRepeat   float32 `yaml:"ground_repeat"`
	VertexShader   string  `yaml:"vertex_shader"`
	FragmentShader string  `yaml:"fragment_shader"`
	GroundShader   string  `yaml:"ground_shader"`
}

// DebugConfig holds debugging aids.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's built-in values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Near:       0.1,
			Far:        1000,
			ClearColor: [3]float32{0.565, 0.89, 1},
		},
		Lighting: LightingConfig{
			SunAzimuth:   53,
			SunElevation: 63,
			Ambient:      0.25,
		},
		Camera: CameraConfig{
			Yaw:         -90,
			Pitch:       0,
			Speed:       4.5,
			Sensitivity: 0.1,
			Zoom:        45,
		},
		Simulation: SimulationConfig{
			DeltaTime:   0.016,
			OrbitSpeed:  20,
			Radius:      5,
			SpinSpeed:   80,
			PlaneHeight: -2.5,
		},
		Assets: AssetsConfig{
			Root:          "assets",
			BodyMesh:      "icosahedron.obj",
			SphereMesh:    "sphere.obj",
			SphereOffset:  -1.5,
			BodyTexture:   "texture.png",
			GroundTexture: "grass.png",
			GroundSize:    10,
			GroundRepeat:  5,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// AspectRatio returns the configured width/height ratio.
func (g GraphicsConfig) AspectRatio() float32 {
	return float32(g.Width) / float32(g.Height)
}

// Validate checks values the renderer and simulation cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		errs = append(errs, fmt.Errorf("clip planes near=%g far=%g must satisfy 0 < near < far", c.Graphics.Near, c.Graphics.Far))
	}
	if c.Simulation.DeltaTime <= 0 {
		errs = append(errs, fmt.Errorf("delta_time %g must be positive", c.Simulation.DeltaTime))
	}
	if c.Lighting.Ambient < 0 || c.Lighting.Ambient > 1 {
		errs = append(errs, fmt.Errorf("lighting.ambient %g must be within [0, 1]", c.Lighting.Ambient))
	}
	if c.Assets.BodyMesh == "" {
		errs = append(errs, errors.New("assets.body_mesh is required"))
	}
	return errors.Join(errs...)
}
