// Package app runs the viewer: window, input, camera, animation and drawing.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitview/internal/assets"
	"github.com/Faultbox/orbitview/internal/config"
	"github.com/Faultbox/orbitview/internal/engine/camera"
	"github.com/Faultbox/orbitview/internal/engine/debug"
	"github.com/Faultbox/orbitview/internal/engine/input"
	"github.com/Faultbox/orbitview/internal/engine/lighting"
	"github.com/Faultbox/orbitview/internal/engine/placement"
	"github.com/Faultbox/orbitview/internal/engine/renderer"
	"github.com/Faultbox/orbitview/internal/engine/window"
	"github.com/Faultbox/orbitview/internal/logger"
	"github.com/Faultbox/orbitview/pkg/math"
)

const title = "OrbitView"

// App is the viewer instance.
type App struct {
	cfg *config.Config
	log *zap.Logger

	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	shots    *debug.Screenshotter

	camera *camera.FlyCamera
	cursor input.CursorTracker
	solver *placement.Solver
	scene  *scene

	captureFrame bool
}

// New creates the window and GL context and loads the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}
	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:        title,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		CaptureMouse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New(true)
	a.assets = assets.NewDirManager(cfg.Assets.Root)
	a.shots = debug.NewScreenshotter(cfg.Debug.ScreenshotDir, "orbitview")
	a.camera = camera.NewFlyCamera(cameraSettings(cfg.Camera))
	a.solver = placement.NewSolver(simulationParams(cfg.Simulation))

	a.scene, err = loadScene(a.assets, cfg.Assets, cfg.Simulation.PlaneHeight, a.log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	a.scene.applySun(lighting.Sun{
		Azimuth:   cfg.Lighting.SunAzimuth,
		Elevation: cfg.Lighting.SunElevation,
		Ambient:   cfg.Lighting.Ambient,
	})

	a.log.Info("viewer initialized")
	return a, nil
}

// Run executes the frame loop until the window is closed or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		frameTime := now.Sub(lastTime)
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.handleKeys()
		if !a.running {
			break
		}

		if err := a.render(); err != nil {
			return err
		}
		if a.captureFrame {
			a.screenshot()
			a.captureFrame = false
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("frame", frameTime),
			)
			if a.cfg.Debug.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %d FPS", title, frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.scene != nil {
		a.scene.release()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	if a.assets != nil {
		a.assets.Close()
	}
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())
		case input.EventMouseMove:
			dx, dy := a.cursor.Move(event.CursorX, event.CursorY)
			a.camera.ProcessMouseMovement(dx, dy, true)
		case input.EventMouseWheel:
			a.camera.AdjustZoom(event.Wheel)
		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_F12 {
				a.captureFrame = true
			}
		}
	}
}

var moveKeys = []struct {
	key sdl.Scancode
	dir camera.Direction
}{
	{sdl.SCANCODE_W, camera.Forward},
	{sdl.SCANCODE_S, camera.Backward},
	{sdl.SCANCODE_A, camera.Left},
	{sdl.SCANCODE_D, camera.Right},
}

// handleKeys applies held movement keys with the fixed simulation step.
func (a *App) handleKeys() {
	dt := a.cfg.Simulation.DeltaTime
	for _, m := range moveKeys {
		if a.input.KeyDown(m.key) {
			a.camera.Translate(m.dir, dt)
		}
	}
	if a.input.KeyDown(sdl.SCANCODE_ESCAPE) {
		a.running = false
	}
}

func (a *App) render() error {
	body, err := a.solver.Advance(a.scene.body.Vertices)
	if err != nil && !errors.Is(err, placement.ErrEmptyMesh) {
		return fmt.Errorf("advancing body: %w", err)
	}

	view := a.camera.ViewMatrix()
	proj := a.camera.ProjectionMatrix(a.renderer.AspectRatio(), a.cfg.Graphics.Near, a.cfg.Graphics.Far)

	a.renderer.Begin(a.cfg.Graphics.ClearColor)
	s := a.scene
	a.renderer.Draw(s.meshProgram, view, proj, s.bodyTexture, body, s.body.Indices)
	a.renderer.Draw(s.meshProgram, view, proj, s.bodyTexture, s.sphere.Vertices, s.sphere.Indices)
	a.renderer.Draw(s.groundProgram, view, proj, s.groundTexture, s.ground.Vertices, s.ground.Indices)
	return nil
}

// screenshot reads the back buffer, so it must run after drawing and before the swap.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.SaveFramebuffer(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func cameraSettings(c config.CameraConfig) camera.Settings {
	s := camera.DefaultSettings()
	s.Position = math.Vec3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]}
	s.Yaw = c.Yaw
	s.Pitch = c.Pitch
	s.Speed = c.Speed
	s.Sensitivity = c.Sensitivity
	s.Zoom = c.Zoom
	return s
}

func simulationParams(c config.SimulationConfig) placement.Params {
	return placement.Params{
		DeltaTime:   c.DeltaTime,
		Origin:      math.Vec3{X: c.Origin[0], Y: c.Origin[1], Z: c.Origin[2]},
		OrbitSpeed:  c.OrbitSpeed,
		Radius:      c.Radius,
		SpinSpeed:   c.SpinSpeed,
		PlaneHeight: c.PlaneHeight,
	}
}
