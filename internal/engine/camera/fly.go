package camera

import (
	gomath "math"

	"github.com/Faultbox/orbitview/pkg/math"
)

// Direction is a keyboard movement direction, kept free of any windowing key codes.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Fly camera limits, in degrees.
const (
	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// Settings holds the initial state of a FlyCamera.
type Settings struct {
	Position    math.Vec3
	WorldUp     math.Vec3
	Yaw         float32 // degrees
	Pitch       float32 // degrees
	Speed       float32 // units per second
	Sensitivity float32 // degrees per cursor unit
	Zoom        float32 // vertical field of view, degrees
}

// DefaultSettings returns a camera at the origin looking down -Z.
func DefaultSettings() Settings {
	return Settings{
		WorldUp:     math.UnitY,
		Yaw:         -90,
		Pitch:       0,
		Speed:       4.5,
		Sensitivity: 0.1,
		Zoom:        45,
	}
}

// FlyCamera is a free-flying first-person camera driven by yaw and pitch.
// Front, Right and Up are always re-derived from the angles and form an
// orthonormal right-handed basis.
type FlyCamera struct {
	Position math.Vec3
	Front    math.Vec3
	Right    math.Vec3
	Up       math.Vec3
	WorldUp  math.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32
	Sensitivity float32
	Zoom        float32
}

// NewFlyCamera creates a fly camera from settings.
func NewFlyCamera(s Settings) *FlyCamera {
	if s.WorldUp == (math.Vec3{}) {
		s.WorldUp = math.UnitY
	}
	c := &FlyCamera{
		Position:    s.Position,
		WorldUp:     s.WorldUp.Normalize(),
		Yaw:         s.Yaw,
		Pitch:       math.Clamp(s.Pitch, -MaxPitch, MaxPitch),
		Speed:       s.Speed,
		Sensitivity: s.Sensitivity,
		Zoom:        math.Clamp(s.Zoom, MinZoom, MaxZoom),
	}
	c.updateVectors()
	return c
}

// ProcessMouseMovement turns the camera by a cursor delta scaled by Sensitivity.
// With constrainPitch the pitch stays within ±MaxPitch so the view never flips.
func (c *FlyCamera) ProcessMouseMovement(deltaX, deltaY float32, constrainPitch bool) {
	c.Yaw += deltaX * c.Sensitivity
	c.Pitch += deltaY * c.Sensitivity

	if constrainPitch {
		c.Pitch = math.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	}

	c.updateVectors()
}

// Translate moves the camera along its front or right axis.
func (c *FlyCamera) Translate(dir Direction, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Scale(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Scale(velocity))
	}
}

// AdjustZoom narrows the field of view by delta (scroll up zooms in).
func (c *FlyCamera) AdjustZoom(delta float32) {
	c.Zoom = math.Clamp(c.Zoom-delta, MinZoom, MaxZoom)
}

// Basis returns the front, right and up vectors.
func (c *FlyCamera) Basis() (front, right, up math.Vec3) {
	return c.Front, c.Right, c.Up
}

// ViewMatrix returns the look-at matrix for the current position and basis.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns a perspective matrix using Zoom as the vertical field of view.
func (c *FlyCamera) ProjectionMatrix(aspect, near, far float32) math.Mat4 {
	return math.Perspective(math.Radians(c.Zoom), aspect, near, far)
}

// updateVectors recalculates the basis from yaw and pitch.
func (c *FlyCamera) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	front := math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
	// Normalize right, its length shrinks toward the poles.
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
