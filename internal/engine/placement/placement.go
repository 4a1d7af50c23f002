// Package placement animates a rigid mesh around an orbit while it spins,
// keeping its lowest point on a ground plane.
package placement

import (
	"errors"
	gomath "math"

	"github.com/Faultbox/orbitview/internal/engine/model"
	"github.com/Faultbox/orbitview/pkg/math"
)

// ErrEmptyMesh is returned by Advance for a mesh without vertices,
// which has no lowest point to ground.
var ErrEmptyMesh = errors.New("placement: mesh has no vertices")

// Params holds the fixed simulation parameters. Angles and speeds are in degrees.
type Params struct {
	DeltaTime   float32   // seconds per Advance
	Origin      math.Vec3 // orbit center
	OrbitSpeed  float32   // degrees per second around world Y
	Radius      float32   // orbit radius
	SpinSpeed   float32   // degrees per second around the orbit axis
	PlaneHeight float32   // ground plane Y
}

// DefaultParams returns the demo's simulation constants.
func DefaultParams() Params {
	return Params{
		DeltaTime:   0.016,
		OrbitSpeed:  20,
		Radius:      5,
		SpinSpeed:   80,
		PlaneHeight: -2.5,
	}
}

// Clock is the solver's animation phase in degrees.
type Clock struct {
	Orbit float32
	Spin  float32
}

// Solver owns the animation clock. It is not safe for concurrent use.
type Solver struct {
	params Params
	clock  Clock
}

// NewSolver creates a solver with both angles at zero.
func NewSolver(p Params) *Solver {
	return &Solver{params: p}
}

// Params returns the solver parameters.
func (s *Solver) Params() Params {
	return s.params
}

// Clock returns the current animation phase.
func (s *Solver) Clock() Clock {
	return s.clock
}

// SetClock seeds the animation phase.
func (s *Solver) SetClock(c Clock) {
	s.clock = c
}

// Axis returns the current spin axis: world X turned about world Y by the orbit angle.
func (s *Solver) Axis() math.Vec3 {
	// Vectors multiply from the left (v*R = R^T*v), so X turns toward +Z as the orbit grows.
	return math.RotateY(math.Radians(s.clock.Orbit)).Transpose().TransformDirection(math.UnitX)
}

// OrbitPosition returns where the body is placed for the current phase.
func (s *Solver) OrbitPosition() math.Vec3 {
	return s.params.Origin.Add(s.Axis().Scale(s.params.Radius))
}

// Advance returns the rest pose transformed for the current phase, then steps the clock.
// The result is spun about Axis, shifted so its lowest vertex lies on the ground plane,
// and translated to OrbitPosition. rest is not modified. Normals are rotated but not
// renormalized.
func (s *Solver) Advance(rest []model.Vertex) ([]model.Vertex, error) {
	if len(rest) == 0 {
		return nil, ErrEmptyMesh
	}

	axis := s.Axis()
	spin := math.RotateAxis(axis, math.Radians(s.clock.Spin)).Transpose()

	out := make([]model.Vertex, len(rest))
	lowest := float32(gomath.Inf(1))
	for i, v := range rest {
		v.Position = spin.TransformDirection(v.Position)
		v.Normal = spin.TransformDirection(v.Normal)
		if v.Position.Y < lowest {
			lowest = v.Position.Y
		}
		out[i] = v
	}

	ground := s.params.PlaneHeight - lowest
	position := s.params.Origin.Add(axis.Scale(s.params.Radius))

	s.step()

	for i := range out {
		out[i].Position.Y += ground
		out[i].Position = out[i].Position.Add(position)
	}
	return out, nil
}

// step advances both angles by one fixed time step. The spin angle decreases.
func (s *Solver) step() {
	dt := s.params.DeltaTime
	s.clock.Orbit = math.WrapDegrees(s.clock.Orbit + s.params.OrbitSpeed*dt)
	s.clock.Spin = math.WrapDegrees(s.clock.Spin - s.params.SpinSpeed*dt)
}
