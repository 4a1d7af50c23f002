// Package lighting provides the directional light used by the mesh shader.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/orbitview/pkg/math"
)

// Sun is a directional light placed by compass angles.
type Sun struct {
	Azimuth   float32 // degrees around world Y, 0 toward +Z
	Elevation float32 // degrees above the horizon
	Ambient   float32 // light level of surfaces facing away, 0..1
}

// DefaultSun returns a high afternoon sun.
func DefaultSun() Sun {
	return Sun{Azimuth: 53, Elevation: 63, Ambient: 0.25}
}

// Direction returns the unit vector pointing from the scene toward the sun.
func (s Sun) Direction() math.Vec3 {
	az := float64(math.Radians(s.Azimuth))
	el := float64(math.Radians(s.Elevation))
	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// Diffuse returns the diffuse weight so that ambient plus diffuse is 1.
func (s Sun) Diffuse() float32 {
	return 1 - math.Clamp(s.Ambient, 0, 1)
}
