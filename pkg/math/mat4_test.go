package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func matApproxEqual(a Mat4, b mgl32.Mat4) bool {
	for i := range a {
		if Abs(a[i]-b[i]) > eps*max(1, Abs(b[i])) {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M, got %v", result)
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
	if d := m.TransformDirection(Vec3{1, 2, 3}); d != (Vec3{1, 2, 3}) {
		t.Errorf("TransformDirection should ignore translation, got %v", d)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformDirection(UnitX)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !got.ApproxEqual(Vec3{0, 0, -1}, 0.001) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestTransposeInvertsRotation(t *testing.T) {
	r := RotateAxis(Vec3{1, 2, 3}.Normalize(), 0.7)
	got := r.Mul(r.Transpose())
	want := Identity()
	for i := range got {
		if Abs(got[i]-want[i]) > eps {
			t.Fatalf("R * R^T element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	tests := []struct {
		name                   string
		fovDeg, aspect, n, far float32
	}{
		{"default", 45, 1280.0 / 720.0, 0.1, 1000},
		{"narrow", 1, 1, 0.5, 50},
		{"square", 30, 1, 0.1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Perspective(Radians(tt.fovDeg), tt.aspect, tt.n, tt.far)
			want := mgl32.Perspective(mgl32.DegToRad(tt.fovDeg), tt.aspect, tt.n, tt.far)
			if !matApproxEqual(got, want) {
				t.Errorf("Perspective = %v, want %v", got, want)
			}
			if got[11] != -1 || got[15] != 0 {
				t.Errorf("Perspective w row = (%v, %v), want (-1, 0)", got[11], got[15])
			}
		})
	}
}

func TestLookAtMatchesMathGL(t *testing.T) {
	eye := Vec3{1, 2, 5}
	center := Vec3{0, 0.5, -1}
	up := UnitY

	got := LookAt(eye, center, up)
	want := mgl32.LookAtV(mgl32.Vec3{1, 2, 5}, mgl32.Vec3{0, 0.5, -1}, mgl32.Vec3{0, 1, 0})
	if !matApproxEqual(got, want) {
		t.Errorf("LookAt = %v, want %v", got, want)
	}

	// The eye maps to the view-space origin.
	if o := got.TransformPoint(eye); !o.ApproxEqual(Vec3{}, 1e-4) {
		t.Errorf("LookAt(eye) = %v, want origin", o)
	}
}

func TestRotateAxisMatchesMathGL(t *testing.T) {
	axes := []Vec3{UnitX, UnitY, UnitZ, Vec3{1, 1, 0}.Normalize(), Vec3{-0.3, 0.8, 0.5}.Normalize()}
	angles := []float32{0, 0.25, -1.3, math.Pi, 4}

	for _, axis := range axes {
		for _, angle := range angles {
			got := RotateAxis(axis, angle)
			want := mgl32.HomogRotate3D(angle, mgl32.Vec3{axis.X, axis.Y, axis.Z})
			if !matApproxEqual(got, want) {
				t.Errorf("RotateAxis(%v, %v) = %v, want %v", axis, angle, got, want)
			}
		}
	}
}

func TestRotateYMatchesMathGL(t *testing.T) {
	for _, angle := range []float32{0, 0.5, -2, 3.1} {
		if got, want := RotateY(angle), mgl32.HomogRotate3DY(angle); !matApproxEqual(got, want) {
			t.Errorf("RotateY(%v) = %v, want %v", angle, got, want)
		}
	}
}
