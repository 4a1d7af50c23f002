package model

import (
	"testing"
	"unsafe"

	"github.com/Faultbox/orbitview/pkg/formats"
	"github.com/Faultbox/orbitview/pkg/math"
)

const triangleOBJ = `
v 0 2 0
v 3 0 0
v 0 0 4
vt 0 0
vt 1 0
vt 0 1
vn 0 1 0
f 1/1/1 2/2/1 3/3/1
`

func parse(t *testing.T, src string) *formats.OBJ {
	t.Helper()
	obj, err := formats.ParseOBJ([]byte(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	return obj
}

func TestVertexLayout(t *testing.T) {
	if VertexSize != 32 {
		t.Errorf("VertexSize = %d, want 32", VertexSize)
	}
	if PositionOffset != 0 || NormalOffset != 12 || TexCoordOffset != 24 {
		t.Errorf("offsets = %d/%d/%d, want 0/12/24", PositionOffset, NormalOffset, TexCoordOffset)
	}
	if unsafe.Sizeof([2]Vertex{}) != 64 {
		t.Error("Vertex slice must be tightly packed")
	}
}

func TestFromOBJ(t *testing.T) {
	mesh, err := FromOBJ(parse(t, triangleOBJ), BuildOptions{})
	if err != nil {
		t.Fatalf("FromOBJ failed: %v", err)
	}

	if len(mesh.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(mesh.Vertices))
	}
	for i, idx := range mesh.Indices {
		if idx != uint32(i) {
			t.Errorf("index %d = %d, want sequential", i, idx)
		}
	}

	v := mesh.Vertices[1]
	if v.Position != (math.Vec3{X: 3}) {
		t.Errorf("position = %v, want (3,0,0)", v.Position)
	}
	if v.Normal != math.UnitY {
		t.Errorf("normal = %v, want (0,1,0)", v.Normal)
	}
	if v.TexCoord != (math.Vec2{X: 1}) {
		t.Errorf("texcoord = %v, want (1,0)", v.TexCoord)
	}
}

func TestFromOBJ_NormalizePositions(t *testing.T) {
	mesh, err := FromOBJ(parse(t, triangleOBJ), BuildOptions{NormalizePositions: true})
	if err != nil {
		t.Fatalf("FromOBJ failed: %v", err)
	}
	for i, v := range mesh.Vertices {
		if l := v.Position.Length(); math.Abs(l-1) > 1e-6 {
			t.Errorf("vertex %d length = %v, want 1", i, l)
		}
	}
}

func TestFromOBJ_MissingAttributes(t *testing.T) {
	mesh, err := FromOBJ(parse(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), BuildOptions{})
	if err != nil {
		t.Fatalf("FromOBJ failed: %v", err)
	}
	for _, v := range mesh.Vertices {
		if v.Normal != (math.Vec3{}) || v.TexCoord != (math.Vec2{}) {
			t.Errorf("missing attributes should be zero, got %+v", v)
		}
	}
}

func TestFromOBJ_ObjectOutOfRange(t *testing.T) {
	if _, err := FromOBJ(parse(t, triangleOBJ), BuildOptions{Object: 1}); err == nil {
		t.Error("expected error for missing object")
	}
}

func TestPlane(t *testing.T) {
	p := Plane(10, -2.5, 5)

	want := []uint32{0, 1, 3, 3, 2, 1}
	for i := range want {
		if p.Indices[i] != want[i] {
			t.Fatalf("indices = %v, want %v", p.Indices, want)
		}
	}
	b := p.Bounds()
	if b.Min != (math.Vec3{X: -10, Y: -2.5, Z: -10}) || b.Max != (math.Vec3{X: 10, Y: -2.5, Z: 10}) {
		t.Errorf("bounds = %+v", b)
	}
	if p.Vertices[2].TexCoord != (math.Vec2{X: 5, Y: 5}) {
		t.Errorf("far corner texcoord = %v, want (5,5)", p.Vertices[2].TexCoord)
	}
}

func TestOffsetCopies(t *testing.T) {
	p := Plane(1, 0, 1)
	moved := p.Offset(math.Vec3{Y: -1.5})

	if moved.Vertices[0].Position.Y != -1.5 {
		t.Errorf("moved Y = %v, want -1.5", moved.Vertices[0].Position.Y)
	}
	if p.Vertices[0].Position.Y != 0 {
		t.Error("Offset must not modify the source mesh")
	}
	moved.Indices[0] = 99
	if p.Indices[0] == 99 {
		t.Error("Offset must copy indices")
	}
}

func TestBoundsEmpty(t *testing.T) {
	if b := (&Mesh{}).Bounds(); b != (Bounds{}) {
		t.Errorf("empty bounds = %+v", b)
	}
}
