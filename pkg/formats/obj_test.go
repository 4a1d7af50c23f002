package formats

import (
	"errors"
	"testing"
)

const quadOBJ = `# unit quad
mtllib quad.mtl
o Quad
v -1 0 -1
v  1 0 -1
v  1 0  1
v -1 0  1
vt 0 0
vt 1 0
vt 1 1
vt 0 1 0
vn 0 1 0
usemtl grass
s off
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJ_Quad(t *testing.T) {
	obj, err := ParseOBJ([]byte(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(obj.Positions) != 4 || len(obj.TexCoords) != 4 || len(obj.Normals) != 1 {
		t.Fatalf("pools = %d/%d/%d, want 4/4/1", len(obj.Positions), len(obj.TexCoords), len(obj.Normals))
	}
	if len(obj.Objects) != 1 || obj.Objects[0].Name != "Quad" {
		t.Fatalf("objects = %+v, want single Quad", obj.Objects)
	}

	// Quad fans into two triangles: (0,1,2) and (0,2,3).
	tris := obj.Objects[0].Triangles
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}
	want := [2][3]int{{0, 1, 2}, {0, 2, 3}}
	for i, tri := range tris {
		for j, c := range tri {
			if c.Position != want[i][j] || c.TexCoord != want[i][j] || c.Normal != 0 {
				t.Errorf("triangle %d corner %d = %+v", i, j, c)
			}
		}
	}
	if obj.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", obj.TriangleCount())
	}
}

func TestParseOBJ_CornerForms(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1 2 3
f 1/1 2/1 3/1
f 1//1 2//1 3//1
f -3/-1/-1 -2/-1/-1 -1/-1/-1
`
	obj, err := ParseOBJ([]byte(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	tris := obj.Objects[0].Triangles
	if len(tris) != 4 {
		t.Fatalf("expected 4 triangles, got %d", len(tris))
	}

	tests := []struct {
		name string
		got  OBJCorner
		want OBJCorner
	}{
		{"position only", tris[0][0], OBJCorner{0, -1, -1}},
		{"position/texcoord", tris[1][1], OBJCorner{1, 0, -1}},
		{"position//normal", tris[2][2], OBJCorner{2, -1, 0}},
		{"relative indices", tris[3][0], OBJCorner{0, 0, 0}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestParseOBJ_Objects(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
o First
g renamed
f 1 2 3
o Second
f 3 2 1
o Empty
`
	obj, err := ParseOBJ([]byte(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(obj.Objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(obj.Objects))
	}
	if obj.Objects[0].Name != "renamed" || obj.Objects[1].Name != "Second" {
		t.Errorf("names = %q, %q", obj.Objects[0].Name, obj.Objects[1].Name)
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrNoFaces},
		{"only vertices", "v 0 0 0\nv 1 1 1\n", ErrNoFaces},
		{"index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 3\n", ErrBadIndex},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", ErrBadIndex},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", ErrShortFace},
		{"bad float", "v 0 zero 0\n", ErrBadStatement},
		{"missing component", "vn 0 1\n", ErrBadStatement},
		{"bad corner", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/2/3/4 2 3\n", ErrBadStatement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ([]byte(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseOBJ() error = %v, want %v", err, tt.want)
			}
		})
	}
}
