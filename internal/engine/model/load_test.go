package model

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/Faultbox/orbitview/pkg/formats"
)

type fsLoader struct{ fsys fs.FS }

func (l fsLoader) Load(name string) ([]byte, error) { return fs.ReadFile(l.fsys, name) }

func TestLoadOBJ(t *testing.T) {
	l := fsLoader{fstest.MapFS{
		"tri.obj":   {Data: []byte(triangleOBJ)},
		"empty.obj": {Data: []byte("v 0 0 0\n")},
	}}

	mesh, err := LoadOBJ(l, "tri.obj", BuildOptions{NormalizePositions: true})
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(mesh.Vertices) != 3 || len(mesh.Indices) != 3 {
		t.Errorf("got %d vertices / %d indices, want 3/3", len(mesh.Vertices), len(mesh.Indices))
	}
	for i, v := range mesh.Vertices {
		if l := v.Position.Length(); l < 0.9999 || l > 1.0001 {
			t.Errorf("vertex %d length = %f, want 1", i, l)
		}
	}

	if _, err := LoadOBJ(l, "missing.obj", BuildOptions{}); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
	if _, err := LoadOBJ(l, "empty.obj", BuildOptions{}); !errors.Is(err, formats.ErrNoFaces) {
		t.Errorf("faceless file error = %v, want ErrNoFaces", err)
	}
}
