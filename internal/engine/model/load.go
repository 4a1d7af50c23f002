package model

import (
	"fmt"

	"github.com/Faultbox/orbitview/pkg/formats"
)

// Loader reads raw asset bytes by name.
type Loader interface {
	Load(name string) ([]byte, error)
}

// LoadOBJ reads and parses an OBJ file, then builds a mesh from it.
func LoadOBJ(l Loader, name string, opts BuildOptions) (*Mesh, error) {
	data, err := l.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading mesh %s: %w", name, err)
	}
	obj, err := formats.ParseOBJ(data)
	if err != nil {
		return nil, fmt.Errorf("parsing mesh %s: %w", name, err)
	}
	mesh, err := FromOBJ(obj, opts)
	if err != nil {
		return nil, fmt.Errorf("building mesh %s: %w", name, err)
	}
	return mesh, nil
}
