// Package shaders provides the built-in GLSL sources and resolves file overrides.
package shaders

import (
	_ "embed"
	"fmt"
)

// MeshVertex is the vertex shader shared by every mesh.
//
//go:embed mesh.vert
var MeshVertex string

// MeshFragment is the lit, textured fragment shader for the animated body and sphere.
//
//go:embed mesh.frag
var MeshFragment string

// GroundFragment is the unlit fragment shader for the ground plane.
//
//go:embed ground.frag
var GroundFragment string

// Loader reads shader files by name.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Resolve returns the source stored at path, or builtin when path is empty.
// When the file cannot be read, builtin is returned together with the error
// so the caller can report it and keep running.
func Resolve(l Loader, path, builtin string) (string, error) {
	if path == "" {
		return builtin, nil
	}
	data, err := l.Load(path)
	if err != nil {
		return builtin, fmt.Errorf("shader %s: %w", path, err)
	}
	if len(data) == 0 {
		return builtin, fmt.Errorf("shader %s: empty file", path)
	}
	return string(data), nil
}
