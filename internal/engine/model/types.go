// Package model provides the interleaved vertex format and mesh building utilities.
package model

import (
	"unsafe"

	"github.com/Faultbox/orbitview/pkg/math"
)

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
// The layout is tightly packed so a []Vertex can be uploaded to a GL buffer directly.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// Attribute layout of Vertex in bytes.
const (
	VertexSize     = int32(unsafe.Sizeof(Vertex{}))
	PositionOffset = uintptr(unsafe.Offsetof(Vertex{}.Position))
	NormalOffset   = uintptr(unsafe.Offsetof(Vertex{}.Normal))
	TexCoordOffset = uintptr(unsafe.Offsetof(Vertex{}.TexCoord))
)

// Mesh holds triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// BuildOptions contains options for mesh building.
type BuildOptions struct {
	// NormalizePositions projects every position onto the unit sphere.
	NormalizePositions bool
	// Object selects which OBJ object to build. Defaults to the first.
	Object int
}
