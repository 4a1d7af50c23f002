package model

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/orbitview/pkg/formats"
	"github.com/Faultbox/orbitview/pkg/math"
)

// FromOBJ flattens one OBJ object into a mesh with one vertex per triangle corner.
// Indices are sequential. Attributes the file does not provide are left zero.
func FromOBJ(obj *formats.OBJ, opts BuildOptions) (*Mesh, error) {
	if opts.Object < 0 || opts.Object >= len(obj.Objects) {
		return nil, fmt.Errorf("object %d not found (file has %d)", opts.Object, len(obj.Objects))
	}
	tris := obj.Objects[opts.Object].Triangles

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, len(tris)*3),
		Indices:  make([]uint32, 0, len(tris)*3),
	}
	for _, tri := range tris {
		for _, c := range tri {
			p := obj.Positions[c.Position]
			v := Vertex{Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]}}
			if opts.NormalizePositions {
				v.Position = v.Position.Normalize()
			}
			if c.Normal >= 0 {
				n := obj.Normals[c.Normal]
				v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
			}
			if c.TexCoord >= 0 {
				uv := obj.TexCoords[c.TexCoord]
				v.TexCoord = math.Vec2{X: uv[0], Y: uv[1]}
			}

			mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)))
			mesh.Vertices = append(mesh.Vertices, v)
		}
	}
	return mesh, nil
}

// Plane builds a horizontal quad of the given half extent at height y.
// Texture coordinates run from 0 to repeat across the quad.
func Plane(halfExtent, y, repeat float32) *Mesh {
	h := halfExtent
	return &Mesh{
		Vertices: []Vertex{
			{Position: math.Vec3{X: -h, Y: y, Z: -h}, TexCoord: math.Vec2{X: 0, Y: 0}},
			{Position: math.Vec3{X: -h, Y: y, Z: h}, TexCoord: math.Vec2{X: 0, Y: repeat}},
			{Position: math.Vec3{X: h, Y: y, Z: h}, TexCoord: math.Vec2{X: repeat, Y: repeat}},
			{Position: math.Vec3{X: h, Y: y, Z: -h}, TexCoord: math.Vec2{X: repeat, Y: 0}},
		},
		Indices: []uint32{0, 1, 3, 3, 2, 1},
	}
}

// Offset returns a copy of the mesh with every position translated by delta.
func (m *Mesh) Offset(delta math.Vec3) *Mesh {
	out := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  append([]uint32(nil), m.Indices...),
	}
	for i, v := range m.Vertices {
		v.Position = v.Position.Add(delta)
		out.Vertices[i] = v
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the mesh positions.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	inf := float32(gomath.Inf(1))
	b := Bounds{
		Min: math.Vec3{X: inf, Y: inf, Z: inf},
		Max: math.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
	for _, v := range m.Vertices {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}
