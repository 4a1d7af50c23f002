package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrNoFaces      = errors.New("obj contains no faces")
	ErrBadIndex     = errors.New("obj index out of range")
	ErrShortFace    = errors.New("obj face needs at least 3 corners")
	ErrBadStatement = errors.New("malformed obj statement")
)

// OBJCorner references one face corner. Indices are zero-based;
// -1 means the attribute is absent.
type OBJCorner struct {
	Position int
	TexCoord int
	Normal   int
}

// OBJTriangle is a single triangulated face.
type OBJTriangle [3]OBJCorner

// OBJObject is a named group of triangles ("o" or "g" statement).
type OBJObject struct {
	Name      string
	Triangles []OBJTriangle
}

// OBJ holds the attribute pools and triangulated faces of a Wavefront OBJ file.
type OBJ struct {
	Positions [][3]float32
	Normals   [][3]float32
	TexCoords [][2]float32
	Objects   []OBJObject
}

// TriangleCount returns the number of triangles over all objects.
func (o *OBJ) TriangleCount() int {
	n := 0
	for _, obj := range o.Objects {
		n += len(obj.Triangles)
	}
	return n
}

// ParseOBJ parses Wavefront OBJ geometry. Polygons are fan-triangulated.
// Material and smoothing statements are ignored.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			var v [3]float32
			if err = parseFloats(fields[1:], v[:]); err == nil {
				obj.Positions = append(obj.Positions, v)
			}
		case "vn":
			var n [3]float32
			if err = parseFloats(fields[1:], n[:]); err == nil {
				obj.Normals = append(obj.Normals, n)
			}
		case "vt":
			// A third (w) component is allowed and dropped.
			var uv [2]float32
			if err = parseFloats(fields[1:], uv[:]); err == nil {
				obj.TexCoords = append(obj.TexCoords, uv)
			}
		case "o", "g":
			name := ""
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
			obj.startObject(name)
		case "f":
			err = obj.parseFace(fields[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Drop groups that never received faces.
	objects := obj.Objects[:0]
	for _, o := range obj.Objects {
		if len(o.Triangles) > 0 {
			objects = append(objects, o)
		}
	}
	obj.Objects = objects

	if len(obj.Objects) == 0 {
		return nil, ErrNoFaces
	}
	return obj, nil
}

func (o *OBJ) startObject(name string) {
	// A group statement directly after an empty object renames it.
	if n := len(o.Objects); n > 0 && len(o.Objects[n-1].Triangles) == 0 {
		o.Objects[n-1].Name = name
		return
	}
	o.Objects = append(o.Objects, OBJObject{Name: name})
}

func (o *OBJ) parseFace(fields []string) error {
	if len(fields) < 3 {
		return ErrShortFace
	}

	corners := make([]OBJCorner, len(fields))
	for i, f := range fields {
		c, err := o.parseCorner(f)
		if err != nil {
			return err
		}
		corners[i] = c
	}

	if len(o.Objects) == 0 {
		o.startObject("")
	}
	cur := &o.Objects[len(o.Objects)-1]
	for i := 1; i+1 < len(corners); i++ {
		cur.Triangles = append(cur.Triangles, OBJTriangle{corners[0], corners[i], corners[i+1]})
	}
	return nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn".
func (o *OBJ) parseCorner(s string) (OBJCorner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 || parts[0] == "" {
		return OBJCorner{}, fmt.Errorf("%w: face corner %q", ErrBadStatement, s)
	}

	c := OBJCorner{Position: -1, TexCoord: -1, Normal: -1}
	var err error
	if c.Position, err = resolveIndex(parts[0], len(o.Positions)); err != nil {
		return OBJCorner{}, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.TexCoord, err = resolveIndex(parts[1], len(o.TexCoords)); err != nil {
			return OBJCorner{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.Normal, err = resolveIndex(parts[2], len(o.Normals)); err != nil {
			return OBJCorner{}, err
		}
	}
	return c, nil
}

// resolveIndex converts a one-based (or negative, relative) OBJ index to zero-based.
func resolveIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrBadStatement, s)
	}
	switch {
	case idx > 0 && idx <= count:
		return idx - 1, nil
	case idx < 0 && -idx <= count:
		return count + idx, nil
	}
	return 0, fmt.Errorf("%w: %d of %d", ErrBadIndex, idx, count)
}

func parseFloats(fields []string, dst []float32) error {
	if len(fields) < len(dst) {
		return fmt.Errorf("%w: want %d values, got %d", ErrBadStatement, len(dst), len(fields))
	}
	for i := range dst {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadStatement, err)
		}
		dst[i] = float32(f)
	}
	return nil
}
