package texture

import (
	"fmt"
	"image"
)

// Loader reads raw asset bytes by name.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Load reads and decodes a texture image.
func Load(l Loader, name string) (*image.RGBA, error) {
	data, err := l.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading texture %s: %w", name, err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", name, err)
	}
	return img, nil
}
