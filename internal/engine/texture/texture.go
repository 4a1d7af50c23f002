// Package texture decodes texture images into the RGBA layout OpenGL uploads.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// Wrap selects how texture coordinates outside [0, 1] are handled.
type Wrap int

const (
	WrapRepeat Wrap = iota
	WrapMirroredRepeat
	WrapClampToEdge
)

// Decode decodes PNG, JPEG or BMP data into a bottom-up RGBA image, the row order
// glTexImage2D expects.
func Decode(data []byte) (*image.RGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding texture: %w", err)
	}
	rgba := ToRGBA(img)
	if rgba.Bounds().Empty() {
		return nil, fmt.Errorf("decoding texture: empty %s image", format)
	}
	FlipVertical(rgba)
	return rgba, nil
}

// ToRGBA converts any image to *image.RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical reverses the row order of img in place.
func FlipVertical(img *image.RGBA) {
	b := img.Bounds()
	rowSize := b.Dx() * 4
	tmp := make([]byte, rowSize)
	for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pix[top*img.Stride : top*img.Stride+rowSize]
		z := img.Pix[bottom*img.Stride : bottom*img.Stride+rowSize]
		copy(tmp, a)
		copy(a, z)
		copy(z, tmp)
	}
}

// Solid returns a 1x1 image of a single colour, used when a texture fails to load.
func Solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return img
}
