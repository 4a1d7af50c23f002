package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"testing"

	"golang.org/x/image/bmp"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// twoRows returns a 2x2 image with a red top row and a blue bottom row.
func twoRows() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	return img
}

func TestDecodeFlipsRows(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"png": func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) },
		"bmp": func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf, twoRows()); err != nil {
				t.Fatalf("encode failed: %v", err)
			}

			img, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
				t.Fatalf("unexpected bounds %v", img.Bounds())
			}
			// The first row in memory is the bottom of the picture.
			if got := img.RGBAAt(0, 0); got != blue {
				t.Errorf("first row = %v, want blue", got)
			}
			if got := img.RGBAAt(1, 1); got != red {
				t.Errorf("last row = %v, want red", got)
			}
		})
	}
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 4)), nil); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("bounds = %v, want 8x4", img.Bounds())
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 8))
	src.SetRGBA(5, 5, red)

	out := ToRGBA(src)
	if out.Bounds() != image.Rect(0, 0, 2, 3) {
		t.Fatalf("bounds = %v, want origin at zero", out.Bounds())
	}
	if out.RGBAAt(0, 0) != red {
		t.Errorf("pixel = %v, want red", out.RGBAAt(0, 0))
	}
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(0, 2, blue)

	FlipVertical(img)
	if img.RGBAAt(0, 0) != blue || img.RGBAAt(0, 2) != red {
		t.Errorf("rows not swapped: %v / %v", img.RGBAAt(0, 0), img.RGBAAt(0, 2))
	}
	if img.RGBAAt(0, 1) != (color.RGBA{}) {
		t.Error("middle row should be untouched")
	}
}

func TestSolid(t *testing.T) {
	img := Solid(color.RGBA{255, 255, 255, 255})
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 || img.RGBAAt(0, 0).R != 255 {
		t.Errorf("unexpected solid image %v", img.Pix)
	}
}

type mapLoader map[string][]byte

func (m mapLoader) Load(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, twoRows()); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	l := mapLoader{"grass.png": buf.Bytes(), "bad.png": []byte("xx")}

	img, err := Load(l, "grass.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.RGBAAt(0, 0) != blue {
		t.Errorf("loaded texture not flipped")
	}

	if _, err := Load(l, "missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing error = %v, want fs.ErrNotExist", err)
	}
	if _, err := Load(l, "bad.png"); err == nil {
		t.Error("expected decode error")
	}
}
