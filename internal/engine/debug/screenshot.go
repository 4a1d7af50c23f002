// Package debug provides frame capture for inspecting the scene.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/orbitview/internal/engine/texture"
)

// Screenshotter writes framebuffer contents to timestamped PNG files.
type Screenshotter struct {
	dir    string
	prefix string
	now    func() time.Time

	last  string
	count int
}

// NewScreenshotter writes into dir with names like "<prefix>_2006-01-02_15-04-05.png".
func NewScreenshotter(dir, prefix string) *Screenshotter {
	return &Screenshotter{dir: dir, prefix: prefix, now: time.Now}
}

// Dir returns the output directory.
func (s *Screenshotter) Dir() string { return s.dir }

// SaveFramebuffer encodes bottom-up RGBA pixels as read by glReadPixels.
// The slice is flipped in place.
func (s *Screenshotter) SaveFramebuffer(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	texture.FlipVertical(img)
	return s.SaveImage(img)
}

// SaveImage encodes img and returns the written path.
func (s *Screenshotter) SaveImage(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := s.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// nextFilename appends a counter when several captures land in the same second.
func (s *Screenshotter) nextFilename() string {
	stamp := s.now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s.png", s.prefix, stamp)
	if stamp == s.last {
		s.count++
		name = fmt.Sprintf("%s_%s_%d.png", s.prefix, stamp, s.count)
	} else {
		s.last = stamp
		s.count = 0
	}
	return filepath.Join(s.dir, name)
}
