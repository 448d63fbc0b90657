package capture

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"gl-torus/internal/graphics"

	"golang.org/x/image/bmp"
)

// ErrEmptyFrame is returned when there is nothing to read back
var ErrEmptyFrame = errors.New("capture: empty frame")

// Frame reads the color buffer of r into an image with the top row first
func Frame(r graphics.FrameReader, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyFrame
	}
	pix := r.ReadPixels(0, 0, width, height)
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("capture: read %d bytes, want %d", len(pix), width*height*4)
	}
	return FromBottomUp(pix, width, height), nil
}

// FromBottomUp converts RGBA8 rows stored bottom row first into an image
func FromBottomUp(pix []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img
}

// FileName returns the capture file name for t
func FileName(t time.Time) string {
	return "torus-" + t.Format("20060102-150405") + ".bmp"
}

// Save writes img as a BMP file at path, creating parent directories
func Save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("capture: encode %s: %w", path, err)
	}
	return f.Close()
}
