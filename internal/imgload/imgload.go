// SPDX-License-Identifier: Unlicense OR MIT

// Package imgload decodes images for display, falling back to a
// generated test pattern.
package imgload

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Size of the default test pattern. It is wider than tall so the
// fit is visible in a portrait window.
const (
	PatternWidth  = 2000
	PatternHeight = 500
)

const patternCell = 50

// Load decodes the image file at path, or returns a test pattern
// if path is empty. It returns the name of the decoded format.
func Load(path string) (image.Image, string, error) {
	if path == "" {
		return Pattern(PatternWidth, PatternHeight), "pattern", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

// Pattern returns a checkerboard shaded from left to right.
func Pattern(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			shade := uint8(64 + 191*x/w)
			c := color.NRGBA{R: shade, G: 0x40, B: 0xff - shade, A: 0xff}
			if (x/patternCell+y/patternCell)%2 == 1 {
				c = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
