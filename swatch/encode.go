package swatch

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/nfnt/resize"
)

// Fit scales img down, keeping its aspect ratio, so it fits within
// maxWidth x maxHeight. Images that already fit are returned as is.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxWidth <= 0 || maxHeight <= 0 || (width <= maxWidth && height <= maxHeight) {
		return img
	}

	ratio := math.Min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))
	newWidth := uint(float64(width) * ratio)
	newHeight := uint(float64(height) * ratio)

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}

// ToJPEG encodes an image as JPEG
func ToJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToPNG encodes an image as PNG
func ToPNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
