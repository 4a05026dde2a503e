package color

import (
	"image"
	"math"
	"sort"

	"github.com/nfnt/resize"
)

// extractSize bounds the longest image side scanned by ExtractPalette
const extractSize = 256

type rgb8 struct {
	r, g, b uint8
}

func (c rgb8) color() Color {
	return Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}
}

// box is a median cut bucket: the bounds of the pixels it holds
type box struct {
	rMin, rMax, gMin, gMax, bMin, bMax int
	pixels                             []rgb8
}

func (b *box) volume() int {
	return (b.rMax - b.rMin + 1) * (b.gMax - b.gMin + 1) * (b.bMax - b.bMin + 1)
}

// ExtractPalette picks up to numColors representative seed colors from an
// image using median cut. Similar colors are merged so fewer colors may be
// returned for flat images.
func ExtractPalette(img image.Image, numColors int) []Color {
	numColors = max(2, min(numColors, 256))

	bounds := img.Bounds()
	if bounds.Dx() > extractSize || bounds.Dy() > extractSize {
		img = resize.Thumbnail(extractSize, extractSize, img, resize.Bilinear)
		bounds = img.Bounds()
	}

	var pixels []rgb8
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			pixels = append(pixels, rgb8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
	}
	if len(pixels) == 0 {
		return nil
	}

	// Cut twice as many boxes as requested; near duplicates are dropped below
	boxes := []*box{newBox(pixels)}
	for len(boxes) < numColors*2 {
		i := largestBox(boxes)
		if i < 0 {
			break
		}
		a, b := splitBox(boxes[i])
		boxes[i] = a
		boxes = append(boxes, b)
	}

	avg := make([]rgb8, len(boxes))
	for i, b := range boxes {
		avg[i] = averageColor(b.pixels)
	}
	avg = filterSimilarColors(avg, 60)
	if len(avg) > numColors {
		avg = avg[:numColors]
	}

	out := make([]Color, len(avg))
	for i, c := range avg {
		out[i] = c.color()
	}
	return out
}

func newBox(pixels []rgb8) *box {
	b := &box{rMin: 255, gMin: 255, bMin: 255, pixels: pixels}
	for _, c := range pixels {
		b.rMin, b.rMax = min(b.rMin, int(c.r)), max(b.rMax, int(c.r))
		b.gMin, b.gMax = min(b.gMin, int(c.g)), max(b.gMax, int(c.g))
		b.bMin, b.bMax = min(b.bMin, int(c.b)), max(b.bMax, int(c.b))
	}
	return b
}

// largestBox returns the index of the splittable box with the biggest
// volume, or -1 when every box holds a single pixel value
func largestBox(boxes []*box) int {
	best, bestVolume := -1, 1
	for i, b := range boxes {
		if len(b.pixels) < 2 {
			continue
		}
		if v := b.volume(); v > bestVolume {
			best, bestVolume = i, v
		}
	}
	return best
}

func splitBox(b *box) (*box, *box) {
	rRange := b.rMax - b.rMin
	gRange := b.gMax - b.gMin
	bRange := b.bMax - b.bMin

	key := func(c rgb8) uint8 { return c.b }
	switch {
	case rRange >= gRange && rRange >= bRange:
		key = func(c rgb8) uint8 { return c.r }
	case gRange >= bRange:
		key = func(c rgb8) uint8 { return c.g }
	}

	sort.Slice(b.pixels, func(i, j int) bool {
		return key(b.pixels[i]) < key(b.pixels[j])
	})

	median := len(b.pixels) / 2
	return newBox(b.pixels[:median]), newBox(b.pixels[median:])
}

func averageColor(pixels []rgb8) rgb8 {
	if len(pixels) == 0 {
		return rgb8{}
	}
	var rSum, gSum, bSum int
	for _, c := range pixels {
		rSum += int(c.r)
		gSum += int(c.g)
		bSum += int(c.b)
	}
	n := len(pixels)
	return rgb8{uint8(rSum / n), uint8(gSum / n), uint8(bSum / n)}
}

func filterSimilarColors(colors []rgb8, threshold float64) []rgb8 {
	if len(colors) <= 1 {
		return colors
	}
	result := []rgb8{colors[0]}
	for _, c := range colors[1:] {
		distinct := true
		for _, kept := range result {
			if colorDistance(c, kept) < threshold {
				distinct = false
				break
			}
		}
		if distinct {
			result = append(result, c)
		}
	}
	return result
}

func colorDistance(a, b rgb8) float64 {
	dr := float64(a.r) - float64(b.r)
	dg := float64(a.g) - float64(b.g)
	db := float64(a.b) - float64(b.b)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
