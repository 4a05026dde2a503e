package swatch

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/watzon/paintbox/color"
	"github.com/watzon/paintbox/palette"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	baseFontSize = 28
	minFontSize  = 12
	labelSize    = 18
	labelWidth   = 260
)

// SheetOptions configures a palette sheet
type SheetOptions struct {
	// Width of the color area, excluding the ramp label column
	Width     int
	RowHeight int

	ShowHexCodes bool
	ShowNames    bool
	ShowLabels   bool

	// Matcher names each bar when ShowNames is set
	Matcher *color.ColorMatcher
}

// DefaultSheetOptions returns options for a labelled 1400px wide sheet
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{
		Width:        1400,
		RowHeight:    160,
		ShowHexCodes: true,
		ShowNames:    true,
		ShowLabels:   true,
	}
}

type faces struct {
	regular font.Face
	bold    font.Face
	label   font.Face
	size    float64
}

func loadFaces(size float64) (*faces, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &faces{
		regular: truetype.NewFace(regular, &truetype.Options{Size: size}),
		bold:    truetype.NewFace(bold, &truetype.Options{Size: size}),
		label:   truetype.NewFace(regular, &truetype.Options{Size: labelSize}),
		size:    size,
	}, nil
}

// Sheet draws every ramp of the palette as a row of bars, one bar per seed
// color, with the hex code and closest color name printed on each bar.
func Sheet(p *palette.Palette, opts SheetOptions) (image.Image, error) {
	if p == nil {
		return nil, errors.New("no palette provided")
	}
	numColors := len(p.Colors)
	if numColors == 0 {
		return nil, fmt.Errorf("no colors provided")
	}
	if opts.Width <= 0 || opts.RowHeight <= 0 {
		return nil, fmt.Errorf("invalid sheet size %dx%d", opts.Width, opts.RowHeight)
	}

	// Shrink the font as bars get narrower
	fontSize := baseFontSize
	if numColors > 5 {
		fontSize = max(baseFontSize*5/numColors, minFontSize)
	}
	ff, err := loadFaces(float64(fontSize))
	if err != nil {
		return nil, err
	}

	offsetX := 0.0
	if opts.ShowLabels {
		offsetX = labelWidth
	}

	ramps := p.Ramps()
	dc := gg.NewContext(opts.Width+int(offsetX), opts.RowHeight*len(ramps))
	dc.SetColor(stdcolor.White)
	dc.Clear()

	barWidth := float64(opts.Width) / float64(numColors)
	barHeight := float64(opts.RowHeight)

	for row, ramp := range ramps {
		y := float64(row) * barHeight

		if opts.ShowLabels {
			dc.SetColor(stdcolor.Black)
			dc.SetFontFace(ff.label)
			dc.DrawStringAnchored(ramp.Name(), 12, y+barHeight/2, 0, 0.5)
		}

		for i, c := range ramp.Resample(numColors) {
			x := offsetX + float64(i)*barWidth
			drawBar(dc, ff, c, x, y, barWidth, barHeight, opts)
		}
	}

	return dc.Image(), nil
}

func drawBar(dc *gg.Context, ff *faces, c color.Color, x, y, w, h float64, opts SheetOptions) {
	dc.SetColor(c.ToRGBA())
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	dc.SetColor(contrastColor(c))
	hexY := y + h*0.4
	lineHeight := ff.size * 1.2

	if opts.ShowHexCodes {
		dc.SetFontFace(ff.bold)
		hex := strings.TrimPrefix(c.Hex(), "#")
		dc.DrawStringAnchored(hex, x+w/2, hexY, 0.5, 0)
	}

	if opts.ShowNames && opts.Matcher != nil {
		dc.SetFontFace(ff.regular)
		textY := hexY + ff.size*1.4
		for _, line := range wrapText(dc, opts.Matcher.Name(c), w*0.9) {
			if textY > y+h {
				break
			}
			dc.DrawStringAnchored(line, x+w/2, textY, 0.5, 0)
			textY += lineHeight
		}
	}
}

// contrastColor returns black or white, whichever reads better on c
func contrastColor(c color.Color) stdcolor.Color {
	luminance := 0.2126*math.Pow(c.R, 2.2) + 0.7152*math.Pow(c.G, 2.2) + 0.0722*math.Pow(c.B, 2.2)
	if luminance > 0.5 {
		return stdcolor.Black
	}
	return stdcolor.White
}

// wrapText breaks text on word boundaries so each line fits maxWidth
func wrapText(dc *gg.Context, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	spaceWidth, _ := dc.MeasureString(" ")
	spaceWidth *= 0.8

	var lines []string
	current := words[0]
	currentWidth, _ := dc.MeasureString(current)
	for _, word := range words[1:] {
		wordWidth, _ := dc.MeasureString(word)
		if currentWidth+spaceWidth+wordWidth <= maxWidth {
			current += " " + word
			currentWidth += spaceWidth + wordWidth
			continue
		}
		lines = append(lines, current)
		current, currentWidth = word, wordWidth
	}
	return append(lines, current)
}
