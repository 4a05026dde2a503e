// Package gpl reads and writes GIMP palette files, which Inkscape also
// imports.
package gpl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/watzon/paintbox/color"
	"github.com/watzon/paintbox/palette"
)

const header = "GIMP Palette"

// Ext is the file extension for GIMP palettes
const Ext = ".gpl"

// ErrMalformed is returned by Read for input that is not a GIMP palette
var ErrMalformed = errors.New("malformed gpl file")

// Entry is a single color line of a palette file
type Entry struct {
	R, G, B uint8
	Label   string
}

// File is a parsed palette file
type File struct {
	Name    string
	Columns int
	Entries []Entry
}

// Write serializes every ramp of p, each resampled to as many colors as the
// palette was seeded with. Channels are truncated to 8 bits.
func Write(w io.Writer, p *palette.Palette) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\nName: %s\nColumns: 0\n#\n", header, p.Name)

	n := len(p.Colors)
	for _, ramp := range p.Ramps() {
		for i, c := range ramp.Resample(n) {
			writeEntry(bw, c, fmt.Sprintf("%s (colour %d)", ramp.Name(), i+1))
		}
	}
	return bw.Flush()
}

func writeEntry(w io.Writer, c color.Color, label string) {
	r, g, b := c.RGB255()
	fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", r, g, b, label)
}

// Export writes p to <dir>/<name>.gpl and returns the file path
func Export(dir string, p *palette.Palette) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create palette directory: %w", err)
	}

	path := filepath.Join(dir, p.Name+Ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create palette file: %w", err)
	}

	if err := Write(f, p); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write palette file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close palette file: %w", err)
	}
	return path, nil
}

// Read parses a GIMP palette. Comment lines and blank lines are skipped.
func Read(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	if strings.TrimSpace(sc.Text()) != header {
		return nil, fmt.Errorf("%w: missing %q header", ErrMalformed, header)
	}

	f := &File{}
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
			continue
		case strings.HasPrefix(text, "Name:"):
			f.Name = strings.TrimSpace(strings.TrimPrefix(text, "Name:"))
			continue
		case strings.HasPrefix(text, "Columns:"):
			cols, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(text, "Columns:")))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad column count", ErrMalformed, line)
			}
			f.Columns = cols
			continue
		}

		e, err := parseEntry(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		f.Entries = append(f.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

func parseEntry(text string) (Entry, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return Entry{}, errors.New("expected R G B [label]")
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(fields[i], 10, 8)
		if err != nil {
			return Entry{}, fmt.Errorf("bad channel %q", fields[i])
		}
		ch[i] = uint8(v)
	}

	// Labels may contain spaces; keep everything after the third field
	label := ""
	if parts := strings.SplitN(text, "\t", 4); len(parts) == 4 {
		label = parts[3]
	} else if len(fields) > 3 {
		label = strings.Join(fields[3:], " ")
	}
	return Entry{R: ch[0], G: ch[1], B: ch[2], Label: label}, nil
}
