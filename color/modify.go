package color

import (
	"errors"
	"fmt"
)

// ErrInvalidChannel is returned for a channel other than Brightness or
// Saturation
var ErrInvalidChannel = errors.New("invalid channel")

// Channel selects which HSV channel a modification targets
type Channel int

const (
	// Brightness targets the HSV value channel
	Brightness Channel = iota + 1
	// Saturation targets the HSV saturation channel
	Saturation
)

func (c Channel) String() string {
	switch c {
	case Brightness:
		return "brightness"
	case Saturation:
		return "saturation"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ModifyHSV applies Adjust to the selected channel of every color. Hue and
// the other channel are copied untouched.
func ModifyHSV(colors []HSV, ch Channel, s Stop) ([]HSV, error) {
	if ch != Brightness && ch != Saturation {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChannel, ch)
	}
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d (expected 0-3)", ErrInvalidStop, int(s))
	}

	out := make([]HSV, len(colors))
	for i, c := range colors {
		var err error
		switch ch {
		case Brightness:
			c.V, err = Adjust(c.V, s)
		case Saturation:
			c.S, err = Adjust(c.S, s)
		}
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// Modify converts colors to HSV, adjusts one channel by the stop, converts
// back and builds a ramp from the result.
func Modify(name string, colors []Color, ch Channel, s Stop) (*Ramp, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("failed to modify %q: %w", name, ErrEmptyColorList)
	}

	hsv := make([]HSV, len(colors))
	for i, c := range colors {
		hsv[i] = c.HSV()
	}

	adjusted, err := ModifyHSV(hsv, ch, s)
	if err != nil {
		return nil, fmt.Errorf("failed to modify %q: %w", name, err)
	}

	rgb := make([]Color, len(adjusted))
	for i, c := range adjusted {
		rgb[i] = c.RGB()
	}
	return NewRamp(name, rgb)
}
