package color

import (
	"errors"
	"fmt"
)

// ErrInvalidStop is returned for a stop outside {0,1,2,3}
var ErrInvalidStop = errors.New("invalid stop")

// Stop selects one of four fixed pulls applied to a channel value
type Stop int

const (
	// DarkPlus pulls two thirds of the way toward 0
	DarkPlus Stop = iota
	// Dark pulls one third of the way toward 0
	Dark
	// Light pulls one third of the way toward 1
	Light
	// LightPlus pulls two thirds of the way toward 1
	LightPlus
)

// Stops lists every valid stop in ascending order
var Stops = []Stop{DarkPlus, Dark, Light, LightPlus}

// Valid reports whether s is one of the four known stops
func (s Stop) Valid() bool {
	return s >= DarkPlus && s <= LightPlus
}

// Adjust moves v toward 0 or 1 according to the stop. For v = 0.5 the
// results are 0.1667, 0.3333, 0.6667 and 0.8333 for stops 0 through 3.
func Adjust(v float64, s Stop) (float64, error) {
	var out float64
	switch s {
	case DarkPlus:
		x := v / 3
		out = v - 2*x
	case Dark:
		x := v / 3
		out = v - x
	case Light:
		x := (1 - v) / 3
		out = v + x
	case LightPlus:
		x := (1 - v) / 3
		out = v + 2*x
	default:
		return 0, fmt.Errorf("%w: %d (expected 0-3)", ErrInvalidStop, int(s))
	}
	return clampUnit(out), nil
}
