package road

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSpeed accepts "<num>", "<num> mph" and "<num> knots".
func ParseSpeed(s string) (Speed, error) {
	if s == "" {
		return Speed{}, fmt.Errorf("empty speed")
	}
	before, unit, hasUnit := strings.Cut(s, " ")
	if !hasUnit {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Speed{}, err
		}
		return NewSpeedKph(v)
	}
	v, err := strconv.ParseFloat(before, 64)
	if err != nil {
		return Speed{}, err
	}
	switch unit {
	case "mph":
		return NewSpeedMph(v)
	case "knots":
		return NewSpeedKnots(v)
	default:
		return Speed{}, fmt.Errorf("unknown speed unit %q", unit)
	}
}
