package utils

import (
	"fmt"
	"strconv"
)

// Coordinate boundary validation. Manual coordinate entry arrives as free
// text; it is parsed and range-checked here, and rejected (not clamped)
// when out of range. The canonical stored form stays a string.

func ParseLatitude(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("latitude %q is not numeric", s)
	}
	if v < -90 || v > 90 {
		return 0, fmt.Errorf("latitude %v out of range [-90, 90]", v)
	}
	return v, nil
}

func ParseLongitude(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("longitude %q is not numeric", s)
	}
	if v < -180 || v > 180 {
		return 0, fmt.Errorf("longitude %v out of range [-180, 180]", v)
	}
	return v, nil
}

// FormatCoordinate renders a decimal-degree value in its shortest exact form.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
