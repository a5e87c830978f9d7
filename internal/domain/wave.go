package domain

import (
	"fmt"
	"strings"
)

// Seismic wave type of a velocity measurement.
type WaveType string

const (
	WaveP WaveType = "VP"
	WaveS WaveType = "VS"
)

// ColumnName returns the velocity column label used in grid output headers.
func (w WaveType) ColumnName() string {
	if w == WaveS {
		return "Vs"
	}
	return "Vp"
}

// ParseWaveType accepts "VP" or "VS" in any case.
func ParseWaveType(s string) (WaveType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VP":
		return WaveP, nil
	case "VS":
		return WaveS, nil
	}
	return "", fmt.Errorf("parse wave type: %q is not VP or VS", s)
}
