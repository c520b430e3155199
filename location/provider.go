package location

import (
	"context"
	"errors"
)

// Typed failure modes a position fetch can end in. Callers map these to a
// status they can report instead of swallowing the error.
var (
	ErrPermissionDenied = errors.New("location: permission denied")
	ErrUnavailable      = errors.New("location: position unavailable")
	ErrTimeout          = errors.New("location: request timed out")
	ErrUnsupported      = errors.New("location: no provider configured")
)

// Position is a detected geographic position in decimal degrees.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// Provider resolves the current position once per call; there is no watch
// or streaming mode.
type Provider interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// FailureStatus names the failure mode of a position fetch error.
func FailureStatus(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUnsupported):
		return "unsupported"
	default:
		return "unavailable"
	}
}
