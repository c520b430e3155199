package location

import "context"

// StaticProvider returns a fixed position, for deployments pinned to a
// known farm site or running without a Maps API key.
type StaticProvider struct {
	pos Position
}

func NewStaticProvider(latitude, longitude float64) *StaticProvider {
	return &StaticProvider{pos: Position{Latitude: latitude, Longitude: longitude}}
}

func (s *StaticProvider) CurrentPosition(_ context.Context) (Position, error) {
	return s.pos, nil
}
