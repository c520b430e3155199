package location

import (
	"context"
	"errors"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

// GoogleProvider resolves the server's position through the Google Maps
// Geolocation API using IP-based lookup.
type GoogleProvider struct {
	client *maps.Client
}

func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleProvider{client: c}, nil
}

func (g *GoogleProvider) CurrentPosition(ctx context.Context) (Position, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req := &maps.GeolocationRequest{
		ConsiderIP: true,
	}

	resp, err := g.client.Geolocate(ctx, req)
	if err != nil {
		return Position{}, classifyGoogleError(err)
	}

	return Position{
		Latitude:  resp.Location.Lat,
		Longitude: resp.Location.Lng,
		Accuracy:  resp.Accuracy,
	}, nil
}

func classifyGoogleError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "denied") || strings.Contains(msg, "forbidden") || strings.Contains(msg, "keyinvalid") {
		return ErrPermissionDenied
	}
	if strings.Contains(msg, "notfound") {
		return ErrUnavailable
	}
	return ErrUnavailable
}
