package geocoding

import (
	"context"
	"fmt"

	"epo-browser/internal/models"

	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"
)

// GoogleAPIClient is the part of the Google Maps client the provider calls.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleProvider resolves zip codes with the Google Maps Geocoding API.
type GoogleProvider struct {
	client GoogleAPIClient
}

// NewGoogleProvider wraps a Google Maps client.
func NewGoogleProvider(client GoogleAPIClient) *GoogleProvider {
	return &GoogleProvider{client: client}
}

// Geocode restricts the lookup to US postal codes with component filtering.
func (gp *GoogleProvider) Geocode(ctx context.Context, zip string) (*models.Coordinates, error) {
	req := &maps.GeocodingRequest{
		Components: map[maps.Component]string{
			maps.ComponentPostalCode: zip,
			maps.ComponentCountry:    "US",
		},
	}

	results, err := gp.client.Geocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: failed to geocode zip code: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrZipNotFound
	}

	loc := results[0].Geometry.Location
	log.Debug().Str("zip", zip).Float64("lat", loc.Lat).Float64("lon", loc.Lng).Msg("zip code resolved by google")

	return &models.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
