// Package geocoding resolves US zip codes to the coordinates of their centroid.
package geocoding

import (
	"context"
	"errors"
	"net/http"

	"epo-browser/internal/models"
)

// ErrZipNotFound is returned when a provider knows nothing about a zip code.
var ErrZipNotFound = errors.New("geocoding: zip code not found")

// Provider resolves a 5 digit zip code to coordinates.
type Provider interface {
	Geocode(ctx context.Context, zip string) (*models.Coordinates, error)
}

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
