package geocoding

import (
	"errors"
	"fmt"

	"googlemaps.github.io/maps"
)

// ProviderType names a zip code geocoder.
type ProviderType string

const (
	// ProviderTypePostgres reads the imported GeoNames zip code table.
	ProviderTypePostgres ProviderType = "postgres"
	// ProviderTypeNominatim queries OpenStreetMap Nominatim.
	ProviderTypeNominatim ProviderType = "nominatim"
	// ProviderTypeGoogle queries the Google Maps Geocoding API.
	ProviderTypeGoogle ProviderType = "google"
)

// ProviderConfig holds what the factory needs to build a provider.
type ProviderConfig struct {
	Type       ProviderType
	APIKey     string        // Google only
	RateLimit  int           // requests per second, Google only
	Repository ZipRepository // Postgres only
}

// NewProvider builds the provider selected by config.
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypePostgres:
		if config.Repository == nil {
			return nil, errors.New("geocoding: a zip code repository is required for the postgres provider")
		}
		return NewPostgresProvider(config.Repository), nil
	case ProviderTypeNominatim:
		return NewNominatimProvider(), nil
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	default:
		return nil, fmt.Errorf("geocoding: unsupported provider type: %s", config.Type)
	}
}

func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("geocoding: API key is required for Google provider")
	}

	opts := []maps.ClientOption{maps.WithAPIKey(config.APIKey)}
	if config.RateLimit > 0 {
		opts = append(opts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("geocoding: failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client), nil
}
