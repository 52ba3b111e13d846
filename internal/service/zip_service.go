package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"epo-browser/internal/models"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	// ErrNearestUnavailable means no zip code table is configured.
	ErrNearestUnavailable = errors.New("nearest zip code lookup requires the zip code database")
)

// ZipRepository reads the imported zip code table.
type ZipRepository interface {
	FindZipCode(ctx context.Context, postalCode string) (*models.ZipCode, error)
	FindNearestZipCode(ctx context.Context, lat, lon float64) (*models.ZipCode, error)
}

// ZipService answers zip code lookups for the page and the API.
type ZipService struct {
	geocoder Geocoder
	repo     ZipRepository
}

// NewZipService creates a zip service. repo may be nil when no database is configured.
func NewZipService(geocoder Geocoder, repo ZipRepository) *ZipService {
	return &ZipService{geocoder: geocoder, repo: repo}
}

// Lookup resolves a zip code to its centroid. Imported rows carry the place
// name, state and county; geocoder answers only carry the centroid.
func (s *ZipService) Lookup(ctx context.Context, zip string) (*models.ZipCode, error) {
	if !ValidZip(zip) {
		return nil, ErrInvalidZip
	}

	if s.repo != nil {
		found, err := s.repo.FindZipCode(ctx, zip)
		if err == nil {
			return found, nil
		}
		log.Debug().Err(err).Str("zip", zip).Msg("zip code not in table, falling back to geocoder")
	}

	coords, err := s.geocoder.Geocode(ctx, zip)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode zip code %s: %w", zip, err)
	}

	return &models.ZipCode{PostalCode: zip, Latitude: coords.Latitude, Longitude: coords.Longitude}, nil
}

// Nearest finds the zip code whose centroid is closest to the coordinates.
func (s *ZipService) Nearest(ctx context.Context, lat, lon float64) (*models.ZipCode, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: %w: %f, %f", ErrInvalidCoordinates, lat, lon)
	}
	if s.repo == nil {
		return nil, ErrNearestUnavailable
	}

	zip, err := s.repo.FindNearestZipCode(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest zip code: %w", err)
	}

	return zip, nil
}
