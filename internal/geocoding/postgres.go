package geocoding

import (
	"context"
	"errors"
	"fmt"

	"epo-browser/internal/models"
	"epo-browser/internal/repository"

	"github.com/rs/zerolog/log"
)

// ZipRepository looks zip codes up in the imported GeoNames table.
type ZipRepository interface {
	FindZipCode(ctx context.Context, zip string) (*models.ZipCode, error)
}

// PostgresProvider resolves zip codes from the local zip_codes table.
type PostgresProvider struct {
	repo ZipRepository
}

// NewPostgresProvider creates a provider backed by the zip code repository.
func NewPostgresProvider(repo ZipRepository) *PostgresProvider {
	return &PostgresProvider{repo: repo}
}

func (p *PostgresProvider) Geocode(ctx context.Context, zip string) (*models.Coordinates, error) {
	z, err := p.repo.FindZipCode(ctx, zip)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrZipNotFound
		}
		return nil, fmt.Errorf("geocoding: failed to look up zip code: %w", err)
	}

	log.Debug().Str("zip", zip).Str("place", z.PlaceName).Msg("zip code resolved from database")

	coords := z.Coordinates()
	return &coords, nil
}
