package repository

import (
	"context"
	"errors"
	"fmt"

	"epo-browser/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when no zip code matches a lookup.
var ErrNotFound = errors.New("repository: zip code not found")

// nearestRadiusMeters bounds the nearest-zip search.
const nearestRadiusMeters = 50000.0

// Schema creates the zip code table and its indexes.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;
	CREATE TABLE IF NOT EXISTS zip_codes (
		postal_code VARCHAR(10) PRIMARY KEY,
		place_name VARCHAR(255),
		state VARCHAR(255),
		state_code VARCHAR(10),
		county VARCHAR(255),
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		geom GEOGRAPHY(POINT, 4326) GENERATED ALWAYS AS (
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography
		) STORED
	);
	CREATE INDEX IF NOT EXISTS zip_codes_geom_idx ON zip_codes USING GIST (geom);
`

// DB is the subset of pgxpool.Pool and pgx.Conn the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository implements zip code storage on PostgreSQL
type Repository struct {
	db DB
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the zip code table if it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// FindZipCode returns the centroid of a postal code.
func (r *Repository) FindZipCode(ctx context.Context, zip string) (*models.ZipCode, error) {
	sql := `
		SELECT postal_code, place_name, state, state_code, county, latitude, longitude
		FROM zip_codes
		WHERE postal_code = $1
	`

	var z models.ZipCode
	err := r.db.QueryRow(ctx, sql, zip).Scan(
		&z.PostalCode,
		&z.PlaceName,
		&z.State,
		&z.StateCode,
		&z.County,
		&z.Latitude,
		&z.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to query zip code: %w", err)
	}

	return &z, nil
}

// FindNearestZipCode performs a spatial query for the zip centroid closest to the coordinates
func (r *Repository) FindNearestZipCode(ctx context.Context, lat, lon float64) (*models.ZipCode, error) {
	sql := `
		SELECT postal_code, place_name, state, state_code, county, latitude, longitude
		FROM zip_codes
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var z models.ZipCode
	err := r.db.QueryRow(ctx, sql, lat, lon, nearestRadiusMeters).Scan(
		&z.PostalCode,
		&z.PlaceName,
		&z.State,
		&z.StateCode,
		&z.County,
		&z.Latitude,
		&z.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	return &z, nil
}

// CountZipCodes returns the number of imported zip codes.
func (r *Repository) CountZipCodes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM zip_codes").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count zip codes: %w", err)
	}
	return count, nil
}

// zipColumns are the columns written by COPY; geom is generated.
var zipColumns = []string{"postal_code", "place_name", "state", "state_code", "county", "latitude", "longitude"}

type copier interface {
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
}

func copyZipCodes(ctx context.Context, db copier, zips []models.ZipCode) (int64, error) {
	return db.CopyFrom(
		ctx,
		pgx.Identifier{"zip_codes"},
		zipColumns,
		pgx.CopyFromSlice(len(zips), func(i int) ([]any, error) {
			z := zips[i]
			return []any{z.PostalCode, z.PlaceName, z.State, z.StateCode, z.County, z.Latitude, z.Longitude}, nil
		}),
	)
}

// InsertZipCodes bulk loads zip codes with COPY.
func (r *Repository) InsertZipCodes(ctx context.Context, zips []models.ZipCode) (int64, error) {
	n, err := copyZipCodes(ctx, r.db, zips)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy zip codes: %w", err)
	}
	return n, nil
}

// ReplaceZipCodes swaps the table contents for zips in one transaction, so
// readers see either the old rows or the new ones.
func (r *Repository) ReplaceZipCodes(ctx context.Context, zips []models.ZipCode) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, "TRUNCATE zip_codes"); err != nil {
		return 0, fmt.Errorf("repository: failed to clear zip codes: %w", err)
	}

	n, err := copyZipCodes(ctx, tx, zips)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy zip codes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit zip codes: %w", err)
	}
	return n, nil
}
