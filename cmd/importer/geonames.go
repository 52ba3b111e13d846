package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"epo-browser/internal/models"
)

// GeoNames postal code dump columns. The file is tab separated with no header.
const (
	colPostalCode = 1
	colPlaceName  = 2
	colState      = 3
	colStateCode  = 4
	colCounty     = 5
	colLatitude   = 9
	colLongitude  = 10
	minColumns    = 11
)

// parseGeoNames reads a GeoNames postal code dump. Repeated postal codes keep
// their first row.
func parseGeoNames(r io.Reader) ([]models.ZipCode, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	seen := make(map[string]struct{})
	var zips []models.ZipCode
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		if len(record) < minColumns {
			return nil, fmt.Errorf("line %d: got %d columns, expected at least %d", line, len(record), minColumns)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[colLatitude]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude %q", line, record[colLatitude])
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[colLongitude]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude %q", line, record[colLongitude])
		}

		code := strings.TrimSpace(record[colPostalCode])
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		zips = append(zips, models.ZipCode{
			PostalCode: code,
			PlaceName:  record[colPlaceName],
			State:      record[colState],
			StateCode:  record[colStateCode],
			County:     record[colCounty],
			Latitude:   lat,
			Longitude:  lon,
		})
	}

	return zips, nil
}
