package main

import (
	"strings"
	"testing"

	"epo-browser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeoNames(t *testing.T) {
	t.Run("valid dump", func(t *testing.T) {
		data := strings.Join([]string{
			"US\t90254\tHermosa Beach\tCalifornia\tCA\tLos Angeles\t037\t\t\t33.8648\t-118.3963\t4",
			"US\t02134\tAllston\tMassachusetts\tMA\tSuffolk\t025\t\t\t42.3539\t-71.1337\t4",
			"US\t90254\tDuplicate\tCalifornia\tCA\tLos Angeles\t037\t\t\t0\t0\t4",
		}, "\n")

		zips, err := parseGeoNames(strings.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, []models.ZipCode{
			{PostalCode: "90254", PlaceName: "Hermosa Beach", State: "California", StateCode: "CA", County: "Los Angeles", Latitude: 33.8648, Longitude: -118.3963},
			{PostalCode: "02134", PlaceName: "Allston", State: "Massachusetts", StateCode: "MA", County: "Suffolk", Latitude: 42.3539, Longitude: -71.1337},
		}, zips)
	})

	t.Run("quotes in place names", func(t *testing.T) {
		zips, err := parseGeoNames(strings.NewReader("US\t00601\tAdjuntas \"Pueblo\"\tPuerto Rico\tPR\tAdjuntas\t001\t\t\t18.1801\t-66.7547\t1"))

		require.NoError(t, err)
		require.Len(t, zips, 1)
		assert.Equal(t, `Adjuntas "Pueblo"`, zips[0].PlaceName)
	})

	t.Run("short line", func(t *testing.T) {
		_, err := parseGeoNames(strings.NewReader("US\t90254\tHermosa Beach"))

		assert.ErrorContains(t, err, "line 1")
	})

	t.Run("bad latitude", func(t *testing.T) {
		_, err := parseGeoNames(strings.NewReader("US\t90254\tHermosa Beach\tCalifornia\tCA\tLos Angeles\t037\t\t\tnorth\t-118.3963\t4"))

		assert.ErrorContains(t, err, "invalid latitude")
	})

	t.Run("empty file", func(t *testing.T) {
		zips, err := parseGeoNames(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, zips)
	})
}
