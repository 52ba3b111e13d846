package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"net/url"
	"sort"
	"strings"

	"epo-browser/internal/models"
)

// JitterAmount bounds the noise added to providers sharing a location, in degrees.
const JitterAmount = 0.001

const (
	minZoom = 3
	maxZoom = 15
	// pointZoom is used when every plotted provider sits on one spot.
	pointZoom = 13
)

type nameKey struct {
	first, last string
}

type location struct {
	lat, lon float64
}

// BuildTable turns raw search results into table rows: duplicates of the
// same first and last name are dropped (first one wins), rows are ordered by
// distance, display columns are derived and providers sharing exact
// coordinates are spread apart with uniform noise so their dots do not overlap.
func BuildTable(providers []models.Provider, rng *rand.Rand) []models.ProviderRow {
	seen := make(map[nameKey]struct{}, len(providers))
	rows := make([]models.ProviderRow, 0, len(providers))

	for _, p := range providers {
		key := nameKey{p.FirstName, p.LastName}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		rows = append(rows, models.ProviderRow{
			Provider:  p,
			Name:      DisplayName(p),
			SearchURL: SearchURL(p),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Distance < rows[j].Distance
	})

	jitter(rows, rng)

	return rows
}

// DisplayName renders "First Last, Title".
func DisplayName(p models.Provider) string {
	return fmt.Sprintf("%s %s, %s", p.FirstName, p.LastName, p.Title)
}

// SearchURL links to a web search for the provider in their city.
func SearchURL(p models.Provider) string {
	return "https://www.google.com/search?q=" +
		queryEscape(p.FirstName) + "%20" +
		queryEscape(p.LastName) + "%20" +
		queryEscape(p.City) + "%20doctor"
}

// queryEscape escapes s for a query value, spelling spaces as %20.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func jitter(rows []models.ProviderRow, rng *rand.Rand) {
	counts := make(map[location]int, len(rows))
	for _, r := range rows {
		counts[location{r.Latitude, r.Longitude}]++
	}

	for i := range rows {
		if counts[location{rows[i].Latitude, rows[i].Longitude}] < 2 {
			continue
		}
		rows[i].Latitude += uniform(rng, JitterAmount)
		rows[i].Longitude += uniform(rng, JitterAmount)
	}
}

func uniform(rng *rand.Rand, amount float64) float64 {
	return rng.Float64()*2*amount - amount
}

// Names lists the distinct display names in table order.
func Names(rows []models.ProviderRow) []string {
	seen := make(map[string]struct{}, len(rows))
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name)
	}
	return names
}

// Focus keeps the rows whose display name is listed. No names keeps everything.
func Focus(rows []models.ProviderRow, names []string) []models.ProviderRow {
	if len(names) == 0 {
		return rows
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	out := make([]models.ProviderRow, 0, len(names))
	for _, r := range rows {
		if _, ok := wanted[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Select picks rows by index in the order given. Out of range and repeated
// indexes are skipped.
func Select(rows []models.ProviderRow, indexes []int) []models.ProviderRow {
	out := make([]models.ProviderRow, 0, len(indexes))
	picked := make(map[int]struct{}, len(indexes))
	for _, idx := range indexes {
		if idx < 0 || idx >= len(rows) {
			continue
		}
		if _, ok := picked[idx]; ok {
			continue
		}
		picked[idx] = struct{}{}
		out = append(out, rows[idx])
	}
	return out
}

// ComputeView centers the map on the bounding box of the rows. It returns nil
// when there is nothing to plot.
func ComputeView(rows []models.ProviderRow) *models.MapView {
	if len(rows) == 0 {
		return nil
	}

	v := &models.MapView{
		MinLatitude:  rows[0].Latitude,
		MaxLatitude:  rows[0].Latitude,
		MinLongitude: rows[0].Longitude,
		MaxLongitude: rows[0].Longitude,
	}
	for _, r := range rows[1:] {
		v.MinLatitude = math.Min(v.MinLatitude, r.Latitude)
		v.MaxLatitude = math.Max(v.MaxLatitude, r.Latitude)
		v.MinLongitude = math.Min(v.MinLongitude, r.Longitude)
		v.MaxLongitude = math.Max(v.MaxLongitude, r.Longitude)
	}

	v.Latitude = (v.MinLatitude + v.MaxLatitude) / 2
	v.Longitude = (v.MinLongitude + v.MaxLongitude) / 2
	v.Zoom = zoomFor(v.MaxLatitude-v.MinLatitude, v.MaxLongitude-v.MinLongitude)

	return v
}

// zoomFor picks the web-mercator zoom at which the larger span roughly fills the view.
func zoomFor(latSpan, lonSpan float64) float64 {
	span := math.Max(latSpan, lonSpan)
	if span <= 0 {
		return pointZoom
	}

	zoom := math.Floor(math.Log2(360 / span))
	return math.Max(minZoom, math.Min(maxZoom, zoom))
}
