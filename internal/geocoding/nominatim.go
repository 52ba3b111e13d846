package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"epo-browser/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// NominatimBaseURL is the public OpenStreetMap search endpoint.
const NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// nominatimUserAgent identifies the application as the Nominatim usage policy requires.
const nominatimUserAgent = "epo-browser/1.0 (provider search)"

// NominatimProvider resolves zip codes with a structured Nominatim postal code query.
// The public instance allows one request per second.
type NominatimProvider struct {
	client  HTTPClient
	baseURL string
	limiter *rate.Limiter
}

type nominatimResponse struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimProvider creates a provider for the public Nominatim API.
func NewNominatimProvider() *NominatimProvider {
	const timeout = 10
	return NewNominatimProviderWithClient(
		&http.Client{Timeout: timeout * time.Second},
		rate.NewLimiter(rate.Every(time.Second), 1),
	)
}

// NewNominatimProviderWithClient creates a provider with a custom HTTP client and limiter.
func NewNominatimProviderWithClient(client HTTPClient, limiter *rate.Limiter) *NominatimProvider {
	return &NominatimProvider{
		client:  client,
		baseURL: NominatimBaseURL,
		limiter: limiter,
	}
}

func (np *NominatimProvider) Geocode(ctx context.Context, zip string) (*models.Coordinates, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocoding: rate limit exceeded: %w", err)
	}

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("geocoding: failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("postalcode", zip)
	query.Set("country", "us")
	query.Set("format", "json")
	query.Set("limit", "1")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: failed to execute nominatim request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("geocoding: failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("nominatim API error")
		return nil, fmt.Errorf("geocoding: nominatim API returned status %d", resp.StatusCode)
	}

	var results []nominatimResponse
	if err = json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("geocoding: failed to decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrZipNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding: invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding: invalid longitude %q: %w", results[0].Lon, err)
	}

	log.Debug().Str("zip", zip).Float64("lat", lat).Float64("lon", lon).Msg("zip code resolved by nominatim")

	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
