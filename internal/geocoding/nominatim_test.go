package geocoding_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"epo-browser/internal/geocoding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// mockHTTPClient is a mock implementation of HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func respond(status int, body string) func(*http.Request) (*http.Response, error) {
	return func(_ *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewBufferString(body)),
		}, nil
	}
}

func TestNominatimProvider_Geocode(t *testing.T) {
	ctx := t.Context()
	unlimited := rate.NewLimiter(rate.Inf, 0)

	t.Run("successful geocoding", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Contains(t, req.URL.String(), "nominatim.openstreetmap.org")
				assert.Equal(t, "90254", req.URL.Query().Get("postalcode"))
				assert.Equal(t, "us", req.URL.Query().Get("country"))
				assert.Equal(t, "json", req.URL.Query().Get("format"))
				assert.NotEmpty(t, req.Header.Get("User-Agent"))
				return respond(http.StatusOK, `[{"lat":"33.8600693","lon":"-118.3987842"}]`)(req)
			},
		}

		coords, err := geocoding.NewNominatimProviderWithClient(client, unlimited).Geocode(ctx, "90254")

		require.NoError(t, err)
		assert.InEpsilon(t, 33.8600693, coords.Latitude, 0.0001)
		assert.InEpsilon(t, -118.3987842, coords.Longitude, 0.0001)
	})

	t.Run("unknown zip", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: respond(http.StatusOK, `[]`)}

		coords, err := geocoding.NewNominatimProviderWithClient(client, unlimited).Geocode(ctx, "00000")

		require.Nil(t, coords)
		assert.ErrorIs(t, err, geocoding.ErrZipNotFound)
	})

	t.Run("HTTP error status", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: respond(http.StatusTooManyRequests, `{"error":"Rate limit exceeded"}`)}

		_, err := geocoding.NewNominatimProviderWithClient(client, unlimited).Geocode(ctx, "90254")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nominatim API returned status 429")
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: respond(http.StatusOK, `invalid json`)}

		_, err := geocoding.NewNominatimProviderWithClient(client, unlimited).Geocode(ctx, "90254")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode nominatim response")
	})

	t.Run("invalid latitude", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: respond(http.StatusOK, `[{"lat":"north","lon":"-118.39"}]`)}

		_, err := geocoding.NewNominatimProviderWithClient(client, unlimited).Geocode(ctx, "90254")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid latitude")
	})

	t.Run("HTTP client returns error", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) { return nil, assert.AnError },
		}

		_, err := geocoding.NewNominatimProviderWithClient(client, unlimited).Geocode(ctx, "90254")

		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("rate limit blocks cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				t.Fatal("HTTP client should not be called when rate limit blocks")
				return nil, nil
			},
		}
		limiter := rate.NewLimiter(rate.Every(time.Second), 1)

		_, err := geocoding.NewNominatimProviderWithClient(client, limiter).Geocode(cancelled, "90254")

		require.Error(t, err)
		assert.ErrorContains(t, err, "rate limit exceeded")
	})
}
