// Package healthcomp talks to the HealthComp "find a provider" search endpoint.
package healthcomp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"epo-browser/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 " +
	"(KHTML, like Gecko) Version/17.4.1 Safari/605.1.15"

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Query is what varies between searches; everything else in the payload is fixed.
type Query struct {
	HealthPlan string
	Category   string
	Specialty  string
	Zip        string
	Radius     int
	Origin     models.Coordinates
}

// Payload is the JSON body GetProviders expects. Most fields are sent as
// strings because that is what the search page itself posts.
type Payload struct {
	HealthPlan        string  `json:"healthPlan"`
	Category          string  `json:"category"`
	Specialty         string  `json:"specialty"`
	City              string  `json:"city"`
	Radius            int     `json:"radius"`
	InitLatitude      float64 `json:"initLatitude"`
	InitLongitude     float64 `json:"initLongitude"`
	PCP               string  `json:"pcp"`
	OnlyNewPatients   string  `json:"onlyNewPatients"`
	Language          string  `json:"language"`
	State             string  `json:"state"`
	KeyWords          string  `json:"keyWords"`
	ProviderBreakdown string  `json:"providerBreakdown"`
	GetFullDetails    string  `json:"getFullDetails"`
	Page              string  `json:"page"`
	PageSize          string  `json:"pageSize"`
	PPOTier           string  `json:"ppoTier"`
	SortBy            string  `json:"sortBy"`
}

// NewPayload fills the fixed search options around a query.
func NewPayload(q Query) Payload {
	return Payload{
		HealthPlan:      q.HealthPlan,
		Category:        q.Category,
		Specialty:       q.Specialty,
		City:            q.Zip,
		Radius:          q.Radius,
		InitLatitude:    q.Origin.Latitude,
		InitLongitude:   q.Origin.Longitude,
		PCP:             "False",
		OnlyNewPatients: "false",
		GetFullDetails:  "true",
		Page:            "1",
		PageSize:        "200",
		PPOTier:         "undefined",
		SortBy:          "Distance",
	}
}

// envelope is the ASP.NET page-method wrapper: "d" holds a JSON document as a string.
type envelope struct {
	D *string `json:"d"`
}

type searchResults struct {
	FilteredResults []models.Provider `json:"filteredResults"`
}

// Observer receives the outcome of every upstream request.
type Observer interface {
	ObserveUpstream(upstream string, duration time.Duration, err error)
}

// Client posts provider searches.
type Client struct {
	client   HTTPClient
	endpoint string
	origin   string
	limiter  *rate.Limiter
	observer Observer
}

// NewClient creates a client for endpoint. requestsPerSecond <= 0 disables limiting.
func NewClient(endpoint string, timeout time.Duration, requestsPerSecond float64, observer Observer) (*Client, error) {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, endpoint, rate.NewLimiter(limit, 1), observer)
}

// NewClientWithHTTP allows injecting a custom HTTP client and limiter.
func NewClientWithHTTP(client HTTPClient, endpoint string, limiter *rate.Limiter, observer Observer) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("healthcomp: invalid endpoint %q", endpoint)
	}

	return &Client{
		client:   client,
		endpoint: endpoint,
		origin:   u.Scheme + "://" + u.Host,
		limiter:  limiter,
		observer: observer,
	}, nil
}

// Search posts the payload and returns the providers in the order received.
func (c *Client) Search(ctx context.Context, payload Payload) (providers []models.Provider, err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveUpstream("healthcomp", time.Since(start), err)
		}
	}()

	if err = c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("healthcomp: rate limit exceeded: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("healthcomp: failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("healthcomp: failed to create request: %w", err)
	}
	c.setHeaders(req)

	log.Debug().
		Str("plan", payload.HealthPlan).
		Str("category", payload.Category).
		Str("specialty", payload.Specialty).
		Str("zip", payload.City).
		Int("radius", payload.Radius).
		Msg("searching providers")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("healthcomp: failed to execute search request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("healthcomp: failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("body", truncate(raw, 512)).Msg("provider search failed")
		return nil, fmt.Errorf("healthcomp: search returned status %d", resp.StatusCode)
	}

	return decode(raw)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Origin", c.origin)
	req.Header.Set("Referer", c.origin+"/")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
}

func decode(raw []byte) ([]models.Provider, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("healthcomp: failed to decode response envelope: %w", err)
	}
	if env.D == nil {
		return nil, fmt.Errorf("healthcomp: response envelope has no \"d\" field")
	}

	var results searchResults
	if err := json.Unmarshal([]byte(*env.D), &results); err != nil {
		return nil, fmt.Errorf("healthcomp: failed to decode search results: %w", err)
	}

	return results.FilteredResults, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
