package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"epo-browser/internal/healthcomp"
	"epo-browser/internal/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"
)

// Radius bounds in miles, matching the sidebar slider.
const (
	MinRadius = 1
	MaxRadius = 50
)

// Messages shown on the page.
const (
	NoProvidersMessage = "No providers found"
	InvalidZipMessage  = "Please enter a valid 5 digit zip code"
)

// Health plans the search endpoint accepts.
var HealthPlans = []string{"EPO", "PPO"}

var (
	ErrInvalidZip       = errors.New("zip code must be exactly 5 digits")
	ErrInvalidRadius    = fmt.Errorf("radius must be between %d and %d miles", MinRadius, MaxRadius)
	ErrInvalidPlan      = errors.New("health plan must be EPO or PPO")
	ErrUnknownCategory  = errors.New("unknown medical category")
	ErrUnknownSpecialty = errors.New("unknown specialty for category")
	ErrUpstream         = errors.New("provider search failed")
)

// Catalog is the category/specialty lookup the search validates against.
type Catalog interface {
	HasCategory(category string) bool
	Lookup(category, specialty string) (models.Specialty, bool)
}

// Geocoder resolves zip codes.
type Geocoder interface {
	Geocode(ctx context.Context, zip string) (*models.Coordinates, error)
}

// ProviderSearcher runs the upstream provider search.
type ProviderSearcher interface {
	Search(ctx context.Context, payload healthcomp.Payload) ([]models.Provider, error)
}

// CacheObserver is told whether a search was served from memory.
type CacheObserver interface {
	ObserveCache(hit bool)
}

// SearchOptions tunes memoization and randomness.
type SearchOptions struct {
	CacheSize int
	CacheTTL  time.Duration
	// Rand seeds the coordinate jitter. Nil uses a randomly seeded source.
	Rand     *rand.Rand
	Observer CacheObserver
}

// SearchService builds provider tables from sidebar state.
type SearchService struct {
	catalog  Catalog
	geocoder Geocoder
	searcher ProviderSearcher
	observer CacheObserver

	cache *expirable.LRU[string, []models.ProviderRow]

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSearchService creates a new search service
func NewSearchService(catalog Catalog, geocoder Geocoder, searcher ProviderSearcher, opts SearchOptions) *SearchService {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var cache *expirable.LRU[string, []models.ProviderRow]
	if opts.CacheSize > 0 {
		cache = expirable.NewLRU[string, []models.ProviderRow](opts.CacheSize, nil, opts.CacheTTL)
	}

	return &SearchService{
		catalog:  catalog,
		geocoder: geocoder,
		searcher: searcher,
		observer: opts.Observer,
		cache:    cache,
		rng:      rng,
	}
}

// Search geocodes the zip code, fetches matching providers and shapes the
// table, focus list, selection and map view.
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	origin, err := s.geocoder.Geocode(ctx, req.Zip)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode zip code %s: %w", req.Zip, err)
	}

	payload := healthcomp.NewPayload(healthcomp.Query{
		HealthPlan: req.HealthPlan,
		Category:   req.Category,
		Specialty:  req.Specialty,
		Zip:        req.Zip,
		Radius:     req.Radius,
		Origin:     *origin,
	})

	table, err := s.table(ctx, payload)
	if err != nil {
		return nil, err
	}

	result := &models.SearchResult{
		Origin:    *origin,
		Names:     []string{},
		Providers: []models.ProviderRow{},
		Selected:  []models.ProviderRow{},
	}
	if len(table) == 0 {
		result.Message = NoProvidersMessage
		return result, nil
	}

	result.Names = Names(table)
	result.Providers = Focus(table, req.Focus)
	result.Selected = Select(result.Providers, req.Selected)

	plotted := result.Providers
	if len(result.Selected) > 0 {
		plotted = result.Selected
	}
	result.View = ComputeView(plotted)

	return result, nil
}

func (s *SearchService) validate(req models.SearchRequest) error {
	if !ValidZip(req.Zip) {
		return ErrInvalidZip
	}
	if req.Radius < MinRadius || req.Radius > MaxRadius {
		return ErrInvalidRadius
	}
	if !validPlan(req.HealthPlan) {
		return ErrInvalidPlan
	}
	if !s.catalog.HasCategory(req.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, req.Category)
	}
	if _, ok := s.catalog.Lookup(req.Category, req.Specialty); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSpecialty, req.Specialty)
	}
	return nil
}

// table returns the shaped rows for a payload, reusing a memoized copy when
// the same search ran recently so repeated renders keep their jitter.
func (s *SearchService) table(ctx context.Context, payload healthcomp.Payload) ([]models.ProviderRow, error) {
	key := cacheKey(payload)

	if s.cache != nil {
		if rows, ok := s.cache.Get(key); ok {
			s.observeCache(true)
			return rows, nil
		}
		s.observeCache(false)
	}

	providers, err := s.searcher.Search(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	s.mu.Lock()
	rows := BuildTable(providers, s.rng)
	s.mu.Unlock()

	log.Info().
		Str("specialty", payload.Specialty).
		Str("zip", payload.City).
		Int("received", len(providers)).
		Int("rows", len(rows)).
		Msg("provider table built")

	if s.cache != nil {
		s.cache.Add(key, rows)
	}

	return rows, nil
}

func (s *SearchService) observeCache(hit bool) {
	if s.observer != nil {
		s.observer.ObserveCache(hit)
	}
}

func cacheKey(p healthcomp.Payload) string {
	return strings.Join([]string{
		p.HealthPlan,
		p.Category,
		p.Specialty,
		p.City,
		strconv.Itoa(p.Radius),
		strconv.FormatFloat(p.InitLatitude, 'f', -1, 64),
		strconv.FormatFloat(p.InitLongitude, 'f', -1, 64),
	}, "|")
}

// ValidZip reports whether zip is exactly five ASCII digits.
func ValidZip(zip string) bool {
	if len(zip) != 5 {
		return false
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validPlan(plan string) bool {
	for _, p := range HealthPlans {
		if p == plan {
			return true
		}
	}
	return false
}
