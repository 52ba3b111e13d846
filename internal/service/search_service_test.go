package service_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"epo-browser/internal/geocoding"
	"epo-browser/internal/healthcomp"
	"epo-browser/internal/models"
	"epo-browser/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) HasCategory(category string) bool {
	return m.Called(category).Bool(0)
}

func (m *MockCatalog) Lookup(category, specialty string) (models.Specialty, bool) {
	args := m.Called(category, specialty)
	return args.Get(0).(models.Specialty), args.Bool(1)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, zip string) (*models.Coordinates, error) {
	args := m.Called(ctx, zip)
	c, _ := args.Get(0).(*models.Coordinates)
	return c, args.Error(1)
}

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, payload healthcomp.Payload) ([]models.Provider, error) {
	args := m.Called(ctx, payload)
	p, _ := args.Get(0).([]models.Provider)
	return p, args.Error(1)
}

type cacheCounter struct {
	hits, misses int
}

func (c *cacheCounter) ObserveCache(hit bool) {
	if hit {
		c.hits++
		return
	}
	c.misses++
}

var origin = &models.Coordinates{Latitude: 33.8648, Longitude: -118.3963}

func validRequest() models.SearchRequest {
	return models.SearchRequest{
		HealthPlan: "EPO",
		Category:   "BEHAVIORAL HEALTH",
		Specialty:  "PSYCHOLOGISTS",
		Zip:        "90254",
		Radius:     5,
	}
}

func knownCatalog() *MockCatalog {
	c := new(MockCatalog)
	c.On("HasCategory", "BEHAVIORAL HEALTH").Return(true).Maybe()
	c.On("HasCategory", mock.Anything).Return(false).Maybe()
	c.On("Lookup", "BEHAVIORAL HEALTH", "PSYCHOLOGISTS").Return(models.Specialty{Name: "PSYCHOLOGISTS"}, true).Maybe()
	c.On("Lookup", mock.Anything, mock.Anything).Return(models.Specialty{}, false).Maybe()
	return c
}

func sampleProviders() []models.Provider {
	return []models.Provider{
		{FirstName: "Grace", LastName: "Hopper", Title: "PhD", City: "Torrance", Distance: 2.5, Latitude: 33.83, Longitude: -118.34},
		{FirstName: "Ada", LastName: "Lovelace", Title: "PsyD", City: "Hermosa Beach", Distance: 0.4, Latitude: 33.86, Longitude: -118.39},
		{FirstName: "Ada", LastName: "Lovelace", Title: "PsyD", City: "Hermosa Beach", Distance: 0.9, Latitude: 33.87, Longitude: -118.40},
	}
}

func newService(geo *MockGeocoder, searcher *MockSearcher, opts service.SearchOptions) *service.SearchService {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(7, 7))
	}
	return service.NewSearchService(knownCatalog(), geo, searcher, opts)
}

func TestSearchService_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*models.SearchRequest)
		expectedErr error
	}{
		{name: "short zip", mutate: func(r *models.SearchRequest) { r.Zip = "9025" }, expectedErr: service.ErrInvalidZip},
		{name: "long zip", mutate: func(r *models.SearchRequest) { r.Zip = "902541" }, expectedErr: service.ErrInvalidZip},
		{name: "letters in zip", mutate: func(r *models.SearchRequest) { r.Zip = "9025a" }, expectedErr: service.ErrInvalidZip},
		{name: "empty zip", mutate: func(r *models.SearchRequest) { r.Zip = "" }, expectedErr: service.ErrInvalidZip},
		{name: "radius too small", mutate: func(r *models.SearchRequest) { r.Radius = 0 }, expectedErr: service.ErrInvalidRadius},
		{name: "radius too large", mutate: func(r *models.SearchRequest) { r.Radius = 51 }, expectedErr: service.ErrInvalidRadius},
		{name: "unknown plan", mutate: func(r *models.SearchRequest) { r.HealthPlan = "HMO" }, expectedErr: service.ErrInvalidPlan},
		{name: "unknown category", mutate: func(r *models.SearchRequest) { r.Category = "DENTAL" }, expectedErr: service.ErrUnknownCategory},
		{name: "specialty outside category", mutate: func(r *models.SearchRequest) { r.Specialty = "CARDIOLOGY" }, expectedErr: service.ErrUnknownSpecialty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := new(MockGeocoder)
			searcher := new(MockSearcher)
			svc := newService(geo, searcher, service.SearchOptions{})

			req := validRequest()
			tt.mutate(&req)

			result, err := svc.Search(context.Background(), req)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expectedErr)
			geo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
			searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}

func TestSearchService_Search(t *testing.T) {
	t.Run("builds table, names and view", func(t *testing.T) {
		geo := new(MockGeocoder)
		geo.On("Geocode", mock.Anything, "90254").Return(origin, nil)

		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.MatchedBy(func(p healthcomp.Payload) bool {
			return p.City == "90254" && p.Radius == 5 && p.HealthPlan == "EPO" &&
				p.InitLatitude == origin.Latitude && p.InitLongitude == origin.Longitude
		})).Return(sampleProviders(), nil)

		svc := newService(geo, searcher, service.SearchOptions{})

		result, err := svc.Search(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, *origin, result.Origin)
		assert.Empty(t, result.Message)
		assert.Equal(t, []string{"Ada Lovelace, PsyD", "Grace Hopper, PhD"}, result.Names)
		require.Len(t, result.Providers, 2)
		assert.Equal(t, 0.4, result.Providers[0].Distance)
		assert.Empty(t, result.Selected)
		require.NotNil(t, result.View)
		assert.InDelta(t, 33.845, result.View.Latitude, 1e-9)

		geo.AssertExpectations(t)
		searcher.AssertExpectations(t)
	})

	t.Run("focus and selection", func(t *testing.T) {
		geo := new(MockGeocoder)
		geo.On("Geocode", mock.Anything, "90254").Return(origin, nil)
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything).Return(sampleProviders(), nil)

		svc := newService(geo, searcher, service.SearchOptions{})

		req := validRequest()
		req.Focus = []string{"Grace Hopper, PhD"}
		req.Selected = []int{0, 3}

		result, err := svc.Search(context.Background(), req)

		require.NoError(t, err)
		assert.Len(t, result.Names, 2)
		require.Len(t, result.Providers, 1)
		require.Len(t, result.Selected, 1)
		assert.Equal(t, "Grace", result.Selected[0].FirstName)
		require.NotNil(t, result.View)
		assert.Equal(t, 33.83, result.View.Latitude)
	})

	t.Run("no providers", func(t *testing.T) {
		geo := new(MockGeocoder)
		geo.On("Geocode", mock.Anything, "90254").Return(origin, nil)
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything).Return([]models.Provider{}, nil)

		svc := newService(geo, searcher, service.SearchOptions{})

		result, err := svc.Search(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, service.NoProvidersMessage, result.Message)
		assert.Empty(t, result.Providers)
		assert.Nil(t, result.View)
	})

	t.Run("unknown zip", func(t *testing.T) {
		geo := new(MockGeocoder)
		geo.On("Geocode", mock.Anything, "90254").Return(nil, geocoding.ErrZipNotFound)
		searcher := new(MockSearcher)

		svc := newService(geo, searcher, service.SearchOptions{})

		_, err := svc.Search(context.Background(), validRequest())

		assert.ErrorIs(t, err, geocoding.ErrZipNotFound)
		searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("upstream failure", func(t *testing.T) {
		geo := new(MockGeocoder)
		geo.On("Geocode", mock.Anything, "90254").Return(origin, nil)
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		svc := newService(geo, searcher, service.SearchOptions{})

		_, err := svc.Search(context.Background(), validRequest())

		assert.ErrorIs(t, err, service.ErrUpstream)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestSearchService_Memoization(t *testing.T) {
	shared := []models.Provider{
		{FirstName: "A", LastName: "a", Title: "MD", Distance: 1, Latitude: 33.5, Longitude: -118.5},
		{FirstName: "B", LastName: "b", Title: "MD", Distance: 2, Latitude: 33.5, Longitude: -118.5},
	}

	t.Run("repeated search reuses the table", func(t *testing.T) {
		geo := new(MockGeocoder)
		geo.On("Geocode", mock.Anything, "90254").Return(origin, nil)
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything).Return(shared, nil).Once()

		counter := &cacheCounter{}
		svc := newService(geo, searcher, service.SearchOptions{CacheSize: 8, CacheTTL: time.Minute, Observer: counter})

		first, err := svc.Search(context.Background(), validRequest())
		require.NoError(t, err)
		second, err := svc.Search(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, first.Providers, second.Providers)
		assert.Equal(t, 1, counter.hits)
		assert.Equal(t, 1, counter.misses)
		searcher.AssertNumberOfCalls(t, "Search", 1)
	})

	t.Run("different radius misses", func(t *testing.T) {
		geo := new(MockGeocoder)
		geo.On("Geocode", mock.Anything, "90254").Return(origin, nil)
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything).Return(shared, nil)

		svc := newService(geo, searcher, service.SearchOptions{CacheSize: 8, CacheTTL: time.Minute})

		_, err := svc.Search(context.Background(), validRequest())
		require.NoError(t, err)
		req := validRequest()
		req.Radius = 10
		_, err = svc.Search(context.Background(), req)
		require.NoError(t, err)

		searcher.AssertNumberOfCalls(t, "Search", 2)
	})

	t.Run("disabled cache always searches", func(t *testing.T) {
		geo := new(MockGeocoder)
		geo.On("Geocode", mock.Anything, "90254").Return(origin, nil)
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything).Return(shared, nil)

		svc := newService(geo, searcher, service.SearchOptions{})

		for range 3 {
			_, err := svc.Search(context.Background(), validRequest())
			require.NoError(t, err)
		}

		searcher.AssertNumberOfCalls(t, "Search", 3)
	})
}
