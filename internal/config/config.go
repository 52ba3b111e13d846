package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application settings. Values come from app.env in the
// config directory and can be overridden by environment variables.
type Config struct {
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	Environment       string        `mapstructure:"ENVIRONMENT"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	Geocoder          string        `mapstructure:"GEOCODER"`
	GoogleAPIKey      string        `mapstructure:"GOOGLE_API_KEY"`
	ProviderSearchURL string        `mapstructure:"PROVIDER_SEARCH_URL"`
	UpstreamTimeout   time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	UpstreamRateLimit float64       `mapstructure:"UPSTREAM_RATE_LIMIT"`
	CategoriesFile    string        `mapstructure:"CATEGORIES_FILE"`
	CacheSize         int           `mapstructure:"CACHE_SIZE"`
	CacheTTL          time.Duration `mapstructure:"CACHE_TTL"`
	DefaultZip        string        `mapstructure:"DEFAULT_ZIP"`
	DefaultRadius     int           `mapstructure:"DEFAULT_RADIUS"`
	MapStyle          string        `mapstructure:"MAP_STYLE"`
}

// DefaultProviderSearchURL is the HealthComp "find a provider" endpoint.
const DefaultProviderSearchURL = "https://hconlinex.healthcomp.com/FindAProvider/ProviderSearch.aspx/GetProviders"

var defaults = map[string]any{
	"SERVER_ADDRESS":      "0.0.0.0:8080",
	"ENVIRONMENT":         "development",
	"LOG_LEVEL":           "",
	"DB_SOURCE":           "",
	"GEOCODER":            "postgres",
	"GOOGLE_API_KEY":      "",
	"PROVIDER_SEARCH_URL": DefaultProviderSearchURL,
	"UPSTREAM_TIMEOUT":    "15s",
	"UPSTREAM_RATE_LIMIT": 2,
	"CATEGORIES_FILE":     "",
	"CACHE_SIZE":          256,
	"CACHE_TTL":           "10m",
	"DEFAULT_ZIP":         "90254",
	"DEFAULT_RADIUS":      5,
	"MAP_STYLE":           "https://basemaps.cartocdn.com/gl/dark-matter-gl-style/style.json",
}

// LoadConfig reads app.env from path. A missing file is not an error; the
// defaults and environment still apply.
func LoadConfig(path string) (Config, error) {
	var config Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
