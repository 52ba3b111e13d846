package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"epo-browser/internal/catalog"
	"epo-browser/internal/config"
	"epo-browser/internal/geocoding"
	"epo-browser/internal/handler"
	"epo-browser/internal/healthcomp"
	"epo-browser/internal/metrics"
	"epo-browser/internal/repository"
	"epo-browser/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// The zip code table is optional unless it is the geocoder.
	var (
		zipRepo geocoding.ZipRepository
		zips    service.ZipRepository
		counter handler.ZipCounter
	)
	if config.DBSource != "" {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		zipRepo, zips, counter = repo, repo, repo
	}

	geocoder, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:       geocoding.ProviderType(config.Geocoder),
		APIKey:     config.GoogleAPIKey,
		RateLimit:  10,
		Repository: zipRepo,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create geocoder")
	}
	log.Info().Str("type", config.Geocoder).Msg("geocoder initialized")

	cat, err := catalog.Load(config.CategoriesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load categories")
	}

	upstream, err := healthcomp.NewClient(config.ProviderSearchURL, config.UpstreamTimeout, config.UpstreamRateLimit, appMetrics)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create provider search client")
	}

	searchService := service.NewSearchService(cat, geocoder, upstream, service.SearchOptions{
		CacheSize: config.CacheSize,
		CacheTTL:  config.CacheTTL,
		Observer:  appMetrics,
	})
	zipService := service.NewZipService(geocoder, zips)

	r, err := newRouter(routerDeps{
		Catalog:  cat,
		Search:   searchService,
		Zip:      zipService,
		Counter:  counter,
		Metrics:  appMetrics,
		Registry: reg,
		Defaults: handler.PageDefaults{
			Zip:      config.DefaultZip,
			Radius:   config.DefaultRadius,
			MapStyle: config.MapStyle,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build router")
	}

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped")
}

func setupLogger(cfg config.Config) {
	level := zerolog.InfoLevel
	if cfg.IsDevelopment() {
		level = zerolog.DebugLevel
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	if cfg.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
		} else {
			level = parsed
		}
	}

	zerolog.SetGlobalLevel(level)
}
