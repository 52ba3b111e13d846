package main

import (
	"context"
	"flag"
	"os"

	"epo-browser/internal/config"
	"epo-browser/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the GeoNames US.txt postal code dump")
	configPath := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	zips, err := parseGeoNames(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse postal codes")
	}

	log.Info().Int("records", len(zips)).Msg("parsed postal codes")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is not set")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	repo := repository.NewRepository(conn)

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create table")
	}

	inserted, err := repo.ReplaceZipCodes(ctx, zips)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert postal codes")
	}

	count, err := repo.CountZipCodes(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot verify import")
	}
	if count != inserted {
		log.Fatal().Int64("inserted", inserted).Int64("count", count).Msg("row count does not match import")
	}

	log.Info().Int64("inserted", inserted).Int64("total", count).Msg("import finished")
}
