package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"eatsandthinks/internal/adapters/eatsapi"
	"eatsandthinks/internal/adapters/observability"
	redisad "eatsandthinks/internal/adapters/redis"
	"eatsandthinks/internal/app"
	"eatsandthinks/internal/shared"
	mysqlrepo "eatsandthinks/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "ingestor", cfg.LogLevel)

	queries := app.AllQueries(cfg.City)
	log.Info().
		Str("base", cfg.EatsBase).
		Str("city", cfg.City).
		Int("workers", cfg.Workers).
		Int("queries", len(queries)).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := eatsapi.New(cfg.EatsBase, cfg.EatsToken, cfg.UpstreamRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize eatsapi client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

	ing := app.NewIngestionService(client, repo, cache)

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg     sync.WaitGroup
		stored atomic.Int64
		failed atomic.Int64
	)

	for _, q := range queries {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(query string) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := ing.IngestQuery(ctx, query)
			if err != nil {
				failed.Add(1)
				log.Warn().Str("query", query).Err(err).Msg("ingest failed")
				return
			}
			stored.Add(int64(n))
			log.Info().Str("query", query).Int("places", n).Msg("ingest ok")
		}(q)
	}
	wg.Wait()

	if n, err := ing.IngestCommunity(ctx); err != nil {
		failed.Add(1)
		log.Warn().Err(err).Msg("community ingest failed")
	} else {
		stored.Add(int64(n))
	}

	log.Info().
		Int64("places", stored.Load()).
		Int64("failed", failed.Load()).
		Msg("ingestion completed")
}
