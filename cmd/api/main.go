package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"eatsandthinks/internal/adapters/eatsapi"
	server "eatsandthinks/internal/adapters/http_server"
	"eatsandthinks/internal/adapters/observability"
	redisad "eatsandthinks/internal/adapters/redis"
	"eatsandthinks/internal/app"
	"eatsandthinks/internal/category"
	"eatsandthinks/internal/domain"
	"eatsandthinks/internal/images"
	"eatsandthinks/internal/sections"
	"eatsandthinks/internal/shared"
	mysqlrepo "eatsandthinks/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api", cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// upstream
	client, err := eatsapi.New(cfg.EatsBase, cfg.EatsToken, cfg.UpstreamRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize eatsapi client")
	}

	// catalog: live upstream, or the snapshot the ingestor keeps in MySQL
	var (
		catalog domain.PlaceCatalog = client
		details domain.PlaceDetails = client
	)
	if cfg.CatalogBackend == shared.BackendMySQL {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		defer db.Close()
		log.Info().Msg("database connection ok")
		repo := mysqlrepo.New(db)
		catalog, details = repo, repo
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

	homeCfg := app.HomeConfig{
		City:         cfg.City,
		QueryTimeout: cfg.QueryTimeout,
		CacheTTL:     cfg.CacheTTL,
		Gems: sections.GemCriteria{
			MinReviews: cfg.GemsMinReviews,
			MaxReviews: cfg.GemsMaxReviews,
			MinRating:  cfg.GemsMinRating,
		},
		Featured: sections.DefaultFeaturedOptions(),
	}
	home := app.NewHomeService(client, catalog, cache, homeCfg)
	cards := app.NewCardService(category.DefaultResolver(), images.Stock(), cfg.PhotosKey)
	q := app.NewQueryService(details, cache, cfg.CacheTTL)

	// http
	srv := server.New(log.Logger, homeCfg.RequestTimeout())
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Home:   home,
		Places: q,
		Cards:  cards,
		Ready:  cache.Ping,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("catalog", cfg.CatalogBackend).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
