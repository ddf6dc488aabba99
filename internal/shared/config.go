package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

const (
	BackendAPI   = "api"
	BackendMySQL = "mysql"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	EatsBase    string
	EatsToken   string
	PhotosKey   string
	UpstreamRPS int

	QueryTimeout   time.Duration
	CacheTTL       time.Duration
	CatalogBackend string
	City           string

	GemsMinReviews int
	GemsMaxReviews int
	GemsMinRating  float64

	Workers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-integer config value")
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric config value")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/eats?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),

		EatsBase:    env("EATS_API_BASE", "http://localhost:8081/api"),
		EatsToken:   env("EATS_API_TOKEN", ""),
		PhotosKey:   env("GOOGLE_PHOTOS_KEY", ""),
		UpstreamRPS: atoi("UPSTREAM_RPS", 5),

		QueryTimeout:   time.Duration(atoi("QUERY_TIMEOUT_MS", 8000)) * time.Millisecond,
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		CatalogBackend: strings.ToLower(env("CATALOG_BACKEND", BackendAPI)),
		City:           env("HOME_CITY", "Madrid"),

		GemsMinReviews: atoi("GEMS_MIN_REVIEWS", 10),
		GemsMaxReviews: atoi("GEMS_MAX_REVIEWS", 400),
		GemsMinRating:  atof("GEMS_MIN_RATING", 3.5),

		Workers: atoi("INGEST_WORKERS", 4),
	}
	if c.CatalogBackend != BackendAPI && c.CatalogBackend != BackendMySQL {
		log.Warn().Str("backend", c.CatalogBackend).Msg("unknown CATALOG_BACKEND, using api")
		c.CatalogBackend = BackendAPI
	}
	if c.EatsToken == "" {
		log.Warn().Msg("EATS_API_TOKEN is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
