//go:build integration

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"eatsandthinks/internal/adapters/eatsapi"
	server "eatsandthinks/internal/adapters/http_server"
	redisad "eatsandthinks/internal/adapters/redis"
	"eatsandthinks/internal/app"
	"eatsandthinks/internal/category"
	"eatsandthinks/internal/domain"
	"eatsandthinks/internal/images"
	"eatsandthinks/internal/sections"
	mysqlrepo "eatsandthinks/internal/storage/mysql"
)

// ---------- helpers ----------
func pstr(s string) *string     { return &s }
func pint(i int) *int           { return &i }
func pfloat(f float64) *float64 { return &f }

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir()

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=eats",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/eats?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db)
	return db
}

// fake upstream: only the cheap eats query answers, everything else is down.
func fakeUpstream(t *testing.T) *httptest.Server {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "restaurantes baratos Madrid" {
			_, _ = w.Write([]byte(`[{"placeId":"cheap1","name":"Casa Mingo","rating":4.4,"priceLevel":1,"tipo":"cocido"}]`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(ts.Close)
	return ts
}

// ---------- the test ----------
func TestHTTP_EndToEnd_HomeFromSnapshot(t *testing.T) {
	repo := mysqlrepo.New(startMySQL(t))
	ctx := context.Background()

	seed := []domain.Place{
		{ID: "r1", Name: "Lhardy", Type: pstr("restaurant"), Rating: pfloat(4.8), ReviewCount: pint(900)},
		{ID: "c1", Name: "Café Gijón", Type: pstr("cafe"), Rating: pfloat(4.8), ReviewCount: pint(700)},
		{ID: "b1", Name: "Museo Chicote", Type: pstr("bar"), Rating: pfloat(4.8), ReviewCount: pint(500)},
		{ID: "local-1", Name: "Bar Manolo", Type: pstr("bar"), Source: domain.SourceLocal},
	}
	if err := repo.UpsertPlaces(ctx, seed); err != nil {
		t.Fatalf("UpsertPlaces: %v", err)
	}

	client, err := eatsapi.New(fakeUpstream(t).URL, "", 100)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	mr := miniredis.RunT(t)
	cache := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "e2e:")

	cfg := app.DefaultHomeConfig()
	cfg.QueryTimeout = 2 * time.Second
	home := app.NewHomeService(client, repo, cache, cfg)

	srv := server.New(zerolog.Nop(), 10*time.Second)
	srv.MountHandlers(&server.Handlers{
		Home:   home,
		Places: app.NewQueryService(repo, cache, time.Minute),
		Cards:  app.NewCardService(category.DefaultResolver(), images.Stock(), ""),
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/home")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body map[string]app.SectionView
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	var featured []string
	for _, c := range body["featured"].Cards {
		featured = append(featured, c.Place.ID)
	}
	if fmt.Sprint(featured) != "[b1 c1 r1]" {
		t.Fatalf("unexpected featured: %v", featured)
	}
	if body["trending"].Status != sections.StatusUnavailable {
		t.Fatalf("trending upstream is down, got %s", body["trending"].Status)
	}
	cheap := body["cheap_eats"]
	if cheap.Status != sections.StatusReady || len(cheap.Cards) != 1 || cheap.Cards[0].Category != category.Spanish {
		t.Fatalf("unexpected cheap eats: %+v", cheap)
	}
	if len(body["community"].Cards) != 1 {
		t.Fatalf("unexpected community: %+v", body["community"])
	}
	if !mr.Exists("e2e:home:featured") || mr.Exists("e2e:home:trending") {
		t.Fatalf("expected only available sections cached, keys=%v", mr.Keys())
	}

	res2, err := http.Get(ts.URL + "/v1/places/c1")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res2.Body.Close()
	var card app.Card
	if err := json.NewDecoder(res2.Body).Decode(&card); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if card.Place.Name != "Café Gijón" || card.Category != category.Cafe {
		t.Fatalf("unexpected card: %+v", card)
	}
}
