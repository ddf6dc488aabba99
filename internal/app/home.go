package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"eatsandthinks/internal/adapters/observability"
	"eatsandthinks/internal/domain"
	"eatsandthinks/internal/sections"
)

const (
	trendingTarget = 10 // unique places after which trending stops querying
	trendingLimit  = 10
	gemsLimit      = 20
	cheapLimit     = 5
)

type HomeConfig struct {
	City         string
	QueryTimeout time.Duration
	CacheTTL     time.Duration
	Gems         sections.GemCriteria
	Featured     sections.FeaturedOptions
}

func DefaultHomeConfig() HomeConfig {
	return HomeConfig{
		City:         "Madrid",
		QueryTimeout: 8 * time.Second,
		CacheTTL:     5 * time.Minute,
		Gems:         sections.DefaultGemCriteria(),
		Featured:     sections.DefaultFeaturedOptions(),
	}
}

// RequestTimeout bounds a whole homepage request: the longest chain of
// sequential queries (hidden gems) plus one query of slack. Sections build
// concurrently, so the longest chain is the worst case.
func (c HomeConfig) RequestTimeout() time.Duration {
	q := c.QueryTimeout
	if q <= 0 {
		q = DefaultHomeConfig().QueryTimeout
	}
	chain := max(len(TrendingQueries(c.City)), len(HiddenGemQueries(c.City)), 1)
	return time.Duration(chain+1) * q
}

// Home is the full homepage, one slot per section.
type Home struct {
	Featured   sections.Section `json:"featured"`
	Trending   sections.Section `json:"trending"`
	HiddenGems sections.Section `json:"hidden_gems"`
	CheapEats  sections.Section `json:"cheap_eats"`
	Community  sections.Section `json:"community"`
}

// Sections lists the slots in rendering order.
func (h Home) Sections() []sections.Section {
	return []sections.Section{h.Featured, h.Trending, h.HiddenGems, h.CheapEats, h.Community}
}

type HomeService struct {
	search  domain.PlaceSearcher
	catalog domain.PlaceCatalog
	cache   domain.Cache // optional
	cfg     HomeConfig
}

func NewHomeService(s domain.PlaceSearcher, c domain.PlaceCatalog, cache domain.Cache, cfg HomeConfig) *HomeService {
	d := DefaultHomeConfig()
	if cfg.City == "" {
		cfg.City = d.City
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = d.QueryTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = d.CacheTTL
	}
	if cfg.Gems == (sections.GemCriteria{}) {
		cfg.Gems = d.Gems
	}
	if cfg.Featured.Size <= 0 {
		cfg.Featured = d.Featured
	}
	return &HomeService{search: s, catalog: c, cache: cache, cfg: cfg}
}

func homeKey(n sections.Name) string { return "home:" + string(n) }

// Section builds (or loads from cache) a single homepage section.
func (s *HomeService) Section(ctx context.Context, n sections.Name) (sections.Section, error) {
	var build func(context.Context) sections.Section
	switch n {
	case sections.NameFeatured:
		build = s.featured
	case sections.NameTrending:
		build = s.trending
	case sections.NameHiddenGems:
		build = s.hiddenGems
	case sections.NameCheapEats:
		build = s.cheapEats
	case sections.NameCommunity:
		build = s.community
	default:
		return sections.Section{}, fmt.Errorf("section %q: %w", n, domain.ErrNotFound)
	}
	return s.cached(ctx, n, build), nil
}

func (s *HomeService) Featured(ctx context.Context) sections.Section {
	return s.cached(ctx, sections.NameFeatured, s.featured)
}

func (s *HomeService) Trending(ctx context.Context) sections.Section {
	return s.cached(ctx, sections.NameTrending, s.trending)
}

func (s *HomeService) HiddenGems(ctx context.Context) sections.Section {
	return s.cached(ctx, sections.NameHiddenGems, s.hiddenGems)
}

func (s *HomeService) CheapEats(ctx context.Context) sections.Section {
	return s.cached(ctx, sections.NameCheapEats, s.cheapEats)
}

func (s *HomeService) Community(ctx context.Context) sections.Section {
	return s.cached(ctx, sections.NameCommunity, s.community)
}

// Build assembles every section concurrently. Each goroutine writes only its
// own slot; a failed section comes back unavailable instead of failing the page.
func (s *HomeService) Build(ctx context.Context) (Home, error) {
	var h Home
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { h.Featured = s.Featured(gctx); return nil })
	g.Go(func() error { h.Trending = s.Trending(gctx); return nil })
	g.Go(func() error { h.HiddenGems = s.HiddenGems(gctx); return nil })
	g.Go(func() error { h.CheapEats = s.CheapEats(gctx); return nil })
	g.Go(func() error { h.Community = s.Community(gctx); return nil })
	if err := g.Wait(); err != nil {
		return Home{}, err
	}
	return h, ctx.Err()
}

// Invalidate drops every cached section.
func (s *HomeService) Invalidate(ctx context.Context) {
	invalidateHome(ctx, s.cache)
}

func invalidateHome(ctx context.Context, c domain.Cache) {
	if c == nil {
		return
	}
	for _, n := range sections.Order {
		_ = c.Del(ctx, homeKey(n))
	}
}

// ---- builders ----

func (s *HomeService) featured(ctx context.Context) sections.Section {
	all, ok := s.safeList(ctx, sections.NameFeatured, s.catalog.ListAll)
	return sections.Assemble(sections.NameFeatured, sections.Featured(all, s.cfg.Featured), ok)
}

func (s *HomeService) trending(ctx context.Context) sections.Section {
	minRating := 4.0
	f := domain.SearchFilters{MinRating: &minRating, Limit: trendingLimit}

	var pool []domain.Place
	seen := map[string]struct{}{}
	reachable := false
	for _, q := range TrendingQueries(s.cfg.City) {
		res, ok := s.safeSearch(ctx, sections.NameTrending, q, f)
		reachable = reachable || ok
		pool = append(pool, res...)
		for _, p := range res {
			seen[p.ID] = struct{}{}
		}
		if len(seen) >= trendingTarget {
			break
		}
	}
	keep := sections.Layouts[sections.NameTrending].Keep
	return sections.Assemble(sections.NameTrending, sections.MostReviewed(pool, keep), reachable)
}

func (s *HomeService) hiddenGems(ctx context.Context) sections.Section {
	f := domain.SearchFilters{Limit: gemsLimit}

	var pool []domain.Place
	reachable := false
	for _, q := range HiddenGemQueries(s.cfg.City) {
		res, ok := s.safeSearch(ctx, sections.NameHiddenGems, q, f)
		reachable = reachable || ok
		pool = append(pool, res...)
	}
	keep := sections.Layouts[sections.NameHiddenGems].Keep
	return sections.Assemble(sections.NameHiddenGems, sections.HiddenGems(pool, s.cfg.Gems, keep), reachable)
}

func (s *HomeService) cheapEats(ctx context.Context) sections.Section {
	minRating := 4.0
	f := domain.SearchFilters{MinRating: &minRating, PriceLevels: []int{1}, Limit: cheapLimit}
	res, ok := s.safeSearch(ctx, sections.NameCheapEats, CheapEatsQuery(s.cfg.City), f)
	return sections.Assemble(sections.NameCheapEats, res, ok)
}

func (s *HomeService) community(ctx context.Context) sections.Section {
	all, ok := s.safeList(ctx, sections.NameCommunity, s.catalog.ListCommunity)
	return sections.Assemble(sections.NameCommunity, sections.Dedupe(all), ok)
}

// ---- per-call error boundary ----

// safeSearch runs one query under the per-query timeout. A failure is logged,
// counted and returned as no results with ok=false.
func (s *HomeService) safeSearch(ctx context.Context, n sections.Name, query string, f domain.SearchFilters) ([]domain.Place, bool) {
	qctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	res, err := s.search.Search(qctx, query, f)
	if err != nil {
		if ctx.Err() != nil {
			// caller went away; not an upstream failure
			return nil, false
		}
		log.Warn().Err(err).
			Str("section", string(n)).
			Str("query", query).
			Msg("search failed; treating as no results")
		observability.ObserveQueryFailure(string(n), err)
		return nil, false
	}
	return res, true
}

func (s *HomeService) safeList(ctx context.Context, n sections.Name, list func(context.Context) ([]domain.Place, error)) ([]domain.Place, bool) {
	qctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	res, err := list(qctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false
		}
		log.Warn().Err(err).Str("section", string(n)).Msg("catalog read failed; treating as no results")
		observability.ObserveQueryFailure(string(n), err)
		return nil, false
	}
	return res, true
}

// cached is cache-aside over a section builder. Unavailable sections are not
// stored so the next request retries upstream, and neither is anything built
// after the caller's context ended, since later queries never ran.
func (s *HomeService) cached(ctx context.Context, n sections.Name, build func(context.Context) sections.Section) sections.Section {
	key := homeKey(n)
	if s.cache != nil {
		var sec sections.Section
		if ok, _ := s.cache.Get(ctx, key, &sec); ok {
			return sec
		}
	}

	sec := build(ctx)
	if ctx.Err() != nil {
		log.Debug().Err(ctx.Err()).Str("section", string(n)).Msg("section build cut short; not caching")
		return sec
	}
	observability.ObserveSection(string(n), string(sec.Status))

	if s.cache != nil && sec.Status != sections.StatusUnavailable {
		_ = s.cache.Set(ctx, key, sec, int(s.cfg.CacheTTL.Seconds()))
	}
	return sec
}

// ---- fixed homepage queries ----

func TrendingQueries(city string) []string {
	return withCity(city, "restaurantes populares", "mejores restaurantes", "restaurantes famosos")
}

func HiddenGemQueries(city string) []string {
	return withCity(city,
		"restaurantes nuevos",
		"restaurantes auténticos",
		"restaurantes tradicionales",
		"tapas",
		"bares",
		"restaurantes familiares",
	)
}

func CheapEatsQuery(city string) string {
	return withCity(city, "restaurantes baratos")[0]
}

// AllQueries is every search the homepage issues, used to warm the catalog.
func AllQueries(city string) []string {
	out := append(TrendingQueries(city), HiddenGemQueries(city)...)
	return append(out, CheapEatsQuery(city))
}

func withCity(city string, qs ...string) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		if city == "" {
			out[i] = q
			continue
		}
		out[i] = q + " " + city
	}
	return out
}
