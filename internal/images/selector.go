package images

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"slices"
	"sync"
	"unicode/utf16"

	"eatsandthinks/internal/category"
	"eatsandthinks/internal/domain"
)

var (
	ErrEmptyPool     = errors.New("images: empty pool")
	ErrNoDefaultPool = errors.New("images: default pool missing")
)

const googlePhotoBase = "https://maps.googleapis.com/maps/api/place/photo"

// Selector picks stock photos per category. Pools are validated at
// construction so lookups can never index an empty slice.
type Selector struct {
	pools map[category.Category][]string
}

func NewSelector(pools map[category.Category][]string) (*Selector, error) {
	if len(pools[category.Default]) == 0 {
		return nil, ErrNoDefaultPool
	}
	cp := make(map[category.Category][]string, len(pools))
	for c, urls := range pools {
		if len(urls) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPool, c)
		}
		cp[c] = slices.Clone(urls)
	}
	return &Selector{pools: cp}, nil
}

// MustSelector panics on invalid pools. Meant for static tables.
func MustSelector(pools map[category.Category][]string) *Selector {
	s, err := NewSelector(pools)
	if err != nil {
		panic(err)
	}
	return s
}

var stock = sync.OnceValue(func() *Selector { return MustSelector(StockPools()) })

// Stock returns the selector over the built-in pools.
func Stock() *Selector { return stock() }

func (s *Selector) pool(c category.Category) []string {
	if p, ok := s.pools[c]; ok {
		return p
	}
	return s.pools[category.Default]
}

// Select returns a photo for c. The same non-empty seed always yields the
// same photo; an empty seed picks uniformly at random.
func (s *Selector) Select(c category.Category, seed string) string {
	p := s.pool(c)
	if seed == "" {
		return p[rand.IntN(len(p))]
	}
	return p[SeedIndex(seed, len(p))]
}

// ByIndex wraps i around the pool length.
func (s *Selector) ByIndex(c category.Category, i int) string {
	p := s.pool(c)
	n := len(p)
	return p[((i%n)+n)%n]
}

// ForType resolves rawType and selects from the resulting pool.
func (s *Selector) ForType(r *category.Resolver, rawType, seed string) string {
	return s.Select(r.Resolve(rawType), seed)
}

// PhotoURL prefers the place's own Google photo when both a reference and
// an API key are present, and falls back to a stock photo seeded by the
// place ID.
func (s *Selector) PhotoURL(r *category.Resolver, p domain.Place, apiKey string) string {
	return s.PlaceImage(r.Resolve(p.TypeOrEmpty()), p, apiKey)
}

// PlaceImage is PhotoURL for callers that already resolved the category.
func (s *Selector) PlaceImage(c category.Category, p domain.Place, apiKey string) string {
	if p.PhotoRef != nil && *p.PhotoRef != "" && apiKey != "" {
		return fmt.Sprintf("%s?maxwidth=800&photoreference=%s&key=%s",
			googlePhotoBase, url.QueryEscape(*p.PhotoRef), url.QueryEscape(apiKey))
	}
	return s.Select(c, p.ID)
}

func (s *Selector) PoolSize(c category.Category) int { return len(s.pool(c)) }

// HasOwnPool reports whether c has a dedicated pool rather than the default.
func (s *Selector) HasOwnPool(c category.Category) bool {
	_, ok := s.pools[c]
	return ok
}

// SeedIndex sums the UTF-16 code units of seed modulo n.
func SeedIndex(seed string, n int) int {
	var sum uint64
	for _, u := range utf16.Encode([]rune(seed)) {
		sum += uint64(u)
	}
	return int(sum % uint64(n))
}
