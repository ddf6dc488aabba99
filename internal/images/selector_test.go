package images_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatsandthinks/internal/category"
	"eatsandthinks/internal/domain"
	"eatsandthinks/internal/images"
)

func ptr[T any](v T) *T { return &v }

func TestSeedIndex(t *testing.T) {
	// 'a'+'b' = 97+98 = 195
	assert.Equal(t, 195%6, images.SeedIndex("ab", 6))
	assert.Equal(t, 0, images.SeedIndex("anything", 1))
	// U+1F355 is a surrogate pair: 0xD83C + 0xDF55
	assert.Equal(t, (0xD83C+0xDF55)%7, images.SeedIndex("\U0001F355", 7))
}

func TestSelect_Deterministic(t *testing.T) {
	s := images.Stock()
	first := s.Select(category.Pizzeria, "ChIJ123")
	for range 50 {
		assert.Equal(t, first, s.Select(category.Pizzeria, "ChIJ123"))
	}
	pool := images.StockPools()[category.Pizzeria]
	assert.Equal(t, pool[images.SeedIndex("ChIJ123", len(pool))], first)
}

func TestSelect_StaysInPool(t *testing.T) {
	s := images.Stock()
	pools := images.StockPools()
	for _, c := range category.Categories() {
		want, ok := pools[c]
		if !ok {
			want = pools[category.Default]
		}
		for _, seed := range []string{"", "x", "place-42", "ñandú"} {
			assert.Contains(t, want, s.Select(c, seed), "category %s seed %q", c, seed)
		}
	}
}

func TestSelect_UnknownCategoryUsesDefault(t *testing.T) {
	s := images.Stock()
	def := images.StockPools()[category.Default]
	assert.Contains(t, def, s.Select(category.Category("nope"), "seed"))
	assert.Contains(t, def, s.Select(category.Spanish, "seed"))
	assert.False(t, s.HasOwnPool(category.Spanish))
	assert.True(t, s.HasOwnPool(category.Bar))
}

func TestSelect_SingleImagePool(t *testing.T) {
	s := images.MustSelector(map[category.Category][]string{
		category.Default: {"https://img/only.jpg"},
	})
	for _, seed := range []string{"", "a", "zzzzzz"} {
		assert.Equal(t, "https://img/only.jpg", s.Select(category.Bar, seed))
	}
}

func TestNewSelector_RejectsInvalidPools(t *testing.T) {
	_, err := images.NewSelector(map[category.Category][]string{
		category.Bar: {"https://img/bar.jpg"},
	})
	require.ErrorIs(t, err, images.ErrNoDefaultPool)

	_, err = images.NewSelector(map[category.Category][]string{
		category.Default: {"https://img/d.jpg"},
		category.Bar:     {},
	})
	require.ErrorIs(t, err, images.ErrEmptyPool)

	assert.Panics(t, func() { images.MustSelector(nil) })
}

func TestByIndex_Wraps(t *testing.T) {
	s := images.Stock()
	pool := images.StockPools()[category.Italian]
	assert.Equal(t, pool[0], s.ByIndex(category.Italian, 0))
	assert.Equal(t, pool[1], s.ByIndex(category.Italian, len(pool)+1))
	assert.Equal(t, pool[len(pool)-1], s.ByIndex(category.Italian, -1))
}

func TestForType_PizzeriaScenario(t *testing.T) {
	s := images.Stock()
	r := category.DefaultResolver()
	pool := images.StockPools()[category.Pizzeria]
	assert.Contains(t, pool, s.ForType(r, "Pizzería", "p1"))
	assert.Contains(t, pool, s.ForType(r, "piza", "p1"))
	assert.Contains(t, images.StockPools()[category.Default], s.ForType(r, "", "p1"))
}

func TestPhotoURL(t *testing.T) {
	s := images.Stock()
	r := category.DefaultResolver()

	withRef := domain.Place{ID: "p1", Type: ptr("bar"), PhotoRef: ptr("ref/1")}
	got := s.PhotoURL(r, withRef, "k3y")
	assert.True(t, strings.HasPrefix(got, "https://maps.googleapis.com/maps/api/place/photo?maxwidth=800&photoreference="))
	assert.Contains(t, got, "photoreference=ref%2F1")
	assert.True(t, strings.HasSuffix(got, "&key=k3y"))

	// no key configured: stock image for the resolved type
	assert.Contains(t, images.StockPools()[category.Bar], s.PhotoURL(r, withRef, ""))

	noRef := domain.Place{ID: "p2", Type: ptr("cafetería")}
	assert.Equal(t, s.Select(category.Cafe, "p2"), s.PhotoURL(r, noRef, "k3y"))
}

func TestPlaceImage_UsesGivenCategory(t *testing.T) {
	s := images.Stock()
	p := domain.Place{ID: "p3", Type: ptr("bar")}

	// the category passed in wins over the place's own type
	assert.Equal(t, s.Select(category.IceCream, "p3"), s.PlaceImage(category.IceCream, p, "k3y"))

	p.PhotoRef = ptr("ref")
	assert.Contains(t, s.PlaceImage(category.IceCream, p, "k3y"), "photoreference=ref")
	assert.Equal(t, s.Select(category.IceCream, "p3"), s.PlaceImage(category.IceCream, p, ""))
}
