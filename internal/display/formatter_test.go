package display_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatsandthinks/internal/app"
	"eatsandthinks/internal/category"
	"eatsandthinks/internal/display"
	"eatsandthinks/internal/domain"
	"eatsandthinks/internal/sections"
)

func ptr[T any](v T) *T { return &v }

func sampleHome() app.HomeView {
	empty := func(n sections.Name, st sections.Status) app.SectionView {
		return app.SectionView{Name: n, Status: st, Cards: []app.Card{}}
	}
	return app.HomeView{
		Featured: app.SectionView{
			Name:   sections.NameFeatured,
			Badge:  sections.BadgeTopRated,
			Status: sections.StatusReady,
			Cards: []app.Card{{
				Place: domain.Place{
					ID: "b1", Name: "Museo Chicote", Address: "Gran Vía 12",
					Rating: ptr(4.8), ReviewCount: ptr(512), PriceLevel: ptr(2), OpenNow: ptr(true),
				},
				Category: category.Bar,
				ImageURL: "https://images.example/bar.jpg",
				Badge:    sections.BadgeTopRated,
			}},
		},
		Trending:   empty(sections.NameTrending, sections.StatusEmpty),
		HiddenGems: empty(sections.NameHiddenGems, sections.StatusEmpty),
		CheapEats:  empty(sections.NameCheapEats, sections.StatusUnavailable),
		Community:  empty(sections.NameCommunity, sections.StatusEmpty),
	}
}

func TestPrintHome_ContainsExpectedContent(t *testing.T) {
	var buf bytes.Buffer
	display.PrintHome(&buf, sampleHome())
	out := buf.String()

	assert.Contains(t, out, "Featured")
	assert.Contains(t, out, "Museo Chicote")
	assert.Contains(t, out, "★ 4.8")
	assert.Contains(t, out, "TOP RATED")
	assert.Contains(t, out, "512 reviews")
	assert.Contains(t, out, "€€")
	assert.Contains(t, out, "open now")
	assert.Contains(t, out, "Gran Vía 12")
	assert.Contains(t, out, "https://images.example/bar.jpg")
}

func TestPrintSection_EmptyVersusUnavailable(t *testing.T) {
	h := sampleHome()

	var buf bytes.Buffer
	display.PrintSection(&buf, h.HiddenGems)
	assert.Contains(t, buf.String(), "No hidden gems found.")

	buf.Reset()
	display.PrintSection(&buf, h.CheapEats)
	assert.Contains(t, buf.String(), "Could not load cheap eats.")
	assert.NotContains(t, buf.String(), "No cheap eats found.")
}

func TestPrintCard_FallsBackToIDWithoutName(t *testing.T) {
	v := app.SectionView{
		Name:   sections.NameCommunity,
		Status: sections.StatusReady,
		Cards:  []app.Card{{Place: domain.Place{ID: "local-9"}, Category: category.Default, ImageURL: "u"}},
	}
	var buf bytes.Buffer
	display.PrintSection(&buf, v)
	assert.Contains(t, buf.String(), "local-9")
	assert.NotContains(t, buf.String(), "reviews")
}

func TestPrintHomeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintHomeJSON(&buf, sampleHome()))

	var decoded map[string]app.SectionView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 5)
	assert.Equal(t, sections.StatusUnavailable, decoded["cheap_eats"].Status)
	assert.Equal(t, "b1", decoded["featured"].Cards[0].Place.ID)
}

func TestPrintMatches(t *testing.T) {
	r := category.DefaultResolver()
	ms := []category.Match{r.Explain("Pizzería"), r.Explain("piza"), r.Explain(""), r.Explain("zzzzzzzz")}

	var buf bytes.Buffer
	display.PrintMatches(&buf, ms)
	out := buf.String()

	assert.Contains(t, out, "exact alias")
	assert.Contains(t, out, `fuzzy: "pizza", distance 0.20`)
	assert.Contains(t, out, "empty input")
	assert.Contains(t, out, "no alias within threshold")
}

func TestPrintMatchesJSON_NilIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintMatchesJSON(&buf, nil))
	assert.JSONEq(t, "[]", buf.String())
}

func TestPrintCategories(t *testing.T) {
	cats := []app.CategoryInfo{
		{Category: category.Bar, PoolSize: 6, OwnPool: true},
		{Category: category.Market, PoolSize: 5, OwnPool: false},
	}
	var buf bytes.Buffer
	display.PrintCategories(&buf, cats)
	out := buf.String()

	assert.Contains(t, out, "2 categories:")
	assert.Contains(t, out, "6 photos")
	assert.Contains(t, out, "5 photos (default pool)")
}

func TestPrintImage(t *testing.T) {
	img := display.ImageJSON{Type: "kebab", Category: "arabe_africano", Seed: "x", URL: "https://img"}

	var buf bytes.Buffer
	display.PrintImage(&buf, img)
	assert.Contains(t, buf.String(), "https://img")

	buf.Reset()
	require.NoError(t, display.PrintImageJSON(&buf, img))
	assert.JSONEq(t, `{"type":"kebab","category":"arabe_africano","seed":"x","url":"https://img"}`, buf.String())
}

func TestPrintCard_ShowsDetails(t *testing.T) {
	c := app.Card{
		Place: domain.Place{
			ID: "p1", Name: "Casa Lucio",
			Phone: ptr("+34 913 65 32 52"), Website: ptr("https://casalucio.es"),
			OpeningHours: []string{"lunes: 13:00–16:00"},
		},
		Category: category.Spanish,
		ImageURL: "https://img",
	}
	var buf bytes.Buffer
	display.PrintCard(&buf, c)
	out := buf.String()

	assert.Contains(t, out, "Casa Lucio")
	assert.Contains(t, out, "tel. +34 913 65 32 52")
	assert.Contains(t, out, "https://casalucio.es")
	assert.Contains(t, out, "lunes: 13:00–16:00")
}
