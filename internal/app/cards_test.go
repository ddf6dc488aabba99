package app_test

import (
	"strings"
	"testing"

	"eatsandthinks/internal/app"
	"eatsandthinks/internal/category"
	"eatsandthinks/internal/domain"
	"eatsandthinks/internal/images"
	"eatsandthinks/internal/sections"
)

func newCards(key string) *app.CardService {
	return app.NewCardService(category.DefaultResolver(), images.Stock(), key)
}

func TestCard_StockImageSeededByID(t *testing.T) {
	cs := newCards("")
	p := place("ChIJabc", "Pizzería", 4.5, 10)

	c1 := cs.Card(p, sections.BadgeTopRated)
	c2 := cs.Card(p, sections.BadgeTopRated)
	if c1.Category != category.Pizzeria {
		t.Fatalf("expected pizzeria, got %s", c1.Category)
	}
	if c1.ImageURL != c2.ImageURL {
		t.Fatalf("image must be stable for a given place")
	}
	if want := images.Stock().Select(category.Pizzeria, "ChIJabc"); c1.ImageURL != want {
		t.Fatalf("got %s, want %s", c1.ImageURL, want)
	}
}

func TestCard_GooglePhotoWhenKeyed(t *testing.T) {
	p := place("x", "bar", 4, 1)
	p.PhotoRef = ptr("ref-1")

	withKey := newCards("k").Card(p, "")
	if !strings.Contains(withKey.ImageURL, "photoreference=ref-1") {
		t.Fatalf("expected google photo url, got %s", withKey.ImageURL)
	}
	noKey := newCards("").Card(p, "")
	if strings.Contains(noKey.ImageURL, "googleapis") {
		t.Fatalf("expected stock photo without a key, got %s", noKey.ImageURL)
	}
}

func TestCard_ImageFollowsResolvedCategory(t *testing.T) {
	p := place("ChIJfuzzy", "piza", 4, 1)
	p.PhotoRef = ptr("ref-2")

	c := newCards("").Card(p, "")
	if c.Category != category.Pizzeria {
		t.Fatalf("expected pizzeria, got %s", c.Category)
	}
	if want := images.Stock().Select(category.Pizzeria, "ChIJfuzzy"); c.ImageURL != want {
		t.Fatalf("got %s, want %s", c.ImageURL, want)
	}
}

func TestView_OnlyDisplayedItems(t *testing.T) {
	pool := []domain.Place{place("a", "cafe", 4, 1), place("b", "cafe", 4, 1), place("c", "cafe", 4, 1)}
	sec := sections.Assemble(sections.NameHiddenGems, pool, true)

	v := newCards("").View(sec)
	if len(v.Cards) != 2 || v.Badge != sections.BadgeGem || v.Status != sections.StatusReady {
		t.Fatalf("unexpected view: %+v", v)
	}
	empty := newCards("").View(sections.Assemble(sections.NameCheapEats, nil, false))
	if empty.Cards == nil || empty.Status != sections.StatusUnavailable {
		t.Fatalf("unexpected view: %+v", empty)
	}
}

func TestResolveAndImage(t *testing.T) {
	cs := newCards("")
	if m := cs.Resolve("Japones"); m.Category != category.Asian || m.Phase != category.PhaseExact {
		t.Fatalf("unexpected match: %+v", m)
	}
	c, url := cs.Image("", "seed")
	if c != category.Default {
		t.Fatalf("unexpected category for empty type: %s", c)
	}
	if url == "" {
		t.Fatalf("expected an image url")
	}
	infos := cs.Categories()
	if len(infos) != len(category.Categories()) || infos[len(infos)-1].Category != category.Default {
		t.Fatalf("unexpected categories: %+v", infos)
	}
}
