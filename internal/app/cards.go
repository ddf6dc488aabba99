package app

import (
	"eatsandthinks/internal/adapters/observability"
	"eatsandthinks/internal/category"
	"eatsandthinks/internal/domain"
	"eatsandthinks/internal/images"
	"eatsandthinks/internal/sections"
)

// Card is a place ready to render: its category and a picture to show.
type Card struct {
	Place    domain.Place      `json:"place"`
	Category category.Category `json:"category"`
	ImageURL string            `json:"imageUrl"`
	Badge    sections.Badge    `json:"badge,omitempty"`
}

type SectionView struct {
	Name   sections.Name   `json:"name"`
	Badge  sections.Badge  `json:"badge"`
	Status sections.Status `json:"status"`
	Cards  []Card          `json:"cards"`
}

type HomeView struct {
	Featured   SectionView `json:"featured"`
	Trending   SectionView `json:"trending"`
	HiddenGems SectionView `json:"hidden_gems"`
	CheapEats  SectionView `json:"cheap_eats"`
	Community  SectionView `json:"community"`
}

type CategoryInfo struct {
	Category category.Category `json:"category"`
	PoolSize int               `json:"poolSize"`
	OwnPool  bool              `json:"ownPool"`
}

type CardService struct {
	res      *category.Resolver
	sel      *images.Selector
	photoKey string
}

func NewCardService(r *category.Resolver, s *images.Selector, photoKey string) *CardService {
	return &CardService{res: r, sel: s, photoKey: photoKey}
}

func (c *CardService) Card(p domain.Place, b sections.Badge) Card {
	m := c.Resolve(p.TypeOrEmpty())
	return Card{Place: p, Category: m.Category, ImageURL: c.sel.PlaceImage(m.Category, p, c.photoKey), Badge: b}
}

// View renders the displayed items of a section as cards.
func (c *CardService) View(sec sections.Section) SectionView {
	cards := make([]Card, 0, len(sec.Items))
	for _, p := range sec.Items {
		cards = append(cards, c.Card(p, sec.Badge))
	}
	return SectionView{Name: sec.Name, Badge: sec.Badge, Status: sec.Status, Cards: cards}
}

func (c *CardService) HomeView(h Home) HomeView {
	return HomeView{
		Featured:   c.View(h.Featured),
		Trending:   c.View(h.Trending),
		HiddenGems: c.View(h.HiddenGems),
		CheapEats:  c.View(h.CheapEats),
		Community:  c.View(h.Community),
	}
}

// Resolve explains a raw type and counts the resolution phase.
func (c *CardService) Resolve(raw string) category.Match {
	m := c.res.Explain(raw)
	observability.ObserveResolution(string(m.Phase))
	return m
}

// Image picks a stock photo for a raw type. An empty seed picks at random.
func (c *CardService) Image(raw, seed string) (category.Category, string) {
	m := c.Resolve(raw)
	return m.Category, c.sel.Select(m.Category, seed)
}

func (c *CardService) Categories() []CategoryInfo {
	cats := category.Categories()
	out := make([]CategoryInfo, 0, len(cats))
	for _, cat := range cats {
		out = append(out, CategoryInfo{Category: cat, PoolSize: c.sel.PoolSize(cat), OwnPool: c.sel.HasOwnPool(cat)})
	}
	return out
}
