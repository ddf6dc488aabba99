package sections

import "eatsandthinks/internal/domain"

type Name string

const (
	NameFeatured   Name = "featured"
	NameTrending   Name = "trending"
	NameHiddenGems Name = "hidden_gems"
	NameCheapEats  Name = "cheap_eats"
	NameCommunity  Name = "community"
)

// Order is the homepage rendering order.
var Order = []Name{NameFeatured, NameTrending, NameHiddenGems, NameCheapEats, NameCommunity}

func ParseName(s string) (Name, bool) {
	for _, n := range Order {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

type Badge string

const (
	BadgeTopRated  Badge = "top_rated"
	BadgeTrending  Badge = "trending"
	BadgeGem       Badge = "gem"
	BadgeValue     Badge = "value"
	BadgeCommunity Badge = "community"
)

// Status separates "nothing matched" from "could not fetch".
type Status string

const (
	StatusReady       Status = "ready"
	StatusEmpty       Status = "empty"
	StatusUnavailable Status = "unavailable"
)

// Layout fixes how many places a section keeps and shows. 0 means no limit.
type Layout struct {
	Badge   Badge
	Keep    int
	Display int
}

var Layouts = map[Name]Layout{
	NameFeatured:   {Badge: BadgeTopRated, Keep: 3, Display: 3},
	NameTrending:   {Badge: BadgeTrending, Keep: 5, Display: 3},
	NameHiddenGems: {Badge: BadgeGem, Keep: 5, Display: 2},
	NameCheapEats:  {Badge: BadgeValue, Keep: 5, Display: 2},
	NameCommunity:  {Badge: BadgeCommunity},
}

type Section struct {
	Name   Name           `json:"name"`
	Badge  Badge          `json:"badge"`
	Status Status         `json:"status"`
	Items  []domain.Place `json:"items"`
	Pool   []domain.Place `json:"pool"`
}

// Assemble builds a section from its ranked pool. reachable is false when
// every upstream call for the section failed.
func Assemble(n Name, pool []domain.Place, reachable bool) Section {
	l := Layouts[n]
	s := Section{Name: n, Badge: l.Badge, Items: []domain.Place{}, Pool: []domain.Place{}}
	if !reachable {
		s.Status = StatusUnavailable
		return s
	}
	s.Pool = Cap(pool, l.Keep)
	s.Items = Cap(s.Pool, l.Display)
	s.Status = StatusReady
	if len(s.Items) == 0 {
		s.Status = StatusEmpty
	}
	return s
}
