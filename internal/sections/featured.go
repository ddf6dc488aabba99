package sections

import (
	"slices"

	"eatsandthinks/internal/category"
	"eatsandthinks/internal/domain"
)

type FeaturedOptions struct {
	Size      int
	MinRating float64
	// MainTypes are tried first, one place each, in order.
	MainTypes []string
	// ExtendedTypes back-fill the remaining slots, in order.
	ExtendedTypes []string
}

func DefaultFeaturedOptions() FeaturedOptions {
	return FeaturedOptions{
		Size:      3,
		MinRating: 4.7,
		MainTypes: []string{"bar", "cafe", "restaurant"},
		ExtendedTypes: []string{
			"bar", "cafe", "restaurant", "restaurante", "heladeria",
			"comida rapida", "pizzeria", "asiatico",
		},
	}
}

// TypeKey is the grouping key for a place's type. Places without a type
// count as restaurants.
func TypeKey(p domain.Place) string {
	if k := category.Normalize(p.TypeOrEmpty()); k != "" {
		return k
	}
	return "restaurant"
}

type picker struct {
	size   int
	picked []domain.Place
	ids    map[string]struct{}
	types  map[string]struct{}
}

func (k *picker) full() bool { return len(k.picked) >= k.size }

func (k *picker) add(p domain.Place) {
	if _, dup := k.ids[p.ID]; dup || k.full() {
		return
	}
	k.ids[p.ID] = struct{}{}
	k.types[TypeKey(p)] = struct{}{}
	k.picked = append(k.picked, p)
}

// takeTypes adds the best-rated place of each listed type that is not yet
// represented, skipping the types in skip.
func (k *picker) takeTypes(pool []domain.Place, types, skip []string) {
	groups := groupByType(pool)
	for _, t := range types {
		if k.full() {
			return
		}
		if slices.Contains(skip, t) {
			continue
		}
		if _, done := k.types[t]; done {
			continue
		}
		if best, ok := bestRated(groups[t]); ok {
			k.add(best)
		}
	}
}

func (k *picker) fill(pool []domain.Place) {
	for _, p := range pool {
		if k.full() {
			return
		}
		k.add(p)
	}
}

// Featured picks up to opts.Size showcase places. Stages run in order and
// stop as soon as the result is full:
//
//  1. best place rated >= MinRating for each main type
//  2. best highly rated place for each remaining extended type
//  3. best place of any rating for each still unrepresented extended type
//  4. remaining places in input order
func Featured(places []domain.Place, opts FeaturedOptions) []domain.Place {
	all := Dedupe(places)
	high := make([]domain.Place, 0, len(all))
	for _, p := range all {
		if p.RatingOrZero() >= opts.MinRating {
			high = append(high, p)
		}
	}

	k := &picker{
		size:   opts.Size,
		picked: make([]domain.Place, 0, max(opts.Size, 0)),
		ids:    make(map[string]struct{}),
		types:  make(map[string]struct{}),
	}
	stages := []func(){
		func() { k.takeTypes(high, opts.MainTypes, nil) },
		func() { k.takeTypes(high, opts.ExtendedTypes, opts.MainTypes) },
		func() { k.takeTypes(all, opts.ExtendedTypes, nil) },
		func() { k.fill(all) },
	}
	for _, run := range stages {
		if k.full() {
			break
		}
		run()
	}
	return k.picked
}

func groupByType(in []domain.Place) map[string][]domain.Place {
	out := make(map[string][]domain.Place)
	for _, p := range in {
		t := TypeKey(p)
		out[t] = append(out[t], p)
	}
	return out
}

// bestRated returns the first place with the highest rating.
func bestRated(in []domain.Place) (domain.Place, bool) {
	if len(in) == 0 {
		return domain.Place{}, false
	}
	best := in[0]
	for _, p := range in[1:] {
		if p.RatingOrZero() > best.RatingOrZero() {
			best = p
		}
	}
	return best, true
}
