package domain

import "slices"

const (
	SourceGoogle = "GOOGLE"
	SourceLocal  = "LOCAL"
)

type Place struct {
	ID          string   `json:"placeId"`
	Name        string   `json:"name"`
	Address     string   `json:"formattedAddress,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"userRatingsTotal,omitempty"`
	PriceLevel  *int     `json:"priceLevel,omitempty"`
	Type        *string  `json:"type,omitempty"`
	OpenNow     *bool    `json:"openNow,omitempty"`
	PhotoRef    *string  `json:"photoRef,omitempty"`
	Source      string   `json:"source,omitempty"`

	// Detail-only fields, empty in search results.
	Phone        *string  `json:"phoneNumber,omitempty"`
	Website      *string  `json:"website,omitempty"`
	OpeningHours []string `json:"openingHours,omitempty"`

	RawJSON []byte `json:"-"` // upstream payload as received
}

// RatingOrZero treats a missing rating as 0 for ranking.
func (p Place) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func (p Place) ReviewsOrZero() int {
	if p.ReviewCount == nil {
		return 0
	}
	return *p.ReviewCount
}

func (p Place) TypeOrEmpty() string {
	if p.Type == nil {
		return ""
	}
	return *p.Type
}

// SearchFilters narrows a text search. Zero values mean "no constraint".
type SearchFilters struct {
	MinRating   *float64
	PriceLevels []int
	OpenNowOnly bool
	Limit       int
}

func (f SearchFilters) Matches(p Place) bool {
	if f.MinRating != nil && p.RatingOrZero() < *f.MinRating {
		return false
	}
	if len(f.PriceLevels) > 0 {
		if p.PriceLevel == nil || !slices.Contains(f.PriceLevels, *p.PriceLevel) {
			return false
		}
	}
	if f.OpenNowOnly && (p.OpenNow == nil || !*p.OpenNow) {
		return false
	}
	return true
}

// Apply filters in input order and caps the result at Limit when Limit > 0.
func (f SearchFilters) Apply(in []Place) []Place {
	out := make([]Place, 0, len(in))
	for _, p := range in {
		if !f.Matches(p) {
			continue
		}
		out = append(out, p)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}
