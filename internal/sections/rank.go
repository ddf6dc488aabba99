package sections

import (
	"cmp"
	"slices"

	"eatsandthinks/internal/domain"
)

// Dedupe keeps the first occurrence of each place ID, preserving order.
func Dedupe(in []domain.Place) []domain.Place {
	seen := make(map[string]struct{}, len(in))
	out := make([]domain.Place, 0, len(in))
	for _, p := range in {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Cap returns a copy of at most n places. n <= 0 means no limit.
func Cap(in []domain.Place, n int) []domain.Place {
	if n > 0 && len(in) > n {
		in = in[:n]
	}
	return append(make([]domain.Place, 0, len(in)), in...)
}

func byRatingDesc(a, b domain.Place) int {
	return cmp.Compare(b.RatingOrZero(), a.RatingOrZero())
}

func byReviewsDesc(a, b domain.Place) int {
	return cmp.Compare(b.ReviewsOrZero(), a.ReviewsOrZero())
}

// MostReviewed dedupes, orders by review count (ties keep input order) and
// keeps the first keep places.
func MostReviewed(in []domain.Place, keep int) []domain.Place {
	out := Dedupe(in)
	slices.SortStableFunc(out, byReviewsDesc)
	return Cap(out, keep)
}

// GemCriteria bounds the review count (inclusive) and sets a rating floor.
type GemCriteria struct {
	MinReviews int
	MaxReviews int
	MinRating  float64
}

func DefaultGemCriteria() GemCriteria {
	return GemCriteria{MinReviews: 10, MaxReviews: 400, MinRating: 3.5}
}

func (g GemCriteria) Accepts(p domain.Place) bool {
	n := p.ReviewsOrZero()
	return n >= g.MinReviews && n <= g.MaxReviews && p.RatingOrZero() >= g.MinRating
}

// HiddenGems keeps mid-popularity, well-rated places ordered by rating.
// An empty result is a valid outcome.
func HiddenGems(in []domain.Place, g GemCriteria, keep int) []domain.Place {
	uniq := Dedupe(in)
	out := make([]domain.Place, 0, len(uniq))
	for _, p := range uniq {
		if g.Accepts(p) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, byRatingDesc)
	return Cap(out, keep)
}
