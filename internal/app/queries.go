package app

import (
	"context"
	"time"

	"eatsandthinks/internal/domain"
)

type QueryService struct {
	details  domain.PlaceDetails
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(d domain.PlaceDetails, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{details: d, cache: c, cacheTTL: ttl}
}

func placeKey(id string) string { return "place:" + id }

func (s *QueryService) GetPlace(ctx context.Context, id string) (domain.Place, error) {
	key := placeKey(id)
	var p domain.Place
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &p); ok {
			return p, nil
		}
	}
	p, err := s.details.GetPlace(ctx, id)
	if err != nil {
		return domain.Place{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, copyPlace(p), int(s.cacheTTL.Seconds()))
	}
	return p, nil
}

// copyPlace detaches slices so callers can't mutate a cached value.
func copyPlace(in domain.Place) domain.Place {
	out := in
	if in.OpeningHours != nil {
		out.OpeningHours = append([]string(nil), in.OpeningHours...)
	}
	out.RawJSON = nil
	return out
}
