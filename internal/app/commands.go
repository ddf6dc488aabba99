package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"eatsandthinks/internal/domain"
)

const ingestLimit = 20

// Source is everything ingestion reads from upstream.
type Source interface {
	domain.PlaceSearcher
	domain.PlaceCatalog
}

type IngestionService struct {
	src   Source
	repo  domain.PlaceRepository
	cache domain.Cache
}

func NewIngestionService(src Source, r domain.PlaceRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{src: src, repo: r, cache: cache}
}

// IngestQuery snapshots one search into the catalog. Upstream 404/401/403
// are recorded as misses and end the query without an error.
func (s *IngestionService) IngestQuery(ctx context.Context, query string) (int, error) {
	ps, err := s.src.Search(ctx, query, domain.SearchFilters{Limit: ingestLimit})
	if err != nil {
		if s.logMiss(ctx, query, err) {
			return 0, nil
		}
		return 0, err
	}
	return s.store(ctx, query, ps)
}

// IngestCommunity snapshots the operator-created places.
func (s *IngestionService) IngestCommunity(ctx context.Context) (int, error) {
	ps, err := s.src.ListCommunity(ctx)
	if err != nil {
		if s.logMiss(ctx, "community", err) {
			return 0, nil
		}
		return 0, err
	}
	for i := range ps {
		if ps[i].Source == "" {
			ps[i].Source = domain.SourceLocal
		}
	}
	return s.store(ctx, "community", ps)
}

func (s *IngestionService) store(ctx context.Context, label string, ps []domain.Place) (int, error) {
	if len(ps) == 0 {
		return 0, nil
	}
	for i := range ps {
		if ps[i].Source == "" {
			ps[i].Source = domain.SourceGoogle
		}
	}
	if err := s.repo.UpsertPlaces(ctx, ps); err != nil {
		// do not swallow: a failed insert must stop the run
		return 0, fmt.Errorf("upsert places for %q: %w", label, err)
	}
	// catalog changed -> every cached section may be stale
	invalidateHome(ctx, s.cache)
	return len(ps), nil
}

// logMiss records known upstream refusals and reports whether err was one.
func (s *IngestionService) logMiss(ctx context.Context, query string, err error) bool {
	status, reason := 0, ""
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, reason = 404, "not found"
	case errors.Is(err, domain.ErrUnauthorized):
		status, reason = 401, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		status, reason = 403, "forbidden"
	default:
		return false
	}
	if lerr := s.repo.LogMiss(ctx, query, status, reason); lerr != nil {
		log.Warn().Err(lerr).Str("query", query).Msg("could not record ingest miss")
	}
	invalidateHome(ctx, s.cache)
	return true
}
