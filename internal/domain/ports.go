package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// PlaceSearcher runs free-text place searches. An unknown query yields an
// empty slice, not an error.
type PlaceSearcher interface {
	Search(ctx context.Context, query string, f SearchFilters) ([]Place, error)
}

type PlaceCatalog interface {
	ListAll(ctx context.Context) ([]Place, error)
	ListCommunity(ctx context.Context) ([]Place, error)
}

type PlaceDetails interface {
	GetPlace(ctx context.Context, id string) (Place, error)
}

type PlaceRepository interface {
	// Write paths
	UpsertPlaces(ctx context.Context, ps []Place) error
	LogMiss(ctx context.Context, query string, status int, reason string) error

	// Read paths
	PlaceCatalog
	PlaceDetails
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
