package eatsapi

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"eatsandthinks/internal/adapters/observability"
	"eatsandthinks/internal/domain"
)

const service = "eatsapi"

// Client talks to the EatsAndThinks REST backend.
type Client struct {
	base  string
	hc    *http.Client
	token string
	rl    *rate.Limiter
}

func New(base, token string, rps int) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("eatsapi: invalid base URL %q", base)
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		hc:    &http.Client{Timeout: 20 * time.Second},
		token: token,
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API (tries the locales endpoints first, then the raw places proxy) ----

// Search runs a text search. Filters are sent upstream and applied again
// locally so the result honours them even if the backend ignores some.
func (c *Client) Search(ctx context.Context, query string, f domain.SearchFilters) ([]domain.Place, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Place{}, nil
	}
	q := url.Values{}
	q.Set("query", query)
	if f.MinRating != nil {
		q.Set("minRating", strconv.FormatFloat(*f.MinRating, 'f', -1, 64))
	}
	for _, lvl := range f.PriceLevels {
		q.Add("priceLevel", strconv.Itoa(lvl))
	}
	if f.OpenNowOnly {
		q.Set("openNowOnly", "true")
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	enc := q.Encode()
	candidates := []string{
		c.base + "/locales/search?" + enc, // preferred
		c.base + "/places/search?" + enc,  // google proxy
	}
	var raw []map[string]any
	if err := c.getFirst(ctx, "search", candidates, &raw); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []domain.Place{}, nil
		}
		return nil, err
	}
	return f.Apply(mapPlaces(raw)), nil
}

func (c *Client) ListAll(ctx context.Context) ([]domain.Place, error) {
	var raw []map[string]any
	if err := c.get(ctx, "locales", c.base+"/locales", &raw); err != nil {
		return nil, err
	}
	return mapPlaces(raw), nil
}

func (c *Client) ListCommunity(ctx context.Context) ([]domain.Place, error) {
	var raw []map[string]any
	if err := c.get(ctx, "community", c.base+"/locales/community", &raw); err != nil {
		return nil, err
	}
	out := mapPlaces(raw)
	for i := range out {
		if out[i].Source == "" {
			out[i].Source = domain.SourceLocal
		}
	}
	return out, nil
}

func (c *Client) GetPlace(ctx context.Context, id string) (domain.Place, error) {
	if strings.HasPrefix(id, LocalIDPrefix) {
		// the details endpoint only knows Google place ids
		return c.communityPlace(ctx, id)
	}
	esc := url.PathEscape(id)
	candidates := []string{
		c.base + "/locales/details/" + esc, // preferred
		c.base + "/places/details/" + esc,
	}
	var raw map[string]any
	if err := c.getFirst(ctx, "details", candidates, &raw); err != nil {
		return domain.Place{}, err
	}
	if raw == nil {
		// backend answers 200 with a null body for unknown ids
		return domain.Place{}, ErrNotFound
	}
	return mapPlace(raw), nil
}

func (c *Client) communityPlace(ctx context.Context, id string) (domain.Place, error) {
	all, err := c.ListCommunity(ctx)
	if err != nil {
		return domain.Place{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Place{}, ErrNotFound
}

// ---- Internals ----

var (
	ErrNotFound     = fmt.Errorf("eatsapi: %w", domain.ErrNotFound)
	ErrUnauthorized = fmt.Errorf("eatsapi: %w", domain.ErrUnauthorized)
	ErrForbidden    = fmt.Errorf("eatsapi: %w", domain.ErrForbidden)
)

func (c *Client) getFirst(ctx context.Context, endpoint string, urls []string, out any) error {
	var last error
	for _, u := range urls {
		if err := c.get(ctx, endpoint, u, out); err != nil {
			if errors.Is(err, ErrNotFound) {
				last = err
				continue // try next pattern
			}
			return err // non-404: stop early
		}
		return nil // success
	}
	if last != nil {
		return last
	}
	return errors.New("eatsapi: no candidate URL succeeded")
}

// get performs a GET with client-side rate limiting, retries, and JSON decode into out.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) get(ctx context.Context, endpoint, rawURL string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "eatsandthinks-bff/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal(service, endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("eatsapi: decode %s: %w", endpoint, err)
			}
			return nil

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("eatsapi: remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("eatsapi: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
