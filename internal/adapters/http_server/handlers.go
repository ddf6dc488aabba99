package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"eatsandthinks/internal/app"
	"eatsandthinks/internal/domain"
	"eatsandthinks/internal/sections"
)

type HomeBuilder interface {
	Build(ctx context.Context) (app.Home, error)
	Section(ctx context.Context, n sections.Name) (sections.Section, error)
}

type PlaceGetter interface {
	GetPlace(ctx context.Context, id string) (domain.Place, error)
}

type Handlers struct {
	Home   HomeBuilder
	Places PlaceGetter
	Cards  *app.CardService
	Ready  func(ctx context.Context) error // optional dependency check
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type imageResponse struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/readyz", h.ready)
	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/home", h.getHome)
		r.Get("/home/{section}", h.getSection)
		r.Get("/categories", h.listCategories)
		r.Get("/categories/resolve", h.resolveCategory)
		r.Get("/images", h.pickImage)
		r.Get("/places/{id}", h.getPlace)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON answers 304 when the client already holds this representation.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not encode response")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func (h *Handlers) ready(w http.ResponseWriter, r *http.Request) {
	if h.Ready != nil {
		if err := h.Ready(r.Context()); err != nil {
			writeProblem(w, http.StatusServiceUnavailable, "Not Ready", err.Error())
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (h *Handlers) getHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.Home.Build(r.Context())
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Unavailable", "homepage could not be built")
		return
	}
	writeJSON(w, r, h.Cards.HomeView(home))
}

func (h *Handlers) getSection(w http.ResponseWriter, r *http.Request) {
	name, ok := sections.ParseName(chi.URLParam(r, "section"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown section")
		return
	}
	sec, err := h.Home.Section(r.Context(), name)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	writeJSON(w, r, h.Cards.View(sec))
}

func (h *Handlers) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Cards.Categories())
}

func (h *Handlers) resolveCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Cards.Resolve(r.URL.Query().Get("type")))
}

// pickImage is not cached by clients: without a seed the pick is random.
func (h *Handlers) pickImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	typ := q.Get("type")
	c, url := h.Cards.Image(typ, q.Get("seed"))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(imageResponse{Type: typ, Category: string(c), URL: url}); err != nil {
		log.Error().Err(err).Msg("failed to write image body")
	}
}

func (h *Handlers) getPlace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Places.GetPlace(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "place not found")
			return
		}
		log.Error().Err(err).Str("place_id", id).Msg("place lookup failed")
		writeProblem(w, http.StatusBadGateway, "Upstream Error", "place lookup failed")
		return
	}
	writeJSON(w, r, h.Cards.Card(p, ""))
}
