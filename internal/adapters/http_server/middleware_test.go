package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func TestClientHost(t *testing.T) {
	cases := map[string]string{
		"192.0.2.9:5555":    "192.0.2.9",
		"[2001:db8::1]:443": "2001:db8::1",
		"203.0.113.5":       "203.0.113.5",
	}
	for in, want := range cases {
		if got := clientHost(in); got != want {
			t.Fatalf("clientHost(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLogger_RecordsRouteStatusAndForwardedIP(t *testing.T) {
	var buf bytes.Buffer
	m := chi.NewRouter()
	m.Use(chimw.RealIP)
	m.Use(Logger(zerolog.New(&buf)))
	m.Get("/v1/places/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/places/abc", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	m.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["route"] != "/v1/places/{id}" {
		t.Fatalf("route = %v", line["route"])
	}
	if line["status"] != float64(http.StatusTeapot) {
		t.Fatalf("status = %v", line["status"])
	}
	if line["bytes"] != float64(3) {
		t.Fatalf("bytes = %v", line["bytes"])
	}
	if line["remote"] != "203.0.113.5" {
		t.Fatalf("remote = %v", line["remote"])
	}
}

func TestLogger_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := Logger(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if line["status"] != float64(http.StatusOK) || line["route"] != "unmatched" {
		t.Fatalf("unexpected line %v", line)
	}
}

func TestTimeout_AnswersProblem(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	rec := httptest.NewRecorder()
	Timeout(10*time.Millisecond)(slow).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
