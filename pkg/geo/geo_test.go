package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Reykjavik, Iceland" {
			t.Errorf("unexpected query %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("unexpected key %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"geometry":{"lat":64.1466,"lng":-21.9426}}]}`))
	}))
	defer srv.Close()

	c := New("test-key")
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()

	coords, err := c.Geocode(context.Background(), "Reykjavik, Iceland")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if coords == nil || coords.Latitude != 64.1466 || coords.Longitude != -21.9426 {
		t.Fatalf("unexpected coordinates %+v", coords)
	}
}

func TestGeocodeNoHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := New("test-key")
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()

	coords, err := c.Geocode(context.Background(), "nowhere at all")
	if err != nil {
		t.Fatalf("no hit must not be an error, got %v", err)
	}
	if coords != nil {
		t.Fatalf("expected nil coordinates, got %+v", coords)
	}
}

func TestGeocodeMissingKey(t *testing.T) {
	c := New("")
	if _, err := c.Geocode(context.Background(), "Paris"); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestGeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("test-key")
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()

	if _, err := c.Geocode(context.Background(), "Paris"); err == nil {
		t.Fatalf("expected an error for a non-200 status")
	}
}
