package imagesearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if got := r.URL.Query().Get("query"); got != "iceland travel" {
			t.Errorf("unexpected query %q", got)
		}
		if got := r.URL.Query().Get("orientation"); got != "landscape" {
			t.Errorf("unexpected orientation %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"photos":[{"alt":"Aurora over a fjord","photographer":"Jon","src":{"large":"https://img/large.jpg","medium":"https://img/medium.jpg"}}]}`))
	}))
	defer srv.Close()

	c := New("test-key")
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()

	photos, err := c.Search(context.Background(), "iceland", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(photos) != 1 {
		t.Fatalf("expected one photo, got %d", len(photos))
	}
	p := photos[0]
	if p.URL != "https://img/large.jpg" || p.ThumbnailURL != "https://img/medium.jpg" {
		t.Fatalf("unexpected photo urls %+v", p)
	}
	if p.Description != "Aurora over a fjord" || p.Attribution != "Jon" {
		t.Fatalf("unexpected photo metadata %+v", p)
	}
}

func TestSearchMissingKey(t *testing.T) {
	c := New("")
	if _, err := c.Search(context.Background(), "iceland", 5); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	c := New("test-key")
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()

	if _, err := c.Search(context.Background(), "iceland", 5); err == nil {
		t.Fatalf("expected an error for a non-200 status")
	}
}
