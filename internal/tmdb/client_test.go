package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinematch/internal/tmdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "en-US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestSearchMovieSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "key" {
			t.Fatalf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("primary_release_year") != "2010" {
			t.Fatalf("expected year filter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":27205,"title":"Inception","genre_ids":[878,53]}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	resp, err := client.SearchMovie(context.Background(), "Inception", tmdb.SearchOptions{Year: 2010})
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "Inception" {
		t.Fatalf("unexpected response: %#v", resp)
	}
	if got := tmdb.GenreNames(resp.Results[0].GenreIDs); got != "Sci-Fi, Thriller" {
		t.Fatalf("unexpected genre names: %q", got)
	}
}

func TestSearchMovieHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status_code":500}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.SearchMovie(context.Background(), "fail", tmdb.SearchOptions{}); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}

func TestSearchMovieEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "  ", tmdb.SearchOptions{}); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestEnrichMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/search/movie"):
			_, _ = w.Write([]byte(`{"page":1,"results":[{"id":27205,"title":"Inception","genre_ids":[878,53]}]}`))
		case strings.HasPrefix(r.URL.Path, "/movie/27205/keywords"):
			_, _ = w.Write([]byte(`{"id":27205,"keywords":[{"id":1,"name":"dream"},{"id":2,"name":"heist"}]}`))
		default:
			t.Fatalf("unexpected request path %q", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	enrichment, err := tmdb.EnrichMovie(context.Background(), client, "Inception", 2010)
	if err != nil {
		t.Fatalf("EnrichMovie returned error: %v", err)
	}
	if enrichment == nil {
		t.Fatal("expected enrichment for known movie")
	}
	if enrichment.Genres != "Sci-Fi, Thriller" {
		t.Fatalf("unexpected genres: %q", enrichment.Genres)
	}
	if enrichment.Keywords != "dream, heist" {
		t.Fatalf("unexpected keywords: %q", enrichment.Keywords)
	}
}

func TestEnrichMovieNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	enrichment, err := tmdb.EnrichMovie(context.Background(), client, "Unknown Movie XYZ", 0)
	if err != nil {
		t.Fatalf("EnrichMovie returned error: %v", err)
	}
	if enrichment != nil {
		t.Fatalf("expected nil enrichment for missing movie, got %+v", enrichment)
	}
}
