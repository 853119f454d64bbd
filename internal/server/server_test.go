package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinematch/internal/server"
	"cinematch/internal/testsupport"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedMovies(t, store, testsupport.SampleCatalog()...)

	srv, err := server.New(cfg, store, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantStatus int, payload any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	if payload != nil {
		if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var payload map[string]any
	getJSON(t, ts.URL+"/healthz", http.StatusOK, &payload)
	if payload["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", payload)
	}
}

func TestRecommendEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var payload server.RecommendResponse
	getJSON(t, ts.URL+"/api/recommend?query=Inception&limit=5", http.StatusOK, &payload)
	if payload.Count != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", payload.Count, payload.Results)
	}
	if payload.Results[0].Title != "Interstellar" || payload.Results[1].Title != "Heat" {
		t.Fatalf("unexpected ranking: %+v", payload.Results)
	}
}

func TestRecommendEndpointUnknownTitleIsEmpty(t *testing.T) {
	ts := newTestServer(t)

	var payload server.RecommendResponse
	getJSON(t, ts.URL+"/api/recommend?query=Unknown+Movie+XYZ", http.StatusOK, &payload)
	if payload.Count != 0 || len(payload.Results) != 0 {
		t.Fatalf("expected empty result set, got %+v", payload)
	}
}

func TestRecommendEndpointRequiresQuery(t *testing.T) {
	ts := newTestServer(t)
	getJSON(t, ts.URL+"/api/recommend", http.StatusBadRequest, nil)
}

func TestRecommendEndpointRejectsBadLimit(t *testing.T) {
	ts := newTestServer(t)
	getJSON(t, ts.URL+"/api/recommend?query=Inception&limit=nope", http.StatusBadRequest, nil)
	getJSON(t, ts.URL+"/api/recommend?query=Inception&limit=-2", http.StatusBadRequest, nil)
}

func TestSearchEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var payload server.SearchResponse
	getJSON(t, ts.URL+"/api/search?query=in", http.StatusOK, &payload)
	if payload.Count == 0 {
		t.Fatal("expected search results for substring query")
	}
	for _, result := range payload.Results {
		if result.Title == "" {
			t.Fatalf("result missing title: %+v", result)
		}
	}
}

func TestInterestsEndpointValidation(t *testing.T) {
	ts := newTestServer(t)
	getJSON(t, ts.URL+"/api/interests", http.StatusBadRequest, nil)
	getJSON(t, ts.URL+"/api/interests?user_id=abc", http.StatusBadRequest, nil)
}

func TestInterestsEndpointFallbackProfile(t *testing.T) {
	ts := newTestServer(t)

	var payload server.InterestsResponse
	getJSON(t, ts.URL+"/api/interests?user_id=42", http.StatusOK, &payload)
	if !payload.Fallback {
		t.Fatal("expected fallback profile for unknown user")
	}
	if len(payload.Genres) == 0 {
		t.Fatal("expected fallback genres from catalog popularity")
	}
}
