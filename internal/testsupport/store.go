package testsupport

import (
	"context"
	"testing"

	"cinematch/internal/catalog"
	"cinematch/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedMovies inserts the provided movies, failing the test on any error.
func SeedMovies(t testing.TB, store *catalog.Store, movies ...catalog.Movie) {
	t.Helper()

	if _, err := store.AddMovies(context.Background(), movies); err != nil {
		t.Fatalf("seed movies: %v", err)
	}
}

// SampleCatalog returns a small fixed catalog exercising genre and keyword
// overlap, score ties, and blank tag fields.
func SampleCatalog() []catalog.Movie {
	return []catalog.Movie{
		{
			Title:       "Inception",
			ReleaseYear: 2010,
			Genres:      "Sci-Fi, Thriller",
			Keywords:    "dream, heist, subconscious",
			Director:    "Christopher Nolan",
			Rating:      8.8,
			RatingCount: 2500000,
			FinalScore:  9.2,
		},
		{
			Title:       "Interstellar",
			ReleaseYear: 2014,
			Genres:      "Sci-Fi, Drama",
			Keywords:    "space, wormhole, relativity",
			Director:    "Christopher Nolan",
			Rating:      8.7,
			RatingCount: 2200000,
			FinalScore:  9.5,
		},
		{
			Title:       "The Notebook",
			ReleaseYear: 2004,
			Genres:      "Romance, Drama",
			Keywords:    "love, memory",
			Rating:      7.8,
			RatingCount: 600000,
			FinalScore:  7.1,
		},
		{
			Title:       "Heat",
			ReleaseYear: 1995,
			Genres:      "Crime, Thriller",
			Keywords:    "heist, los angeles",
			Director:    "Michael Mann",
			Rating:      8.3,
			RatingCount: 750000,
			FinalScore:  8.4,
		},
		{
			Title:       "Silent Archive",
			ReleaseYear: 2019,
			Genres:      "",
			Keywords:    "",
			Director:    "Unknown",
			Rating:      6.0,
			RatingCount: 120,
			FinalScore:  3.2,
		},
	}
}
