package catalog_test

import (
	"context"
	"testing"

	"cinematch/internal/catalog"
	"cinematch/internal/testsupport"
)

func TestOpenCreatesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	added, err := store.AddMovie(ctx, catalog.Movie{Title: "Inception", ReleaseYear: 2010, Rating: 8.8, FinalScore: 9.2})
	if err != nil {
		t.Fatalf("AddMovie failed: %v", err)
	}
	if !added {
		t.Fatal("expected movie to be inserted")
	}

	fetched, err := store.GetByTitle(ctx, "inception")
	if err != nil {
		t.Fatalf("GetByTitle failed: %v", err)
	}
	if fetched == nil || fetched.Title != "Inception" {
		t.Fatalf("unexpected fetched movie: %#v", fetched)
	}
}

func TestAddMovieIgnoresDuplicates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	movie := catalog.Movie{Title: "Heat", ReleaseYear: 1995, Rating: 8.3}
	if _, err := store.AddMovie(ctx, movie); err != nil {
		t.Fatalf("AddMovie failed: %v", err)
	}
	added, err := store.AddMovie(ctx, movie)
	if err != nil {
		t.Fatalf("AddMovie failed: %v", err)
	}
	if added {
		t.Fatal("expected duplicate (title, release_year) to be ignored")
	}

	// Same title with a different year is a distinct record.
	added, err = store.AddMovie(ctx, catalog.Movie{Title: "Heat", ReleaseYear: 1986, Rating: 6.1})
	if err != nil {
		t.Fatalf("AddMovie failed: %v", err)
	}
	if !added {
		t.Fatal("expected same title with different year to insert")
	}
}

func TestAddMovieRequiresTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.AddMovie(context.Background(), catalog.Movie{Title: "   "}); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestGetByTitleReturnsNilWhenAbsent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	movie, err := store.GetByTitle(context.Background(), "Unknown Movie XYZ")
	if err != nil {
		t.Fatalf("GetByTitle failed: %v", err)
	}
	if movie != nil {
		t.Fatalf("expected nil for absent title, got %#v", movie)
	}
}

func TestGetByPartialTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedMovies(t, store, testsupport.SampleCatalog()...)

	movie, err := store.GetByPartialTitle(context.Background(), "notebook")
	if err != nil {
		t.Fatalf("GetByPartialTitle failed: %v", err)
	}
	if movie == nil || movie.Title != "The Notebook" {
		t.Fatalf("unexpected partial match: %#v", movie)
	}
}

func TestSimilarByGenresExcludesTitleAndOrdersByScore(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedMovies(t, store, testsupport.SampleCatalog()...)

	ctx := context.Background()
	got, err := store.SimilarByGenres(ctx, []string{"sci-fi", "thriller"}, "Inception", 10)
	if err != nil {
		t.Fatalf("SimilarByGenres failed: %v", err)
	}
	// Interstellar (9.5) shares sci-fi, Heat (8.4) shares thriller.
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %#v", len(got), got)
	}
	if got[0].Title != "Interstellar" || got[1].Title != "Heat" {
		t.Fatalf("unexpected candidate order: %q, %q", got[0].Title, got[1].Title)
	}
	for _, movie := range got {
		if movie.Title == "Inception" {
			t.Fatal("excluded title leaked into candidates")
		}
	}
}

func TestSimilarByGenresEmptyTagSet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedMovies(t, store, testsupport.SampleCatalog()...)

	got, err := store.SimilarByGenres(context.Background(), nil, "Inception", 10)
	if err != nil {
		t.Fatalf("SimilarByGenres failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates for empty tag set, got %d", len(got))
	}
}

func TestSimilarByKeywordsHonorsLimit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedMovies(t, store, testsupport.SampleCatalog()...)

	got, err := store.SimilarByKeywords(context.Background(), []string{"heist"}, "Nothing", 1)
	if err != nil {
		t.Fatalf("SimilarByKeywords failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected limit to cap results, got %d", len(got))
	}
	// Inception (9.2) outranks Heat (8.4) on the shared heist keyword.
	if got[0].Title != "Inception" {
		t.Fatalf("unexpected top keyword candidate: %q", got[0].Title)
	}
}

func TestListOrderIsDeterministic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedMovies(t, store,
		catalog.Movie{Title: "Beta", ReleaseYear: 2001, FinalScore: 5.0},
		catalog.Movie{Title: "Alpha", ReleaseYear: 2002, FinalScore: 5.0},
		catalog.Movie{Title: "Gamma", ReleaseYear: 2003, FinalScore: 7.0},
	)

	for i := 0; i < 3; i++ {
		movies, err := store.List(context.Background())
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(movies) != 3 {
			t.Fatalf("expected 3 movies, got %d", len(movies))
		}
		if movies[0].Title != "Gamma" || movies[1].Title != "Alpha" || movies[2].Title != "Beta" {
			t.Fatalf("unexpected order: %q, %q, %q", movies[0].Title, movies[1].Title, movies[2].Title)
		}
	}
}

func TestUserRatingsJoin(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedMovies(t, store, testsupport.SampleCatalog()...)

	ctx := context.Background()
	inception, err := store.GetByTitle(ctx, "Inception")
	if err != nil || inception == nil {
		t.Fatalf("GetByTitle failed: %v", err)
	}
	heat, err := store.GetByTitle(ctx, "Heat")
	if err != nil || heat == nil {
		t.Fatalf("GetByTitle failed: %v", err)
	}

	if err := store.AddRating(ctx, 7, inception.ID, 9.0, true); err != nil {
		t.Fatalf("AddRating failed: %v", err)
	}
	if err := store.AddRating(ctx, 7, heat.ID, 7.5, false); err != nil {
		t.Fatalf("AddRating failed: %v", err)
	}

	ratings, err := store.UserRatings(ctx, 7)
	if err != nil {
		t.Fatalf("UserRatings failed: %v", err)
	}
	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(ratings))
	}
	if ratings[0].MovieID != inception.ID || !ratings[0].Liked {
		t.Fatalf("unexpected first rating: %#v", ratings[0])
	}
	if ratings[0].Genres != "Sci-Fi, Thriller" {
		t.Fatalf("expected joined genres, got %q", ratings[0].Genres)
	}

	watched, err := store.WatchedMovieIDs(ctx, 7)
	if err != nil {
		t.Fatalf("WatchedMovieIDs failed: %v", err)
	}
	if len(watched) != 2 {
		t.Fatalf("expected 2 watched ids, got %d", len(watched))
	}

	none, err := store.WatchedMovieIDs(ctx, 9999)
	if err != nil {
		t.Fatalf("WatchedMovieIDs failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no watched ids for unknown user, got %d", len(none))
	}
}

func TestStatsAndClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedMovies(t, store, testsupport.SampleCatalog()...)

	ctx := context.Background()
	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Movies != 5 {
		t.Fatalf("expected 5 movies, got %d", stats.Movies)
	}
	if stats.TopTitle != "Interstellar" {
		t.Fatalf("unexpected top title: %q", stats.TopTitle)
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 5 {
		t.Fatalf("expected 5 rows cleared, got %d", removed)
	}
}

func TestCheckHealth(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedMovies(t, store, testsupport.SampleCatalog()...)

	health, err := store.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth failed: %v", err)
	}
	if !health.DatabaseExists || !health.DatabaseReadable || !health.TableExists {
		t.Fatalf("unexpected health: %#v", health)
	}
	if health.TotalMovies != 5 {
		t.Fatalf("expected 5 movies in health report, got %d", health.TotalMovies)
	}
	if !health.IntegrityCheck {
		t.Fatal("expected integrity check to pass")
	}
}
