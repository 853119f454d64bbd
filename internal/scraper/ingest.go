package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"cinematch/internal/catalog"
	"cinematch/internal/config"
	"cinematch/internal/logging"
	"cinematch/internal/tmdb"
)

// ErrIngestLocked is returned when another ingest holds the catalog lock.
var ErrIngestLocked = errors.New("another ingest is already running")

// Fetcher supplies movie records for ingest.
type Fetcher interface {
	FetchTopMovies(ctx context.Context) ([]catalog.Movie, error)
}

// MovieWriter is the catalog surface the ingest writes through.
type MovieWriter interface {
	AddMovies(ctx context.Context, movies []catalog.Movie) (int, error)
}

// Report summarizes one ingest run.
type Report struct {
	SessionID string
	Scraped   int
	Enriched  int
	Added     int
}

// Ingestor scrapes movie records, optionally enriches them with TMDB tags,
// scores them, and writes them into the catalog under a file lock.
type Ingestor struct {
	cfg      *config.Config
	fetcher  Fetcher
	store    MovieWriter
	searcher tmdb.Searcher
	logger   *slog.Logger
}

// NewIngestor creates an Ingestor. searcher may be nil to skip TMDB
// enrichment.
func NewIngestor(cfg *config.Config, fetcher Fetcher, store MovieWriter, searcher tmdb.Searcher, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Ingestor{
		cfg:      cfg,
		fetcher:  fetcher,
		store:    store,
		searcher: searcher,
		logger:   logging.WithComponent(logger, "ingest"),
	}
}

// Run executes one full ingest. Only one ingest may run against a catalog at
// a time; concurrent runs fail with ErrIngestLocked.
func (ing *Ingestor) Run(ctx context.Context) (*Report, error) {
	lock := flock.New(ing.cfg.IngestLockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire ingest lock: %w", err)
	}
	if !locked {
		return nil, ErrIngestLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			ing.logger.Warn("failed to release ingest lock", slog.Any("error", err))
		}
	}()

	report := &Report{SessionID: uuid.NewString()}
	logger := ing.logger.With(slog.String("session_id", report.SessionID))
	logger.Info("ingest started", slog.Int("max_pages", ing.cfg.Scraper.MaxPages))

	movies, err := ing.fetcher.FetchTopMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("scrape movies: %w", err)
	}
	report.Scraped = len(movies)

	if ing.searcher != nil {
		report.Enriched = ing.enrich(ctx, logger, movies)
	}

	ApplyFinalScores(movies)

	added, err := ing.store.AddMovies(ctx, movies)
	if err != nil {
		return nil, fmt.Errorf("store movies: %w", err)
	}
	report.Added = added

	logger.Info("ingest finished",
		slog.Int("scraped", report.Scraped),
		slog.Int("enriched", report.Enriched),
		slog.Int("added", report.Added))
	return report, nil
}

// enrich fills missing keyword and genre fields from TMDB. Enrichment
// failures leave the scraped record as-is.
func (ing *Ingestor) enrich(ctx context.Context, logger *slog.Logger, movies []catalog.Movie) int {
	var enriched int
	for i := range movies {
		movie := &movies[i]
		if movie.Keywords != "" {
			continue
		}
		enrichment, err := tmdb.EnrichMovie(ctx, ing.searcher, movie.Title, movie.ReleaseYear)
		if err != nil {
			if ctx.Err() != nil {
				return enriched
			}
			logger.Warn("enrichment failed",
				slog.String("title", movie.Title), slog.Any("error", err))
			continue
		}
		if enrichment == nil {
			continue
		}
		movie.Keywords = enrichment.Keywords
		if movie.Genres == "" {
			movie.Genres = enrichment.Genres
		}
		enriched++
	}
	return enriched
}
