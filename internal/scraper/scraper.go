// Package scraper collects top-rated movie records from IMDb list pages for
// catalog ingest.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"cinematch/internal/catalog"
	"cinematch/internal/config"
	"cinematch/internal/logging"
)

const pageSize = 50

// Scraper fetches and parses IMDb top-list pages.
type Scraper struct {
	cfg        config.Scraper
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// New creates a Scraper from the scraper configuration section.
func New(cfg config.Scraper, logger *slog.Logger, opts ...Option) *Scraper {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Scraper{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.RequestTimeout) * time.Second},
		logger:     logging.WithComponent(logger, "scraper"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchTopMovies walks the configured number of list pages and returns every
// movie record it can parse. A page that fails to fetch is logged and
// skipped; the method fails only when no page succeeded.
func (s *Scraper) FetchTopMovies(ctx context.Context) ([]catalog.Movie, error) {
	var movies []catalog.Movie
	var fetched int
	for page := 1; page <= s.cfg.MaxPages; page++ {
		pageMovies, err := s.fetchPage(ctx, page)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("page fetch failed",
				slog.Int("page", page), slog.Any("error", err))
			continue
		}
		fetched++
		movies = append(movies, pageMovies...)
		s.logger.Info("page scraped",
			slog.Int("page", page), slog.Int("movies", len(pageMovies)))

		if page < s.cfg.MaxPages {
			if err := s.politeDelay(ctx); err != nil {
				return nil, err
			}
		}
	}
	if fetched == 0 {
		return nil, fmt.Errorf("all %d list pages failed to fetch", s.cfg.MaxPages)
	}
	return movies, nil
}

func (s *Scraper) fetchPage(ctx context.Context, page int) ([]catalog.Movie, error) {
	start := (page-1)*pageSize + 1
	endpoint := fmt.Sprintf("%s/search/title/?groups=top_1000&start=%d&ref_=adv_nxt", s.cfg.BaseURL, start)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page %d returned %d", page, resp.StatusCode)
	}
	return parseListPage(resp.Body)
}

// politeDelay sleeps a random interval between page fetches so the ingest
// does not hammer the source site.
func (s *Scraper) politeDelay(ctx context.Context) error {
	minDelay := time.Duration(s.cfg.MinDelayMillis) * time.Millisecond
	maxDelay := time.Duration(s.cfg.MaxDelayMillis) * time.Millisecond
	delay := minDelay
	if maxDelay > minDelay {
		delay += time.Duration(rand.Int63n(int64(maxDelay - minDelay)))
	}
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
