package advisor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"cinematch/internal/catalog"
	"cinematch/internal/logging"
	"cinematch/internal/textutil"
)

// DefaultFuzzyThreshold is the similarity ratio a catalog title must exceed
// to qualify as a fuzzy resolution candidate.
const DefaultFuzzyThreshold = 0.6

// Catalog defines the store queries the advisor depends on.
type Catalog interface {
	GetByTitle(ctx context.Context, title string) (*catalog.Movie, error)
	GetByPartialTitle(ctx context.Context, title string) (*catalog.Movie, error)
	List(ctx context.Context) ([]catalog.Movie, error)
	SimilarByGenres(ctx context.Context, tags []string, excludeTitle string, limit int) ([]catalog.Movie, error)
	SimilarByKeywords(ctx context.Context, tags []string, excludeTitle string, limit int) ([]catalog.Movie, error)
}

// Options configures an Advisor.
type Options struct {
	// FuzzyThreshold overrides DefaultFuzzyThreshold when > 0.
	FuzzyThreshold float64
	Logger         *slog.Logger
}

// Advisor answers similarity queries over a read-only catalog store.
type Advisor struct {
	store     Catalog
	threshold float64
	logger    *slog.Logger
}

// New creates an Advisor over the given catalog store.
func New(store Catalog, opts Options) *Advisor {
	threshold := opts.FuzzyThreshold
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Advisor{
		store:     store,
		threshold: threshold,
		logger:    logging.WithComponent(logger, "advisor"),
	}
}

// Recommend produces up to limit ranked, deduplicated movies similar to the
// resolved query title. An unresolvable query yields an empty list, not an
// error.
func (a *Advisor) Recommend(ctx context.Context, query string, limit int) ([]catalog.Movie, error) {
	if limit <= 0 {
		return nil, nil
	}

	target, err := a.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	if target == nil {
		a.logger.Debug("query did not resolve", slog.String("query", query))
		return nil, nil
	}

	genreTags := textutil.ParseTagSet(target.Genres)
	// Over-fetch both sets to leave headroom for dedup during the merge.
	genreCandidates, err := a.store.SimilarByGenres(ctx, genreTags, target.Title, limit*2)
	if err != nil {
		return nil, fmt.Errorf("expand genre candidates: %w", err)
	}

	keywordTags := textutil.ParseTagSet(target.Keywords)
	if len(keywordTags) == 0 {
		return truncate(genreCandidates, limit), nil
	}

	keywordCandidates, err := a.store.SimilarByKeywords(ctx, keywordTags, target.Title, limit*2)
	if err != nil {
		return nil, fmt.Errorf("expand keyword candidates: %w", err)
	}

	merged := mergeByTitle(genreCandidates, keywordCandidates)
	rankByScore(merged)

	a.logger.Debug("recommendation ready",
		slog.String("resolved", target.Title),
		slog.Int("genre_candidates", len(genreCandidates)),
		slog.Int("keyword_candidates", len(keywordCandidates)),
		slog.Int("merged", len(merged)))

	return truncate(merged, limit), nil
}

// mergeByTitle combines candidate lists keyed by lowercase title. Later lists
// overwrite earlier ones on collision, so keyword candidates take precedence
// over genre candidates.
func mergeByTitle(lists ...[]catalog.Movie) []catalog.Movie {
	index := make(map[string]int)
	var merged []catalog.Movie
	for _, list := range lists {
		for _, movie := range list {
			key := strings.ToLower(movie.Title)
			if at, ok := index[key]; ok {
				merged[at] = movie
				continue
			}
			index[key] = len(merged)
			merged = append(merged, movie)
		}
	}
	return merged
}

// rankByScore sorts movies by final score descending. Ties fall back to title
// so repeated calls over identical catalog state rank identically.
func rankByScore(movies []catalog.Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		if movies[i].FinalScore != movies[j].FinalScore {
			return movies[i].FinalScore > movies[j].FinalScore
		}
		return strings.ToLower(movies[i].Title) < strings.ToLower(movies[j].Title)
	})
}

func truncate(movies []catalog.Movie, limit int) []catalog.Movie {
	if len(movies) > limit {
		return movies[:limit]
	}
	return movies
}
