package advisor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cinematch/internal/catalog"
	"cinematch/internal/textutil"
)

// Resolve maps a free-text query to a catalog movie. It tries an exact
// case-insensitive match, then a substring match, then a fuzzy scan of every
// catalog title. A nil movie with a nil error means nothing resolved.
func (a *Advisor) Resolve(ctx context.Context, query string) (*catalog.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	movie, err := a.store.GetByTitle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("exact title lookup: %w", err)
	}
	if movie != nil {
		return movie, nil
	}

	movie, err = a.store.GetByPartialTitle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("partial title lookup: %w", err)
	}
	if movie != nil {
		a.logger.Debug("resolved by substring",
			"query", query, "title", movie.Title)
		return movie, nil
	}

	return a.resolveFuzzy(ctx, query)
}

// resolveFuzzy scores the query against every catalog title and returns the
// best match above the configured threshold.
func (a *Advisor) resolveFuzzy(ctx context.Context, query string) (*catalog.Movie, error) {
	movies, err := a.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list titles for fuzzy match: %w", err)
	}

	lowered := strings.ToLower(query)
	type scored struct {
		movie catalog.Movie
		ratio float64
	}
	var candidates []scored
	for _, movie := range movies {
		ratio := textutil.SimilarityRatio(lowered, strings.ToLower(movie.Title))
		if ratio > a.threshold {
			candidates = append(candidates, scored{movie: movie, ratio: ratio})
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ratio != candidates[j].ratio {
			return candidates[i].ratio > candidates[j].ratio
		}
		return strings.ToLower(candidates[i].movie.Title) < strings.ToLower(candidates[j].movie.Title)
	})

	best := candidates[0]
	a.logger.Debug("resolved by fuzzy match",
		"query", query, "title", best.movie.Title, "ratio", best.ratio)
	return &best.movie, nil
}
