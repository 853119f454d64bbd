// Package interests derives a user's preferred genres and keywords from
// their rating history, with a catalog-popularity fallback for users without
// one.
package interests

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"cinematch/internal/catalog"
	"cinematch/internal/config"
	"cinematch/internal/logging"
	"cinematch/internal/textutil"
)

const popularitySampleSize = 100

// Catalog defines the store queries the interest finder depends on.
type Catalog interface {
	UserRatings(ctx context.Context, userID int64) ([]catalog.UserRating, error)
	TopMovies(ctx context.Context, limit int) ([]catalog.Movie, error)
}

// Profile holds a user's derived tag preferences.
type Profile struct {
	Genres   []string
	Keywords []string
	// Fallback reports whether the profile came from catalog popularity
	// rather than the user's own ratings.
	Fallback bool
}

// Finder computes interest profiles from a catalog store.
type Finder struct {
	store  Catalog
	cfg    config.Interests
	logger *slog.Logger
}

// NewFinder creates a Finder using the weights and tag counts from cfg.
func NewFinder(store Catalog, cfg config.Interests, logger *slog.Logger) *Finder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Finder{
		store:  store,
		cfg:    cfg,
		logger: logging.WithComponent(logger, "interests"),
	}
}

// Find derives the user's top genres and keywords. Ratings are scored by a
// weighted blend of the min-max normalized rate and the liked flag, then the
// highest-scoring third of the history (at most 20 ratings) contributes its
// tags. Users without ratings fall back to the most common tags among the
// catalog's top movies.
func (f *Finder) Find(ctx context.Context, userID int64) (*Profile, error) {
	ratings, err := f.store.UserRatings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	if len(ratings) == 0 {
		f.logger.Info("no ratings on record, falling back to catalog popularity",
			slog.Int64("user_id", userID))
		return f.popularityProfile(ctx)
	}

	scored := scoreRatings(ratings, f.cfg.RateWeight, f.cfg.LikeWeight)
	top := topSlice(scored)

	var genreCounts, keywordCounts tagCounter
	for _, rating := range top {
		genreCounts.add(textutil.ParseTagSet(rating.Genres))
		keywordCounts.add(textutil.ParseTagSet(rating.Keywords))
	}

	return &Profile{
		Genres:   genreCounts.mostCommon(f.cfg.TopGenres),
		Keywords: keywordCounts.mostCommon(f.cfg.TopKeywords),
	}, nil
}

func (f *Finder) popularityProfile(ctx context.Context) (*Profile, error) {
	movies, err := f.store.TopMovies(ctx, popularitySampleSize)
	if err != nil {
		return nil, fmt.Errorf("load top movies: %w", err)
	}

	var genreCounts, keywordCounts tagCounter
	for _, movie := range movies {
		genreCounts.add(textutil.ParseTagSet(movie.Genres))
		keywordCounts.add(textutil.ParseTagSet(movie.Keywords))
	}

	return &Profile{
		Genres:   genreCounts.mostCommon(f.cfg.TopGenres),
		Keywords: keywordCounts.mostCommon(f.cfg.TopKeywords),
		Fallback: true,
	}, nil
}

// scoreRatings blends the min-max normalized rate with the liked flag and
// returns the ratings ordered best first. When every rate is identical the
// normalized component is zero for all of them and only likes separate the
// history.
func scoreRatings(ratings []catalog.UserRating, rateWeight, likeWeight float64) []catalog.UserRating {
	minRate, maxRate := ratings[0].UserRate, ratings[0].UserRate
	for _, r := range ratings[1:] {
		if r.UserRate < minRate {
			minRate = r.UserRate
		}
		if r.UserRate > maxRate {
			maxRate = r.UserRate
		}
	}
	span := maxRate - minRate

	scores := make([]float64, len(ratings))
	for i, r := range ratings {
		normalized := 0.0
		if span > 0 {
			normalized = (r.UserRate - minRate) / span
		}
		liked := 0.0
		if r.Liked {
			liked = 1.0
		}
		scores[i] = rateWeight*normalized + likeWeight*liked
	}

	order := make([]int, len(ratings))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	sorted := make([]catalog.UserRating, len(ratings))
	for i, idx := range order {
		sorted[i] = ratings[idx]
	}
	return sorted
}

// topSlice keeps the best third of the history, capped at 20 and never less
// than one rating.
func topSlice(ratings []catalog.UserRating) []catalog.UserRating {
	keep := len(ratings) / 3
	if keep > 20 {
		keep = 20
	}
	if keep < 1 {
		keep = 1
	}
	return ratings[:keep]
}

type tagEntry struct {
	tag   string
	count int
	seen  int
}

// tagCounter tallies tags preserving first-seen order for tie-breaking.
type tagCounter struct {
	entries []tagEntry
	index   map[string]int
}

func (c *tagCounter) add(tags []string) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	for _, tag := range tags {
		if at, ok := c.index[tag]; ok {
			c.entries[at].count++
			continue
		}
		c.index[tag] = len(c.entries)
		c.entries = append(c.entries, tagEntry{tag: tag, count: 1, seen: len(c.entries)})
	}
}

// mostCommon returns up to n tags by descending count. Equal counts keep
// first-seen order.
func (c *tagCounter) mostCommon(n int) []string {
	if n <= 0 || len(c.entries) == 0 {
		return nil
	}
	ranked := make([]tagEntry, len(c.entries))
	copy(ranked, c.entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].seen < ranked[j].seen
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	tags := make([]string, len(ranked))
	for i, entry := range ranked {
		tags[i] = entry.tag
	}
	return tags
}
