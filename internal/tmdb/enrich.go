package tmdb

import (
	"context"
	"fmt"
	"strings"
)

// Enrichment carries the TMDB metadata merged into a catalog record.
type Enrichment struct {
	TMDBID   int64
	Genres   string
	Keywords string
	Overview string
}

// EnrichMovie looks a title up on TMDB and returns its genres and keywords as
// comma-separated tag fields. A title with no search results yields a nil
// enrichment, not an error.
func EnrichMovie(ctx context.Context, searcher Searcher, title string, year int) (*Enrichment, error) {
	resp, err := searcher.SearchMovie(ctx, title, SearchOptions{Year: year})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", title, err)
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	best := resp.Results[0]
	enrichment := &Enrichment{
		TMDBID:   best.ID,
		Genres:   GenreNames(best.GenreIDs),
		Overview: best.Overview,
	}

	keywords, err := searcher.MovieKeywords(ctx, best.ID)
	if err != nil {
		return nil, fmt.Errorf("keywords for %q: %w", title, err)
	}
	names := make([]string, 0, len(keywords.Keywords))
	for _, kw := range keywords.Keywords {
		if name := strings.TrimSpace(kw.Name); name != "" {
			names = append(names, name)
		}
	}
	enrichment.Keywords = strings.Join(names, ", ")
	return enrichment, nil
}
